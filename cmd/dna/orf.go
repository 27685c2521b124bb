package main

import (
	"bufio"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

type orfFlags struct {
	inputFlags
	output string
}

func newORFCmd(a *app) *cobra.Command {
	f := &orfFlags{}
	cmd := &cobra.Command{
		Use:   "orf",
		Short: "Find open reading frames in the three forward frames",
		Long: `Find open reading frames in the three forward frames.

An ORF runs from ATG to the nearest TAA/TAG/TGA in frame-shifted sequence,
the stop codon need not be in frame. Output format:
	Index	Frame	Start	End	Length	ORF	[Protein]
Start and End are 0-based, End exclusive. Protein is "-" if the ORF
length is not a multiple of 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd, map[string]string{"orf.min-length": "min-length", "orf.translate": "translate"}); err != nil {
				return err
			}
			seqs, err := f.load(cmd)
			if err != nil {
				return err
			}
			w, closeOut := openOutput(cmd, f.output)
			defer closeOut()
			WriteORFs(seqs, w, a.cfg.ORF.MinLength, a.cfg.ORF.Translate)
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output, default stdout")
	cmd.Flags().IntP("min-length", "m", util.DefaultMinORFLength, "minimum ORF length in bp")
	cmd.Flags().Bool("translate", false, "add protein column")
	return cmd
}

// WriteORFs find ORFs of each seq and write with header, return ORF count
func WriteORFs(seqs []string, w *bufio.Writer, minLength int, translate bool) (count int) {
	if translate {
		fmtUtil.Fprintf(w, "Index\tFrame\tStart\tEnd\tLength\tORF\tProtein\n")
	} else {
		fmtUtil.Fprintf(w, "Index\tFrame\tStart\tEnd\tLength\tORF\n")
	}
	for i, seq := range seqs {
		orfs := util.FindORFs(seq, minLength)
		slog.Debug("orf", "index", i+1, "length", len(seq), "count", len(orfs))
		for _, orf := range orfs {
			if !translate {
				fmtUtil.Fprintf(w, "%d\t%s\n", i+1, orf)
				continue
			}
			protein, err := orf.Protein()
			if err != nil {
				protein = "-"
			}
			fmtUtil.Fprintf(w, "%d\t%s\t%s\n", i+1, orf, protein)
		}
		count += len(orfs)
	}
	slog.Info("orf", "sequences", len(seqs), "orfs", count, "minLength", minLength)
	return
}
