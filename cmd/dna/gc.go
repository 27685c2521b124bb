package main

import (
	"bufio"
	"fmt"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

type gcFlags struct {
	inputFlags
	output string
	hist   string
	plot   string
}

func newGCCmd(a *app) *cobra.Command {
	f := &gcFlags{}
	cmd := &cobra.Command{
		Use:   "gc",
		Short: "GC content of each sequence",
		Long: `GC content of each sequence, output format:
	Seq	GCcontent	[Tm]

--hist writes the GC content histogram, format:
	GCcontent	Count
--plot draws the histogram, format by extension (.png .svg .pdf)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd, map[string]string{"gc.tm": "tm", "gc.bins": "bins"}); err != nil {
				return err
			}
			return a.runGC(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output, default stdout")
	cmd.Flags().StringVar(&f.hist, "hist", "", "output gc hist")
	cmd.Flags().StringVar(&f.plot, "plot", "", "output gc hist plot")
	cmd.Flags().Bool("tm", false, "add tm")
	cmd.Flags().Int("bins", 50, "bins of gc hist plot")
	return cmd
}

func (a *app) runGC(cmd *cobra.Command, f *gcFlags) error {
	seqs, err := f.load(cmd)
	if err != nil {
		return err
	}

	w, closeOut := openOutput(cmd, f.output)
	defer closeOut()

	// 计数 GC
	hist, err := AddGC(seqs, w, a.cfg.GC.Tm)
	if err != nil {
		return err
	}

	if f.hist != "" {
		outGC := osUtil.Create(f.hist)
		defer simpleUtil.DeferClose(outGC)
		wGC := bufio.NewWriter(outGC)
		simpleUtil.CheckErr(util.WriteHist(hist, wGC))
		simpleUtil.CheckErr(wGC.Flush())
	}
	if f.plot != "" {
		if err = util.PlotHist(hist, a.cfg.GC.Bins, f.plot); err != nil {
			return fmt.Errorf("plot %s: %w", f.plot, err)
		}
	}
	return w.Flush()
}

// AddGC write seq with gc content [and tm], return hist
func AddGC(seqs []string, w *bufio.Writer, tm bool) (util.Hist, error) {
	var hist = make(util.Hist)
	for _, seq := range seqs {
		gc, err := util.GCContent(seq)
		if err != nil {
			return nil, err
		}
		hist.Add(gc)
		if tm {
			fmtUtil.Fprintf(w, "%s\t%.2f\t%.2f\n", seq, gc, util.CalculateTm(len(seq), gc))
		} else {
			fmtUtil.Fprintf(w, "%s\t%.2f\n", seq, gc)
		}
	}
	return hist, nil
}
