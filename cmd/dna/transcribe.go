package main

import (
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

type transcribeFlags struct {
	inputFlags
	output string
}

func newTranscribeCmd(_ *app) *cobra.Command {
	f := &transcribeFlags{}
	cmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe DNA to RNA, one sequence per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seqs, err := f.load(cmd)
			if err != nil {
				return err
			}
			w, closeOut := openOutput(cmd, f.output)
			defer closeOut()
			for _, seq := range seqs {
				fmtUtil.Fprintf(w, "%s\n", util.Transcribe(seq))
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output, default stdout")
	return cmd
}
