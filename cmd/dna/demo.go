package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

// demo input and threshold
const (
	demoSeq       = "ATGCGTATAGCGCTTAAATGCGCTGA"
	demoMinLength = 9
)

func newDemoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run GC content, transcription and ORF finding on an example sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Demo(cmd.OutOrStdout(), demoSeq, demoMinLength)
		},
	}
}

// Demo example usage of the util functions
func Demo(w io.Writer, seq string, minLength int) error {
	gc, err := util.GCContent(seq)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		w,
		"DNA Sequence: %s\nGC Content: %.2f%%\nRNA Sequence: %s\nOpen Reading Frames:\n",
		seq, gc, util.Transcribe(seq),
	)
	if err != nil {
		return err
	}
	for _, orf := range util.FindORFs(seq, minLength) {
		if _, err = fmt.Fprintf(w, "Start: %d, End: %d, ORF: %s\n", orf.Start, orf.End, orf.Seq); err != nil {
			return err
		}
	}
	return nil
}
