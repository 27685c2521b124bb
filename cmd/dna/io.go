package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

// inputFlags shared by commands reading sequences
type inputFlags struct {
	input string
	seq   string
	join  bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input, one seq per line, - for stdin")
	cmd.Flags().StringVarP(&f.seq, "seq", "s", "", "literal sequence, instead of --input")
	cmd.Flags().BoolVar(&f.join, "join", false, "join all lines of input as one sequence")
	cmd.MarkFlagsMutuallyExclusive("input", "seq")
}

var errNoInput = errors.New("need --input or --seq")

// load sequences, uppercase, warn on non ACGT
func (f *inputFlags) load(cmd *cobra.Command) (seqs []string, err error) {
	switch {
	case f.seq != "":
		seqs = []string{strings.ToUpper(strings.TrimSpace(f.seq))}
	case f.input == "":
		return nil, errNoInput
	case f.join && f.input != "-":
		seqs = []string{util.LoadInputSeq(f.input)}
	default:
		var in io.Reader
		if f.input == "-" {
			in = cmd.InOrStdin()
		} else {
			inF := osUtil.Open(f.input)
			defer simpleUtil.DeferClose(inF)
			in = inF
		}
		seqs, err = util.ReadSeqs(in)
		if err != nil {
			return nil, err
		}
		if f.join {
			seqs = []string{strings.Join(seqs, "")}
		}
	}

	for i, seq := range seqs {
		if !util.IsACGT(seq) {
			slog.Warn("non-ACGT base", "index", i+1, "length", len(seq))
		}
	}
	slog.Debug("load", "input", f.input, "count", len(seqs))
	return seqs, nil
}

// openOutput return buffered writer of path, stdout if path is empty or -
func openOutput(cmd *cobra.Command, path string) (w *bufio.Writer, closeOut func()) {
	if path == "" || path == "-" {
		return bufio.NewWriter(cmd.OutOrStdout()), func() {}
	}
	outF := osUtil.Create(path)
	return bufio.NewWriterSize(outF, 10*1024*1024), func() { simpleUtil.DeferClose(outF) }
}
