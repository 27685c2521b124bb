package util

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// LoadInputSeq read whole file as one sequence, uppercase
func LoadInputSeq(path string) string {
	var sequence strings.Builder
	for _, line := range textUtil.File2Array(path) {
		sequence.WriteString(strings.TrimSpace(line))
	}
	return strings.ToUpper(sequence.String())
}

// ReadSeqs read one sequence per line, skip blank line, uppercase
func ReadSeqs(in io.Reader) ([]string, error) {
	var seqs []string
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, 64*1024), seqLengthMax)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		seqs = append(seqs, strings.ToUpper(line))
	}
	if err := scan.Err(); err != nil {
		return seqs, fmt.Errorf("read line %d: %w", len(seqs)+1, err)
	}
	return seqs, nil
}

// IsACGT only A C G T, empty is valid
func IsACGT(seq string) bool {
	return ACGT.MatchString(seq)
}
