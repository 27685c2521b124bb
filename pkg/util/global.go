package util

import (
	"errors"
	"regexp"
	"strings"
)

// const
const (
	StartCodon = "ATG"

	// DefaultMinORFLength is the ORF length threshold used when none is given
	DefaultMinORFLength = 100

	// 阅读框数
	frameCount = 3
	// max line length of input
	seqLengthMax = 64 * 1024 * 1024
)

// StopCodons in the order they appear in the ORF pattern
var StopCodons = []string{"TAA", "TAG", "TGA"}

// regexp
var (
	// ACGT valid sequence
	ACGT = regexp.MustCompile(`^[ACGT]*$`)
	// ORF start codon to nearest stop codon, lazy and not codon aligned
	orfPattern = regexp.MustCompile(StartCodon + `.*?(` + strings.Join(StopCodons, "|") + `)`)
)

var (
	ErrEmptySequence = errors.New("empty sequence")
	ErrEmptyHist     = errors.New("empty hist")
)
