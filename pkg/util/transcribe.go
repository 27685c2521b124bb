package util

import "strings"

var dna2rna = strings.NewReplacer("T", "U")

// Transcribe DNA to RNA: uppercase, then T -> U
func Transcribe(dna string) string {
	return dna2rna.Replace(strings.ToUpper(dna))
}
