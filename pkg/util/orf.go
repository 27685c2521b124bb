package util

import "fmt"

// ORF is an open reading frame found in a sequence.
// Start and End are 0-based offsets into the scanned sequence, End exclusive.
type ORF struct {
	Frame int
	Start int
	End   int
	Seq   string
}

func (o *ORF) Length() int {
	return o.End - o.Start
}

// String returns frame, start, end, length and sequence joined by tab
func (o *ORF) String() string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%s", o.Frame, o.Start, o.End, o.Length(), o.Seq)
}

// Protein translate ORF by the standard codon table
func (o *ORF) Protein() (string, error) {
	return Translate(o.Seq)
}

// FindORFs scans the three forward reading frames of seq for ATG...stop matches.
//
// Each frame f scans seq[f:] for non-overlapping matches of a start codon
// followed by the nearest stop codon, whether or not the stop codon is in
// frame. Matches shorter than minLength are dropped, minLength <= 0 keeps all.
// Results are ordered by frame, then by position. seq is matched as given,
// lowercase bases never match.
func FindORFs(seq string, minLength int) []*ORF {
	var orfs []*ORF
	for frame := 0; frame < frameCount && frame < len(seq); frame++ {
		orfs = append(orfs, scanFrame(seq, frame, minLength)...)
	}
	return orfs
}

func scanFrame(seq string, frame, minLength int) []*ORF {
	var orfs []*ORF
	for _, loc := range orfPattern.FindAllStringIndex(seq[frame:], -1) {
		start, end := loc[0]+frame, loc[1]+frame
		if end-start < minLength {
			continue
		}
		orfs = append(orfs, &ORF{
			Frame: frame,
			Start: start,
			End:   end,
			Seq:   seq[start:end],
		})
	}
	return orfs
}
