package util

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Hist count of GC content, key rounded to 2 decimal
type Hist map[float64]int

func (h Hist) Add(gc float64) {
	h[Round2(gc)]++
}

// Keys sorted ascending
func (h Hist) Keys() []float64 {
	var keys = make([]float64, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// Values expand hist to one value per count, for plotter
func (h Hist) Values() plotter.Values {
	var values plotter.Values
	for _, k := range h.Keys() {
		for i := 0; i < h[k]; i++ {
			values = append(values, k)
		}
	}
	return values
}

// WriteHist map2hist, format: GCcontent\tCount
func WriteHist(hist Hist, w io.Writer) error {
	for _, k := range hist.Keys() {
		if _, err := fmt.Fprintf(w, "%.2f\t%d\n", k, hist[k]); err != nil {
			return err
		}
	}
	return nil
}

// histogram image size
const histSize = 4 * vg.Inch

// NewHistPlot draw hist with bins
func NewHistPlot(hist Hist, bins int) (*plot.Plot, error) {
	if len(hist) == 0 {
		return nil, ErrEmptyHist
	}
	h, err := plotter.NewHist(hist.Values(), bins)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "GC content"
	p.X.Label.Text = "GC%"
	p.Y.Label.Text = "Count"
	p.Add(h)
	return p, nil
}

// PlotHist save histogram image to path, format by extension (.png .svg .pdf ...)
func PlotHist(hist Hist, bins int, path string) error {
	p, err := NewHistPlot(hist, bins)
	if err != nil {
		return err
	}
	return p.Save(histSize, histSize, path)
}
