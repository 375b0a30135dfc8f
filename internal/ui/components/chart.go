package components

import (
	"github.com/guptarohit/asciigraph"
)

// Chart plots data as an ASCII line graph. Empty data renders nothing.
func Chart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	opts := []asciigraph.Option{
		asciigraph.Height(max(height, 2)),
		asciigraph.Width(max(width, 10)),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(data, opts...)
}
