// Package chart renders compact terminal charts.
package chart

import "strings"

// sparkGlyphs are the sparkline block characters, lowest to highest.
var sparkGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// Spark renders values as a one-line block chart. A positive width caps
// the glyph count by sampling the input at an even stride. All-equal
// values render as a flat mid-height line, an empty input as "".
func Spark(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	vals := values
	if width > 0 && len(vals) > width {
		step := float64(len(vals)) / float64(width)
		sampled := make([]float64, width)
		for i := range sampled {
			sampled[i] = vals[int(float64(i)*step)]
		}
		vals = sampled
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	if hi == lo {
		for range vals {
			b.WriteRune(sparkGlyphs[4])
		}
		return b.String()
	}
	span := hi - lo
	for _, v := range vals {
		b.WriteRune(sparkGlyphs[int((v-lo)/span*float64(len(sparkGlyphs)-1))])
	}
	return b.String()
}
