// Package fonts provides the typefaces the chart is drawn with.
//
// The Go fonts ship inside golang.org/x/image, so the renderer needs no
// system fonts and produces identical output on every machine.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Parsed fonts (computed once on first access).
var (
	regular, bold *truetype.Font
	parseOnce     sync.Once
)

func parse() {
	regular, _ = truetype.Parse(goregular.TTF)
	bold, _ = truetype.Parse(gobold.TTF)
}

// Regular returns a face of the regular weight at size points.
func Regular(size float64) font.Face {
	parseOnce.Do(parse)
	return face(regular, size)
}

// Bold returns a face of the bold weight at size points.
func Bold(size float64) font.Face {
	parseOnce.Do(parse)
	return face(bold, size)
}

// face falls back to the fixed 7x13 bitmap font if f failed to parse.
func face(f *truetype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}
