package chart

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"

	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/fonts"
	"github.com/matzehuels/contribchart/pkg/theme"
)

// Geometry in unscaled pixels.
const (
	boxWidth     = 10
	boxMargin    = 2
	textHeight   = 15
	canvasMargin = 20
	headerHeight = 60
	footerHeight = 10
	weekColumns  = 54 // a leap year starting on Saturday spans 54 weeks
	yearHeight   = textHeight + (boxWidth+boxMargin)*8 + canvasMargin
)

// DefaultScale renders at twice the CSS pixel size.
const DefaultScale = 2.0

// Options carries everything one drawing depends on.
type Options struct {
	Data       *contrib.Data
	Username   string
	Theme      string
	FooterText string
}

// Renderer draws contribution charts.
type Renderer struct {
	scale  float64
	themes *theme.Registry
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the output scale factor (default 2.0).
func WithScale(s float64) Option {
	return func(r *Renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithThemes sets the registry themes are resolved from
// (default [theme.Builtin]).
func WithThemes(reg *theme.Registry) Option {
	return func(r *Renderer) { r.themes = reg }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{scale: DefaultScale, themes: theme.Builtin}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dimensions returns the unscaled width and height of a chart with n years.
func Dimensions(n int) (width, height float64) {
	width = weekColumns*(boxWidth+boxMargin) + canvasMargin*2
	height = headerHeight + float64(n)*yearHeight + canvasMargin + footerHeight
	return width, height
}

// Draw renders o onto c, replacing whatever c held before.
func (r *Renderer) Draw(c *Canvas, o Options) error {
	if c == nil {
		return errors.New(errors.ErrCodeRenderFailed, "no canvas to draw on")
	}
	if o.Data.Empty() {
		return errors.New(errors.ErrCodeRenderFailed, "no contribution data for %q", o.Username)
	}
	th, err := r.themes.Lookup(o.Theme)
	if err != nil {
		return err
	}

	w, h := Dimensions(len(o.Data.Years))
	p := &painter{
		dc:      gg.NewContext(int(w*r.scale), int(h*r.scale)),
		scale:   r.scale,
		palette: th.Palette,
	}

	p.background()
	p.header(o.Username)
	for i, y := range o.Data.Years {
		p.year(o.Data, y, headerHeight+float64(i)*yearHeight)
	}
	p.footer(o.FooterText, h)

	c.set(p.dc.Image())
	return nil
}

// painter works in unscaled coordinates and applies the scale itself;
// gg does not scale glyphs with the context matrix.
type painter struct {
	dc      *gg.Context
	scale   float64
	palette theme.Palette
}

func (p *painter) s(v float64) float64 { return v * p.scale }

func (p *painter) background() {
	p.dc.SetColor(theme.Color(p.palette.Background))
	p.dc.Clear()
}

func (p *painter) header(username string) {
	p.dc.SetFontFace(fonts.Bold(p.s(20)))
	p.dc.SetColor(theme.Color(p.palette.Text))
	p.dc.DrawString("@"+username, p.s(canvasMargin), p.s(canvasMargin+20))
}

func (p *painter) footer(text string, height float64) {
	if text == "" {
		return
	}
	p.dc.SetFontFace(fonts.Regular(p.s(10)))
	p.dc.SetColor(theme.Color(p.palette.Meta))
	p.dc.DrawString(text, p.s(canvasMargin), p.s(height-footerHeight))
}

func (p *painter) year(data *contrib.Data, y contrib.Year, offsetY float64) {
	p.dc.SetFontFace(fonts.Bold(p.s(10)))
	p.dc.SetColor(theme.Color(p.palette.Text))
	p.dc.DrawString(YearLabel(y), p.s(canvasMargin), p.s(offsetY+10))

	start, err := time.Parse(contrib.DateLayout, y.Range.Start)
	if err != nil {
		return
	}
	end, err := time.Parse(contrib.DateLayout, y.Range.End)
	if err != nil {
		return
	}

	intensity := make(map[string]contrib.Intensity)
	for _, d := range data.Days(y) {
		intensity[d.Date.Format(contrib.DateLayout)] = d.Intensity
	}

	gridTop := offsetY + textHeight + 15
	lead := int(start.Weekday())
	lastLabelEnd := -1.0

	p.dc.SetFontFace(fonts.Regular(p.s(9)))
	for d, i := start, 0; !d.After(end); d, i = d.AddDate(0, 0, 1), i+1 {
		col := (i + lead) / 7
		if col >= weekColumns {
			break
		}
		x := canvasMargin + float64(col)*(boxWidth+boxMargin)

		if d.Day() == 1 && x > lastLabelEnd {
			label := d.Format("Jan")
			p.dc.SetColor(theme.Color(p.palette.Meta))
			p.dc.DrawString(label, p.s(x), p.s(gridTop-5))
			tw, _ := p.dc.MeasureString(label)
			lastLabelEnd = x + tw/p.scale + boxMargin
		}

		row := float64(d.Weekday())
		p.dc.SetColor(p.palette.Grade(int(intensity[d.Format(contrib.DateLayout)])))
		p.dc.DrawRectangle(p.s(x), p.s(gridTop+row*(boxWidth+boxMargin)), p.s(boxWidth), p.s(boxWidth))
		p.dc.Fill()
	}
}

// YearLabel is the caption drawn above a year's grid.
func YearLabel(y contrib.Year) string {
	return fmt.Sprintf("%s: %d Contributions", y.Year, y.Total)
}
