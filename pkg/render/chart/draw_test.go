package chart

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/theme"
)

func sampleData() *contrib.Data {
	return &contrib.Data{
		Years: []contrib.Year{
			{Year: "2024", Total: 7, Range: contrib.Range{Start: "2024-01-01", End: "2024-12-31"}},
			{Year: "2023", Total: 0, Range: contrib.Range{Start: "2023-01-01", End: "2023-12-31"}},
		},
		Contributions: []contrib.Contribution{
			{Date: "2024-01-01", Count: 7, Intensity: 4},
		},
	}
}

func near(a, b color.Color) bool {
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(ca.R, cb.R) <= 1 && d(ca.G, cb.G) <= 1 && d(ca.B, cb.B) <= 1
}

func TestDraw_SizesCanvas(t *testing.T) {
	c := NewCanvas()
	if !c.Blank() {
		t.Fatal("new canvas should be blank")
	}

	r := New(WithScale(2))
	if err := r.Draw(c, Options{Data: sampleData(), Username: "octocat", Theme: "standard"}); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	w, h := Dimensions(2)
	gotW, gotH := c.Size()
	if gotW != int(w*2) || gotH != int(h*2) {
		t.Errorf("Size() = %dx%d, want %dx%d", gotW, gotH, int(w*2), int(h*2))
	}
	if c.Blank() {
		t.Error("canvas still blank after Draw")
	}
}

func TestDraw_UsesThemeColours(t *testing.T) {
	th, _ := theme.Builtin.Lookup("dracula")
	c := NewCanvas()
	if err := New(WithScale(1)).Draw(c, Options{Data: sampleData(), Username: "octocat", Theme: "dracula"}); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	img := c.Image()

	if !near(img.At(1, 1), theme.Color(th.Palette.Background)) {
		t.Errorf("corner pixel %v, want background %s", img.At(1, 1), th.Palette.Background)
	}

	// 2024-01-01 is a Monday: first column, second row of the first year.
	gridTop := headerHeight + textHeight + 15
	x := canvasMargin + boxWidth/2
	y := gridTop + (boxWidth + boxMargin) + boxWidth/2
	if !near(img.At(x, y), theme.Color(th.Palette.Grades[4])) {
		t.Errorf("cell pixel %v, want grade 4 %s", img.At(x, y), th.Palette.Grades[4])
	}

	// 2024-01-02 has no entry and is drawn as grade 0.
	y += boxWidth + boxMargin
	if !near(img.At(x, y), theme.Color(th.Palette.Grades[0])) {
		t.Errorf("empty day pixel %v, want grade 0 %s", img.At(x, y), th.Palette.Grades[0])
	}
}

func TestDraw_Errors(t *testing.T) {
	r := New()

	tests := []struct {
		name   string
		canvas *Canvas
		opts   Options
		code   errors.Code
	}{
		{"nil canvas", nil, Options{Data: sampleData(), Theme: "standard"}, errors.ErrCodeRenderFailed},
		{"nil data", NewCanvas(), Options{Theme: "standard"}, errors.ErrCodeRenderFailed},
		{"empty years", NewCanvas(), Options{Data: &contrib.Data{}, Theme: "standard"}, errors.ErrCodeRenderFailed},
		{"unknown theme", NewCanvas(), Options{Data: sampleData(), Theme: "solarized"}, errors.ErrCodeInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Draw(tt.canvas, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Draw() error = %v, want %s", err, tt.code)
			}
			if tt.canvas != nil && !tt.canvas.Blank() {
				t.Error("failed Draw should leave the canvas untouched")
			}
		})
	}
}

func TestCanvas_EncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCanvas().EncodePNG(&buf); err != nil || buf.Len() != 0 {
		t.Fatalf("blank EncodePNG() = %d bytes, %v; want 0, nil", buf.Len(), err)
	}

	c := NewCanvas()
	if err := New(WithScale(1)).Draw(c, Options{Data: sampleData(), Username: "octocat", Theme: "teal", FooterText: "footer"}); err != nil {
		t.Fatal(err)
	}
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	w, h := c.Size()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("decoded %v, want %dx%d", img.Bounds(), w, h)
	}
}

func TestCanvas_NilIsBlank(t *testing.T) {
	var c *Canvas
	if !c.Blank() || c.Image() != nil {
		t.Error("nil canvas should be blank")
	}
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("nil Size() = %dx%d, want 0x0", w, h)
	}
}

func TestYearLabel(t *testing.T) {
	got := YearLabel(contrib.Year{Year: "2019", Total: 1234})
	if want := "2019: 1234 Contributions"; got != want {
		t.Errorf("YearLabel() = %q, want %q", got, want)
	}
}
