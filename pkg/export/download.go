package export

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/contribchart/pkg/render/chart"
)

// Filename is the name offered for downloaded charts.
const Filename = "contributions.png"

// Download writes the canvas as PNG to w. It does nothing when there is no
// drawn canvas.
func Download(c *chart.Canvas, w io.Writer) error {
	if c.Blank() {
		return nil
	}
	return c.EncodePNG(w)
}

// SaveFile writes the canvas to path. It reports whether a file was written;
// a blank canvas leaves the file system untouched.
func SaveFile(c *chart.Canvas, path string) (bool, error) {
	if c.Blank() {
		return false, nil
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
