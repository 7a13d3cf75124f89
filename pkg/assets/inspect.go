// Package assets checks the static images the bot sends.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"iter"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"neethelper/pkg/utils"
)

const (
	darkLightness  = 0.25
	lightLightness = 0.75
	minContrast    = 0.5
)

// Report describes a decoded image.
type Report struct {
	Path     string  `json:"path"`
	Format   string  `json:"format"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Dark     bool    `json:"dark"`
	Light    bool    `json:"light"`
	Contrast float64 `json:"contrast"`
}

// Scannable reports whether the image has both dark and light modules with
// enough contrast between them for a phone camera to read a QR code.
func (r Report) Scannable() bool {
	return r.Dark && r.Light && r.Contrast >= minContrast
}

var ErrNotImage = errors.New("not an image file")

// Inspect opens and decodes the image at path.
func Inspect(path string) (Report, error) {
	if !utils.IsImage(path) {
		return Report{}, fmt.Errorf("%w: %s", ErrNotImage, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("error opening image: %w", err)
	}
	defer f.Close()

	report, err := InspectReader(f)
	report.Path = path
	return report, err
}

// InspectReader decodes an image from r and measures its lightness range in
// CIE L*a*b* space.
func InspectReader(r io.Reader) (Report, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Report{}, fmt.Errorf("error decoding image: %w", err)
	}

	bounds := img.Bounds()
	report := Report{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	lowest, highest := 1.0, 0.0
	for pixel, visible := range pixels(img) {
		if !visible {
			continue
		}
		l, _, _ := pixel.Lab()
		lowest = min(lowest, l)
		highest = max(highest, l)
	}
	if highest < lowest {
		return report, nil
	}

	report.Dark = lowest <= darkLightness
	report.Light = highest >= lightLightness
	report.Contrast = highest - lowest
	return report, nil
}

// pixels yields every pixel of m and false for fully transparent ones.
func pixels(m image.Image) iter.Seq2[colorful.Color, bool] {
	return func(yield func(colorful.Color, bool) bool) {
		b := m.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !yield(colorful.MakeColor(m.At(x, y))) {
					return
				}
			}
		}
	}
}
