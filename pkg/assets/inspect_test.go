package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/skip2/go-qrcode"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "qr.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspect_QRCode(t *testing.T) {
	b, err := qrcode.Encode("upi://pay?pa=9907843768@ybl", qrcode.Medium, 256)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "qr.png")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}

	report, err := Inspect(path)
	if err != nil {
		t.Fatal(err)
	}
	if report.Format != "png" || report.Width != 256 || report.Height != 256 {
		t.Errorf("unexpected report %+v", report)
	}
	if !report.Scannable() {
		t.Errorf("generated QR should be scannable: %+v", report)
	}
}

func TestInspect_Flat(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	report, err := Inspect(writePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if report.Scannable() {
		t.Errorf("flat grey image should not be scannable: %+v", report)
	}
}

func TestInspect_Transparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.NRGBA{A: 0})
	report, err := Inspect(writePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if report.Dark || report.Light || report.Contrast != 0 {
		t.Errorf("fully transparent image should report nothing: %+v", report)
	}
}

func TestInspect_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Inspect(filepath.Join(dir, "qr.txt")); !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}

	if _, err := Inspect(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Inspect(garbage); err == nil {
		t.Error("expected decode error")
	}
}
