package raster

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Verify at compile time that Image implements fmt.Stringer.
var _ fmt.Stringer = (*Image)(nil)

// TestEncodePPMGolden reproduces the reference scenario: a 3x3 purple image
// with a white border and a black center cell.
func TestEncodePPMGolden(t *testing.T) {
	img := NewImage(3, 3, Purple)

	img.SetPixel(0, 0, White)
	img.SetPixel(1, 0, White)
	img.SetPixel(2, 0, White)

	img.SetPixel(0, 1, White)
	img.SetPixel(2, 1, White)

	img.SetPixel(0, 2, White)
	img.SetPixel(1, 2, White)
	img.SetPixel(2, 2, White)

	img.SetPixel(1, 1, Black)

	want := `P3
3 3
255
255 255 255
255 255 255
255 255 255
255 255 255
  0   0   0
255 255 255
255 255 255
255 255 255
255 255 255
`
	if got := img.String(); got != want {
		t.Errorf("String() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodePPMHeader(t *testing.T) {
	img := NewImage(17, 5, Black)

	var buf bytes.Buffer
	if err := img.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	wantPrefix := "P3\n17 5\n255\n"
	if !strings.HasPrefix(buf.String(), wantPrefix) {
		t.Errorf("header = %q, want prefix %q", buf.String()[:len(wantPrefix)], wantPrefix)
	}
}

// TestEncodePPMBackgroundRoundtrip checks an untouched image emits exactly
// width*height pixel lines, all reading the background channels.
func TestEncodePPMBackgroundRoundtrip(t *testing.T) {
	const w, h = 4, 6
	img := NewImage(w, h, Purple)

	lines := strings.Split(strings.TrimSuffix(img.String(), "\n"), "\n")
	if got, want := len(lines), 3+w*h; got != want {
		t.Fatalf("output has %d lines, want %d", got, want)
	}
	for i, line := range lines[3:] {
		if line != "255   0 255" {
			t.Errorf("pixel line %d = %q, want %q", i, line, "255   0 255")
		}
	}
}

// TestEncodePPMRowOrder verifies pixel lines run top row first: the cell at
// grid (0, height-1) must be the first emitted pixel.
func TestEncodePPMRowOrder(t *testing.T) {
	img := NewImage(2, 2, Black)
	img.SetPixel(0, 1, Red)   // top-left: first pixel line
	img.SetPixel(1, 0, Green) // bottom-right: last pixel line

	lines := strings.Split(strings.TrimSuffix(img.String(), "\n"), "\n")
	if got := lines[3]; got != "255   0   0" {
		t.Errorf("first pixel line = %q, want %q", got, "255   0   0")
	}
	if got := lines[6]; got != "  0 255   0" {
		t.Errorf("last pixel line = %q, want %q", got, "  0 255   0")
	}
}

// TestEncodePPMGradient reproduces the reference color-square scenario:
// a 255x255 image whose red channel follows x and green channel follows y.
func TestEncodePPMGradient(t *testing.T) {
	const size = 255
	img := NewImage(size, size, Black)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetPixel(x, y, RGB(uint8(x), uint8(y), 0))
		}
	}

	var buf bytes.Buffer
	if err := img.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), 3+size*size; got != want {
		t.Fatalf("output has %d lines, want %d", got, want)
	}
	// First pixel line is grid (0, 254): red 0, green 254.
	if got := lines[3]; got != "  0 254   0" {
		t.Errorf("first pixel line = %q, want %q", got, "  0 254   0")
	}
}

func TestStringMatchesEncodePPM(t *testing.T) {
	img := NewImage(3, 2, Green)
	img.DrawLine(Pt(0, 0), Pt(2, 1), Red)

	var buf bytes.Buffer
	if err := img.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}
	if img.String() != buf.String() {
		t.Error("String() and EncodePPM output differ")
	}
}

func TestEncodePPMEmptyImage(t *testing.T) {
	img := NewImage(0, 0, White)
	if got, want := img.String(), "P3\n0 0\n255\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSavePPM(t *testing.T) {
	img := NewImage(3, 3, Purple)
	img.SetPixel(1, 1, Black)

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := img.SavePPM(path); err != nil {
		t.Fatalf("SavePPM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != img.String() {
		t.Errorf("file contents differ from rendered text:\ngot:\n%s\nwant:\n%s", data, img)
	}
}

// TestSavePPMMissingDir verifies I/O failures surface as errors rather than
// panics or silent drops.
func TestSavePPMMissingDir(t *testing.T) {
	img := NewImage(2, 2, Black)

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.ppm")
	if err := img.SavePPM(path); err == nil {
		t.Error("expected error for missing directory")
	}
}
