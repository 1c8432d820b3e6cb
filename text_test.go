package raster

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDrawString(t *testing.T) {
	img := NewImage(64, 24, Black)
	img.DrawString("Hi", Pt(4, 8), White)

	if got := countColor(img, White); got == 0 {
		t.Error("DrawString painted no cells")
	}
}

// TestDrawStringBaseline verifies glyphs land above and around the baseline
// rather than at the image package's top-left interpretation of the origin.
func TestDrawStringBaseline(t *testing.T) {
	img := NewImage(32, 32, Black)
	img.DrawString("X", Pt(2, 10), White)

	// All painted cells of a 7x13 face sit within a band around grid y=10.
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got, _ := img.GetPixel(x, y); got == White && (y < 7 || y > 21) {
				t.Errorf("glyph cell at (%d, %d), outside baseline band", x, y)
			}
		}
	}
}

func TestMeasureString(t *testing.T) {
	w1 := MeasureString("a", basicfont.Face7x13)
	w2 := MeasureString("ab", basicfont.Face7x13)

	if w1 <= 0 {
		t.Fatalf("MeasureString(\"a\") = %d, want > 0", w1)
	}
	if w2 != 2*w1 {
		t.Errorf("MeasureString(\"ab\") = %d, want %d for a fixed-width face", w2, 2*w1)
	}
}

func TestLoadFontFace(t *testing.T) {
	face, err := LoadFontFace(goregular.TTF, 14)
	if err != nil {
		t.Fatalf("LoadFontFace failed: %v", err)
	}

	img := NewImage(96, 32, White)
	img.DrawStringFace("raster", Pt(4, 10), Black, face)

	changed := 0
	for _, p := range img.Pix() {
		if p != White {
			changed++
		}
	}
	if changed == 0 {
		t.Error("DrawStringFace painted no cells")
	}
}

func TestLoadFontFaceInvalid(t *testing.T) {
	if _, err := LoadFontFace([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}
