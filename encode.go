package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// bytesPerPixelLine is the rendered size of one "rrr ggg bbb\n" pixel line.
const bytesPerPixelLine = 3*3 + 2 + 1

// EncodePPM writes the image to w in the plain-text PPM (P3) format:
// the "P3" tag line, a width/height line, the maximum channel value (255),
// then one line per pixel with the red, green, and blue channel values each
// right-aligned in a 3-character field. Pixel lines run top row first,
// left to right within a row.
func (m *Image) EncodePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", m.width, m.height); err != nil {
		return err
	}
	for _, p := range m.pix {
		if _, err := fmt.Fprintf(bw, "%3d %3d %3d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders the image as plain-text PPM, implementing fmt.Stringer.
func (m *Image) String() string {
	var b strings.Builder
	b.Grow(m.width*m.height*bytesPerPixelLine + 16)
	// strings.Builder writes never fail.
	_ = m.EncodePPM(&b)
	return b.String()
}

// SavePPM saves the image to a plain-text PPM file, creating or truncating
// the target path. File creation and write failures are returned to the
// caller; there are no retries and no partial-write cleanup.
func (m *Image) SavePPM(path string) error {
	return m.saveWith(path, "PPM", m.EncodePPM)
}

// saveWith creates or truncates path and streams the image through encode.
func (m *Image) saveWith(path, format string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}

	Logger().Debug("saved image", "format", format, "path", path, "width", m.width, "height", m.height)
	return nil
}
