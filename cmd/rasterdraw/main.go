// Command rasterdraw renders shapes and text into a raster image file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gopixel/raster"
)

// canvasParams are the flags shared by every drawing subcommand.
type canvasParams struct {
	Width      int    `help:"Image width in pixels" default:"256"`
	Height     int    `help:"Image height in pixels" default:"256"`
	Background string `help:"Background color as a hex string" default:"000000"`
	Color      string `help:"Draw color as a hex string" short:"c" default:"ffffff"`
	Output     string `help:"Output file; format chosen by extension (.ppm, .png, .bmp)" short:"o" default:"out.ppm"`
}

// canvas builds the background image and parses the draw color.
func (p *canvasParams) canvas() (*raster.Image, raster.Pixel, error) {
	bg, err := raster.Hex(p.Background)
	if err != nil {
		return nil, raster.Pixel{}, err
	}
	col, err := raster.Hex(p.Color)
	if err != nil {
		return nil, raster.Pixel{}, err
	}
	if p.Width < 1 || p.Height < 1 {
		return nil, raster.Pixel{}, fmt.Errorf("invalid dimensions %dx%d", p.Width, p.Height)
	}
	return raster.NewImage(p.Width, p.Height, bg), col, nil
}

// save writes the image in the format matching the output extension.
func (p *canvasParams) save(img *raster.Image) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(p.Output)); ext {
	case ".ppm", "":
		err = img.SavePPM(p.Output)
	case ".png":
		err = img.SavePNG(p.Output)
	case ".bmp":
		err = img.SaveBMP(p.Output)
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}

	slog.Info("saved", "file", p.Output, "width", p.Width, "height", p.Height)
	return nil
}

// inBounds rejects coordinates outside the canvas before drawing, since the
// line rasterizer treats out-of-range points as a programming error.
func (p *canvasParams) inBounds(coords ...raster.Coord) error {
	for _, c := range coords {
		if c.X < 0 || c.X >= p.Width || c.Y < 0 || c.Y >= p.Height {
			return fmt.Errorf("coordinate (%d,%d) outside %dx%d canvas", c.X, c.Y, p.Width, p.Height)
		}
	}
	return nil
}

type lineCmd struct {
	canvasParams
	X0 int `arg:"" help:"Start X (bottom-left origin)"`
	Y0 int `arg:"" help:"Start Y"`
	X1 int `arg:"" help:"End X"`
	Y1 int `arg:"" help:"End Y"`
}

func (c *lineCmd) Run() error {
	a, b := raster.Pt(c.X0, c.Y0), raster.Pt(c.X1, c.Y1)
	if err := c.inBounds(a, b); err != nil {
		return err
	}

	img, col, err := c.canvas()
	if err != nil {
		return err
	}
	img.DrawLine(a, b, col)
	return c.save(img)
}

type circleCmd struct {
	canvasParams
	X      int `arg:"" help:"Center X (bottom-left origin)"`
	Y      int `arg:"" help:"Center Y"`
	Radius int `arg:"" help:"Disk radius; boundary cells stay unpainted"`
}

func (c *circleCmd) Run() error {
	img, col, err := c.canvas()
	if err != nil {
		return err
	}
	img.DrawCircle(raster.Pt(c.X, c.Y), c.Radius, col)
	return c.save(img)
}

type textCmd struct {
	canvasParams
	X    int     `arg:"" help:"Baseline X (bottom-left origin)"`
	Y    int     `arg:"" help:"Baseline Y"`
	Text string  `arg:"" help:"String to draw"`
	Font string  `help:"TTF font file; built-in bitmap face if empty" type:"existingfile" optional:""`
	Size float64 `help:"Font size in points (TTF only)" default:"13"`
}

func (c *textCmd) Run() error {
	img, col, err := c.canvas()
	if err != nil {
		return err
	}

	if c.Font == "" {
		img.DrawString(c.Text, raster.Pt(c.X, c.Y), col)
		return c.save(img)
	}

	ttf, err := os.ReadFile(c.Font)
	if err != nil {
		return fmt.Errorf("could not read font %q: %w", c.Font, err)
	}
	face, err := raster.LoadFontFace(ttf, c.Size)
	if err != nil {
		return fmt.Errorf("could not load font %q: %w", c.Font, err)
	}
	img.DrawStringFace(c.Text, raster.Pt(c.X, c.Y), col, face)
	return c.save(img)
}

type demoCmd struct {
	canvasParams
}

// Run renders a sample scene exercising every drawing primitive.
func (c *demoCmd) Run() error {
	img, col, err := c.canvas()
	if err != nil {
		return err
	}
	w, h := c.Width, c.Height

	// Concentric disks, outermost first.
	img.DrawCircle(raster.Pt(w/2, h/2), w*3/8, col)
	img.DrawCircle(raster.Pt(w/2, h/2), w/4, col.Scale(2))
	img.DrawCircle(raster.Pt(w/2, h/2), w/8, col.Scale(3))

	// Diagonals corner to corner.
	img.DrawLine(raster.Pt(0, 0), raster.Pt(w-1, h-1), col)
	img.DrawLine(raster.Pt(0, h-1), raster.Pt(w-1, 0), col)

	img.DrawString("rasterdraw", raster.Pt(4, 4), col)

	return c.save(img)
}

type cli struct {
	Verbose bool `help:"Enable debug logging" short:"v"`

	Demo   demoCmd   `cmd:"" help:"Render a sample scene with disks, lines and text"`
	Line   lineCmd   `cmd:"" help:"Draw a line between two grid coordinates"`
	Circle circleCmd `cmd:"" help:"Draw a filled disk"`
	Text   textCmd   `cmd:"" help:"Draw a text string"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("rasterdraw"),
		kong.Description("Render shapes and text into PPM, PNG or BMP image files."),
		kong.UsageOnError(),
	)

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
		raster.SetLogger(logger)
	}

	if err := kctx.Run(); err != nil {
		slog.Error("drawing failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
