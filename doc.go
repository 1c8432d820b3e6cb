// Package raster provides a minimal in-memory raster image with primitive
// drawing operations and a plain-text PPM encoder.
//
// # Overview
//
// raster keeps a dense grid of 8-bit RGB pixels, lets you paint individual
// cells, straight lines, filled disks, and text, and serializes the grid to
// the plain-text PPM (P3) format readable by standard image viewers. PNG and
// BMP output are also supported for convenience.
//
// # Quick Start
//
//	import "github.com/gopixel/raster"
//
//	// Create a 256x256 image with a white background
//	img := raster.NewImage(256, 256, raster.White)
//
//	// Draw shapes
//	img.DrawCircle(raster.Pt(128, 128), 64, raster.Red)
//	img.DrawLine(raster.Pt(0, 0), raster.Pt(255, 255), raster.Blue)
//
//	// Save as plain-text PPM
//	img.SavePPM("output.ppm")
//
// # Coordinate System
//
// The grid API (GetPixel, SetPixel, DrawLine, DrawCircle, DrawString) uses
// image coordinates with a bottom-left origin:
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
//
// The image.Image and draw.Image interface implementations (At, Set, Bounds)
// follow the standard library convention instead, with (0,0) at the top-left
// and Y increasing down.
//
// # Output Formats
//
// The native format is plain-text PPM, emitted bit-for-bit as:
//
//	P3
//	<width> <height>
//	255
//	<r> <g> <b>   (one pixel per line, each channel in a 3-character field)
//
// Pixel lines run top row first, left to right within a row.
package raster

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
