package diagram

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/hailam/chesscore/internal/board"
)

// Format is a diagram output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatSVG Format = "svg"
)

// ParseFormat parses a format name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, FormatBMP, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown diagram format %q (want png, bmp or svg)", s)
	}
}

// FormatFromPath returns the format named by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return ParseFormat(ext)
}

// IsRaster returns true for formats produced through Render.
func (f Format) IsRaster() bool {
	return f == FormatPNG || f == FormatBMP
}

// Encode writes img in a raster format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("cannot encode an image as %q", format)
	}
}

// Write draws b in the given format.
func Write(w io.Writer, b *board.Board, opts Options, format Format) error {
	if format == FormatSVG {
		return WriteSVG(w, b, opts)
	}
	if !format.IsRaster() {
		return fmt.Errorf("unknown diagram format %q", format)
	}

	img, err := Render(b, opts)
	if err != nil {
		return err
	}
	return Encode(w, img, format)
}
