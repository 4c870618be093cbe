// Package diagram draws chess boards as SVG and raster images.
//
// Square colors and highlights follow the board view: dark squares in
// #1A4F42, light squares white, the picked square tinted yellow and each of
// its move targets tinted red.
package diagram

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chesscore/internal/board"
)

// DefaultSquareSize is the edge length of one square in pixels.
const DefaultSquareSize = 70

// Defaults for the square colors.
var (
	DefaultDark  = color.RGBA{R: 0x1a, G: 0x4f, B: 0x42, A: 0xff}
	DefaultLight = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Options controls how a diagram is drawn.
type Options struct {
	SquareSize int
	Dark       color.RGBA
	Light      color.RGBA

	// Picked, if set, is tinted yellow.
	Picked *board.Square
	// Targets are tinted red.
	Targets board.SquareSet
	// LastMove, if set, tints its start dark yellow and its end yellow.
	LastMove *board.Move

	Coordinates bool
}

// DefaultOptions returns the options of a plain board with coordinates.
func DefaultOptions() Options {
	return Options{
		SquareSize:  DefaultSquareSize,
		Dark:        DefaultDark,
		Light:       DefaultLight,
		Coordinates: true,
	}
}

// Highlight returns a copy of o with sq picked and its move targets marked.
func (o Options) Highlight(b *board.Board, sq board.Square) Options {
	o.Picked = &sq
	o.Targets = b.Targets(sq)
	return o
}

// normalize fills in unset sizes and colors.
func (o Options) normalize() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = DefaultSquareSize
	}
	if o.Dark == (color.RGBA{}) {
		o.Dark = DefaultDark
	}
	if o.Light == (color.RGBA{}) {
		o.Light = DefaultLight
	}
	return o
}

// squareColor returns the fill of sq. Targets take precedence over the
// picked square, which takes precedence over the last move.
func (o Options) squareColor(sq board.Square) color.RGBA {
	base := o.Light
	if sq.IsDark() {
		base = o.Dark
	}

	switch {
	case o.Targets.Has(sq):
		return lerp(base, red, 0.5)
	case o.Picked != nil && sq == *o.Picked:
		return lerp(base, yellow, 0.5)
	case o.LastMove != nil && sq == o.LastMove.End:
		return lerp(base, yellow, 0.5)
	case o.LastMove != nil && sq == o.LastMove.Start:
		return lerp(base, darkYellow, 0.5)
	}
	return base
}

// coordinateColor returns the color of a coordinate label on sq, the
// opposite shade of the square.
func (o Options) coordinateColor(sq board.Square) color.RGBA {
	if sq.IsDark() {
		return o.Light
	}
	return o.Dark
}

// glyphs holds the Unicode chess symbols, indexed by color and kind.
var glyphs = [2][7]string{
	board.White: {board.King: "♔", board.Queen: "♕", board.Rook: "♖", board.Bishop: "♗", board.Knight: "♘", board.Pawn: "♙"},
	board.Black: {board.King: "♚", board.Queen: "♛", board.Rook: "♜", board.Bishop: "♝", board.Knight: "♞", board.Pawn: "♟"},
}

// WriteSVG writes b as an SVG document with pieces drawn as Unicode glyphs.
func WriteSVG(w io.Writer, b *board.Board, opts Options) error {
	opts = opts.normalize()
	size := opts.SquareSize
	edge := 8 * size

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(edge, edge, 0, 0, edge, edge)

	for sq := board.A8; sq <= board.H1; sq++ {
		x, y := sq.File()*size, sq.Rank()*size
		canvas.Rect(x, y, size, size, "fill:"+HexColor(opts.squareColor(sq)))
	}

	if opts.Coordinates {
		writeSVGCoordinates(canvas, opts)
	}

	glyphStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;fill:#000000", size*3/4)
	for sq := board.A8; sq <= board.H1; sq++ {
		t := b.Troops[sq]
		if t.IsEmpty() {
			continue
		}
		x, y := sq.File()*size+size/2, sq.Rank()*size+size/2
		canvas.Text(x, y, glyphs[t.Color][t.Kind], glyphStyle)
	}

	canvas.End()
	return ew.err
}

func writeSVGCoordinates(canvas *svg.SVG, opts Options) {
	size := opts.SquareSize
	fontSize := max(size/6, 8)
	pad := max(size/20, 2)

	for rank := 0; rank < 8; rank++ {
		sq := board.NewSquare(0, rank)
		style := fmt.Sprintf("font-size:%dpx;fill:%s", fontSize, HexColor(opts.coordinateColor(sq)))
		canvas.Text(pad, rank*size+pad+fontSize, string(rune('8'-rank)), style)
	}
	for file := 0; file < 8; file++ {
		sq := board.NewSquare(file, 7)
		style := fmt.Sprintf("font-size:%dpx;text-anchor:end;fill:%s", fontSize, HexColor(opts.coordinateColor(sq)))
		canvas.Text((file+1)*size-pad, 8*size-pad, string(rune('a'+file)), style)
	}
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
