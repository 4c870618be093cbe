package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chesscore/internal/board"
)

// renderScale is the supersampling factor: shapes are rasterized at this
// multiple of the output size and scaled down for smooth edges.
const renderScale = 3

// Piece disc colors.
var (
	whiteDisc = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	blackDisc = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	discEdge  = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

var (
	boldFont    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
)

// Render draws b as an RGBA image of 8*SquareSize pixels square.
// Pieces are discs in their side's color marked with the piece letter.
func Render(b *board.Board, opts Options) (*image.RGBA, error) {
	opts = opts.normalize()
	edge := 8 * opts.SquareSize

	var buf bytes.Buffer
	writeShapes(&buf, b, opts)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("diagram: parse shapes: %w", err)
	}

	renderSize := edge * renderScale
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	big := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, big, big.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.CatmullRom.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)

	if err := drawLetters(img, b, opts); err != nil {
		return nil, err
	}
	if opts.Coordinates {
		if err := drawCoordinates(img, opts); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// writeShapes writes the squares and piece discs as SVG.
func writeShapes(buf *bytes.Buffer, b *board.Board, opts Options) {
	size := opts.SquareSize
	edge := 8 * size
	radius := size * 2 / 5
	stroke := max(size/35, 1)

	canvas := svg.New(buf)
	canvas.Startview(edge, edge, 0, 0, edge, edge)

	for sq := board.A8; sq <= board.H1; sq++ {
		x, y := sq.File()*size, sq.Rank()*size
		canvas.Rect(x, y, size, size, "fill:"+HexColor(opts.squareColor(sq)))
	}

	for sq := board.A8; sq <= board.H1; sq++ {
		t := b.Troops[sq]
		if t.IsEmpty() {
			continue
		}
		fill := whiteDisc
		if t.Color == board.Black {
			fill = blackDisc
		}
		cx, cy := sq.File()*size+size/2, sq.Rank()*size+size/2
		canvas.Circle(cx, cy, radius, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", HexColor(fill), HexColor(discEdge), stroke))
	}

	canvas.End()
}

// drawLetters stamps the piece letter on each disc.
func drawLetters(img *image.RGBA, b *board.Board, opts Options) error {
	size := opts.SquareSize
	face, err := newFace(boldFont, float64(size)/2)
	if err != nil {
		return err
	}
	defer face.Close()

	for sq := board.A8; sq <= board.H1; sq++ {
		t := b.Troops[sq]
		if t.IsEmpty() {
			continue
		}
		ink := image.Black
		if t.Color == board.Black {
			ink = image.White
		}
		letter := string(t.Kind.Char() - ('a' - 'A'))
		drawCentered(img, face, ink, letter, sq.File()*size, sq.Rank()*size, size)
	}
	return nil
}

// drawCoordinates labels the rank numbers on the a-file and the file letters
// on the first rank.
func drawCoordinates(img *image.RGBA, opts Options) error {
	size := opts.SquareSize
	face, err := newFace(regularFont, float64(max(size/6, 8)))
	if err != nil {
		return err
	}
	defer face.Close()

	pad := max(size/20, 2)
	ascent := face.Metrics().Ascent.Ceil()

	for rank := 0; rank < 8; rank++ {
		sq := board.NewSquare(0, rank)
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(opts.coordinateColor(sq)),
			Face: face,
			Dot:  fixed.P(pad, rank*size+pad+ascent),
		}
		d.DrawString(string(rune('8' - rank)))
	}
	for file := 0; file < 8; file++ {
		sq := board.NewSquare(file, 7)
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(opts.coordinateColor(sq)),
			Face: face,
		}
		label := string(rune('a' + file))
		width := d.MeasureString(label)
		d.Dot = fixed.Point26_6{
			X: fixed.I((file+1)*size-pad) - width,
			Y: fixed.I(8*size - pad),
		}
		d.DrawString(label)
	}
	return nil
}

// drawCentered draws s centered in the size*size cell at (x, y).
func drawCentered(img *image.RGBA, face font.Face, ink image.Image, s string, x, y, size int) {
	d := &font.Drawer{Dst: img, Src: ink, Face: face}
	m := face.Metrics()
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) + (fixed.I(size)-width)/2,
		Y: fixed.I(y) + (fixed.I(size)+m.Ascent-m.Descent)/2,
	}
	d.DrawString(s)
}

func newFace(load func() (*opentype.Font, error), size float64) (font.Face, error) {
	f, err := load()
	if err != nil {
		return nil, fmt.Errorf("diagram: load font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("diagram: font face: %w", err)
	}
	return face, nil
}
