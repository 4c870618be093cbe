// Package shell implements a line-oriented text protocol over a board.
//
// Commands, one per line:
//
//	position startpos [moves e2e4 ...]
//	position fen <fen> [moves e2e4 ...]
//	moves [square]
//	move e2e4
//	d
//	diagram <path> [square]
//	walk [depth]
//	help
//	quit
//
// Errors are reported as "error: <message>" lines and never end the loop.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

const defaultWalkDepth = 3

// Shell holds the session state of the text protocol.
type Shell struct {
	board    *board.Board
	start    *board.Board
	lastMove *board.Move
	opts     diagram.Options
	out      io.Writer
}

// New creates a shell. start is the position "position startpos" loads and
// the position the session begins with; opts styles exported diagrams.
func New(start *board.Board, opts diagram.Options) *Shell {
	if start == nil {
		start = board.StartingBoard()
	}
	return &Shell{
		board: start.Clone(),
		start: start.Clone(),
		opts:  opts,
	}
}

// Board returns the current position.
func (s *Shell) Board() *board.Board {
	return s.board
}

// Run reads commands from in until EOF or "quit" and writes replies to out.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	s.out = out
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		err := s.Execute(parts[0], parts[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

// Execute runs a single command.
func (s *Shell) Execute(cmd string, args []string) error {
	if s.out == nil {
		s.out = io.Discard
	}

	switch cmd {
	case "position":
		return s.handlePosition(args)
	case "moves":
		return s.handleMoves(args)
	case "move":
		return s.handleMove(args)
	case "d":
		fmt.Fprintln(s.out, s.board.String())
		return nil
	case "diagram":
		return s.handleDiagram(args)
	case "walk":
		return s.handleWalk(args)
	case "help":
		s.handleHelp()
		return nil
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

// handlePosition replaces the board. Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
//
// The board is only replaced if the position decodes and every move applies.
func (s *Shell) handlePosition(args []string) error {
	setup, moveStrs := args, []string(nil)
	for i, arg := range args {
		if arg == "moves" {
			setup, moveStrs = args[:i], args[i+1:]
			break
		}
	}
	if len(setup) == 0 {
		return errors.New("position: want startpos or fen <fen>")
	}

	var next *board.Board
	switch setup[0] {
	case "startpos":
		if len(setup) != 1 {
			return errors.New("position startpos: unexpected arguments")
		}
		next = s.start.Clone()
	case "fen":
		b, err := board.ParseFEN(strings.Join(setup[1:], " "))
		if err != nil {
			return fmt.Errorf("position fen: %w", err)
		}
		next = b
	default:
		return fmt.Errorf("position: unknown setup %q", setup[0])
	}

	var last *board.Move
	for _, moveStr := range moveStrs {
		m, err := board.ParseMove(moveStr)
		if err != nil {
			return err
		}
		if _, err := next.Apply(m); err != nil {
			return err
		}
		last = &m
	}

	s.board = next
	s.lastMove = last
	return nil
}

// handleMoves lists the moves of the side to move, or of one square.
func (s *Shell) handleMoves(args []string) error {
	var moves []board.Move
	switch len(args) {
	case 0:
		moves = s.board.Moves()
	case 1:
		sq, err := board.ParseSquare(args[0])
		if err != nil {
			return err
		}
		moves = s.board.MovesFrom(sq)
	default:
		return errors.New("moves: want at most one square")
	}

	if len(moves) == 0 {
		fmt.Fprintln(s.out, "moves: none")
		return nil
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	fmt.Fprintf(s.out, "moves: %s\n", strings.Join(strs, " "))
	return nil
}

// handleMove applies one move.
func (s *Shell) handleMove(args []string) error {
	if len(args) != 1 {
		return errors.New("move: want one move such as e2e4")
	}

	m, err := board.ParseMove(args[0])
	if err != nil {
		return err
	}
	applied, err := s.board.Apply(m)
	if err != nil {
		return err
	}
	s.lastMove = &m

	switch {
	case applied.IsEnPassant():
		fmt.Fprintf(s.out, "ok %s captures %s on %s en passant\n", m, applied.Captured, applied.CapturedAt)
	case applied.IsCapture():
		fmt.Fprintf(s.out, "ok %s captures %s\n", m, applied.Captured)
	default:
		fmt.Fprintf(s.out, "ok %s\n", m)
	}
	return nil
}

// handleDiagram writes the board to a file, picking the format from the
// extension. An optional square is highlighted along with its targets.
func (s *Shell) handleDiagram(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("diagram: want <path> [square]")
	}

	path := args[0]
	format, err := diagram.FormatFromPath(path)
	if err != nil {
		return err
	}

	opts := s.opts
	opts.LastMove = s.lastMove
	opts.Picked = nil
	if len(args) == 2 {
		sq, err := board.ParseSquare(args[1])
		if err != nil {
			return err
		}
		opts = opts.Highlight(s.board, sq)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.Write(f, s.board, opts, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "wrote %s\n", path)
	return nil
}

// handleWalk counts the leaves of the move tree below the current board.
func (s *Shell) handleWalk(args []string) error {
	depth := defaultWalkDepth
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			return fmt.Errorf("walk: invalid depth %q", args[0])
		}
		depth = d
	}

	start := time.Now()
	nodes := s.board.Walk(depth)
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(s.out, "Time: %v\n", elapsed)
	return nil
}

func (s *Shell) handleHelp() {
	fmt.Fprintln(s.out, "position startpos [moves ...] | position fen <fen> [moves ...]")
	fmt.Fprintln(s.out, "moves [square]      list moves of the side to move")
	fmt.Fprintln(s.out, "move <e2e4>         play a move")
	fmt.Fprintln(s.out, "d                   display the board")
	fmt.Fprintln(s.out, "diagram <path> [sq] write a png, bmp or svg diagram")
	fmt.Fprintln(s.out, "walk [depth]        count move tree leaves")
	fmt.Fprintln(s.out, "quit")
}
