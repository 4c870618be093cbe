package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
)

func run(t *testing.T, sh *Shell, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := sh.Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestPositionAndMoves(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	out := run(t, sh, "position startpos moves e2e4 d7d5\nmoves e4\n")

	if out != "moves: e4e5 e4d5\n" {
		t.Errorf("output = %q", out)
	}
	if sh.Board().Turn != board.White {
		t.Errorf("Turn = %v, want White", sh.Board().Turn)
	}
	if sh.Board().EnPassant != board.D6 {
		t.Errorf("EnPassant = %v, want d6", sh.Board().EnPassant)
	}
}

func TestPositionFEN(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	out := run(t, sh, "position fen 8/8/8/3pP3/8/8/8/8 w - d6 0 1\nmove e5d6\nd\n")

	if !strings.HasPrefix(out, "ok e5d6 captures Black Pawn on d5 en passant\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "| | | |P| | | | |\n") || !strings.Contains(out, "Black to move") {
		t.Errorf("display = \n%s", out)
	}
	if !sh.Board().IsEmpty(board.D5) {
		t.Error("bypassed pawn still on d5")
	}
}

func TestErrorsKeepBoard(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	before := *sh.Board()

	script := strings.Join([]string{
		"position fen 8/8/8 w - - 0 1",
		"position fen 8/8/8/8/8/8/8/8 x - - 0 1",
		"position startpos moves e2e4 e2e4",
		"position",
		"position moves e2e4",
		"move e2e5",
		"move e7e5",
		"move zz",
		"moves i9",
		"frobnicate",
	}, "\n")
	out := run(t, sh, script)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), out)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "error: ") {
			t.Errorf("line %q is not an error", line)
		}
	}
	if *sh.Board() != before {
		t.Error("board changed after rejected commands")
	}
}

func TestQuitStopsReading(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	out := run(t, sh, "move e2e4\nquit\nmove e7e5\n")

	if out != "ok e2e4\n" {
		t.Errorf("output = %q", out)
	}
	if sh.Board().Turn != board.Black {
		t.Errorf("Turn = %v, want Black", sh.Board().Turn)
	}
}

func TestStartPositionFromPreferences(t *testing.T) {
	start, err := board.ParseFEN("8/8/8/8/3N4/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	sh := New(start, diagram.DefaultOptions())
	out := run(t, sh, "move d4e6\nposition startpos\nmoves\n")

	if out != "ok d4e6\nmoves: d4e6 d4c6 d4e2 d4c2 d4f5 d4f3 d4b5 d4b3\n" {
		t.Errorf("output = %q", out)
	}
	if sh.Board().TroopAt(board.D4) != board.NewTroop(board.White, board.Knight) {
		t.Error("startpos did not restore the configured start position")
	}
}

func TestNoMoves(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	if out := run(t, sh, "moves e1\nmoves e4\n"); out != "moves: none\nmoves: none\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDiagram(t *testing.T) {
	dir := t.TempDir()
	opts := diagram.DefaultOptions()
	opts.SquareSize = 16
	sh := New(nil, opts)

	svgPath := filepath.Join(dir, "board.svg")
	pngPath := filepath.Join(dir, "board.png")
	out := run(t, sh, "move e2e4\ndiagram "+svgPath+" g1\ndiagram "+pngPath+"\ndiagram "+filepath.Join(dir, "board.gif")+"\n")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || lines[1] != "wrote "+svgPath || lines[2] != "wrote "+pngPath || !strings.HasPrefix(lines[3], "error: ") {
		t.Fatalf("output = %q", out)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("svg file does not hold an svg document")
	}
	if info, err := os.Stat(pngPath); err != nil || info.Size() == 0 {
		t.Errorf("png file missing or empty: %v", err)
	}
}

func TestWalk(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	out := run(t, sh, "walk 2\nwalk x\n")
	if !strings.HasPrefix(out, "Nodes: 400\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "error: walk: invalid depth") {
		t.Errorf("bad depth not reported: %q", out)
	}
}

func TestHelp(t *testing.T) {
	sh := New(nil, diagram.DefaultOptions())
	out := run(t, sh, "help\n")
	for _, cmd := range []string{"position", "moves", "move", "diagram", "quit"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help does not mention %s", cmd)
		}
	}
}
