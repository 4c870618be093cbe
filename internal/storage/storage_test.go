package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
)

func TestPreferences(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.DarkColor != "#1a4f42" {
			t.Errorf("Expected dark color #1a4f42, got %q", prefs.DarkColor)
		}
		if prefs.SquareSize != 70 {
			t.Errorf("Expected square size 70, got %d", prefs.SquareSize)
		}
		if prefs.StartingFEN != board.StartFEN {
			t.Errorf("Expected the standard starting position, got %q", prefs.StartingFEN)
		}
		if err := prefs.Validate(); err != nil {
			t.Errorf("Defaults do not validate: %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(p *Preferences)
		}{
			{"bad color", func(p *Preferences) { p.DarkColor = "green" }},
			{"too small", func(p *Preferences) { p.SquareSize = MinSquareSize - 1 }},
			{"too large", func(p *Preferences) { p.SquareSize = MaxSquareSize + 1 }},
			{"bad fen", func(p *Preferences) { p.StartingFEN = "8/8/8 w - - 0 1" }},
			{"bad format", func(p *Preferences) { p.Format = "gif" }},
		}
		for _, tc := range tests {
			prefs := DefaultPreferences()
			tc.modify(prefs)
			if err := prefs.Validate(); err == nil {
				t.Errorf("%s: Validate() succeeded, want error", tc.name)
			}
		}
	})

	t.Run("DiagramOptions", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.DarkColor = "#336699"
		prefs.SquareSize = 40
		opts, err := prefs.DiagramOptions()
		if err != nil {
			t.Fatalf("DiagramOptions failed: %v", err)
		}
		if diagram.HexColor(opts.Dark) != "#336699" || opts.SquareSize != 40 {
			t.Errorf("DiagramOptions() = %+v", opts)
		}
		if opts.Picked != nil {
			t.Errorf("Picked = %v, want none", *opts.Picked)
		}
	})
}

func TestStorageRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if prefs.SquareSize != DefaultPreferences().SquareSize {
		t.Errorf("Expected defaults before any save, got %+v", prefs)
	}

	prefs.SquareSize = 48
	prefs.Format = "svg"
	prefs.StartingFEN = "8/8/8/3pP3/8/8/8/8 w - d6 0 1"
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	if prefs.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.SquareSize != 48 || got.Format != "svg" || got.StartingFEN != prefs.StartingFEN {
		t.Errorf("Loaded %+v, want %+v", got, prefs)
	}
	b, err := got.StartingBoard()
	if err != nil {
		t.Fatalf("StartingBoard failed: %v", err)
	}
	if b.EnPassant != board.D6 {
		t.Errorf("Expected en passant target d6, got %v", b.EnPassant)
	}

	if err := s.ResetPreferences(); err != nil {
		t.Fatalf("ResetPreferences failed: %v", err)
	}
	got, err = s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.SquareSize != DefaultPreferences().SquareSize {
		t.Errorf("Expected defaults after reset, got %+v", got)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	prefs := DefaultPreferences()
	prefs.SquareSize = 4
	if err := s.SavePreferences(prefs); err == nil {
		t.Fatal("SavePreferences accepted an invalid square size")
	}

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.SquareSize != DefaultPreferences().SquareSize {
		t.Errorf("Invalid preferences were stored: %+v", got)
	}
}

func TestDataPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on Linux")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if filepath.Base(dataDir) != appName {
		t.Errorf("GetDataDir() = %s, want a %s directory", dataDir, appName)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}
