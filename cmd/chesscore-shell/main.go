package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
	"github.com/hailam/chesscore/internal/shell"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fen        = flag.String("fen", "", "starting position (default: the saved preference)")
	noPrefs    = flag.Bool("no-prefs", false, "ignore saved preferences")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	prefs := loadPreferences()

	start, err := prefs.StartingBoard()
	if err != nil {
		log.Printf("Warning: saved starting position is invalid: %v (using the standard one)", err)
		start = board.StartingBoard()
	}
	if *fen != "" {
		start, err = board.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("invalid -fen: %v", err)
		}
	}

	opts, err := prefs.DiagramOptions()
	if err != nil {
		log.Printf("Warning: saved diagram settings are invalid: %v (using defaults)", err)
		opts = diagram.DefaultOptions()
	}

	// Create and run the text protocol handler
	sh := shell.New(start, opts)
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		log.Printf("read error: %v", err)
	}
}

// loadPreferences reads the saved preferences, falling back to defaults
// when they are disabled or the database cannot be opened.
func loadPreferences() *storage.Preferences {
	if *noPrefs {
		return storage.DefaultPreferences()
	}

	s, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v (using defaults)", err)
		return storage.DefaultPreferences()
	}
	defer s.Close()

	prefs, err := s.LoadPreferences()
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v (using defaults)", err)
		return storage.DefaultPreferences()
	}
	return prefs
}
