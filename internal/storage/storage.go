package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
)

// Storage keys
const (
	keyPreferences = "preferences"
)

// Square size limits for diagrams.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// Preferences stores viewer settings
type Preferences struct {
	DarkColor   string    `json:"dark_color"`
	SquareSize  int       `json:"square_size"`
	StartingFEN string    `json:"starting_fen"`
	Format      string    `json:"format"`
	Coordinates bool      `json:"coordinates"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultPreferences returns default viewer preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		DarkColor:   diagram.HexColor(diagram.DefaultDark),
		SquareSize:  diagram.DefaultSquareSize,
		StartingFEN: board.StartFEN,
		Format:      string(diagram.FormatPNG),
		Coordinates: true,
	}
}

// Validate checks that every setting is usable.
func (p *Preferences) Validate() error {
	if _, err := diagram.ParseHexColor(p.DarkColor); err != nil {
		return fmt.Errorf("dark color: %w", err)
	}
	if p.SquareSize < MinSquareSize || p.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d out of range [%d, %d]", p.SquareSize, MinSquareSize, MaxSquareSize)
	}
	if _, err := board.ParseFEN(p.StartingFEN); err != nil {
		return fmt.Errorf("starting position: %w", err)
	}
	if _, err := diagram.ParseFormat(p.Format); err != nil {
		return err
	}
	return nil
}

// StartingBoard decodes the preferred starting position.
func (p *Preferences) StartingBoard() (*board.Board, error) {
	return board.ParseFEN(p.StartingFEN)
}

// DiagramOptions returns diagram options carrying the preferred size and colors.
func (p *Preferences) DiagramOptions() (diagram.Options, error) {
	dark, err := diagram.ParseHexColor(p.DarkColor)
	if err != nil {
		return diagram.Options{}, err
	}
	opts := diagram.DefaultOptions()
	opts.Dark = dark
	opts.SquareSize = p.SquareSize
	opts.Coordinates = p.Coordinates
	return opts, nil
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the storage in the platform data directory
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the Storage
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences validates and saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	prefs.UpdatedAt = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads viewer preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// ResetPreferences removes saved preferences so defaults apply again
func (s *Storage) ResetPreferences() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPreferences))
	})
}
