package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
	"github.com/hailam/chesscore/internal/mcptools"
	"github.com/hailam/chesscore/internal/shell"
	"github.com/hailam/chesscore/internal/storage"
)

func fenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "fen",
		Usage:   "position to use (default: the preferred starting position)",
		Sources: cli.EnvVars("CHESSCORE_FEN"),
	}
}

func movesCommand() *cli.Command {
	return &cli.Command{
		Name:      "moves",
		Usage:     "list the pseudo-legal moves of the side to move",
		ArgsUsage: "[square]",
		Flags:     []cli.Flag{fenFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			b, err := positionFor(cmd, prefs)
			if err != nil {
				return err
			}

			moves := b.Moves()
			if cmd.Args().Len() > 0 {
				sq, err := board.ParseSquare(cmd.Args().First())
				if err != nil {
					return err
				}
				moves = b.MovesFrom(sq)
			}

			for _, m := range moves {
				fmt.Fprintln(cmd.Root().Writer, m)
			}
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "draw the position as a png, bmp or svg diagram",
		Flags: []cli.Flag{
			fenFlag(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file, - for stdout",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "png, bmp or svg (default: from the output extension, else the preferred format)",
			},
			&cli.StringFlag{
				Name:  "square",
				Usage: "highlight this square and its move targets",
			},
			&cli.StringFlag{
				Name:  "last-move",
				Usage: "highlight a move such as e2e4",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "square size in pixels (default: preferred size)",
			},
			&cli.StringFlag{
				Name:  "dark",
				Usage: "dark square color, #RRGGBB (default: preferred color)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			b, err := positionFor(cmd, prefs)
			if err != nil {
				return err
			}

			opts, err := renderOptions(cmd, prefs, b)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			format, err := renderFormat(cmd, prefs, out)
			if err != nil {
				return err
			}

			if out == "-" {
				return diagram.Write(cmd.Root().Writer, b, opts, format)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := diagram.Write(f, b, opts, format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
}

func renderOptions(cmd *cli.Command, prefs *storage.Preferences, b *board.Board) (diagram.Options, error) {
	opts, err := prefs.DiagramOptions()
	if err != nil {
		return opts, err
	}

	if size := int(cmd.Int("size")); size != 0 {
		if size < storage.MinSquareSize || size > storage.MaxSquareSize {
			return opts, fmt.Errorf("square size %d out of range [%d, %d]", size, storage.MinSquareSize, storage.MaxSquareSize)
		}
		opts.SquareSize = size
	}
	if dark := cmd.String("dark"); dark != "" {
		c, err := diagram.ParseHexColor(dark)
		if err != nil {
			return opts, err
		}
		opts.Dark = c
	}
	if s := cmd.String("square"); s != "" {
		sq, err := board.ParseSquare(s)
		if err != nil {
			return opts, err
		}
		opts = opts.Highlight(b, sq)
	}
	if s := cmd.String("last-move"); s != "" {
		m, err := board.ParseMove(s)
		if err != nil {
			return opts, err
		}
		opts.LastMove = &m
	}
	return opts, nil
}

func renderFormat(cmd *cli.Command, prefs *storage.Preferences, out string) (diagram.Format, error) {
	if f := cmd.String("format"); f != "" {
		return diagram.ParseFormat(f)
	}
	if out != "-" {
		if f, err := diagram.FormatFromPath(out); err == nil {
			return f, nil
		}
	}
	return diagram.ParseFormat(prefs.Format)
}

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "run the text protocol on stdin and stdout",
		Flags: []cli.Flag{fenFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			b, err := positionFor(cmd, prefs)
			if err != nil {
				return err
			}
			opts, err := prefs.DiagramOptions()
			if err != nil {
				return err
			}

			return shell.New(b, opts).Run(cmd.Root().Reader, cmd.Root().Writer)
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the board tools over MCP stdio",
		Flags: []cli.Flag{fenFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			b, err := positionFor(cmd, prefs)
			if err != nil {
				return err
			}

			return mcptools.New(b).ServeStdio()
		},
	}
}

func prefsCommand() *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "show or change the saved viewer preferences",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print the current preferences",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					prefs, err := loadPreferences(cmd)
					if err != nil {
						return err
					}
					printPreferences(cmd.Root().Writer, prefs)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "change one or more preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dark", Usage: "dark square color, #RRGGBB"},
					&cli.IntFlag{Name: "size", Usage: "square size in pixels"},
					&cli.StringFlag{Name: "fen", Usage: "starting position"},
					&cli.StringFlag{Name: "format", Usage: "default diagram format: png, bmp or svg"},
					&cli.BoolFlag{Name: "coordinates", Usage: "label ranks and files on diagrams"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withStorage(cmd, func(s *storage.Storage) error {
						prefs, err := s.LoadPreferences()
						if err != nil {
							return err
						}
						if cmd.IsSet("dark") {
							prefs.DarkColor = cmd.String("dark")
						}
						if cmd.IsSet("size") {
							prefs.SquareSize = int(cmd.Int("size"))
						}
						if cmd.IsSet("fen") {
							prefs.StartingFEN = cmd.String("fen")
						}
						if cmd.IsSet("format") {
							prefs.Format = strings.ToLower(cmd.String("format"))
						}
						if cmd.IsSet("coordinates") {
							prefs.Coordinates = cmd.Bool("coordinates")
						}
						if err := s.SavePreferences(prefs); err != nil {
							return err
						}
						printPreferences(cmd.Root().Writer, prefs)
						return nil
					})
				},
			},
			{
				Name:  "reset",
				Usage: "restore the default preferences",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withStorage(cmd, func(s *storage.Storage) error {
						return s.ResetPreferences()
					})
				},
			},
		},
	}
}

func printPreferences(w io.Writer, prefs *storage.Preferences) {
	fmt.Fprintf(w, "dark color:   %s\n", prefs.DarkColor)
	fmt.Fprintf(w, "square size:  %d\n", prefs.SquareSize)
	fmt.Fprintf(w, "starting FEN: %s\n", prefs.StartingFEN)
	fmt.Fprintf(w, "format:       %s\n", prefs.Format)
	fmt.Fprintf(w, "coordinates:  %v\n", prefs.Coordinates)
}

// withStorage opens the preferences database for the duration of fn.
func withStorage(cmd *cli.Command, fn func(s *storage.Storage) error) error {
	dir := cmd.String("data-dir")
	if dir == "" {
		var err error
		if dir, err = storage.GetDatabaseDir(); err != nil {
			return fmt.Errorf("open preferences: %w", err)
		}
	}
	if cmd.Bool("debug") {
		log.Printf("Preferences database: %s", dir)
	}

	s, err := storage.Open(dir)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer s.Close()

	return fn(s)
}

func loadPreferences(cmd *cli.Command) (*storage.Preferences, error) {
	var prefs *storage.Preferences
	err := withStorage(cmd, func(s *storage.Storage) error {
		var err error
		prefs, err = s.LoadPreferences()
		return err
	})
	return prefs, err
}

// positionFor decodes --fen, falling back to the preferred starting position.
func positionFor(cmd *cli.Command, prefs *storage.Preferences) (*board.Board, error) {
	if fen := cmd.String("fen"); fen != "" {
		return board.ParseFEN(fen)
	}
	return prefs.StartingBoard()
}
