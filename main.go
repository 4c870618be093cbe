// Command chesscore inspects chess positions: it lists pseudo-legal moves,
// draws board diagrams, runs the text protocol and serves MCP tools.
//
// Viewer preferences (dark square color, square size, starting position and
// diagram format) are kept in a BadgerDB database in the platform data
// directory and apply to every subcommand.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "chesscore"
)

func main() {
	// Load .env file if it exists so CHESSCORE_* settings can live there
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "chess position model: FEN decoding, move generation and diagrams",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "directory of the preferences database (default: platform data directory)",
				Sources: cli.EnvVars("CHESSCORE_DATA_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log file and line numbers",
				Sources: cli.EnvVars("CHESSCORE_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			movesCommand(),
			renderCommand(),
			shellCommand(),
			mcpCommand(),
			prefsCommand(),
		},
	}
}
