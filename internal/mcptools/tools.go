// Package mcptools exposes a board to MCP clients as a set of tools:
// load_position, show_board, legal_moves and apply_move.
package mcptools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hailam/chesscore/internal/board"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server holds one board shared by every tool call.
type Server struct {
	mu    sync.Mutex
	board *board.Board
	start *board.Board

	mcpServer *server.MCPServer
}

// New creates a tool server starting from start, or the standard starting
// position if start is nil.
func New(start *board.Board) *Server {
	if start == nil {
		start = board.StartingBoard()
	}
	s := &Server{
		board: start.Clone(),
		start: start.Clone(),
	}

	s.mcpServer = server.NewMCPServer(
		"chesscore",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Chess position tools.

One board is kept between calls. Squares are written like e4, moves like e2e4.
Moves are pseudo-legal: they may leave the mover's king in check, and king
moves and castling are never listed.

AVAILABLE TOOLS:
- load_position: set the board from a FEN string, or the starting position
- show_board: print the board
- legal_moves: list moves for the side to move, optionally from one square
- apply_move: play a move`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "load_position",
		Description: "Replace the board with a position given in FEN, or the starting position when fen is omitted",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"fen": map[string]interface{}{
					"type":        "string",
					"description": "Six-field FEN string (optional)",
				},
			},
		},
	}, s.handleLoadPosition)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "show_board",
		Description: "Show the board as a text grid with the side to move and castling rights",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleShowBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the pseudo-legal moves of the side to move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"square": map[string]interface{}{
					"type":        "string",
					"description": "Only list moves starting on this square, e.g. g1 (optional)",
				},
			},
		},
	}, s.handleLegalMoves)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "apply_move",
		Description: "Play a move for the side to move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"move": map[string]interface{}{
					"type":        "string",
					"description": "Move in coordinate form, e.g. e2e4",
				},
			},
			Required: []string{"move"},
		},
	}, s.handleApplyMove)
}

// Tool handlers

func (s *Server) handleLoadPosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	fen, _ := args["fen"].(string)

	next := s.start.Clone()
	if strings.TrimSpace(fen) != "" {
		b, err := board.ParseFEN(fen)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		next = b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = next

	return mcp.NewToolResultText("Position loaded.\n\n" + s.board.String()), nil
}

func (s *Server) handleShowBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return mcp.NewToolResultText(s.board.String()), nil
}

func (s *Server) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	square, _ := args["square"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	var moves []board.Move
	if square == "" {
		moves = s.board.Moves()
	} else {
		sq, err := board.ParseSquare(square)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		moves = s.board.MovesFrom(sq)
	}

	return mcp.NewToolResultText(formatMoves(s.board.Turn, moves)), nil
}

func (s *Server) handleApplyMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	moveStr, _ := args["move"].(string)

	m, err := board.ParseMove(moveStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied, err := s.board.Apply(m)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatApplied(applied) + "\n\n" + s.board.String()), nil
}

func formatMoves(turn board.Color, moves []board.Move) string {
	if len(moves) == 0 {
		return fmt.Sprintf("%s has no moves.", turn)
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	return fmt.Sprintf("%s has %d moves: %s", turn, len(moves), strings.Join(strs, " "))
}

func formatApplied(a board.Applied) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s played %s.", a.Troop, a.Move)
	if a.IsCapture() {
		fmt.Fprintf(&sb, " Captured %s on %s", a.Captured, a.CapturedAt)
		if a.IsEnPassant() {
			sb.WriteString(" en passant")
		}
		sb.WriteString(".")
	}
	return sb.String()
}
