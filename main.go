package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"variantchess/board"
	"variantchess/env"
)

type options struct {
	piece  board.PieceType
	at     board.Position
	action board.BasicAction
	place  []board.Placement
	width  int
	height int
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("query failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := env.GetEnv()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel})))

	opts, err := parseOptions(args, config)
	if err != nil {
		return err
	}

	chessBoard := board.NewBoard(opts.width, opts.height)
	slog.Debug("created board",
		slog.String("id", chessBoard.ID.String()),
		slog.Int("width", opts.width),
		slog.Int("height", opts.height))

	if err := chessBoard.Place(opts.place); err != nil {
		return err
	}
	if _, err := chessBoard.SpawnPiece(opts.at, opts.piece); err != nil {
		return fmt.Errorf("placing queried %s: %w", opts.piece, err)
	}

	destinations, err := chessBoard.PieceDestinations(opts.at, opts.action)
	if err != nil {
		return err
	}

	fmt.Print(chessBoard.Render(opts.at, destinations))
	slog.Info("destinations",
		slog.String("board", chessBoard.ID.String()),
		slog.String("piece", opts.piece.String()),
		slog.String("at", opts.at.String()),
		slog.String("action", opts.action.String()),
		slog.Int("count", len(destinations)))

	return nil
}

func parseOptions(args []string, config *env.Env) (options, error) {
	flags := flag.NewFlagSet("variantchess", flag.ContinueOnError)

	pieceStr := flags.String("piece", "Queen", "piece type, one of "+strings.Join(board.PieceTypeStrings(), ", "))
	atStr := flags.String("at", "0,0", "origin square as x,y")
	actionStr := flags.String("action", "move", "action, one of "+strings.Join(board.BasicActionStrings(), ", "))
	placeStr := flags.String("place", "", "other pieces, e.g. \"Pawn@3,3;Rook@0,5\"")
	width := flags.Int("width", config.BoardWidth, "board width")
	height := flags.Int("height", config.BoardHeight, "board height")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{width: *width, height: *height}
	if opts.width < 1 || opts.width > env.MaxBoardSize || opts.height < 1 || opts.height > env.MaxBoardSize {
		return options{}, fmt.Errorf("board size %dx%d must be within 1..%d", opts.width, opts.height, env.MaxBoardSize)
	}

	var err error
	if opts.piece, err = board.ParsePieceType(*pieceStr); err != nil {
		return options{}, err
	}
	if opts.at, err = board.StringToPosition(*atStr); err != nil {
		return options{}, err
	}
	if opts.action, err = board.ParseBasicAction(*actionStr); err != nil {
		return options{}, err
	}
	if opts.place, err = board.ParsePlacements(*placeStr); err != nil {
		return options{}, err
	}

	return opts, nil
}
