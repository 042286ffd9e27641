package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/service"
)

// Server is the interactive terminal host: it renders the cube, reads
// human moves and drives the bot's replies. The bot's thinking pause
// lives here, not in the engine.
type Server struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService
	botDelay time.Duration

	output *termenv.Output
	input  *bufio.Scanner
}

func New(logger *slog.Logger, gamePlay service.GamePlayService, botDelay time.Duration) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		botDelay: botDelay,
		output:   termenv.NewOutput(os.Stdout),
		input:    bufio.NewScanner(os.Stdin),
	}
}

// Start - runs the game loop until the player quits or the context is
// canceled.
func (that *Server) Start(ctx context.Context) error {
	game, err := that.gamePlay.GetOrCreateGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	that.printIntro()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		that.render(game)

		if game.IsFinished() {
			that.printOutcome(game)
			that.gamePlay.CleanupGame(ctx, game)

			if !that.promptRematch() {
				return nil
			}

			if game, err = that.gamePlay.GetOrCreateGame(ctx); err != nil {
				return fmt.Errorf("failed to start rematch: %w", err)
			}

			continue
		}

		if humanPlayer := game.HumanPlayer(); humanPlayer != nil && game.Turn == humanPlayer.Mark {
			quit, err := that.humanTurn(ctx, game)
			if err != nil {
				return fmt.Errorf("human turn failed: %w", err)
			}
			if quit {
				return nil
			}
		} else {
			if err = that.botTurn(ctx, game); err != nil {
				return fmt.Errorf("bot turn failed: %w", err)
			}
		}
	}
}

func (that *Server) humanTurn(ctx context.Context, game *entity.Game) (bool, error) {
	fmt.Fprint(that.output, "your move (x y z): ")

	if !that.input.Scan() {
		// EOF quits
		return true, nil
	}

	line := strings.TrimSpace(that.input.Text())
	switch line {
	case "":
		return false, nil
	case "quit", "q":
		return true, nil
	case "new", "n":
		if err := that.gamePlay.Restart(ctx, game); err != nil {
			return false, err
		}
		return false, nil
	}

	var x, y, z int
	if _, err := fmt.Sscanf(line, "%d %d %d", &x, &y, &z); err != nil {
		fmt.Fprintln(that.output, "enter a move as three numbers, e.g.: 1 1 1")
		return false, nil
	}

	err := that.gamePlay.MakeHumanTurn(ctx, game, entity.Coord{X: x, Y: y, Z: z})

	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.output, "that cell is already taken")
		return false, nil
	case errors.Is(err, entity.ErrInvalidCell):
		fmt.Fprintln(that.output, "coordinates must each be between 0 and 2")
		return false, nil
	default:
		return false, err
	}
}

// botTurn computes the reply off the loop and applies it only once the
// thinking pause has elapsed. A canceled context discards the computed
// move instead of applying it to a board the player already left.
func (that *Server) botTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "botTurn")

	fmt.Fprintln(that.output, "bot is thinking...")

	type moveResult struct {
		cell entity.Coord
		err  error
	}

	results := make(chan moveResult, 1)
	go func() {
		started := time.Now()
		cell, err := that.gamePlay.ComputeBotMove(game)
		log.Debug("bot move computed", "took", time.Since(started), "cell", cell)
		results <- moveResult{cell: cell, err: err}
	}()

	delay := time.After(that.botDelay)

	var result moveResult
	select {
	case <-ctx.Done():
		return nil
	case result = <-results:
	}

	if result.err != nil {
		return result.err
	}

	select {
	case <-ctx.Done():
		return nil
	case <-delay:
	}

	return that.gamePlay.ApplyBotTurn(ctx, game, result.cell)
}

func (that *Server) promptRematch() bool {
	for {
		fmt.Fprint(that.output, "play again? [new/quit]: ")

		if !that.input.Scan() {
			return false
		}

		switch strings.TrimSpace(that.input.Text()) {
		case "new", "n", "":
			return true
		case "quit", "q":
			return false
		}
	}
}
