package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/sandevgo/skipper/internal/config"
	"github.com/sandevgo/skipper/pkg/command"
	"github.com/sandevgo/skipper/pkg/log"
)

const consoleChatID = "console-local"

// ReadLine is an interactive stdin gateway, handy for trying commands
// without a Telegram token.
type ReadLine struct {
	cfg *config.AppConfig
	rl  *readline.Instance

	mu       sync.RWMutex
	handlers []func(ctx context.Context, msg command.Message)
	nextID   int
}

func NewReadLine(cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg: cfg,
		rl:  rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("console started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		r.mu.Lock()
		r.nextID++
		msg := command.Message{
			ID:      strconv.Itoa(r.nextID),
			ChatID:  consoleChatID,
			Author:  "local",
			Content: line,
		}
		handlers := slices.Clone(r.handlers)
		r.mu.Unlock()

		for _, fn := range handlers {
			fn(ctx, msg)
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func (r *ReadLine) OnMessage(fn func(ctx context.Context, msg command.Message)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, fn)
}

func (r *ReadLine) Send(ctx context.Context, chatID, text string) error {
	_, err := fmt.Fprintf(r.rl.Stdout(), "%s\n", text)
	return err
}
