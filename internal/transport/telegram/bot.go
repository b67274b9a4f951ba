package telegram

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sandevgo/skipper/internal/config"
	"github.com/sandevgo/skipper/pkg/command"
	"github.com/sandevgo/skipper/pkg/log"
	"github.com/sandevgo/skipper/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot bridges Telegram to the command gateway. Incoming text messages are
// forwarded to subscribed handlers and replies go back through sendMarkdown.
type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	sender *sender

	mu       sync.RWMutex
	handlers []func(ctx context.Context, msg command.Message)
}

func NewBot(ctx context.Context, cfg *config.TelegramConfig) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		sender: newSender(b, retry.NewDefaultRetrier()),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only allow listed users when the allow-list is set
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if len(cfg.AllowedIDs) > 0 && !slices.Contains(cfg.AllowedIDs, c.Sender().ID) {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) OnMessage(fn func(ctx context.Context, msg command.Message)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

func (b *Bot) Send(ctx context.Context, chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", chatID, err)
	}
	return b.sender.sendMarkdown(ctx, tele.ChatID(id), text)
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	msg := command.Message{
		ID:      strconv.Itoa(c.Message().ID),
		ChatID:  strconv.FormatInt(c.Chat().ID, 10),
		Author:  c.Sender().Username,
		Content: c.Text(),
	}

	b.mu.RLock()
	handlers := slices.Clone(b.handlers)
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(ctx, msg)
	}
	return nil
}
