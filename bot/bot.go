// Package bot plays Wordle in Telegram chats. Each chat has at most one
// running game, kept as a session of the service.
package bot

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/service"
	"github.com/kodekulture/wordle/stats"
)

// Service is what the bot needs from service.Service.
type Service interface {
	NewSession(profile, answer string, difficult bool) (*service.Session, error)
	Session(id uuid.UUID) (*service.Session, error)
	Guess(ctx context.Context, id uuid.UUID, guess string) (game.PlayResponse, error)
	Hint(id uuid.UUID) (string, error)
	SetDifficult(id uuid.UUID, difficult bool) error
	DeleteSession(id uuid.UUID)
	Summary(ctx context.Context, profile string) (stats.Summary, error)
}

type Bot struct {
	bot *telego.Bot
	srv Service

	mu    sync.Mutex
	chats map[int64]uuid.UUID // running session of each chat
}

func New(token string, srv Service) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, err
	}
	b := newBot(srv)
	b.bot = bot
	return b, nil
}

func newBot(srv Service) *Bot {
	return &Bot{
		srv:   srv,
		chats: make(map[int64]uuid.UUID),
	}
}

// Run answers updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return err
	}
	handler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return err
	}

	handler.Handle(b.command(b.start), th.CommandEqual("start"))
	handler.Handle(b.command(b.start), th.CommandEqual("help"))
	handler.Handle(b.command(b.play), th.CommandEqual("play"))
	handler.Handle(b.command(b.hard), th.CommandEqual("hard"))
	handler.Handle(b.command(b.hint), th.CommandEqual("hint"))
	handler.Handle(b.command(b.stats), th.CommandEqual("stats"))
	handler.Handle(b.command(b.guess))

	go func() {
		<-ctx.Done()
		if err := handler.Stop(); err != nil {
			log.Err(err).Caller().Msg("failed to stop bot handler")
		}
	}()
	log.Info().Msg("bot started")
	return handler.Start()
}

func profile(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func (b *Bot) session(chatID int64) (uuid.UUID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.chats[chatID]
	return id, ok
}

func (b *Bot) setSession(chatID int64, id uuid.UUID) {
	b.mu.Lock()
	old, ok := b.chats[chatID]
	b.chats[chatID] = id
	b.mu.Unlock()
	if ok {
		b.srv.DeleteSession(old)
	}
}
