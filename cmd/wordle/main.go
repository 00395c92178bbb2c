package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/kodekulture/wordle/bot"
	"github.com/kodekulture/wordle/cli"
	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/handler"
	"github.com/kodekulture/wordle/handler/token"
	"github.com/kodekulture/wordle/internal/config"
	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/service"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		zlog.Fatal().Err(err).Msg("invalid arguments")
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err = run(cfg); err != nil {
		zlog.Fatal().Err(err).Send()
	}
}

func run(cfg *config.Config) error {
	appCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lists, err := loadLists(cfg)
	if err != nil {
		return err
	}
	if err = cfg.Validate(lists.Final); err != nil {
		return err
	}

	store, closeStore, err := openStore(appCtx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var gen word.Generator = word.NewLocalGen(lists.Final)
	if cfg.Random {
		gen = word.NewSequence(lists.Final, cfg.Seed, cfg.Day)
	}
	srv := service.New(lists, gen, store)

	switch cfg.Mode {
	case config.ModeServe:
		return serve(appCtx, cfg, srv, store)
	case config.ModeBot:
		b, err := bot.New(cfg.BotToken, srv)
		if err != nil {
			return err
		}
		go srv.Run(appCtx)
		return b.Run(appCtx)
	default:
		opts := cli.Options{
			Word:      cfg.Word,
			Random:    cfg.Random,
			Difficult: cfg.Difficult,
			Stats:     cfg.Stats,
			TTY:       cli.IsTerminal(os.Stdout),
		}
		return cli.New(srv, opts, os.Stdin, os.Stdout).Run(appCtx)
	}
}

func serve(ctx context.Context, cfg *config.Config, srv *service.Service, store repository.State) error {
	if cfg.Backup != "" {
		backup, closeBackup, err := openBackup(cfg, store)
		if err != nil {
			return err
		}
		defer closeBackup()
		if err = srv.LoadBackup(ctx, backup); err != nil {
			return err
		}
	}
	go srv.Run(ctx)

	key := []byte(cfg.PasetoKey)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return err
		}
		zlog.Warn().Msg("no paseto key set, tokens will not survive a restart")
	}
	tokener, err := token.New(key, "", cfg.TokenTTL)
	if err != nil {
		return err
	}

	h := handler.New(srv, tokener)
	done := make(chan struct{})
	go shutdown(ctx, h, srv, done)
	zlog.Info().Msgf("server started on port: %s", cfg.Port)
	if err = h.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

// shutdown stops the server once ctx is done and saves the running sessions.
func shutdown(ctx context.Context, h *handler.Handler, srv *service.Service, done chan<- struct{}) {
	<-ctx.Done()
	zlog.Info().Msg("shutdown started")
	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := h.Stop(stopCtx); err != nil {
		zlog.Err(err).Msg("failed to stop server")
	}
	srv.Stop(stopCtx)
	zlog.Info().Msg("shutdown complete")
	close(done)
}
