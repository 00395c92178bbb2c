// Package config reads the settings of the program from flags, environment
// (WORDLE_*, also from a .env file) and an optional JSON config file.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/game/word"
)

type Mode string

const (
	ModeCLI   Mode = "cli"
	ModeServe Mode = "serve"
	ModeBot   Mode = "bot"
)

// Stores are the accepted values of --store
var Stores = []string{"memory", "file", "badger", "redis", "postgres", "sqlite"}

var (
	ErrWordAndRandom  = errors.New("--word cannot be used with --random, --day or --seed")
	ErrNotRandom      = errors.New("--day and --seed can only be used with --random")
	ErrDayOutOfRange  = errors.New("--day is out of range")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownStore   = errors.New("unknown store")
	ErrStateWithStore = errors.New("--state can only be used with the file store")
	ErrNoBotToken     = errors.New("the bot needs --bot-token")
)

type Config struct {
	Word          string
	Random        bool
	Difficult     bool
	Stats         bool
	Day           int
	Seed          uint64
	FinalSet      string
	AcceptableSet string
	State         string

	Mode      Mode
	Store     string
	StoreURL  string
	Backup    string // badger directory keeping server sessions across restarts
	Port      string
	PasetoKey string
	TokenTTL  time.Duration
	BotToken  string
	LogLevel  string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordle", pflag.ContinueOnError)
	fs.StringP("word", "w", "", "the answer of the game")
	fs.BoolP("random", "r", false, "pick answers from the final set")
	fs.BoolP("difficult", "D", false, "guesses must use every revealed letter")
	fs.BoolP("stats", "t", false, "print statistics after each game")
	fs.IntP("day", "d", word.DefaultDay, "first day of the random sequence")
	fs.Uint64P("seed", "s", word.DefaultSeed, "seed of the random sequence")
	fs.StringP("final-set", "f", "", "file with the possible answers")
	fs.StringP("acceptable-set", "a", "", "file with the acceptable guesses")
	fs.StringP("state", "S", "", "JSON file keeping the statistics")
	fs.StringP("config", "c", "", "JSON config file")

	fs.String("mode", string(ModeCLI), "cli, serve or bot")
	fs.String("store", "memory", "where statistics are kept: "+strings.Join(Stores, ", "))
	fs.String("store-url", "", "path or URL of the store")
	fs.String("backup", "", "badger directory keeping running server sessions")
	fs.String("port", "8080", "port of the HTTP server")
	fs.String("paseto-key", "", "32 byte key of the session tokens")
	fs.Duration("token-ttl", 24*time.Hour, "validity of the session tokens")
	fs.String("bot-token", "", "telegram bot token")
	fs.String("log-level", "info", "zerolog level")
	return fs
}

// Load parses args (without the program name).
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// a missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("WORDLE")
	v.AutomaticEnv()
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		bindErr = errors.Join(bindErr, v.BindPFlag(key(f.Name), f))
	})
	if bindErr != nil {
		return nil, bindErr
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Word:          strings.ToUpper(strings.TrimSpace(v.GetString("word"))),
		Random:        v.GetBool("random"),
		Difficult:     v.GetBool("difficult"),
		Stats:         v.GetBool("stats"),
		Day:           v.GetInt("day"),
		Seed:          v.GetUint64("seed"),
		FinalSet:      v.GetString("final_set"),
		AcceptableSet: v.GetString("acceptable_set"),
		State:         v.GetString("state"),
		Mode:          Mode(v.GetString("mode")),
		Store:         v.GetString("store"),
		StoreURL:      v.GetString("store_url"),
		Backup:        v.GetString("backup"),
		Port:          v.GetString("port"),
		PasetoKey:     v.GetString("paseto_key"),
		TokenTTL:      v.GetDuration("token_ttl"),
		BotToken:      v.GetString("bot_token"),
		LogLevel:      v.GetString("log_level"),
	}

	if cfg.Word != "" && (cfg.Random || v.IsSet("day") || v.IsSet("seed")) {
		return nil, ErrWordAndRandom
	}
	if !cfg.Random && (v.IsSet("day") || v.IsSet("seed")) {
		return nil, ErrNotRandom
	}
	if !slices.Contains([]Mode{ModeCLI, ModeServe, ModeBot}, cfg.Mode) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, cfg.Mode)
	}
	if cfg.State != "" {
		if v.IsSet("store") && cfg.Store != "file" {
			return nil, ErrStateWithStore
		}
		cfg.Store, cfg.StoreURL = "file", cfg.State
	}
	if !slices.Contains(Stores, cfg.Store) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, cfg.Store)
	}
	if cfg.Mode == ModeBot && cfg.BotToken == "" {
		return nil, ErrNoBotToken
	}
	return cfg, nil
}

// Validate checks the settings that depend on the final set.
func (c *Config) Validate(final *word.List) error {
	if c.Random && (c.Day < 1 || c.Day > final.Len()) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrDayOutOfRange, c.Day, final.Len())
	}
	if c.Word != "" && !final.Contains(c.Word) {
		return game.ErrBadAnswer
	}
	return nil
}

// key is the name of a flag in the config file and, uppercased with the
// WORDLE_ prefix, in the environment.
func key(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}
