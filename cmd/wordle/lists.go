package main

import (
	"errors"

	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/internal/config"
	"github.com/kodekulture/wordle/service"
)

var ErrNotSubset = errors.New("final words should be a subset of acceptable words")

// loadLists reads the word lists named in cfg. Without a final set the
// acceptable set is used when one was given, the builtin answers otherwise.
func loadLists(cfg *config.Config) (service.Lists, error) {
	acceptable, final := word.Builtin()
	var err error
	if cfg.AcceptableSet != "" {
		if acceptable, err = word.LoadList(cfg.AcceptableSet); err != nil {
			return service.Lists{}, err
		}
		final = acceptable
	}
	if cfg.FinalSet != "" {
		if final, err = word.LoadList(cfg.FinalSet); err != nil {
			return service.Lists{}, err
		}
	}
	if !final.IsSubsetOf(acceptable) {
		return service.Lists{}, ErrNotSubset
	}
	return service.Lists{Acceptable: acceptable, Final: final}, nil
}
