package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/service"
)

const (
	msgStart = "Let's play Wordle! Guess the hidden five letter word in six tries.\n" +
		"🟩 the letter is in place\n" +
		"🟨 the letter is in the word, somewhere else\n" +
		"⬛ the letter is not in the word\n\n" +
		"/play starts a game, then send your guesses as messages.\n" +
		"/hard switches difficult mode: revealed letters must be used.\n" +
		"/hint suggests a word, /stats shows your statistics."
	msgNoGame   = "No game is running. Use /play to start one."
	msgInternal = "Something went wrong, please try again later."
)

// reply answers the text sent in a chat.
type reply func(ctx context.Context, chatID int64, text string) string

// command adapts a reply to a telego handler.
func (b *Bot) command(fn reply) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil || update.Message.Text == "" {
			return nil
		}
		chatID := update.Message.Chat.ID
		text := fn(ctx, chatID, update.Message.Text)
		if text == "" {
			return nil
		}
		_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text))
		if err != nil {
			log.Err(err).Caller().Int64("chat", chatID).Msg("failed to send message")
		}
		return nil
	}
}

func (b *Bot) start(context.Context, int64, string) string {
	return msgStart
}

func (b *Bot) play(_ context.Context, chatID int64, _ string) string {
	difficult := false
	if id, ok := b.session(chatID); ok {
		if sess, err := b.srv.Session(id); err == nil {
			difficult = sess.Response().Difficult
		}
	}
	sess, err := b.srv.NewSession(profile(chatID), "", difficult)
	if err != nil {
		log.Err(err).Caller().Int64("chat", chatID).Msg("failed to start game")
		return msgInternal
	}
	b.setSession(chatID, sess.ID())
	mode := ""
	if difficult {
		mode = " Difficult mode is on."
	}
	return "New game started, send your first guess." + mode
}

func (b *Bot) hard(_ context.Context, chatID int64, _ string) string {
	id, ok := b.session(chatID)
	if !ok {
		return msgNoGame
	}
	sess, err := b.srv.Session(id)
	if err != nil {
		return b.errorText(err)
	}
	difficult := !sess.Response().Difficult
	if err = b.srv.SetDifficult(id, difficult); err != nil {
		return b.errorText(err)
	}
	if difficult {
		return "Difficult mode is on."
	}
	return "Difficult mode is off."
}

func (b *Bot) hint(_ context.Context, chatID int64, _ string) string {
	id, ok := b.session(chatID)
	if !ok {
		return msgNoGame
	}
	hint, err := b.srv.Hint(id)
	if err != nil {
		return b.errorText(err)
	}
	return "Try " + hint
}

func (b *Bot) stats(ctx context.Context, chatID int64, _ string) string {
	sum, err := b.srv.Summary(ctx, profile(chatID))
	if err != nil {
		return b.errorText(err)
	}
	var s strings.Builder
	fmt.Fprintf(&s, "Wins: %d Fails: %d\n", sum.Wins, sum.Fails)
	fmt.Fprintf(&s, "Average tries of games won: %.2f", sum.AverageTries)
	if len(sum.Top) > 0 {
		s.WriteString("\nMost frequently used words:")
		for _, wc := range sum.Top {
			fmt.Fprintf(&s, "\n    %s: used %d times", wc.Word, wc.Count)
		}
	}
	return s.String()
}

func (b *Bot) guess(ctx context.Context, chatID int64, text string) string {
	if strings.HasPrefix(text, "/") {
		return "Unknown command.\n\n" + msgStart
	}
	id, ok := b.session(chatID)
	if !ok {
		return msgNoGame
	}
	play, err := b.srv.Guess(ctx, id, text)
	if err != nil {
		return b.errorText(err)
	}

	sess, err := b.srv.Session(id)
	if err != nil {
		return b.errorText(err)
	}
	var s strings.Builder
	for _, g := range sess.Response().Guesses {
		s.WriteString(squares(g.Marks))
		if g.Word != nil {
			s.WriteString(" " + *g.Word)
		}
		s.WriteString("\n")
	}
	switch play.Status {
	case game.Won.String():
		fmt.Fprintf(&s, "\nYou won in %d guesses! /play again?", play.Round)
	case game.Failed.String():
		fmt.Fprintf(&s, "\nYou lose! The answer is %s. /play again?", *play.Answer)
	default:
		fmt.Fprintf(&s, "\n%d guesses left.", game.MaxGuesses-play.Round)
	}
	return s.String()
}

// errorText turns a rejected operation into a message for the player.
func (b *Bot) errorText(err error) string {
	var ge game.Error
	switch {
	case errors.As(err, &ge):
		return ge.Error()
	case errors.Is(err, service.ErrNoSession):
		return msgNoGame
	case errors.Is(err, service.ErrSessionEnded):
		return "The game has ended. Use /play to start a new one."
	default:
		log.Err(err).Caller().Msg("bot request failed")
		return msgInternal
	}
}

// squares draws the marks of a guess.
func squares(marks string) string {
	var s strings.Builder
	for i := 0; i < len(marks); i++ {
		switch marks[i] {
		case 'G':
			s.WriteString("🟩")
		case 'Y':
			s.WriteString("🟨")
		default:
			s.WriteString("⬛")
		}
	}
	return s.String()
}
