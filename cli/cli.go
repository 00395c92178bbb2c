// Package cli plays Wordle on a terminal or, when the output is not a
// terminal, over a line based protocol:
//
//	<guess marks> <alphabet marks>   after every accepted guess
//	INVALID                          for a rejected answer or guess
//	CORRECT <rounds> | FAILED <ANSWER>
//
// After a game a line "Y" starts the next one.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/service"
	"github.com/kodekulture/wordle/stats"
)

// DefaultProfile is used when no name is asked or given.
const DefaultProfile = "player"

const hintCommand = "HINT"

// Service is what the CLI needs from service.Service.
type Service interface {
	NewSession(profile, answer string, difficult bool) (*service.Session, error)
	Guess(ctx context.Context, id uuid.UUID, guess string) (game.PlayResponse, error)
	Hint(id uuid.UUID) (string, error)
	DeleteSession(id uuid.UUID)
	Summary(ctx context.Context, profile string) (stats.Summary, error)
}

type Options struct {
	Word      string // fixed answer of every game
	Random    bool   // answers come from the service generator
	Difficult bool
	Stats     bool // print statistics after every game
	TTY       bool
}

type CLI struct {
	srv     Service
	opts    Options
	in      *bufio.Scanner
	out     io.Writer
	profile string
}

func New(srv Service, opts Options, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		srv:     srv,
		opts:    opts,
		in:      bufio.NewScanner(in),
		out:     out,
		profile: DefaultProfile,
	}
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run plays games until the input ends or the player stops.
func (c *CLI) Run(ctx context.Context) error {
	if c.opts.TTY {
		c.welcome()
		name, ok := c.readLine()
		if !ok {
			c.goodbye()
			return nil
		}
		if name != "" {
			c.profile = name
		}
		c.println(fmt.Sprintf("Welcome, %s!\n", c.profile))
	}

	for {
		sess, ok, err := c.newSession()
		if err != nil {
			return err
		}
		if !ok {
			c.goodbye()
			return nil
		}
		ok = c.play(ctx, sess)
		c.srv.DeleteSession(sess.ID())
		if !ok {
			c.goodbye()
			return nil
		}
		if c.opts.Stats {
			if err = c.printStats(ctx); err != nil {
				return err
			}
		}
		if !c.again() {
			c.goodbye()
			return nil
		}
	}
}

// newSession starts the next game. The answer is read from the input unless
// it is fixed or random. ok is false when the input ended.
func (c *CLI) newSession() (sess *service.Session, ok bool, err error) {
	if c.opts.Word != "" || c.opts.Random {
		sess, err = c.srv.NewSession(c.profile, c.opts.Word, c.opts.Difficult)
		return sess, err == nil, err
	}

	c.prompt("Please choose an answer for the game: ")
	for {
		answer, ok := c.readLine()
		if !ok {
			return nil, false, nil
		}
		sess, err = c.srv.NewSession(c.profile, strings.ToUpper(answer), c.opts.Difficult)
		if err == nil {
			return sess, true, nil
		}
		var ge game.Error
		if !errors.As(err, &ge) {
			return nil, false, err
		}
		c.printError(err)
	}
}

// play reads guesses until the game ends. It returns false when the input ended first.
func (c *CLI) play(ctx context.Context, sess *service.Session) bool {
	round := 0
	for {
		c.prompt(fmt.Sprintf("Guess %d: ", round+1))
		line, ok := c.readLine()
		if !ok {
			return false
		}
		guess := strings.ToUpper(line)

		if guess == hintCommand {
			hint, err := c.srv.Hint(sess.ID())
			if err != nil {
				c.printError(err)
				continue
			}
			if c.opts.TTY {
				c.println(hintStyle.Render(hint))
			} else {
				c.println(hint)
			}
			continue
		}

		play, err := c.srv.Guess(ctx, sess.ID(), guess)
		if err != nil {
			c.printError(err)
			continue
		}
		round = play.Round

		if c.opts.TTY {
			resp := sess.Response()
			c.printHistory(resp.Guesses)
			c.println("--------------")
			c.printKeyboard(resp.Alphabet)
		} else {
			c.println(play.Result.Marks + " " + play.Alphabet)
		}

		switch play.Status {
		case game.Won.String():
			if c.opts.TTY {
				c.println(wonStyle.Render(fmt.Sprintf("You won in %d guesses!", play.Round)))
			} else {
				c.println(fmt.Sprintf("CORRECT %d", play.Round))
			}
			return true
		case game.Failed.String():
			if c.opts.TTY {
				c.println(errorStyle.Render("You lose! The answer is: " + *play.Answer))
			} else {
				c.println("FAILED " + *play.Answer)
			}
			return true
		}
	}
}

// again asks whether to start another game.
func (c *CLI) again() bool {
	if !c.opts.TTY {
		line, ok := c.readLine()
		return ok && line == "Y"
	}
	if c.opts.Word != "" {
		return false
	}
	for {
		c.prompt("Would you like to start a new game? " + promptStyle.Render("[Y/N]") + " ")
		line, ok := c.readLine()
		if !ok {
			return false
		}
		switch line {
		case "Y", "y":
			c.println("")
			return true
		case "N", "n":
			return false
		}
	}
}

func (c *CLI) printStats(ctx context.Context) error {
	sum, err := c.srv.Summary(ctx, c.profile)
	if err != nil {
		return err
	}
	if c.opts.TTY {
		c.renderStats(sum)
		return nil
	}
	c.println(fmt.Sprintf("%d %d %.2f", sum.Wins, sum.Fails, sum.AverageTries))
	top := make([]string, 0, len(sum.Top))
	for _, wc := range sum.Top {
		top = append(top, fmt.Sprintf("%s %d", wc.Word, wc.Count))
	}
	c.println(strings.Join(top, " "))
	return nil
}

func (c *CLI) printError(err error) {
	if !c.opts.TTY {
		c.println("INVALID")
		return
	}
	var ge game.Error
	if errors.As(err, &ge) {
		c.println(errorStyle.Render(ge.Error()))
		return
	}
	log.Debug().Err(err).Msg("guess rejected")
	c.println(errorStyle.Render(err.Error()))
}

// readLine returns the next trimmed line and false at the end of the input.
func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) prompt(s string) {
	if c.opts.TTY {
		fmt.Fprint(c.out, promptStyle.Render(s))
	}
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *CLI) goodbye() {
	if c.opts.TTY {
		c.println(wonStyle.Render("Goodbye!"))
	}
}
