package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/stats"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	hintStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))

	letterStyles = map[word.LetterStatus]lipgloss.Style{
		word.Unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("102")),
		word.Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		word.Exists:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		word.Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// statusOf reverses word.LetterStatus.Char.
func statusOf(c byte) word.LetterStatus {
	switch c {
	case word.Incorrect.Char():
		return word.Incorrect
	case word.Exists.Char():
		return word.Exists
	case word.Correct.Char():
		return word.Correct
	default:
		return word.Unknown
	}
}

func colored(c byte, s word.LetterStatus) string {
	return letterStyles[s].Render(string(c))
}

func (c *CLI) welcome() {
	rainbow := []string{"1", "208", "3", "2", "4", "93"}
	var b strings.Builder
	for i, ch := range "Wordle" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rainbow[i])).Render(string(ch)))
	}
	c.println(fmt.Sprintf("Welcome to %s!", b.String()))
	c.println(fmt.Sprintf("Note that you can type '%s' to get hints in the game!\n", hintCommand))
	c.prompt("Could I have your name, please? ")
}

// printHistory prints every guess and a placeholder for the rounds left.
func (c *CLI) printHistory(guesses []game.GuessResponse) {
	for i := 0; i < game.MaxGuesses; i++ {
		if i >= len(guesses) || guesses[i].Word == nil {
			c.println(emptyStyle.Render(strings.Repeat("_", word.Length)))
			continue
		}
		w := *guesses[i].Word
		var b strings.Builder
		for j := 0; j < len(w); j++ {
			b.WriteString(colored(w[j], word.LetterStatus(guesses[i].Status[j])))
		}
		c.println(b.String())
	}
}

// printKeyboard prints the alphabet marks on a QWERTY layout.
func (c *CLI) printKeyboard(alphabet string) {
	for _, row := range keyboardRows {
		var b strings.Builder
		for i := 0; i < len(row); i++ {
			b.WriteString(colored(row[i], statusOf(alphabet[row[i]-'A'])))
		}
		c.println(b.String())
	}
}

func (c *CLI) renderStats(sum stats.Summary) {
	c.println(titleStyle.Render("Statistics:"))
	c.println(fmt.Sprintf("%s %d %s %d",
		letterStyles[word.Correct].Bold(true).Render("Wins:"), sum.Wins,
		letterStyles[word.Incorrect].Bold(true).Render("Fails:"), sum.Fails))
	c.println(fmt.Sprintf("%s %.2f", lipgloss.NewStyle().Bold(true).Render("Average tries of games won:"), sum.AverageTries))
	c.println(promptStyle.Render("Most frequently used words:"))
	for _, wc := range sum.Top {
		c.println(fmt.Sprintf("    %s: used %d times", wonStyle.Render(wc.Word), wc.Count))
	}
}
