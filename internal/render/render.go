// Package render formats hands for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-core/game"
	"github.com/lox/holdem-core/poker"
)

// Styles holds the lipgloss styles used for table output
type Styles struct {
	Header    lipgloss.Style
	HandInfo  lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Winner    lipgloss.Style
	Muted     lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Renderer formats game state and results as styled text
type Renderer struct {
	styles *Styles
}

func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// Title returns the banner line
func (r *Renderer) Title() string {
	return r.styles.Header.Render(" ♠ ♥ Texas Hold'em ♦ ♣ ")
}

// Cards formats cards with red suits highlighted
func (r *Renderer) Cards(cards []poker.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		style := r.styles.BlackCard
		if card.Suit == poker.Heart || card.Suit == poker.Diamond {
			style = r.styles.RedCard
		}
		formatted = append(formatted, style.Render(card.String()))
	}
	return strings.Join(formatted, " ")
}

// Table formats the current hand state: players, stacks and board
func (r *Renderer) Table(h *game.Hand) string {
	var b strings.Builder

	b.WriteString(r.styles.HandInfo.Render(fmt.Sprintf("%s | pot %d", h.Street, h.Pot())))
	b.WriteString("\n")
	if len(h.Board) > 0 {
		b.WriteString("board: ")
		b.WriteString(r.Cards(h.Board))
		b.WriteString("\n")
	}

	for _, p := range h.Players {
		marker := "  "
		if p.Seat == h.ActiveSeat {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-10s %5d chips  %s", marker, p.Name, p.Chips, p.Status)
		if p.Bet > 0 {
			line += fmt.Sprintf("  (bet %d)", p.Bet)
		}
		if p.Seat == h.Button {
			line += "  [btn]"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Result formats a settled hand: winners, amounts and revealed hands
func (r *Renderer) Result(h *game.Hand, result *game.HandResult) string {
	var b strings.Builder

	if result.WonByFold {
		w := result.Winners[0]
		b.WriteString(r.styles.Winner.Render(fmt.Sprintf("%s wins %d uncontested", w.Name, w.Amount)))
		b.WriteString("\n")
		return b.String()
	}

	for _, sh := range result.Revealed {
		b.WriteString(fmt.Sprintf("%-10s shows %s  (%s)\n",
			sh.Name, r.Cards(h.Players[sh.Seat].HoleCards), sh.Rank.Category))
	}
	for _, w := range result.Winners {
		b.WriteString(r.styles.Winner.Render(fmt.Sprintf("%s wins %d", w.Name, w.Amount)))
		b.WriteString("\n")
	}
	return b.String()
}

// Action formats a single player action line
func (r *Renderer) Action(e game.PlayerActionEvent) string {
	return r.styles.Muted.Render(fmt.Sprintf("[%s] %s: %s (pot %d)", e.Street, e.Name, e.Move, e.PotAfter))
}
