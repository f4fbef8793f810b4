package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aolsux/poker/handhistory"
	"github.com/aolsux/poker/poker"
	"github.com/aolsux/poker/pokerstars"
)

var (
	handHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	streetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true)
)

// RenderCmd pretty-prints the hands in a log.
type RenderCmd struct {
	File  string `arg:"" name:"file" help:"Hand-history log file" type:"existingfile"`
	Limit int    `help:"Maximum number of hands to render (0 = all)"`
}

func (c RenderCmd) Run() error {
	hands, err := pokerstars.ParseFile(c.File)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands found in %s", c.File)
	}

	limit := c.Limit
	if limit <= 0 || limit > len(hands) {
		limit = len(hands)
	}
	for i := 0; i < limit; i++ {
		renderHand(os.Stdout, hands[i])
	}
	return nil
}

func renderHand(w io.Writer, h *handhistory.HandRecord) {
	title := fmt.Sprintf("Hand #%s  %s  %s %s (%s)",
		h.Ident, h.TableName, h.Game, h.Limit, h.GameType)
	fmt.Fprintln(w, handHeaderStyle.Render(title))
	fmt.Fprintf(w, "blinds %s/%s %s",
		formatAmount(h.SmallBlind), formatAmount(h.BigBlind), h.Currency)
	if h.GameType == handhistory.GameTypeTournament {
		fmt.Fprintf(w, "  tournament #%s level %s", h.TournamentIdent, h.TournamentLevel)
	}
	fmt.Fprintln(w)

	for i, seat := range h.Seats {
		if !seat.Occupied() {
			continue
		}
		line := fmt.Sprintf("  seat %d: %s (%s)", i+1, playerStyle.Render(seat.Name), formatAmount(seat.Stack))
		if i == h.Button {
			line += " [button]"
		}
		if seat.HoleCards != nil {
			line += "  " + renderCards(seat.HoleCards.First, seat.HoleCards.Second)
		}
		fmt.Fprintln(w, line)
	}

	renderActions(w, h, "blinds", h.Blinds)
	renderActions(w, h, "preflop", h.Preflop)

	board := h.Board.Cards()
	if h.Flop != nil {
		fmt.Fprintf(w, "%s %s\n", streetStyle.Render("flop"), renderCards(board[:3]...))
		renderActions(w, h, "", h.Flop.Actions)
	}
	if h.Turn != nil {
		fmt.Fprintf(w, "%s %s\n", streetStyle.Render("turn"), renderCards(board[3]))
		renderActions(w, h, "", h.Turn.Actions)
	}
	if h.River != nil {
		fmt.Fprintf(w, "%s %s\n", streetStyle.Render("river"), renderCards(board[4]))
		renderActions(w, h, "", h.River.Actions)
	}
	if h.Showdown {
		fmt.Fprintln(w, streetStyle.Render("showdown"))
	}
	fmt.Fprintln(w)
}

func renderActions(w io.Writer, h *handhistory.HandRecord, label string, actions []handhistory.PlayerAction) {
	if label != "" {
		fmt.Fprintln(w, streetStyle.Render(label))
	}
	for _, a := range actions {
		name := h.Seats[a.Seat].Name
		if a.Amount != nil {
			fmt.Fprintf(w, "  %s %s %s\n", playerStyle.Render(name), a.Action, formatAmount(a.Amount))
		} else {
			fmt.Fprintf(w, "  %s %s\n", playerStyle.Render(name), a.Action)
		}
	}
}

func renderCards(cards ...poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		text := c.Rank.String() + c.Suit.Symbol()
		if c.IsRed() {
			parts[i] = redCardStyle.Render(text)
		} else {
			parts[i] = blackCardStyle.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

func formatAmount(r *big.Rat) string {
	if r == nil {
		return "-"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	return r.FloatString(2)
}
