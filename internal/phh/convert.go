package phh

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/aolsux/poker/handhistory"
	"github.com/aolsux/poker/poker"
)

var hundred = big.NewRat(100, 1)

// Cents converts an exact rational money amount to integer cents. The
// vendor format never carries more than two decimals, so this is exact;
// anything finer is an error rather than a silent rounding.
func Cents(r *big.Rat) (int, error) {
	if r == nil {
		return 0, nil
	}
	c := new(big.Rat).Mul(r, hundred)
	if !c.IsInt() {
		return 0, fmt.Errorf("phh: amount %s is not cent-precise", r.RatString())
	}
	return int(c.Num().Int64()), nil
}

// FromRecord converts a parsed hand record into its PHH form.
func FromRecord(h *handhistory.HandRecord) (*HandHistory, error) {
	seats := h.Players()
	if len(seats) == 0 {
		return nil, fmt.Errorf("phh: hand %s has no players", h.Ident)
	}

	posBySeat := make(map[int]int, len(seats))
	for pos, seat := range seats {
		posBySeat[seat] = pos
	}

	out := &HandHistory{
		Variant:           "NT",
		Table:             h.TableName,
		SeatCount:         h.MaxPlayers,
		Seats:             make([]int, len(seats)),
		Antes:             make([]int, len(seats)),
		BlindsOrStraddles: make([]int, len(seats)),
		StartingStacks:    make([]int, len(seats)),
		Players:           make([]string, len(seats)),
		HandID:            h.Ident,
		Timestamp:         h.Date,
		Metadata: map[string]any{
			"currency":    h.Currency.String(),
			"game_type":   h.GameType.String(),
			"button_seat": h.Button + 1,
		},
	}

	for pos, seat := range seats {
		out.Seats[pos] = seat + 1
		out.Players[pos] = h.Seats[seat].Name
		stack, err := Cents(h.Seats[seat].Stack)
		if err != nil {
			return nil, err
		}
		out.StartingStacks[pos] = stack
	}

	minBet, err := Cents(h.BigBlind)
	if err != nil {
		return nil, err
	}
	out.MinBet = minBet

	for _, blind := range h.Blinds {
		pos, ok := posBySeat[blind.Seat]
		if !ok {
			return nil, fmt.Errorf("phh: blind from unseated player at seat %d", blind.Seat)
		}
		amount, err := Cents(blind.Amount)
		if err != nil {
			return nil, err
		}
		switch blind.Action {
		case handhistory.ActionAnte:
			out.Antes[pos] += amount
		default:
			out.BlindsOrStraddles[pos] += amount
		}
	}

	// Hole-card deals precede all betting actions in PHH.
	for pos, seat := range seats {
		if combo := h.Seats[seat].HoleCards; combo != nil {
			out.Actions = append(out.Actions,
				fmt.Sprintf("d dh p%d %s%s", pos+1, combo.First, combo.Second))
		}
	}

	board := h.Board.Cards()
	if err := appendStreet(out, posBySeat, h.Preflop); err != nil {
		return nil, err
	}
	streets := []struct {
		street *handhistory.Street
		cards  []poker.Card
	}{
		{h.Flop, sliceBoard(board, 0, 3)},
		{h.Turn, sliceBoard(board, 3, 4)},
		{h.River, sliceBoard(board, 4, 5)},
	}
	for _, s := range streets {
		if s.street == nil {
			continue
		}
		out.Actions = append(out.Actions, "d db "+concatCards(s.cards))
		if err := appendStreet(out, posBySeat, s.street.Actions); err != nil {
			return nil, err
		}
	}

	populateTimeFields(out)
	return out, nil
}

func appendStreet(out *HandHistory, posBySeat map[int]int, actions []handhistory.PlayerAction) error {
	for _, a := range actions {
		pos, ok := posBySeat[a.Seat]
		if !ok {
			return fmt.Errorf("phh: action from unseated player at seat %d", a.Seat)
		}
		player := fmt.Sprintf("p%d", pos+1)
		switch a.Action {
		case handhistory.ActionFold:
			out.Actions = append(out.Actions, player+" f")
		case handhistory.ActionCheck, handhistory.ActionCall:
			out.Actions = append(out.Actions, player+" cc")
		case handhistory.ActionBet, handhistory.ActionRaise:
			amount, err := Cents(a.Amount)
			if err != nil {
				return err
			}
			out.Actions = append(out.Actions, fmt.Sprintf("%s cbr %d", player, amount))
		default:
			return fmt.Errorf("phh: action %s outside a blind block", a.Action)
		}
	}
	return nil
}

func sliceBoard(board []poker.Card, from, to int) []poker.Card {
	if len(board) < to {
		return nil
	}
	return board[from:to]
}

func concatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	hist.Time = t.Format("15:04:05")
	hist.TimeZone = t.Format("MST")
	hist.Day = t.Day()
	hist.Month = int(t.Month())
	hist.Year = t.Year()
}
