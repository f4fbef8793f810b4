// Package handhistory defines the structured record produced by parsing
// one poker hand from a room's hand-history log: table metadata, seated
// players and stacks, forced bets, per-street actions, community cards
// and showdown results.
//
// Monetary amounts are exact rationals (math/big.Rat), never floats, so
// blinds, bets and stacks survive round trips without rounding drift.
package handhistory

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/aolsux/poker/poker"
)

// ErrBoardCardinality indicates community cards were dealt onto a board
// of the wrong size for the street.
var ErrBoardCardinality = errors.New("handhistory: board cardinality violation")

// Seat is a numbered position at the table. A zero-value Seat is an
// unoccupied slot.
type Seat struct {
	// Name is the player's display name, empty for an unoccupied seat.
	Name string

	// Stack is the player's chip count at the start of the hand.
	Stack *big.Rat

	// HoleCards is known only for the hero and for players who showed
	// at showdown; nil otherwise.
	HoleCards *poker.Combo
}

// Occupied reports whether a player sits in this seat.
func (s Seat) Occupied() bool {
	return s.Name != ""
}

// PlayerAction is one recorded action by one player.
type PlayerAction struct {
	// Seat is the 0-based seat index of the acting player.
	Seat int

	// Action is the kind of action taken.
	Action Action

	// Amount is present only for blind, ante, bet and raise. For a
	// raise it is the total the player is committed to on the street
	// (the "to" amount), not the increment.
	Amount *big.Rat
}

func (a PlayerAction) String() string {
	if a.Amount != nil {
		return fmt.Sprintf("seat %d %s %s", a.Seat, a.Action, a.Amount.RatString())
	}
	return fmt.Sprintf("seat %d %s", a.Seat, a.Action)
}

// Street holds the actions of one betting round that actually ran. A
// Street with no actions is legal (everyone checked or folded earlier);
// a street that never started is represented by a nil *Street on the
// HandRecord instead.
type Street struct {
	Actions []PlayerAction
}

// Board is the community cards. It grows append-only across
// flop, turn and river and enforces the 0/3/4/5 cardinality.
type Board struct {
	cards []poker.Card
}

// Len returns the number of community cards dealt so far.
func (b *Board) Len() int {
	return len(b.cards)
}

// Cards returns a copy of the community cards in deal order.
func (b *Board) Cards() []poker.Card {
	out := make([]poker.Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// DealFlop places the three flop cards on an empty board.
func (b *Board) DealFlop(c1, c2, c3 poker.Card) error {
	if len(b.cards) != 0 {
		return fmt.Errorf("%w: flop dealt on %d-card board", ErrBoardCardinality, len(b.cards))
	}
	b.cards = append(b.cards, c1, c2, c3)
	return nil
}

// DealTurn appends the turn card to a three-card board.
func (b *Board) DealTurn(c poker.Card) error {
	if len(b.cards) != 3 {
		return fmt.Errorf("%w: turn dealt on %d-card board", ErrBoardCardinality, len(b.cards))
	}
	b.cards = append(b.cards, c)
	return nil
}

// DealRiver appends the river card to a four-card board.
func (b *Board) DealRiver(c poker.Card) error {
	if len(b.cards) != 4 {
		return fmt.Errorf("%w: river dealt on %d-card board", ErrBoardCardinality, len(b.cards))
	}
	b.cards = append(b.cards, c)
	return nil
}

func (b *Board) String() string {
	tokens := make([]string, len(b.cards))
	for i, c := range b.cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// HandRecord is the fully parsed representation of one hand. It is
// populated in section order by a room parser and immutable once the
// parser hands it to the caller.
type HandRecord struct {
	// Identity
	Ident      string
	TableName  string
	MaxPlayers int
	// Button is the 0-based seat index of the dealer button.
	Button int

	// Money context
	Currency   Currency
	SmallBlind *big.Rat
	BigBlind   *big.Rat

	// Tournament context, zero-valued for cash games.
	Buyin           *big.Rat
	Rake            *big.Rat
	TournamentIdent string
	TournamentLevel string

	Game     Game
	Limit    Limit
	GameType GameType

	// Date is the header timestamp in the room's reference zone,
	// passed through without conversion. RawDate preserves the exact
	// header text.
	Date    time.Time
	RawDate string

	// Seats has fixed length MaxPlayers; unoccupied slots are zero
	// values. Indices are assigned once from the seat list and never
	// reassigned.
	Seats []Seat

	// Blinds holds the forced bets (blinds and antes) posted before
	// any voluntary action.
	Blinds []PlayerAction

	// Preflop always runs; later streets are nil if the hand ended
	// before they started.
	Preflop []PlayerAction
	Flop    *Street
	Turn    *Street
	River   *Street

	Board Board

	// Showdown is true only if a showdown section was present.
	Showdown bool
}

// NewHandRecord creates an empty record with maxPlayers seat slots.
func NewHandRecord(maxPlayers int) *HandRecord {
	return &HandRecord{
		MaxPlayers: maxPlayers,
		Seats:      make([]Seat, maxPlayers),
	}
}

// SeatIndex looks up a player's seat index by exact display name.
func (h *HandRecord) SeatIndex(name string) (int, bool) {
	for i, s := range h.Seats {
		if s.Occupied() && s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Players returns the indices of occupied seats in seat order.
func (h *HandRecord) Players() []int {
	out := make([]int, 0, len(h.Seats))
	for i, s := range h.Seats {
		if s.Occupied() {
			out = append(out, i)
		}
	}
	return out
}

func (h *HandRecord) String() string {
	return fmt.Sprintf("<HandRecord #%s>", h.Ident)
}
