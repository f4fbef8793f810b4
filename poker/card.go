// Package poker provides the playing-card value types shared by the
// hand-history model and the room parsers.
package poker

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the vendor shorthand for a suit ("c", "d", "h", "s")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol for display
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the shorthand representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character shorthand of a card (e.g. "Ah", "Td").
// This is the exact token format used by hand-history logs, so parsed
// cards round-trip through String.
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-character shorthand token into a Card.
// The rank must be one of 2-9, T, J, Q, K, A and the suit one of
// c, d, h, s. Anything else is an error.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("poker: invalid card token %q", token)
	}

	rank, err := parseRank(token[0])
	if err != nil {
		return Card{}, fmt.Errorf("poker: invalid card token %q: %w", token, err)
	}
	suit, err := parseSuit(token[1])
	if err != nil {
		return Card{}, fmt.Errorf("poker: invalid card token %q: %w", token, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(token string) Card {
	card, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return card
}

// Combo is an ordered pair of hole cards. The order carries no meaning
// but is preserved as parsed.
type Combo struct {
	First  Card
	Second Card
}

// String returns the combo in dealt order, e.g. "Ah Kd"
func (c Combo) String() string {
	return fmt.Sprintf("%s %s", c.First, c.Second)
}

func parseRank(b byte) (Rank, error) {
	switch b {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		return Jack, nil
	case 'T':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", b)
	}
}

func parseSuit(b byte) (Suit, error) {
	switch b {
	case 'c':
		return Clubs, nil
	case 'd':
		return Diamonds, nil
	case 'h':
		return Hearts, nil
	case 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", b)
	}
}
