// Package pokerstars parses PokerStars hand-history logs into
// structured handhistory.HandRecord values.
//
// The parser is a line-oriented state machine: a single forward-only
// cursor over the stream, walked by one section parser per hand section
// (header, seats, blinds, hole cards, the four streets, showdown) in
// fixed order. Each section parser consumes the lines it recognizes and
// leaves the cursor at the first line it does not.
//
// Hard parse failures abort the hand and surface as *ParseError. The
// parser never recovers on its own; callers that want to skip a
// malformed hand call SeekNextHeader and try again.
package pokerstars

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/aolsux/poker/handhistory"
)

// roomZone is the room's reference timezone for header dates. Dates are
// passed through in this zone, never converted.
var roomZone = time.FixedZone("ET", -5*60*60)

const dateLayout = "2006/01/02 15:04:05 ET"

// Parser reads hands one at a time from a single stream. It is not safe
// for concurrent use; one parse pass owns the stream exclusively.
type Parser struct {
	src  io.Reader
	cur  *cursor
	hand int
}

// NewParser wraps an already-open stream. For restartable passes the
// stream should also implement io.Seeker (see Rewind).
func NewParser(r io.Reader) *Parser {
	return &Parser{src: r, cur: newCursor(r)}
}

// Rewind repositions the stream at its start so the hand sequence can
// be derived again. It fails with ErrNotSeekable for non-seekable
// streams.
func (p *Parser) Rewind() error {
	s, ok := p.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("pokerstars: rewind: %w", err)
	}
	p.cur = newCursor(p.src)
	p.hand = 0
	return nil
}

// SeekNextHeader skips forward to the next hand header, if any. It is
// the resynchronization primitive: after a ParseError a caller may
// invoke it to drop the malformed hand and continue with the next one.
func (p *Parser) SeekNextHeader() bool {
	return p.cur.seekNextHeader()
}

// Next parses the next hand from the stream. It returns io.EOF when no
// further header exists, and a *ParseError if a hand is malformed or
// truncated.
func (p *Parser) Next() (*handhistory.HandRecord, error) {
	if !p.cur.seekNextHeader() {
		if err := p.cur.err(); err != nil {
			return nil, fmt.Errorf("pokerstars: read: %w", err)
		}
		return nil, io.EOF
	}
	p.hand++

	h, err := p.parseHeader()
	if err != nil {
		return nil, err
	}
	for _, section := range []func(*handhistory.HandRecord) error{
		p.parseSeats,
		p.parseBlinds,
		p.parseHero,
		p.parsePreflop,
		p.parseFlop,
		p.parseTurn,
		p.parseRiver,
		p.parseShowdown,
	} {
		if err := section(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Hands returns a lazy, forward-only sequence over the remaining hands
// in the stream. The sequence ends at end of input or after yielding a
// parse error; a fresh pass requires an explicit Rewind.
func (p *Parser) Hands() iter.Seq2[*handhistory.HandRecord, error] {
	return func(yield func(*handhistory.HandRecord, error) bool) {
		for {
			h, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(h, err) || err != nil {
				return
			}
		}
	}
}

// ParseFile parses every hand in the file at path. The file handle is
// closed on every exit path, including parse failure.
func ParseFile(path string) ([]*handhistory.HandRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var hands []*handhistory.HandRecord
	p := NewParser(f)
	for {
		h, err := p.Next()
		if errors.Is(err, io.EOF) {
			return hands, nil
		}
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
}

// fail wraps err with the current position for diagnostics.
func (p *Parser) fail(section string, err error) error {
	return &ParseError{Section: section, Hand: p.hand, Line: p.cur.line, Err: err}
}

// failRequired reports a mandatory line that matched nothing,
// distinguishing truncated input from an unrecognized line.
func (p *Parser) failRequired(section string) error {
	if p.cur.eof {
		return p.fail(section, io.ErrUnexpectedEOF)
	}
	return p.fail(section, ErrUnrecognizedLine)
}

// parseHeader consumes the header line and the table-info line that
// follows it. Exactly one of the two header shapes must match.
func (p *Parser) parseHeader() (*handhistory.HandRecord, error) {
	const section = "header"

	var (
		cap *headerCapture
		ok  bool
		err error
	)
	if strings.Contains(p.cur.line, "Tournament") {
		cap, ok, err = matchTournamentHeader(p.cur.line)
	} else {
		cap, ok, err = matchCashHeader(p.cur.line)
	}
	if err != nil {
		return nil, p.fail(section, err)
	}
	if !ok {
		return nil, p.failRequired(section)
	}

	p.cur.advance()
	tbl, ok, err := matchTable(p.cur.line)
	if err != nil {
		return nil, p.fail(section, err)
	}
	if !ok {
		return nil, p.failRequired(section)
	}
	if tbl.button < 1 || tbl.button > tbl.maxPlayers {
		return nil, p.fail(section, fmt.Errorf("button seat %d outside 1..%d", tbl.button, tbl.maxPlayers))
	}

	h := handhistory.NewHandRecord(tbl.maxPlayers)
	h.Ident = cap.ident
	h.TableName = tbl.name
	h.Button = tbl.button - 1
	h.Currency = cap.currency
	h.SmallBlind = cap.sb
	h.BigBlind = cap.bb
	h.Buyin = cap.buyin
	h.Rake = cap.rake
	h.TournamentIdent = cap.tournamentIdent
	h.TournamentLevel = cap.tournamentLevel
	h.Game = cap.game
	h.Limit = cap.limit
	h.GameType = cap.gameType
	h.RawDate = cap.date
	if t, err := time.ParseInLocation(dateLayout, cap.date, roomZone); err == nil {
		h.Date = t
	}

	p.cur.advance()
	return h, nil
}

// parseSeats reads the seat list. At least one seat line is mandatory;
// seat numbers in the text are 1-based and stored 0-based.
func (p *Parser) parseSeats(h *handhistory.HandRecord) error {
	const section = "seats"

	cap, ok, err := matchSeat(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return p.failRequired(section)
	}
	for ok {
		idx := cap.seat - 1
		if idx < 0 || idx >= h.MaxPlayers {
			return p.fail(section, fmt.Errorf("seat %d outside 1..%d", cap.seat, h.MaxPlayers))
		}
		h.Seats[idx] = handhistory.Seat{Name: cap.name, Stack: cap.stack}

		p.cur.advance()
		cap, ok, err = matchSeat(p.cur.line)
		if err != nil {
			return p.fail(section, err)
		}
	}

	for strings.Contains(p.cur.line, "will be allowed to play") {
		p.cur.advance()
	}
	return nil
}

// parseBlinds reads the forced-bet block. The first line must be a
// blind or ante post; trailing sitout notices are skipped.
func (p *Parser) parseBlinds(h *handhistory.HandRecord) error {
	const section = "blinds"

	cap, ok, err := matchBlind(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return p.failRequired(section)
	}
	for ok {
		idx, found := h.SeatIndex(cap.name)
		if !found {
			return p.fail(section, fmt.Errorf("%w: %q", ErrUnknownPlayer, cap.name))
		}
		h.Blinds = append(h.Blinds, handhistory.PlayerAction{
			Seat:   idx,
			Action: cap.kind,
			Amount: cap.amount,
		})

		p.cur.advance()
		cap, ok, err = matchBlind(p.cur.line)
		if err != nil {
			return p.fail(section, err)
		}
	}

	for strings.Contains(p.cur.line, "sits out") {
		p.cur.advance()
	}
	return nil
}

// parseHero records the hero's hole cards if a deal line is present.
// Both the marker and the deal line are optional.
func (p *Parser) parseHero(h *handhistory.HandRecord) error {
	const section = "hole cards"

	if strings.Contains(p.cur.line, holeCardsMarker) {
		p.cur.advance()
	}
	cap, ok, err := matchHero(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return nil
	}
	idx, found := h.SeatIndex(cap.name)
	if !found {
		return p.fail(section, fmt.Errorf("%w: %q", ErrUnknownPlayer, cap.name))
	}
	combo := cap.combo
	h.Seats[idx].HoleCards = &combo
	p.cur.advance()
	return nil
}

func (p *Parser) parsePreflop(h *handhistory.HandRecord) error {
	actions, err := p.parseStreet(h, "preflop")
	if err != nil {
		return err
	}
	h.Preflop = actions
	return nil
}

func (p *Parser) parseFlop(h *handhistory.HandRecord) error {
	const section = "flop"

	cards, ok, err := matchFlop(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return nil
	}
	if err := h.Board.DealFlop(cards[0], cards[1], cards[2]); err != nil {
		return p.fail(section, err)
	}
	p.cur.advance()

	actions, err := p.parseStreet(h, section)
	if err != nil {
		return err
	}
	h.Flop = &handhistory.Street{Actions: actions}
	return nil
}

func (p *Parser) parseTurn(h *handhistory.HandRecord) error {
	const section = "turn"

	card, ok, err := matchTurn(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return nil
	}
	if err := h.Board.DealTurn(card); err != nil {
		return p.fail(section, err)
	}
	p.cur.advance()

	actions, err := p.parseStreet(h, section)
	if err != nil {
		return err
	}
	h.Turn = &handhistory.Street{Actions: actions}
	return nil
}

func (p *Parser) parseRiver(h *handhistory.HandRecord) error {
	const section = "river"

	card, ok, err := matchRiver(p.cur.line)
	if err != nil {
		return p.fail(section, err)
	}
	if !ok {
		return nil
	}
	if err := h.Board.DealRiver(card); err != nil {
		return p.fail(section, err)
	}
	p.cur.advance()

	actions, err := p.parseStreet(h, section)
	if err != nil {
		return err
	}
	h.River = &handhistory.Street{Actions: actions}
	return nil
}

// parseStreet is the shared routine for the betting rounds: it consumes
// action lines while they match and resolves every actor against the
// seat list. Zero actions is legal.
func (p *Parser) parseStreet(h *handhistory.HandRecord, section string) ([]handhistory.PlayerAction, error) {
	actions := []handhistory.PlayerAction{}
	for {
		cap, ok, err := matchAction(p.cur.line)
		if err != nil {
			return nil, p.fail(section, err)
		}
		if !ok {
			return actions, nil
		}
		idx, found := h.SeatIndex(cap.name)
		if !found {
			return nil, p.fail(section, fmt.Errorf("%w: %q", ErrUnknownPlayer, cap.name))
		}
		actions = append(actions, handhistory.PlayerAction{
			Seat:   idx,
			Action: cap.action,
			Amount: cap.amount,
		})
		p.cur.advance()
	}
}

// parseShowdown records revealed hole cards when a showdown section is
// present and consumes the remaining show/muck/collect lines.
func (p *Parser) parseShowdown(h *handhistory.HandRecord) error {
	const section = "showdown"

	if !strings.Contains(p.cur.line, showdownMarker) {
		return nil
	}
	h.Showdown = true
	p.cur.advance()

	for {
		cap, ok, err := matchShows(p.cur.line)
		if err != nil {
			return p.fail(section, err)
		}
		if !ok {
			break
		}
		idx, found := h.SeatIndex(cap.name)
		if !found {
			return p.fail(section, fmt.Errorf("%w: %q", ErrUnknownPlayer, cap.name))
		}
		combo := cap.combo
		h.Seats[idx].HoleCards = &combo
		p.cur.advance()
	}

	for strings.Contains(p.cur.line, "collected") ||
		strings.Contains(p.cur.line, "mucks") ||
		strings.Contains(p.cur.line, "doesn't show") ||
		strings.Contains(p.cur.line, ": shows") {
		p.cur.advance()
	}
	return nil
}
