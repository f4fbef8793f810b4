package pokerstars

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/aolsux/poker/handhistory"
	"github.com/aolsux/poker/poker"
)

// One pattern per recognizable line shape. Matchers are pure: they take
// the current line and return a structured capture or no match. A line
// that matches a shape but carries an invalid token (bad card, bad
// amount) is reported as an error by the matcher; deciding whether a
// non-match is fatal is the section parser's job.
var (
	tournamentHeaderRE = regexp.MustCompile(
		`^PokerStars Hand #(?P<ident>\d+): ` +
			`Tournament #(?P<tournament>\d+), ` +
			`\$(?P<buyin>\d+\.\d{2})\+\$(?P<rake>\d+\.\d{2}) ` +
			`(?P<currency>[A-Z]{3}) ` +
			`(?P<game>.+?) (?P<limit>No Limit|Pot Limit|Limit) ` +
			`- Level (?P<level>\S+) ` +
			`\((?P<sb>[\d.]+)/(?P<bb>[\d.]+)\) ` +
			`- .+ \[(?P<date>.+)\]$`)

	cashHeaderRE = regexp.MustCompile(
		`^PokerStars Hand #(?P<ident>\d+):  ` +
			`(?P<game>.+?) (?P<limit>No Limit|Pot Limit|Limit) ` +
			`\(\$(?P<sb>[\d.]+)/\$(?P<bb>[\d.]+) (?P<currency>[A-Z]{3})\) ` +
			`- (?P<date>.+)$`)

	tableRE = regexp.MustCompile(
		`^Table '(?P<name>.+)' (?P<seats>\d+)-max Seat #(?P<button>\d+) is the button$`)

	seatRE = regexp.MustCompile(
		`^Seat (?P<seat>\d+): (?P<name>.+) \(\$?(?P<stack>[\d.]+) in chips\)`)

	blindRE = regexp.MustCompile(
		`^(?P<name>.+): posts (?P<kind>small blind|big blind|small & big blinds|the ante) \$?(?P<amount>[\d.]+)`)

	heroRE = regexp.MustCompile(
		`^Dealt to (?P<name>.+) \[(?P<card1>..) (?P<card2>..)\]$`)

	actionRE = regexp.MustCompile(
		`^(?P<name>.+?): (?P<verb>checks|folds|calls|bets|raises)(?: \$?(?P<amount>[\d.]+))?(?: to \$?(?P<to>[\d.]+))?`)

	flopRE = regexp.MustCompile(
		`^\*\*\* FLOP \*\*\* \[(?P<card1>..) (?P<card2>..) (?P<card3>..)\]`)

	turnRE = regexp.MustCompile(
		`^\*\*\* TURN \*\*\* \[.{8}\] \[(?P<card>..)\]`)

	riverRE = regexp.MustCompile(
		`^\*\*\* RIVER \*\*\* \[.{11}\] \[(?P<card>..)\]`)

	showsRE = regexp.MustCompile(
		`^(?P<name>.+): shows \[(?P<card1>..) (?P<card2>..)\]`)
)

const (
	holeCardsMarker = "*** HOLE CARDS ***"
	showdownMarker  = "*** SHOW DOWN ***"
)

// namedCaptures runs a pattern against a line and returns the named
// groups, or ok=false if the line does not match.
func namedCaptures(re *regexp.Regexp, line string) (map[string]string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	caps := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			caps[name] = m[i]
		}
	}
	return caps, true
}

// parseRat converts a captured amount to an exact rational. An optional
// currency-symbol prefix is stripped before conversion.
func parseRat(s string) (*big.Rat, error) {
	s = strings.TrimPrefix(s, "$")
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("pokerstars: invalid amount %q", s)
	}
	return r, nil
}

type headerCapture struct {
	ident           string
	gameType        handhistory.GameType
	game            handhistory.Game
	limit           handhistory.Limit
	currency        handhistory.Currency
	sb, bb          *big.Rat
	buyin, rake     *big.Rat
	tournamentIdent string
	tournamentLevel string
	date            string
}

func matchTournamentHeader(line string) (*headerCapture, bool, error) {
	caps, ok := namedCaptures(tournamentHeaderRE, line)
	if !ok {
		return nil, false, nil
	}
	h := &headerCapture{
		ident:           caps["ident"],
		gameType:        handhistory.GameTypeTournament,
		tournamentIdent: caps["tournament"],
		tournamentLevel: caps["level"],
		date:            caps["date"],
	}
	var err error
	if h.game, err = handhistory.GameFromText(caps["game"]); err != nil {
		return nil, false, err
	}
	if h.limit, err = handhistory.LimitFromText(caps["limit"]); err != nil {
		return nil, false, err
	}
	if h.currency, err = handhistory.CurrencyFromText(caps["currency"]); err != nil {
		return nil, false, err
	}
	for _, f := range []struct {
		dst **big.Rat
		src string
	}{
		{&h.buyin, caps["buyin"]},
		{&h.rake, caps["rake"]},
		{&h.sb, caps["sb"]},
		{&h.bb, caps["bb"]},
	} {
		if *f.dst, err = parseRat(f.src); err != nil {
			return nil, false, err
		}
	}
	return h, true, nil
}

func matchCashHeader(line string) (*headerCapture, bool, error) {
	caps, ok := namedCaptures(cashHeaderRE, line)
	if !ok {
		return nil, false, nil
	}
	h := &headerCapture{
		ident:    caps["ident"],
		gameType: handhistory.GameTypeCash,
		date:     caps["date"],
	}
	var err error
	if h.game, err = handhistory.GameFromText(caps["game"]); err != nil {
		return nil, false, err
	}
	if h.limit, err = handhistory.LimitFromText(caps["limit"]); err != nil {
		return nil, false, err
	}
	if h.currency, err = handhistory.CurrencyFromText(caps["currency"]); err != nil {
		return nil, false, err
	}
	if h.sb, err = parseRat(caps["sb"]); err != nil {
		return nil, false, err
	}
	if h.bb, err = parseRat(caps["bb"]); err != nil {
		return nil, false, err
	}
	return h, true, nil
}

type tableCapture struct {
	name       string
	maxPlayers int
	button     int // 1-based as printed
}

func matchTable(line string) (tableCapture, bool, error) {
	caps, ok := namedCaptures(tableRE, line)
	if !ok {
		return tableCapture{}, false, nil
	}
	seats, err := strconv.Atoi(caps["seats"])
	if err != nil {
		return tableCapture{}, false, fmt.Errorf("pokerstars: invalid seat count %q", caps["seats"])
	}
	button, err := strconv.Atoi(caps["button"])
	if err != nil {
		return tableCapture{}, false, fmt.Errorf("pokerstars: invalid button seat %q", caps["button"])
	}
	return tableCapture{name: caps["name"], maxPlayers: seats, button: button}, true, nil
}

type seatCapture struct {
	seat  int // 1-based as printed
	name  string
	stack *big.Rat
}

func matchSeat(line string) (seatCapture, bool, error) {
	caps, ok := namedCaptures(seatRE, line)
	if !ok {
		return seatCapture{}, false, nil
	}
	seat, err := strconv.Atoi(caps["seat"])
	if err != nil {
		return seatCapture{}, false, fmt.Errorf("pokerstars: invalid seat number %q", caps["seat"])
	}
	stack, err := parseRat(caps["stack"])
	if err != nil {
		return seatCapture{}, false, err
	}
	return seatCapture{seat: seat, name: caps["name"], stack: stack}, true, nil
}

type blindCapture struct {
	name   string
	kind   handhistory.Action // ActionBlind or ActionAnte
	amount *big.Rat
}

func matchBlind(line string) (blindCapture, bool, error) {
	caps, ok := namedCaptures(blindRE, line)
	if !ok {
		return blindCapture{}, false, nil
	}
	kind := handhistory.ActionBlind
	if caps["kind"] == "the ante" {
		kind = handhistory.ActionAnte
	}
	amount, err := parseRat(caps["amount"])
	if err != nil {
		return blindCapture{}, false, err
	}
	return blindCapture{name: caps["name"], kind: kind, amount: amount}, true, nil
}

type heroCapture struct {
	name  string
	combo poker.Combo
}

func matchHero(line string) (heroCapture, bool, error) {
	caps, ok := namedCaptures(heroRE, line)
	if !ok {
		return heroCapture{}, false, nil
	}
	combo, err := parseCombo(caps["card1"], caps["card2"])
	if err != nil {
		return heroCapture{}, false, err
	}
	return heroCapture{name: caps["name"], combo: combo}, true, nil
}

type actionCapture struct {
	name   string
	action handhistory.Action
	amount *big.Rat
}

// matchAction captures a voluntary street action. For raises the amount
// is the "to" total when the line carries one, otherwise the single
// stated amount; check, fold and call carry no amount.
func matchAction(line string) (actionCapture, bool, error) {
	caps, ok := namedCaptures(actionRE, line)
	if !ok {
		return actionCapture{}, false, nil
	}
	action, err := handhistory.ActionFromVerb(caps["verb"])
	if err != nil {
		return actionCapture{}, false, err
	}
	out := actionCapture{name: caps["name"], action: action}
	if action.HasAmount() {
		raw := caps["amount"]
		if action == handhistory.ActionRaise && caps["to"] != "" {
			raw = caps["to"]
		}
		if raw == "" {
			return actionCapture{}, false, fmt.Errorf("pokerstars: %s without amount", action)
		}
		if out.amount, err = parseRat(raw); err != nil {
			return actionCapture{}, false, err
		}
	}
	return out, true, nil
}

func matchFlop(line string) ([]poker.Card, bool, error) {
	caps, ok := namedCaptures(flopRE, line)
	if !ok {
		return nil, false, nil
	}
	cards := make([]poker.Card, 0, 3)
	for _, key := range []string{"card1", "card2", "card3"} {
		card, err := poker.ParseCard(caps[key])
		if err != nil {
			return nil, false, err
		}
		cards = append(cards, card)
	}
	return cards, true, nil
}

func matchTurn(line string) (poker.Card, bool, error) {
	return matchSingleBoardCard(turnRE, line)
}

func matchRiver(line string) (poker.Card, bool, error) {
	return matchSingleBoardCard(riverRE, line)
}

func matchSingleBoardCard(re *regexp.Regexp, line string) (poker.Card, bool, error) {
	caps, ok := namedCaptures(re, line)
	if !ok {
		return poker.Card{}, false, nil
	}
	card, err := poker.ParseCard(caps["card"])
	if err != nil {
		return poker.Card{}, false, err
	}
	return card, true, nil
}

type showsCapture struct {
	name  string
	combo poker.Combo
}

func matchShows(line string) (showsCapture, bool, error) {
	caps, ok := namedCaptures(showsRE, line)
	if !ok {
		return showsCapture{}, false, nil
	}
	combo, err := parseCombo(caps["card1"], caps["card2"])
	if err != nil {
		return showsCapture{}, false, err
	}
	return showsCapture{name: caps["name"], combo: combo}, true, nil
}

func parseCombo(t1, t2 string) (poker.Combo, error) {
	c1, err := poker.ParseCard(t1)
	if err != nil {
		return poker.Combo{}, err
	}
	c2, err := poker.ParseCard(t2)
	if err != nil {
		return poker.Combo{}, err
	}
	return poker.Combo{First: c1, Second: c2}, nil
}
