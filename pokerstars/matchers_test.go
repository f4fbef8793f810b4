package pokerstars

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aolsux/poker/handhistory"
)

func TestMatchTournamentHeader(t *testing.T) {
	line := `PokerStars Hand #163861317: Tournament #831469157, $0.91+$0.09 USD Hold'em No Limit - Level I (10/20) - 2015/01/01 17:00:00 CET [2015/01/01 12:00:00 ET]`

	cap, ok, err := matchTournamentHeader(line)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "163861317", cap.ident)
	assert.Equal(t, "831469157", cap.tournamentIdent)
	assert.Equal(t, "I", cap.tournamentLevel)
	assert.Equal(t, handhistory.GameTypeTournament, cap.gameType)
	assert.Equal(t, handhistory.GameHoldem, cap.game)
	assert.Equal(t, handhistory.LimitNo, cap.limit)
	assert.Equal(t, handhistory.CurrencyUSD, cap.currency)
	assert.Zero(t, cap.buyin.Cmp(big.NewRat(91, 100)))
	assert.Zero(t, cap.rake.Cmp(big.NewRat(9, 100)))
	assert.Zero(t, cap.sb.Cmp(big.NewRat(10, 1)))
	assert.Zero(t, cap.bb.Cmp(big.NewRat(20, 1)))
	assert.Equal(t, "2015/01/01 12:00:00 ET", cap.date)
}

func TestMatchCashHeader(t *testing.T) {
	line := `PokerStars Hand #105024000105:  Hold'em No Limit ($0.02/$0.05 USD) - 2013/10/04 19:17:33 ET`

	cap, ok, err := matchCashHeader(line)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "105024000105", cap.ident)
	assert.Equal(t, handhistory.GameTypeCash, cap.gameType)
	assert.Equal(t, handhistory.GameHoldem, cap.game)
	assert.Equal(t, handhistory.LimitNo, cap.limit)
	assert.Equal(t, handhistory.CurrencyUSD, cap.currency)
	assert.Zero(t, cap.sb.Cmp(big.NewRat(1, 50)))
	assert.Zero(t, cap.bb.Cmp(big.NewRat(1, 20)))
	assert.Nil(t, cap.buyin)
	assert.Equal(t, "2013/10/04 19:17:33 ET", cap.date)
}

func TestHeadersDoNotCrossMatch(t *testing.T) {
	tournament := `PokerStars Hand #1: Tournament #2, $0.91+$0.09 USD Hold'em No Limit - Level I (10/20) - a [2015/01/01 12:00:00 ET]`
	cash := `PokerStars Hand #1:  Hold'em No Limit ($0.02/$0.05 USD) - 2013/10/04 19:17:33 ET`

	_, ok, err := matchCashHeader(tournament)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = matchTournamentHeader(cash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchTable(t *testing.T) {
	cap, ok, err := matchTable(`Table '831469157 1' 9-max Seat #3 is the button`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "831469157 1", cap.name)
	assert.Equal(t, 9, cap.maxPlayers)
	assert.Equal(t, 3, cap.button)

	_, ok, err = matchTable(`Table 'x' 9-max`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchSeat(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		ok    bool
		seat  int
		who   string
		stack *big.Rat
	}{
		{
			name:  "tournament chips",
			line:  "Seat 1: flettl2 (1500 in chips)",
			ok:    true,
			seat:  1,
			who:   "flettl2",
			stack: big.NewRat(1500, 1),
		},
		{
			name:  "cash with dollar sign",
			line:  "Seat 2: Bob ($5.15 in chips)",
			ok:    true,
			seat:  2,
			who:   "Bob",
			stack: big.NewRat(515, 100),
		},
		{
			name:  "sitting out suffix",
			line:  "Seat 6: W SERENA ($0.97 in chips) is sitting out",
			ok:    true,
			seat:  6,
			who:   "W SERENA",
			stack: big.NewRat(97, 100),
		},
		{
			name: "summary seat line is not a seat",
			line: "Seat 1: flettl2 (button) collected (90)",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap, ok, err := matchSeat(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.seat, cap.seat)
			assert.Equal(t, tt.who, cap.name)
			assert.Zero(t, cap.stack.Cmp(tt.stack))
		})
	}
}

func TestMatchBlind(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		who    string
		kind   handhistory.Action
		amount *big.Rat
	}{
		{
			name:   "small blind",
			line:   "santy312: posts small blind 10",
			ok:     true,
			who:    "santy312",
			kind:   handhistory.ActionBlind,
			amount: big.NewRat(10, 1),
		},
		{
			name:   "big blind with currency",
			line:   "Alice: posts big blind $0.05",
			ok:     true,
			who:    "Alice",
			kind:   handhistory.ActionBlind,
			amount: big.NewRat(1, 20),
		},
		{
			name:   "dead blinds",
			line:   "Bob: posts small & big blinds $0.75",
			ok:     true,
			who:    "Bob",
			kind:   handhistory.ActionBlind,
			amount: big.NewRat(3, 4),
		},
		{
			name:   "ante",
			line:   "flettl2: posts the ante 2",
			ok:     true,
			who:    "flettl2",
			kind:   handhistory.ActionAnte,
			amount: big.NewRat(2, 1),
		},
		{
			name: "ordinary action is not a blind",
			line: "Alice: raises $20 to $30",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap, ok, err := matchBlind(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.who, cap.name)
			assert.Equal(t, tt.kind, cap.kind)
			assert.Zero(t, cap.amount.Cmp(tt.amount))
		})
	}
}

func TestMatchHero(t *testing.T) {
	cap, ok, err := matchHero("Dealt to flettl2 [Ah Kd]")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "flettl2", cap.name)
	assert.Equal(t, "Ah Kd", cap.combo.String())

	// invalid card token is a hard error, not a silent skip
	_, _, err = matchHero("Dealt to flettl2 [Xx Kd]")
	require.Error(t, err)
}

func TestMatchAction(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		who    string
		action handhistory.Action
		amount *big.Rat
	}{
		{
			name:   "check",
			line:   "flavio766: checks",
			ok:     true,
			who:    "flavio766",
			action: handhistory.ActionCheck,
		},
		{
			name:   "fold",
			line:   "santy312: folds",
			ok:     true,
			who:    "santy312",
			action: handhistory.ActionFold,
		},
		{
			name:   "call carries no amount",
			line:   "flavio766: calls 20",
			ok:     true,
			who:    "flavio766",
			action: handhistory.ActionCall,
		},
		{
			name:   "bet",
			line:   "Alice: bets $0.10",
			ok:     true,
			who:    "Alice",
			action: handhistory.ActionBet,
			amount: big.NewRat(1, 10),
		},
		{
			name:   "raise records the to amount",
			line:   "Alice: raises $20 to $30",
			ok:     true,
			who:    "Alice",
			action: handhistory.ActionRaise,
			amount: big.NewRat(30, 1),
		},
		{
			name:   "bare raise keeps the stated amount",
			line:   "Alice: raises 40",
			ok:     true,
			who:    "Alice",
			action: handhistory.ActionRaise,
			amount: big.NewRat(40, 1),
		},
		{
			name:   "all-in suffix",
			line:   "Bob: bets 120 and is all-in",
			ok:     true,
			who:    "Bob",
			action: handhistory.ActionBet,
			amount: big.NewRat(120, 1),
		},
		{
			name: "blind post is not a street action",
			line: "santy312: posts small blind 10",
			ok:   false,
		},
		{
			name: "uncalled bet notice is not an action",
			line: "Uncalled bet ($0.03) returned to Alice",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap, ok, err := matchAction(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.who, cap.name)
			assert.Equal(t, tt.action, cap.action)
			if tt.amount == nil {
				assert.Nil(t, cap.amount)
			} else {
				require.NotNil(t, cap.amount)
				assert.Zero(t, cap.amount.Cmp(tt.amount))
			}
		})
	}
}

func TestMatchBoards(t *testing.T) {
	cards, ok, err := matchFlop("*** FLOP *** [Ah 7d 5d]")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cards, 3)
	assert.Equal(t, "Ah", cards[0].String())
	assert.Equal(t, "7d", cards[1].String())
	assert.Equal(t, "5d", cards[2].String())

	card, ok, err := matchTurn("*** TURN *** [Ah 7d 5d] [Qh]")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Qh", card.String())

	card, ok, err = matchRiver("*** RIVER *** [Ah 7d 5d Qh] [2s]")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2s", card.String())

	// markers do not match each other's shapes
	_, ok, err = matchTurn("*** FLOP *** [Ah 7d 5d]")
	require.NoError(t, err)
	assert.False(t, ok)

	// an unrecognized token inside a marker is a hard error
	_, _, err = matchFlop("*** FLOP *** [Ah 7d 5x]")
	require.Error(t, err)
}

func TestMatchShows(t *testing.T) {
	cap, ok, err := matchShows("flavio766: shows [8d 9d] (a pair of Eights)")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "flavio766", cap.name)
	assert.Equal(t, "8d 9d", cap.combo.String())

	_, ok, err = matchShows("flavio766: mucks hand")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRat(t *testing.T) {
	r, err := parseRat("$0.05")
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(big.NewRat(1, 20)))

	r, err = parseRat("20")
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(big.NewRat(20, 1)))

	// exactness: 20 is 20/1, not 19.999999...
	assert.Equal(t, "20", r.RatString())

	_, err = parseRat("")
	require.Error(t, err)
}
