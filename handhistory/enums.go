package handhistory

import "fmt"

// Action is the kind of a recorded player action. The set is closed:
// room parsers map every vendor verb onto one of these values or fail.
type Action int

const (
	ActionBlind Action = iota
	ActionAnte
	ActionCheck
	ActionFold
	ActionCall
	ActionBet
	ActionRaise
)

// String returns a lowercase name for the action
func (a Action) String() string {
	switch a {
	case ActionBlind:
		return "blind"
	case ActionAnte:
		return "ante"
	case ActionCheck:
		return "check"
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	default:
		return "?"
	}
}

// HasAmount reports whether actions of this kind carry an amount.
func (a Action) HasAmount() bool {
	switch a {
	case ActionBlind, ActionAnte, ActionBet, ActionRaise:
		return true
	default:
		return false
	}
}

// ActionFromVerb maps a vendor action verb ("checks", "raises", ...) to
// its Action value.
func ActionFromVerb(verb string) (Action, error) {
	switch verb {
	case "checks":
		return ActionCheck, nil
	case "folds":
		return ActionFold, nil
	case "calls":
		return ActionCall, nil
	case "bets":
		return ActionBet, nil
	case "raises":
		return ActionRaise, nil
	default:
		return 0, fmt.Errorf("handhistory: unknown action verb %q", verb)
	}
}

// Game is the poker variant being played.
type Game int

const (
	GameHoldem Game = iota
	GameOmaha
	GameOmahaHiLo
	GameRazz
	GameStud
)

func (g Game) String() string {
	switch g {
	case GameHoldem:
		return "Hold'em"
	case GameOmaha:
		return "Omaha"
	case GameOmahaHiLo:
		return "Omaha Hi/Lo"
	case GameRazz:
		return "Razz"
	case GameStud:
		return "7 Card Stud"
	default:
		return "?"
	}
}

// GameFromText maps the vendor game name to a Game value.
func GameFromText(text string) (Game, error) {
	switch text {
	case "Hold'em":
		return GameHoldem, nil
	case "Omaha":
		return GameOmaha, nil
	case "Omaha Hi/Lo":
		return GameOmahaHiLo, nil
	case "Razz":
		return GameRazz, nil
	case "7 Card Stud":
		return GameStud, nil
	default:
		return 0, fmt.Errorf("handhistory: unknown game %q", text)
	}
}

// Limit is the betting structure.
type Limit int

const (
	LimitNo Limit = iota
	LimitPot
	LimitFixed
)

func (l Limit) String() string {
	switch l {
	case LimitNo:
		return "No Limit"
	case LimitPot:
		return "Pot Limit"
	case LimitFixed:
		return "Limit"
	default:
		return "?"
	}
}

// LimitFromText maps the vendor limit name to a Limit value.
func LimitFromText(text string) (Limit, error) {
	switch text {
	case "No Limit":
		return LimitNo, nil
	case "Pot Limit":
		return LimitPot, nil
	case "Limit", "Fixed Limit":
		return LimitFixed, nil
	default:
		return 0, fmt.Errorf("handhistory: unknown limit %q", text)
	}
}

// GameType distinguishes cash games from tournaments.
type GameType int

const (
	GameTypeCash GameType = iota
	GameTypeTournament
	GameTypeSNG
)

func (t GameType) String() string {
	switch t {
	case GameTypeCash:
		return "Cash"
	case GameTypeTournament:
		return "Tournament"
	case GameTypeSNG:
		return "SNG"
	default:
		return "?"
	}
}

// Currency is the money denomination of a hand. Tournament chip amounts
// still carry the buyin currency from the header.
type Currency int

const (
	CurrencyUSD Currency = iota
	CurrencyEUR
	CurrencyGBP
)

func (c Currency) String() string {
	switch c {
	case CurrencyUSD:
		return "USD"
	case CurrencyEUR:
		return "EUR"
	case CurrencyGBP:
		return "GBP"
	default:
		return "?"
	}
}

// CurrencyFromText maps a vendor currency code to a Currency value.
func CurrencyFromText(text string) (Currency, error) {
	switch text {
	case "USD":
		return CurrencyUSD, nil
	case "EUR":
		return CurrencyEUR, nil
	case "GBP":
		return CurrencyGBP, nil
	default:
		return 0, fmt.Errorf("handhistory: unknown currency %q", text)
	}
}
