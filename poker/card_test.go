package poker

import "testing"

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{
			name:     "ace of hearts",
			input:    "Ah",
			expected: Card{Rank: Ace, Suit: Hearts},
		},
		{
			name:     "ten of diamonds",
			input:    "Td",
			expected: Card{Rank: Ten, Suit: Diamonds},
		},
		{
			name:     "deuce of spades",
			input:    "2s",
			expected: Card{Rank: Two, Suit: Spades},
		},
		{
			name:     "nine of clubs",
			input:    "9c",
			expected: Card{Rank: Nine, Suit: Clubs},
		},
		{
			name:    "invalid rank",
			input:   "Xh",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "lowercase rank rejected",
			input:   "ah",
			wantErr: true,
		},
		{
			name:    "uppercase suit rejected",
			input:   "AH",
			wantErr: true,
		},
		{
			name:    "one rank is not ten",
			input:   "10",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "Ahh",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	tokens := []string{"Ah", "Kd", "Qc", "Js", "Ts", "9h", "2c"}
	for _, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", token, err)
		}
		if card.String() != token {
			t.Errorf("round trip of %q produced %q", token, card.String())
		}
	}
}

func TestComboString(t *testing.T) {
	combo := Combo{First: MustParseCard("Ah"), Second: MustParseCard("Kd")}
	if combo.String() != "Ah Kd" {
		t.Errorf("combo string = %q, want %q", combo.String(), "Ah Kd")
	}
}

func TestSuitIsRed(t *testing.T) {
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs should not be red")
	}
}
