package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Encode writes one hand to the writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes one hand and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// WriteSession writes a sequence of hands as a sectioned PHH session,
// one [hand_N] table per hand. Encoding each hand as a named table
// keeps its metadata subtable nested under the right section.
func WriteSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		section := map[string]*HandHistory{fmt.Sprintf("hand_%d", i+1): hand}
		enc := toml.NewEncoder(w)
		enc.Indent = "\t"
		if err := enc.Encode(section); err != nil {
			return fmt.Errorf("phh: encode hand %d: %w", i+1, err)
		}
	}
	return nil
}
