package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aolsux/poker/cmd/handhistory/shared"
	"github.com/aolsux/poker/internal/fileutil"
	"github.com/aolsux/poker/internal/phh"
	"github.com/aolsux/poker/pokerstars"
)

// ExportCmd converts a vendor log into a sectioned PHH session file.
type ExportCmd struct {
	File   string `arg:"" name:"file" help:"Hand-history log file" type:"existingfile"`
	Output string `short:"o" help:"Output path (default: input with a .phhs extension)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c ExportCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	hands, err := pokerstars.ParseFile(c.File)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands found in %s", c.File)
	}

	converted := make([]*phh.HandHistory, 0, len(hands))
	for i, hand := range hands {
		out, err := phh.FromRecord(hand)
		if err != nil {
			return fmt.Errorf("converting hand %d: %w", i+1, err)
		}
		logger.Debug().Str("hand", hand.Ident).Int("ordinal", i+1).Msg("converted hand")
		converted = append(converted, out)
	}

	var buf bytes.Buffer
	if err := phh.WriteSession(&buf, converted); err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.File, ".txt") + ".phhs"
	}
	if err := fileutil.WriteFileAtomic(output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	logger.Info().
		Int("hands", len(converted)).
		Str("output", output).
		Msg("exported session")
	return nil
}
