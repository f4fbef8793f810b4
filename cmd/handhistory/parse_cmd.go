package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/aolsux/poker/pokerstars"
)

// ParseCmd parses one or more log files and reports how many hands each
// contains. Files are independent streams, so they are parsed
// concurrently; each file still gets its own single-threaded parser.
type ParseCmd struct {
	Files         []string `arg:"" name:"file" help:"Hand-history log files" type:"existingfile"`
	SkipMalformed bool     `help:"Resynchronize to the next hand after a parse failure instead of aborting the file"`
	Concurrency   int      `help:"Maximum number of files parsed at once" default:"4"`
}

type fileSummary struct {
	path    string
	hands   int
	skipped int
}

func (c ParseCmd) Run() error {
	summaries := make([]fileSummary, len(c.Files))

	g := new(errgroup.Group)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Files {
		g.Go(func() error {
			summary, err := summarizeFile(path, c.SkipMalformed)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, s := range summaries {
		total += s.hands
		fmt.Printf("%s: %d hands", s.path, s.hands)
		if s.skipped > 0 {
			fmt.Printf(" (%d malformed skipped)", s.skipped)
		}
		fmt.Println()
	}
	if len(summaries) > 1 {
		fmt.Printf("total: %d hands\n", total)
	}
	return nil
}

func summarizeFile(path string, skipMalformed bool) (fileSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileSummary{}, err
	}
	defer f.Close()

	summary := fileSummary{path: path}
	p := pokerstars.NewParser(f)
	for {
		_, err := p.Next()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		var perr *pokerstars.ParseError
		if errors.As(err, &perr) && skipMalformed {
			summary.skipped++
			log.Warn("skipping malformed hand",
				"file", path,
				"hand", perr.Hand,
				"section", perr.Section,
				"line", perr.Line)
			if !p.SeekNextHeader() {
				return summary, nil
			}
			continue
		}
		if err != nil {
			return summary, err
		}
		summary.hands++
	}
}
