package eragen

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/dmitrymomot/eradate/core/logger"
	"github.com/dmitrymomot/eradate/pkg/era"
)

// Build turns extracted records into a valid table: records are sorted by start
// date, block-listed names and repeated dates or names are dropped, each era gets
// a unique native abbreviation, and repeated romanized names of older eras are
// suffixed with their start year.
func Build(records []era.Record, blocklist []string, log *slog.Logger) (*era.Table, error) {
	if log == nil {
		log = slog.Default()
	}

	blocked := make(map[string]struct{}, len(blocklist))
	for _, name := range blocklist {
		blocked[name] = struct{}{}
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b era.Record) int {
		return cmp.Compare(a.StartDate, b.StartDate)
	})

	kept := make([]era.Record, 0, len(sorted))
	seenName := make(map[string]struct{}, len(sorted))
	for _, rec := range sorted {
		if _, ok := blocked[rec.NameJA]; ok {
			continue
		}
		if _, ok := seenName[rec.NameJA]; ok {
			log.Warn("duplicate era name dropped", logger.Era(rec.NameJA), logger.Key("start_date", rec.StartDate))
			continue
		}
		if n := len(kept); n > 0 && kept[n-1].StartDate == rec.StartDate {
			log.Warn("duplicate start date dropped", logger.Era(rec.NameJA), logger.Key("start_date", rec.StartDate))
			continue
		}
		seenName[rec.NameJA] = struct{}{}
		rec.AbbrJA = ""
		kept = append(kept, rec)
	}
	if len(kept) == 0 {
		return nil, ErrNoEras
	}

	if err := assignAbbreviations(kept); err != nil {
		return nil, err
	}
	disambiguateRomaji(kept)

	return era.NewTable(kept)
}

// assignAbbreviations gives recent eras first pick of the characters in their name.
// AbbrJA is only set when it differs from the first character.
func assignAbbreviations(records []era.Record) error {
	used := make(map[string]struct{}, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		assigned := false
		for j, r := range []rune(records[i].NameJA) {
			c := string(r)
			if _, ok := used[c]; ok {
				continue
			}
			used[c] = struct{}{}
			if j > 0 {
				records[i].AbbrJA = c
			}
			assigned = true
			break
		}
		if !assigned {
			return fmt.Errorf("%w: %s", ErrAbbrExhausted, records[i].NameJA)
		}
	}
	return nil
}

// disambiguateRomaji keeps the romanized name of the most recent era and appends
// the start year to older eras that share it, e.g. Kōan-1278.
func disambiguateRomaji(records []era.Record) {
	seen := make(map[string]struct{}, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		name := records[i].NameEN
		if _, ok := seen[name]; ok {
			records[i].NameEN = name + "-" + yearOf(records[i].StartDate)
		}
		seen[name] = struct{}{}
	}
}

func yearOf(date string) string {
	if len(date) < 4 {
		return date
	}
	n, err := strconv.Atoi(date[:4])
	if err != nil {
		return date[:4]
	}
	return strconv.Itoa(n)
}

// Run executes the whole pipeline: fetch, extract, build and write.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	return run(ctx, cfg, NewFetcher(cfg, log), os.Stdout, log)
}

type fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

func run(ctx context.Context, cfg Config, f fetcher, stdout io.Writer, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("eragen"))

	page, err := f.Fetch(ctx, cfg.SourceURL)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "era list downloaded", logger.URL(cfg.SourceURL), logger.Count("bytes", len(page)))

	records, err := Extract(bytes.NewReader(page), cfg.ASCII)
	if err != nil {
		return err
	}

	table, err := Build(records, cfg.Blocklist, log)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := table.WriteJSON(&buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	w, err := NewWriter(ctx, cfg.Output, cfg.AWSRegion, stdout)
	if err != nil {
		return err
	}
	if err := w.Write(ctx, buf.Bytes()); err != nil {
		return err
	}

	log.InfoContext(ctx, "era table written",
		logger.Count("eras", table.Len()),
		logger.Count("rows", len(records)),
		logger.Key("output", cfg.Output),
	)
	return nil
}
