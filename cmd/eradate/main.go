package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dmitrymomot/eradate/core/config"
	"github.com/dmitrymomot/eradate/core/logger"
	"github.com/dmitrymomot/eradate/internal/server"
	"github.com/dmitrymomot/eradate/pkg/era"
	"github.com/dmitrymomot/eradate/pkg/eratime"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "eradate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	switch args[0] {
	case "format":
		return runFormat(args[1:], stdout, stderr)
	case "parse":
		return runParse(args[1:], stdout, stderr)
	case "eras":
		return runEras(args[1:], stdout, stderr)
	case "serve":
		return runServe(args[1:], stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eradate <command> [flags]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format  -layout L [-date YYYY-MM-DD]   Render a date with an era-aware layout")
	fmt.Fprintln(w, "  parse   -layout L TEXT                 Parse TEXT into a Gregorian date")
	fmt.Fprintln(w, "  eras    [-json]                        List the eras of the table")
	fmt.Fprintln(w, "  serve   [-addr :8080]                  Run the HTTP conversion API")
	fmt.Fprintln(w, "Every command accepts -table PATH to load a custom era table.")
}

// codecFlags are shared by every command.
type codecFlags struct {
	table  string
	strict bool
	fold   bool
}

func (c *codecFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.table, "table", "", "era table in JSON source format (default: embedded table)")
	fs.BoolVar(&c.strict, "strict", false, "reject in-era years outside the era's span")
	fs.BoolVar(&c.fold, "fold-width", true, "fold full-width digits and letters before parsing")
}

func (c *codecFlags) codec() (*eratime.Codec, error) {
	cfg := server.Config{EraTable: c.table, Strict: c.strict, FoldWidth: c.fold}
	return cfg.Codec()
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runFormat(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("format", stderr)
	var cf codecFlags
	cf.register(fs)
	layout := fs.String("layout", "", "strftime-style layout with era codes %G %g %E %e")
	date := fs.String("date", "", "date to render as YYYY-MM-DD (default: today, UTC)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layout == "" {
		return fmt.Errorf("%w: format requires -layout", errUsage)
	}

	codec, err := cf.codec()
	if err != nil {
		return err
	}

	t := time.Now().UTC()
	if *date != "" {
		if t, err = time.Parse(era.DateLayout, *date); err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
	}

	_, err = fmt.Fprintln(stdout, codec.Format(*layout, t))
	return err
}

func runParse(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("parse", stderr)
	var cf codecFlags
	cf.register(fs)
	layout := fs.String("layout", "", "strftime-style layout with era codes %G %g %E %e")
	output := fs.String("output", "%Y-%m-%d", "layout of the printed result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layout == "" || fs.NArg() != 1 {
		return fmt.Errorf("%w: parse requires -layout and one TEXT argument", errUsage)
	}

	codec, err := cf.codec()
	if err != nil {
		return err
	}

	t, err := codec.Parse(*layout, fs.Arg(0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, t.Strftime(*output))
	return err
}

func runEras(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eras", stderr)
	var cf codecFlags
	cf.register(fs)
	asJSON := fs.Bool("json", false, "print the table in its JSON source format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	codec, err := cf.codec()
	if err != nil {
		return err
	}
	table := codec.Table()

	if *asJSON {
		return table.WriteJSON(stdout)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tABBR\tROMAJI\tROMAJI ABBR\tSTART\tEND")
	for _, e := range table.Eras() {
		end := "-"
		if t, ok := table.End(e); ok {
			end = t.Format(era.DateLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.Abbr, e.Romaji, e.RomajiAbbr, e.Start.Format(era.DateLayout), end)
	}
	return tw.Flush()
}

func runServe(args []string, stderr io.Writer) error {
	var cfg server.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fs := newFlagSet("serve", stderr)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.EraTable, "table", cfg.EraTable, "era table in JSON source format (default: embedded table)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject in-era years outside the era's span")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logOpts := []logger.Option{logger.WithTextFormatter()}
	if cfg.LogFormat == "json" {
		logOpts = []logger.Option{logger.WithProduction("eradate")}
	}
	log := logger.New(logOpts...)

	codec, err := cfg.Codec()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, codec, server.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("era table loaded", logger.Count("eras", codec.Table().Len()), logger.Era(codec.Table().Latest().Name))
	return srv.Start(ctx)
}
