package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type showCmd struct {
	base      string
	favorites bool
	sort      string
	precision int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "render the currency board" }
func (*showCmd) Usage() string {
	return `currencyctl show [-base USD] [-favorites] [-sort none|alpha|rate] [-precision 4]

  Runs a full session (catalog, rates, projection) and renders the card list.
  When the rates API is unreachable the cards show the missing-rate marker.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "USD", "Base currency code.")
	f.BoolVar(&c.favorites, "favorites", false, "Show favorites only.")
	f.StringVar(&c.sort, "sort", "none", "Sort order: none, alpha or rate.")
	f.IntVar(&c.precision, "precision", 4, "Decimal places shown for each rate.")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sortMode := strings.ToLower(c.sort)
	if sortMode != "none" && sortMode != "alpha" && sortMode != "rate" {
		fail(fmt.Errorf("unknown sort order %q", c.sort))
		return subcommands.ExitUsageError
	}

	a, closer, err := openApp(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer closer.Close()
	defer a.Close()

	session := a.Session
	if err := session.SelectBaseCurrency(ctx, c.base); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if c.favorites {
		if err := session.SetContentMode(ctx, true); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}
	if sortMode != "none" {
		if err := session.SetSortMode(ctx, sortMode == "alpha"); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(boardMarkdown(session.Snapshot(), c.precision))
	return subcommands.ExitSuccess
}
