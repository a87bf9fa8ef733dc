package main

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
)

type ratesCmd struct {
	base      string
	precision int
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch the latest rates for a base currency" }
func (*ratesCmd) Usage() string {
	return `currencyctl rates [-base USD] [-precision 4]

  Fetches the latest rates quoted against the base currency and prints them
  ordered by code. Unlike the server, a failed fetch is reported.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "USD", "Base currency code.")
	f.IntVar(&c.precision, "precision", 4, "Decimal places shown for each rate.")
}

func (c *ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, closer, err := openApp(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer closer.Close()
	defer a.Close()

	if err := a.Services.Refresher.RefreshRates(ctx, strings.ToUpper(c.base)); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	snap := a.Session.Snapshot()
	printMarkdown(ratesMarkdown(snap.BaseCurrency, snap.Rates, c.precision))
	return subcommands.ExitSuccess
}
