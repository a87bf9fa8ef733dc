package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "load the currency catalog and list it" }
func (*symbolsCmd) Usage() string {
	return `currencyctl symbols

  Loads the symbol catalog from the local store, or from the rates API when the
  store is empty, and lists it ordered by name.
`
}

func (*symbolsCmd) SetFlags(*flag.FlagSet) {}

func (c *symbolsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, closer, err := openApp(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer closer.Close()
	defer a.Close()

	source, err := a.Services.Bootstrapper.EnsureSymbolsLoaded(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	printMarkdown(symbolsMarkdown(a.Session.Snapshot().SymbolsOrdered))
	fmt.Fprintf(os.Stderr, "loaded from %s\n", source)
	return subcommands.ExitSuccess
}
