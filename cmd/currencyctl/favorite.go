package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type favoriteCmd struct{}

func (*favoriteCmd) Name() string     { return "favorite" }
func (*favoriteCmd) Synopsis() string { return "toggle the favorite flag of a currency" }
func (*favoriteCmd) Usage() string {
	return `currencyctl favorite CODE

  Flips the stored favorite flag of CODE. The catalog is loaded first if the
  store is empty.
`
}

func (*favoriteCmd) SetFlags(*flag.FlagSet) {}

func (c *favoriteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fail(fmt.Errorf("usage: %s", strings.TrimSpace(c.Usage())))
		return subcommands.ExitUsageError
	}
	code := strings.ToUpper(f.Arg(0))

	a, closer, err := openApp(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer closer.Close()
	defer a.Close()

	if _, err := a.Services.Bootstrapper.EnsureSymbolsLoaded(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	isFavorite, err := a.Services.Favorites.ToggleFavorite(ctx, code)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if isFavorite {
		fmt.Printf("%s is now a favorite\n", code)
	} else {
		fmt.Printf("%s is no longer a favorite\n", code)
	}
	return subcommands.ExitSuccess
}
