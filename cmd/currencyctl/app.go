package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_board/internal/platform/app"
	"github.com/SscSPs/currency_board/internal/platform/config"
	"github.com/SscSPs/currency_board/internal/platform/logging"
	"github.com/charmbracelet/glamour"
)

// openApp wires a session from the environment. Logs go to LOG_FILE only, so
// they never interleave with command output.
func openApp(ctx context.Context) (*app.App, io.Closer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	var closer io.Closer = io.NopCloser(nil)
	if cfg.LogFile != "" {
		logger, closer = logging.NewFileOnly(cfg.LogLevel, cfg.LogFile)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return a, closer, nil
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	// Fall back to raw markdown.
	fmt.Print(md)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
}
