package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/cadrage/internal/cli"
	"github.com/alexanderramin/cadrage/internal/config"
	"github.com/alexanderramin/cadrage/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	var observer service.ExportObserver = service.NoopExportObserver{}
	if cfg.LogEvents {
		observer = service.NewLogExportObserver(os.Stderr)
	}

	app := &cli.App{
		Config: cfg,
		NewExporter: func(outDir string, summary bool) service.ExportService {
			return service.NewExportService(service.NewFileSink(outDir),
				service.WithLocation(cfg.Location()),
				service.WithParallel(cfg.Parallel),
				service.WithSummarySlides(summary),
				service.WithObserver(observer),
			)
		},
	}

	// Spinner and format picker only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
