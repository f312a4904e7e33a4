package main

import (
	"context"
	"fmt"
	"os"

	"budget/internal/cli"
	applog "budget/internal/log"
	"budget/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}
	logger := cli.SetupLogger(cfg)

	result, err := cli.InitBackend(ctx, logger, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.WithFields(applog.NewFields().
				WithOperation(applog.OpShutdown).
				WithError(err)).
				Error("Failed to close backend")
		}
	}()

	exporter, err := report.NewExporter(cfg.ExportDir, cfg.ExportFile, cfg.PDFCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}

	app := cli.NewApp(result.Service, exporter, cfg.Currency, logger, os.Stdout, os.Stderr)
	return app.Run(ctx, os.Args[1:])
}
