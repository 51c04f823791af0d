package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"freshmarket/internal/config"
	"freshmarket/internal/i18n"
	"freshmarket/internal/logging"
	"freshmarket/internal/market"
	"freshmarket/internal/telemetry"
	"freshmarket/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New("freshmarket", cfg.LogFile, cfg.Level())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	recorder, err := telemetry.NewOTLPRecorder(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	opts := []i18n.Option{
		i18n.WithLogger(logger.Named("i18n")),
		i18n.WithLanguage(cfg.Language),
	}
	if cfg.LocalesDir != "" {
		opts = append(opts, i18n.WithExtraCatalogs(os.DirFS(cfg.LocalesDir)))
	}
	resolver, err := i18n.LoadEmbedded(opts...)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"language", resolver.Language(),
		"mode", cfg.Mode().String(),
		"categories", len(catalog.Categories()),
	)

	model := ui.NewAppModel(ui.Deps{
		Localizer: resolver,
		Catalog:   catalog,
		Mode:      cfg.Mode(),
		Recorder:  recorder,
		Logger:    logger,
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func loadCatalog(path string) (*market.Catalog, error) {
	if path == "" {
		return market.LoadEmbedded()
	}
	return market.LoadFile(path)
}
