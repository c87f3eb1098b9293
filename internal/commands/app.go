package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/gastos/internal/config"
	"github.com/cleared-dev/gastos/internal/dispatch"
	"github.com/cleared-dev/gastos/internal/export"
	"github.com/cleared-dev/gastos/internal/importer"
	"github.com/cleared-dev/gastos/internal/logger"
	"github.com/cleared-dev/gastos/internal/share"
	"github.com/cleared-dev/gastos/internal/stores"
)

// app is the resolved configuration and services for one invocation.
type app struct {
	root   string
	cfg    *config.Config
	log    zerolog.Logger
	stores *stores.Service
}

// loadApp reads <root>/.env and <root>/gastos.yaml, applies environment
// overrides and builds the logger.
func loadApp(root string) (*app, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if err := config.LoadDotEnv(filepath.Join(absRoot, ".env")); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(filepath.Join(absRoot, config.FileName))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		return nil, err
	}
	return &app{root: absRoot, cfg: cfg, log: log, stores: stores.Default()}, nil
}

// dataRoot is the directory holding import/ and logs/.
func (a *app) dataRoot() string {
	if filepath.IsAbs(a.cfg.Import.Root) {
		return a.cfg.Import.Root
	}
	return filepath.Join(a.root, a.cfg.Import.Root)
}

func (a *app) sink() share.Sink {
	if a.cfg.Share.GCSBucket != "" {
		return share.GCSSink{Bucket: a.cfg.Share.GCSBucket, Prefix: a.cfg.Share.GCSPrefix}
	}
	return share.DirSink{Dir: a.cfg.OutputPath(a.root)}
}

func (a *app) exporter() (*export.Exporter, error) {
	return export.New(a.sink(), a.stores, export.Options{
		Locale:     a.cfg.Export.Locale,
		MonthNames: a.cfg.Export.MonthNames,
	}, a.log)
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return dispatch.New(dispatch.Config{
		BaseURL: a.cfg.API.BaseURL,
		Token:   a.cfg.API.Token,
		Timeout: a.cfg.API.Timeout,
	}, a.log)
}

func (a *app) pipeline(sub importer.Submitter) *importer.Pipeline {
	return importer.NewPipeline(importer.DefaultRegistry(), a.stores, sub, a.log)
}
