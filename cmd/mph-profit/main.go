package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"mining-profit/pkg/domain"
	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/infrastructure/file"
	"mining-profit/pkg/infrastructure/fixer"
	"mining-profit/pkg/infrastructure/memory"
	"mining-profit/pkg/infrastructure/miningpoolhub"
	"mining-profit/pkg/infrastructure/rdb"
	"mining-profit/pkg/infrastructure/slack"
	"mining-profit/pkg/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	location = "Asia/Tokyo"
)

func init() {
	loc, err := time.LoadLocation(location)
	if err != nil {
		loc = time.FixedZone(location, 9*60*60)
	}
	time.Local = loc
}

func main() {
	configPath := flag.String("c", "", "settings file (toml)")
	output := flag.String("o", "", "output file, stdout if empty")
	interval := flag.Int("interval", 0, "repeat every N seconds, requires -o")
	flag.Parse()

	if err := run(*configPath, *output, *interval); err != nil {
		os.Exit(1)
	}
}

func run(configPath, output string, interval int) error {
	logger := memory.Logger{Level: memory.Info}

	config, err := file.LoadConfig(configPath, func(c *model.Config) {
		if output != "" {
			c.Output = output
		}
		if interval > 0 {
			c.IntervalSeconds = interval
		}
	})
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	logger.Level = memory.ParseLevel(config.LogLevel)

	app, err := NewApp(config, &logger)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	ctx := context.Background()
	if err := app.Bootstrap(ctx); err != nil {
		logger.Error(err.Error())
		return err
	}

	if config.IntervalSeconds == 0 {
		if err := app.Run(ctx); err != nil {
			logger.Error(err.Error())
			return err
		}
		return nil
	}

	logger.Info("===== START WATCHING ===================")
	defer logger.Info("===== END WATCHING =====================")
	logger.Info("output: %s", config.Output)
	logger.Info("interval: %d sec", config.IntervalSeconds)

	rootCtx, cancel := context.WithCancel(ctx)
	errGroup, gctx := errgroup.WithContext(rootCtx)
	errGroup.Go(app.Watch(gctx))
	errGroup.Go(func() error {
		defer cancel()
		return watchSignal(gctx, &logger)
	})
	if err := errGroup.Wait(); err != nil {
		logger.Error("error occured, %v", err)
		return err
	}
	return nil
}

func watchSignal(ctx context.Context, logger domain.Logger) error {
	quit := make(chan os.Signal, 1)
	defer signal.Stop(quit)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-quit:
		logger.Info("terminating ...")
	case <-ctx.Done():
	}
	return nil
}

// App 収益レポート作成ツール
type App struct {
	Config   *model.Config
	Logger   domain.Logger
	Updater  *usecase.Updater
	Reporter *usecase.Reporter
	Stdout   io.Writer
}

// NewApp 設定から各クライアントを組み立てる
func NewApp(config *model.Config, logger domain.Logger) (*App, error) {
	dir := config.WorkDir
	credentials, err := file.LoadCredentials(resolve(dir, config.Sources.ConfigFile))
	if err != nil {
		return nil, err
	}
	if err := file.ApplyCredentialEnv(credentials); err != nil {
		return nil, err
	}

	httpClient := http.DefaultClient
	if config.Sources.RequestTimeoutSeconds > 0 {
		httpClient = &http.Client{Timeout: time.Duration(config.Sources.RequestTimeoutSeconds) * time.Second}
	}
	fetcher := file.NewFetcher(dir, httpClient, memory.NewDocumentCache(), logger)
	validate := !config.Sources.DisableSuccessValidation

	fixerCli := fixer.NewClient(fetcher, config.Sources.FixerURL, credentials.FixerAPIAccessKey, config.Sources.FixerTTLMinutes, validate)
	mphCli := miningpoolhub.NewClient(fetcher, config.Sources.ProfitStatsURL, config.Sources.ProfitStatsTTLMinutes, validate)
	catalog := file.NewEquipmentCatalog(resolve(dir, config.Sources.EquipmentsFile))

	var reporter *usecase.Reporter
	if config.Slack.WebhookURL != "" {
		reporter = usecase.NewReporter(logger, slack.NewClient(config.Slack.WebhookURL, httpClient))
	}

	return &App{
		Config:   config,
		Logger:   logger,
		Updater:  usecase.NewUpdater(logger, fixerCli, mphCli, catalog),
		Reporter: reporter,
		Stdout:   os.Stdout,
	}, nil
}

// Bootstrap transactions テーブルを用意する
func (a *App) Bootstrap(ctx context.Context) error {
	db := a.Config.DB
	if db.Driver == model.DriverSQLite {
		db.Path = resolve(a.Config.WorkDir, db.Path)
	}
	return rdb.WithDB(&db, func(c *rdb.Client) error {
		return c.EnsureSchema(ctx)
	})
}

// Run レポートを1回作って書き出す
func (a *App) Run(ctx context.Context) error {
	report, err := a.Updater.Update(ctx)
	if err != nil {
		return err
	}
	if err := emit(a.Stdout, a.Config.Output, report); err != nil {
		return err
	}
	if a.Reporter != nil {
		a.Reporter.Notify(ctx, report)
	}
	return nil
}

// Watch 一定間隔でレポートを作り直す
func (a *App) Watch(ctx context.Context) func() error {
	interval := time.Duration(a.Config.IntervalSeconds) * time.Second
	w := usecase.NewWatcher(a.Logger, interval, a.Run)
	return func() error {
		return w.Watch(ctx)
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
