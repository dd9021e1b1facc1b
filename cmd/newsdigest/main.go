package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/dkhrunov/newsdigest/pkg/category"
	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/digest"
	"github.com/dkhrunov/newsdigest/pkg/email"
	"github.com/dkhrunov/newsdigest/pkg/feed"
	"github.com/dkhrunov/newsdigest/pkg/llm"
	"github.com/dkhrunov/newsdigest/pkg/repository"
	"github.com/dkhrunov/newsdigest/pkg/scheduler"
	"github.com/dkhrunov/newsdigest/pkg/scoring"
	"github.com/dkhrunov/newsdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)

	lgr.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// hide credentials from logs
	SetupLog(opts.Debug, cfg.LLM.APIKey, cfg.Email.Password)

	registry, err := category.NewRegistry(cfg.Categories)
	if err != nil {
		return fmt.Errorf("failed to build category registry: %w", err)
	}
	lgr.Printf("[INFO] loaded %d categories, %d sources", registry.Len(), len(cfg.Sources))

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			lgr.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	categorizer := scoring.NewCategorizer(registry, cfg.Digest.ScoreThreshold, cfg.Digest.MaxCategories)
	selector := digest.NewSelector(cfg.Digest.KeywordMatchScore, cfg.Digest.MaxItems)
	trigger := digest.NewTrigger(cfg.Digest.ImpactThreshold)
	parser := feed.NewParser(30*time.Second, "newsdigest/"+revision)

	var summarizer scheduler.Summarizer
	if cfg.LLM.Enabled {
		summarizer = llm.NewSummarizer(cfg.LLM)
		lgr.Printf("[INFO] AI summaries enabled, model %s", cfg.LLM.Model)
	}

	renderer, err := email.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to init email renderer: %w", err)
	}

	var sender scheduler.Sender = &email.LogSender{}
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(cfg.Email)
		lgr.Printf("[INFO] email delivery enabled via %s:%d", cfg.Email.Host, cfg.Email.Port)
	}

	categoryNames := make(map[int64]string, registry.Len())
	for _, c := range registry.All() {
		categoryNames[c.ID] = c.Name
	}

	ingest := scheduler.NewIngestProcessor(scheduler.IngestParams{
		Articles:    repos.Article,
		Preferences: repos.Preference,
		Delivery:    repos.Delivery,
		Fetcher:     parser,
		Summarizer:  summarizer,
		Categorizer: categorizer,
		Trigger:     trigger,
		Renderer:    renderer,
		Sender:      sender,
		Sources:     cfg.Sources,
	})
	digests := scheduler.NewDigestProcessor(scheduler.DigestParams{
		Articles:      repos.Article,
		Preferences:   repos.Preference,
		Delivery:      repos.Delivery,
		Selector:      selector,
		Renderer:      renderer,
		Sender:        sender,
		CategoryNames: categoryNames,
		DailyWindow:   cfg.Digest.DailyWindow,
		WeeklyWindow:  cfg.Digest.WeeklyWindow,
		MaxWorkers:    cfg.Schedule.MaxWorkers,
	})

	sched := scheduler.NewScheduler(ingest, digests, cfg.Schedule)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:      cfg,
		Articles:    repos.Article,
		Preferences: repos.Preference,
		Scheduler:   sched,
		Selector:    selector,
		Registry:    registry,
		PreviewSpan: cfg.Digest.DailyWindow,
		Version:     revision,
		Debug:       opts.Debug,
	})

	return srv.Run(ctx)
}

// SetupLog configures the logger, optionally hiding secrets from output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	for _, sec := range secs {
		if sec != "" {
			logOpts = append(logOpts, lgr.Secret(sec))
		}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
