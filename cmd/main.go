package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/config"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/transport"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/backup"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/logger"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/watch"
)

const usage = `usage: flightimport <command> [flags]

commands:
  import <file>   import an arrival file (.json, .csv, .xlsx)
  export          export arrivals and departures as JSON or CSV
  watch           import files dropped into WATCH_DIR
  serve           run the HTTP API
`

// @title           Flight Movement Importer API
// @version         0.0.1
// @description     flight-movement-importer
// @host      localhost:8080
// @BasePath  /
func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch command, args := os.Args[1], os.Args[2:]; command {
	case "import":
		err = runImport(args)
	case "export":
		err = runExport(args)
	case "watch":
		err = runWatch(args)
	case "serve":
		err = runServe(args)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newFlagSet returns a flag set carrying the shared --config flag.
func newFlagSet(name string) (*pflag.FlagSet, *string) {
	flags := pflag.NewFlagSet(name, pflag.ExitOnError)
	configFile := flags.StringP("config", "c", ".env", "path of the .env config file")

	return flags, configFile
}

// initApp loads configuration and wires the application.
func initApp(ctx context.Context, configFile string) (*application, error) {
	cfg := config.MustInitConfig(configFile)
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))

	// init validator
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	return newApplication(ctx, cfg)
}

func runServe(args []string) error {
	flags, configFile := newFlagSet("serve")
	_ = flags.Parse(args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := initApp(ctx, *configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(app.cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, app)
	}()

	if app.cfg.Watch.Dir != "" {
		if err := startWatcher(ctx, app, app.cfg.Watch.Dir); err != nil {
			slog.ErrorContext(ctx, "failed to start watcher", slog.String("error", err.Error()))
		}
	}

	if app.cfg.Backup.Enabled() {
		scheduler := backup.New(app.recordService, app.cfg.Backup.Dir, dto.ParseExportFormat(app.cfg.Backup.Format))
		if err := scheduler.Start(ctx, app.cfg.Backup.Interval); err != nil {
			slog.ErrorContext(ctx, "failed to start backup", slog.String("error", err.Error()))
		} else {
			defer scheduler.Stop()
		}
	}

	waitForSignal(ctx, cancel)

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")

	return nil
}

func runWatch(args []string) error {
	flags, configFile := newFlagSet("watch")
	dir := flags.StringP("dir", "d", "", "directory to watch (default WATCH_DIR)")
	_ = flags.Parse(args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := initApp(ctx, *configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	if *dir == "" {
		*dir = app.cfg.Watch.Dir
	}
	if *dir == "" {
		return errors.New("no directory to watch: set WATCH_DIR or --dir")
	}

	if err := startWatcher(ctx, app, *dir); err != nil {
		return err
	}

	waitForSignal(ctx, cancel)

	return nil
}

func startWatcher(ctx context.Context, app *application, dir string) error {
	watcher := watch.New(dir, app.importService, app.tableRequester(), app.decoders.Supports)

	if err := watcher.Backfill(ctx); err != nil {
		return fmt.Errorf("backfill %s: %w", dir, err)
	}

	return watcher.Start(ctx)
}

func waitForSignal(ctx context.Context, cancel context.CancelFunc) {
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}
}

func startHTTPServer(ctx context.Context, app *application) {
	cfg := app.cfg
	router := transport.MakeHTTPRouter(&cfg, app.endpoints(), app.rateLimiter())
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}
