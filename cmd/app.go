package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/config"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/endpoints"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/service"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource/csvsource"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource/jsonsource"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource/xlsxsource"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/override"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/recordstore"
	httptransport "github.com/ijalalfrz/flight-movement-importer/internal/pkg/transport/http"
)

// application holds the wired services shared by every command.
type application struct {
	cfg           config.Config
	redis         *redis.Client
	store         service.RecordStore
	decoders      *flightsource.DecoderFactory
	importService *service.ImportService
	recordService *service.RecordService
	overrides     *override.Table
	closers       []func() error
}

func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{cfg: cfg}

	if cfg.Redis.Addr != "" {
		app.redis = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.Timeout,
			ReadTimeout:  cfg.Redis.Timeout,
			WriteTimeout: cfg.Redis.Timeout,
		})
		app.closers = append(app.closers, app.redis.Close)
	}

	store, err := app.makeStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.store = store

	if cfg.Import.OverrideFile != "" {
		app.overrides, err = override.LoadTable(cfg.Import.OverrideFile)
		if err != nil {
			app.Close()
			return nil, err
		}
		slog.InfoContext(ctx, "override table loaded",
			slog.String("file", cfg.Import.OverrideFile),
			slog.Int("flights", app.overrides.Len()))
	}

	app.decoders = initDecoderFactory()
	app.importService = service.NewImportService(app.decoders, app.store,
		flight.NewDepartureGenerator(cfg.Import.Carriers()))
	app.recordService = service.NewRecordService(app.store)

	return app, nil
}

// register source decoders
func initDecoderFactory() *flightsource.DecoderFactory {
	factory := flightsource.NewDecoderFactory()
	factory.AddDecoder(jsonsource.Extension, jsonsource.NewDecoder())
	factory.AddDecoder(csvsource.Extension, csvsource.NewDecoder())
	factory.AddDecoder(xlsxsource.Extension, xlsxsource.NewDecoder())

	return factory
}

func (a *application) makeStore(ctx context.Context) (service.RecordStore, error) {
	switch strings.ToLower(a.cfg.Store.Driver) {
	case recordstore.DriverRedis:
		if a.redis == nil {
			return nil, fmt.Errorf("store driver redis needs REDIS_ADDR")
		}
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", a.cfg.Redis.Addr, err)
		}
		return recordstore.NewRedisStore(a.redis, a.cfg.Redis.KeyPrefix), nil
	case recordstore.DriverSQLite:
		store, err := recordstore.OpenSQLiteStore(a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	case recordstore.DriverMemory, "":
		if a.cfg.Store.SnapshotPath == "" {
			return recordstore.NewMemoryStore(), nil
		}
		return recordstore.OpenMemoryStore(a.cfg.Store.SnapshotPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
}

func (a *application) endpoints() endpoints.Endpoints {
	return endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(a.importService, a.recordService),
	}
}

// rateLimiter is nil without Redis.
func (a *application) rateLimiter() httptransport.RateLimiter {
	if a.redis == nil {
		return nil
	}

	return redis_rate.NewLimiter(a.redis)
}

// tableRequester answers from OVERRIDE_FILE, or cancels every prompt when no
// file is configured.
func (a *application) tableRequester() flight.OverrideRequester {
	return a.overrides
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", slog.String("error", err.Error()))
		}
	}
}
