// README: Entry point; loads config, wires services and serves the booking API until interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxibook/internal/catalog"
	"taxibook/internal/config"
	httptransport "taxibook/internal/http"
	"taxibook/internal/infra"
	"taxibook/internal/logger"
	"taxibook/internal/maps"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	tz, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		return err
	}

	locDeps := location.Deps{
		Areas:    location.NewAreaIndex(catalog.PriorityTowns, cfg.Areas.MatchRadiusKm),
		RouteTTL: cfg.Redis.RouteTTL,
		Log:      lg.Named("location"),
	}

	if cfg.Maps.APIKey != "" {
		places, err := maps.NewPlacesService(cfg.Maps.APIKey, cfg.Maps.Language, maps.Bias{
			Lat:     cfg.Maps.BiasLat,
			Lng:     cfg.Maps.BiasLng,
			RadiusM: cfg.Maps.BiasRadiusM,
			Country: cfg.Maps.Region,
		})
		if err != nil {
			return err
		}
		routes, err := maps.NewRouteService(cfg.Maps.APIKey, cfg.Maps.Language, cfg.Maps.Region)
		if err != nil {
			return err
		}
		locDeps.Places, locDeps.Directions = places, routes
	} else {
		lg.Warn("TAXIBOOK_MAPS_API_KEY not set; address search and quotes are unavailable")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		locDeps.Store = location.NewStore(rdb)
	}

	locationSvc := location.NewService(locDeps)

	fallback := pricing.RatesFromConfig(cfg.Pricing)
	var pricingStore *pricing.Store
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		pricingStore = pricing.NewStore(pool)
	}
	pricingSvc := pricing.NewService(pricingStore, fallback, locationSvc, tz)
	rates, err := pricingSvc.LoadRates(ctx, fallback)
	if err != nil {
		lg.Warn("using configured rates", zap.Error(err))
	}
	lg.Info("tariff loaded",
		zap.Stringer("day_rate", rates.DayPerKm),
		zap.Stringer("night_rate", rates.NightPerKm),
		zap.String("day_period", rates.DayPeriod()),
	)

	deliverySvc := delivery.NewService(
		delivery.NewFormRelay(cfg.Delivery.RelayEndpoint, cfg.Delivery.RelayTimeout),
		delivery.Contact{WhatsApp: cfg.Contact.WhatsApp, Email: cfg.Contact.Email},
		cfg.Delivery.Pause,
		lg.Named("delivery"),
	)

	bookingSvc := booking.NewService(pricingSvc, deliverySvc,
		booking.Formatter{Company: cfg.Contact.CompanyName, Website: cfg.Contact.Website},
		lg.Named("booking"),
	)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Pricing:  pricingSvc,
		Location: locationSvc,
		Booking:  bookingSvc,
		Contact:  cfg.Contact,
		Origins:  cfg.HTTP.AllowedOrigins,
		Log:      lg.Named("http"),
	})

	return httptransport.NewServer(cfg.HTTP.Addr, router, cfg.HTTP.ShutdownGrace, lg).Run(ctx)
}
