// README: Config loader; env (and optional .env) with defaults for HTTP, DB, Redis, maps, pricing and delivery settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type LogConfig struct {
	Level string `env:"TAXIBOOK_LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Addr           string        `env:"TAXIBOOK_HTTP_ADDR" env-default:":8080"`
	AllowedOrigins []string      `env:"TAXIBOOK_HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	ShutdownGrace  time.Duration `env:"TAXIBOOK_HTTP_SHUTDOWN_GRACE" env-default:"10s"`
}

type DBConfig struct {
	// Empty DSN keeps pricing on env values only.
	DSN string `env:"TAXIBOOK_DB_DSN"`
}

type RedisConfig struct {
	// Empty Addr disables the route cache.
	Addr     string        `env:"TAXIBOOK_REDIS_ADDR"`
	Password string        `env:"TAXIBOOK_REDIS_PASSWORD"`
	DB       int           `env:"TAXIBOOK_REDIS_DB" env-default:"0"`
	RouteTTL time.Duration `env:"TAXIBOOK_ROUTE_CACHE_TTL" env-default:"24h"`
}

type MapsConfig struct {
	APIKey      string  `env:"TAXIBOOK_MAPS_API_KEY"`
	Language    string  `env:"TAXIBOOK_MAPS_LANGUAGE" env-default:"fr"`
	Region      string  `env:"TAXIBOOK_MAPS_REGION" env-default:"fr"`
	BiasLat     float64 `env:"TAXIBOOK_MAPS_BIAS_LAT" env-default:"48.8584"`
	BiasLng     float64 `env:"TAXIBOOK_MAPS_BIAS_LNG" env-default:"2.6331"`
	BiasRadiusM uint    `env:"TAXIBOOK_MAPS_BIAS_RADIUS_M" env-default:"50000"`
}

type PricingConfig struct {
	DayRate   float64 `env:"TAXIBOOK_DAY_RATE" env-default:"2.00"`
	NightRate float64 `env:"TAXIBOOK_NIGHT_RATE" env-default:"2.63"`
	DayStart  int     `env:"TAXIBOOK_DAY_START" env-default:"7"`
	DayEnd    int     `env:"TAXIBOOK_DAY_END" env-default:"19"`
	Currency  string  `env:"TAXIBOOK_CURRENCY" env-default:"EUR"`
	Timezone  string  `env:"TAXIBOOK_TIMEZONE" env-default:"Europe/Paris"`
}

type ContactConfig struct {
	CompanyName string `env:"TAXIBOOK_COMPANY_NAME" env-default:"Taxi Marne-la-Vallée"`
	WhatsApp    string `env:"TAXIBOOK_WHATSAPP_NUMBER" env-default:"+33750535658"`
	Phone       string `env:"TAXIBOOK_PHONE_DISPLAY" env-default:"+33 7 50 53 56 58"`
	Email       string `env:"TAXIBOOK_CONTACT_EMAIL" env-default:"contact@taximarnelavallee.com"`
	Website     string `env:"TAXIBOOK_WEBSITE" env-default:"www.taximarnelavallee.com"`
}

type DeliveryConfig struct {
	RelayEndpoint string        `env:"TAXIBOOK_RELAY_ENDPOINT" env-default:"https://formspree.io/f/myzwoaoz"`
	RelayTimeout  time.Duration `env:"TAXIBOOK_RELAY_TIMEOUT" env-default:"0s"`
	Pause         time.Duration `env:"TAXIBOOK_DELIVERY_PAUSE" env-default:"1s"`
}

type AreasConfig struct {
	MatchRadiusKm float64 `env:"TAXIBOOK_AREA_RADIUS_KM" env-default:"3"`
}

type Config struct {
	Env      string `env:"TAXIBOOK_ENV" env-default:"local"`
	Log      LogConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Redis    RedisConfig
	Maps     MapsConfig
	Pricing  PricingConfig
	Contact  ContactConfig
	Delivery DeliveryConfig
	Areas    AreasConfig
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (p PricingConfig) Validate() error {
	if p.DayStart < 0 || p.DayEnd > 24 || p.DayStart >= p.DayEnd {
		return fmt.Errorf("pricing: day window [%d,%d) is invalid", p.DayStart, p.DayEnd)
	}
	if p.DayRate < 0 || p.NightRate < 0 {
		return errors.New("pricing: rates must not be negative")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("pricing: timezone %q: %w", p.Timezone, err)
	}
	return nil
}
