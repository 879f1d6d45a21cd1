package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// - provider keys default to empty; an unconfigured provider fails fast and the
//   fallback chain moves on
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	CORS        CORSConfig
	Store       StoreConfig
	Redis       RedisConfig
	DB          DBConfig
	Cache       CacheConfig
	Events      EventsConfig
	Reservation ReservationConfig
	Providers   ProvidersConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver          string `envconfig:"STORE_DRIVER" default:"memory"`
	ReservationsKey string `envconfig:"STORE_RESERVATIONS_KEY" default:"@breakfast_deals_reservations"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"breakfast_deals"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CacheConfig struct {
	MaxSize       int64         `envconfig:"CACHE_MAX_SIZE" default:"1000"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"15m"`
	MemcachedHost string        `envconfig:"MEMCACHED_HOST"`
}

type EventsConfig struct {
	AMQPURL  string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"breakfast_deals"`
}

type ReservationConfig struct {
	SlotCapacity int    `envconfig:"RESERVATION_SLOT_CAPACITY" default:"10"`
	TimeZone     string `envconfig:"RESERVATION_TIMEZONE" default:"Local"`
}

// Location resolves the zone used for calendar-day comparisons.
func (c ReservationConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid RESERVATION_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

type ProvidersConfig struct {
	Timeout   time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"5s"`
	UserAgent string        `envconfig:"PROVIDER_USER_AGENT" default:"Mozilla/5.0 (compatible; HotelBreakfastDeals/1.0)"`

	HotelsAPIKey          string `envconfig:"HOTELS_API_KEY"`
	HotelsRapidAPIBaseURL string `envconfig:"HOTELS_RAPIDAPI_BASE_URL" default:"https://hotels-com-provider.p.rapidapi.com/v2"`
	HotelsBaseURL         string `envconfig:"HOTELS_BASE_URL" default:"https://api.hotels.com/v1"`

	BookingAPIKey          string `envconfig:"BOOKING_API_KEY"`
	BookingRapidAPIBaseURL string `envconfig:"BOOKING_RAPIDAPI_BASE_URL" default:"https://booking-com.p.rapidapi.com/v1"`
	BookingBaseURL         string `envconfig:"BOOKING_BASE_URL" default:"https://distribution-xml.booking.com/2.0"`

	HotelbedsAPIKey  string `envconfig:"HOTELBEDS_API_KEY"`
	HotelbedsSecret  string `envconfig:"HOTELBEDS_SECRET"`
	HotelbedsBaseURL string `envconfig:"HOTELBEDS_BASE_URL" default:"https://api.hotelbeds.com/hotel-api/1.0"`

	SpoonacularAPIKey  string `envconfig:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL string `envconfig:"SPOONACULAR_BASE_URL" default:"https://api.spoonacular.com/recipes"`

	UnsplashAPIKey  string `envconfig:"UNSPLASH_API_KEY"`
	UnsplashBaseURL string `envconfig:"UNSPLASH_BASE_URL" default:"https://api.unsplash.com"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Reservation.SlotCapacity < 1 {
		return fmt.Errorf("RESERVATION_SLOT_CAPACITY must be positive, got %d", c.Reservation.SlotCapacity)
	}
	if _, err := c.Reservation.Location(); err != nil {
		return err
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Store: StoreConfig{
			Driver:          StoreDriverMemory,
			ReservationsKey: "@breakfast_deals_reservations",
		},
		Cache: CacheConfig{
			MaxSize: 100,
			TTL:     time.Minute,
		},
		Events: EventsConfig{
			Exchange: "breakfast_deals",
		},
		Reservation: ReservationConfig{
			SlotCapacity: 10,
			TimeZone:     "UTC",
		},
		Providers: ProvidersConfig{
			Timeout:   2 * time.Second,
			UserAgent: "breakfast-deals-test",
		},
	}
}
