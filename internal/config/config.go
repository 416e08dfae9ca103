// Package config provides the application's configuration, layered from
// defaults, an optional .env file, environment variables and command-line
// flags, the flags taking final precedence.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// ResultHostname is the base URL used for result links.
	ResultHostname string

	// DatabaseDSN holds the Postgres connection string; empty selects the
	// in-memory backend.
	DatabaseDSN string

	// MigrationsPath points at the schema migration files.
	MigrationsPath string

	// SecretKey signs the per-link unlock tokens.
	SecretKey string

	// DecoyURL is where geo/IP-blocked visitors are sent. It must look
	// like ordinary content, never like an error page.
	DecoyURL string

	// DiversionURL is the default bot diversion target when the matched
	// pattern has no specific one.
	DiversionURL string

	// GeoPrimaryURL and GeoFallbackURL are provider URL templates with a
	// single %s receiving the IP.
	GeoPrimaryURL  string
	GeoFallbackURL string

	// GeoTimeout bounds each provider attempt.
	GeoTimeout time.Duration

	// BotCacheTTL bounds the classification memo window.
	BotCacheTTL time.Duration

	// UnlockTTL is how long a password unlock token stays valid.
	UnlockTTL time.Duration

	// ClickBuffer is the recorder channel capacity.
	ClickBuffer int

	// EnableHTTPS indicates whether to serve TLS via autocert.
	EnableHTTPS bool
}

var options = &Options{}

func init() {
	flag.StringVar(&options.Port, "a", "", "run on ip:port server")
	flag.StringVar(&options.ResultHostname, "b", "", "result base url")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.MigrationsPath, "m", "", "path to migration files")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse merges defaults, .env, environment variables and flags into the
// final Options.
func Parse() *Options {
	viper.SetDefault("SERVER_ADDRESS", "localhost:8080")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("SECRET_KEY", "change-me")
	viper.SetDefault("DECOY_URL", "https://en.wikipedia.org/wiki/Special:Random")
	viper.SetDefault("DIVERSION_URL", "https://www.google.com/")
	viper.SetDefault("GEO_PRIMARY_URL", "http://ip-api.com/json/%s?fields=status,country,city")
	viper.SetDefault("GEO_FALLBACK_URL", "https://ipapi.co/%s/json/")
	viper.SetDefault("GEO_TIMEOUT", "2s")
	viper.SetDefault("BOT_CACHE_TTL", "5m")
	viper.SetDefault("UNLOCK_TTL", "1h")
	viper.SetDefault("CLICK_BUFFER", 10000)

	viper.AutomaticEnv()

	// Read .env when present; it never overrides real environment variables.
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	flag.Parse()

	if options.Port == "" {
		options.Port = viper.GetString("SERVER_ADDRESS")
	}
	if options.ResultHostname == "" {
		options.ResultHostname = viper.GetString("BASE_URL")
	}
	if options.DatabaseDSN == "" {
		options.DatabaseDSN = viper.GetString("DATABASE_DSN")
	}
	if options.MigrationsPath == "" {
		options.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	}
	if !options.EnableHTTPS {
		options.EnableHTTPS = viper.GetBool("ENABLE_HTTPS")
	}

	options.SecretKey = viper.GetString("SECRET_KEY")
	options.DecoyURL = viper.GetString("DECOY_URL")
	options.DiversionURL = viper.GetString("DIVERSION_URL")
	options.GeoPrimaryURL = viper.GetString("GEO_PRIMARY_URL")
	options.GeoFallbackURL = viper.GetString("GEO_FALLBACK_URL")
	options.GeoTimeout = viper.GetDuration("GEO_TIMEOUT")
	options.BotCacheTTL = viper.GetDuration("BOT_CACHE_TTL")
	options.UnlockTTL = viper.GetDuration("UNLOCK_TTL")
	options.ClickBuffer = viper.GetInt("CLICK_BUFFER")

	return options
}

// Validate checks the parsed configuration for obvious mistakes.
func (o *Options) Validate() error {
	if o.Port == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if o.ResultHostname == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if o.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if o.ClickBuffer <= 0 {
		return fmt.Errorf("click buffer must be positive")
	}
	return nil
}
