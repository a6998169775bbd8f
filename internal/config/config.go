package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Data      DataConfig
	Predictor PredictorConfig
	Policy    PolicyConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string
	Mode string // gin mode: debug | release | test
}

type DatabaseConfig struct {
	Path string
}

// DataConfig points at the CSV exports loaded into the store at startup.
type DataConfig struct {
	SitesCSV string
	ZonesCSV string
	CrowdCSV string
}

type PredictorConfig struct {
	Endpoint   string
	TimeoutSec int
	// ModelMAE is the offline-computed mean absolute error of the
	// deployed model, a static scoring input.
	ModelMAE float64
}

type PolicyConfig struct {
	// SafeDensity divides recommendable from non-recommendable zones.
	SafeDensity float64
	// NearbyRadiusKm bounds the nearby-site fallback search.
	NearbyRadiusKm float64
}

// RedisConfig configures the optional response cache. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSec   int
}

type RateLimitConfig struct {
	Requests  int
	WindowSec int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// Load reads config.yaml (working dir or ./config) and CROWD_* env
// overrides, falling back to defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("CROWD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("database.path", "./data/crowd.db")

	viper.SetDefault("data.sitescsv", "./data/sites.csv")
	viper.SetDefault("data.zonescsv", "./data/zones.csv")
	viper.SetDefault("data.crowdcsv", "./data/crowd_data_30days_hourly.csv")

	viper.SetDefault("predictor.endpoint", "http://localhost:8501")
	viper.SetDefault("predictor.timeoutsec", 5)
	viper.SetDefault("predictor.modelmae", 0.00245)

	viper.SetDefault("policy.safedensity", 0.7)
	viper.SetDefault("policy.nearbyradiuskm", 2.0)

	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlsec", 30)

	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.windowsec", 60)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputpath", "stdout")
}
