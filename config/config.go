package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrHelp is returned by Load when -H/--help was given. Usage has been printed.
var ErrHelp = pflag.ErrHelp

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Inventory storage
	Storage  StorageConfig
	Postgres PostgresConfig
	Photo    PhotoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	// PublicURL overrides the http://host:port base used in photo links.
	PublicURL       string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	// RequestsPerMin per client IP. 0 disables rate limiting.
	RequestsPerMin int
}

type StorageConfig struct {
	Driver     string
	CacheDir   string
	SQLitePath string
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	ConnectAttempts int
	RetryDelay      time.Duration
}

type PhotoConfig struct {
	CacheSize int
}

// flagBinding ties a command-line flag to a config key and its env variables.
type flagBinding struct {
	flag string
	key  string
	envs []string
}

var flagBindings = []flagBinding{
	{flag: "host", key: "http_server.host", envs: []string{"HTTP_SERVER_HOST", "HOST"}},
	{flag: "port", key: "http_server.port", envs: []string{"HTTP_SERVER_PORT", "PORT"}},
	{flag: "cache", key: "storage.cache_dir", envs: []string{"STORAGE_CACHE_DIR", "CACHE_DIR"}},
	{flag: "storage", key: "storage.driver", envs: []string{"STORAGE_DRIVER"}},
}

// Load builds the configuration from defaults, config.yaml, command-line
// flags and the environment, in increasing order of precedence.
// Config file name: config.yaml, searched in ./config, ., /etc/inventory/
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/inventory/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	for _, b := range flagBindings {
		if err := v.BindEnv(append([]string{b.key}, b.envs...)...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", b.key, err)
		}
	}

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		fmt.Fprintf(os.Stderr, "Usage of inventory-service:\n%s", fs.FlagUsages())
		return nil, ErrHelp
	}

	if path, _ := fs.GetString("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	applyFlags(v, fs)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.PublicURL = v.GetString("http_server.public_url")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.CacheDir = v.GetString("storage.cache_dir")
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	cfg.Photo.CacheSize = v.GetInt("photo.cache_size")

	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.Database = v.GetString("postgres.database")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.ConnectAttempts = v.GetInt("postgres.connect_attempts")
	cfg.Postgres.RetryDelay = v.GetDuration("postgres.retry_delay")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("inventory-service", pflag.ContinueOnError)
	fs.StringP("host", "h", "localhost", "Server address")
	fs.IntP("port", "p", 8080, "Server port")
	fs.StringP("cache", "c", "./cache", "Cache directory path")
	fs.StringP("storage", "s", DriverMemory, "Item store: memory, postgres or sqlite")
	fs.String("config", "", "Path to a config file")
	fs.BoolP("help", "H", false, "Display help")
	return fs
}

// applyFlags copies explicitly given flags into v unless one of the
// flag's environment variables is set.
func applyFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for _, b := range flagBindings {
		f := fs.Lookup(b.flag)
		if f == nil || !f.Changed {
			continue
		}
		if slices.ContainsFunc(b.envs, func(name string) bool { return os.Getenv(name) != "" }) {
			continue
		}
		v.Set(b.key, f.Value.String())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "localhost")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 0)

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.cache_dir", "./cache")
	v.SetDefault("storage.sqlite_path", "inventory.db")
	v.SetDefault("photo.cache_size", 64)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.database", "inventory")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.connect_attempts", 10)
	v.SetDefault("postgres.retry_delay", "2s")
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want memory, postgres or sqlite)", c.Storage.Driver)
	}
	if c.Storage.CacheDir == "" {
		return errors.New("cache directory is required")
	}
	if c.HTTPServer.Host == "" {
		return errors.New("host is required")
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.HTTPServer.Port)
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.SQLitePath == "" {
		return errors.New("sqlite path is required for the sqlite driver")
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return errors.New("rate limit must not be negative")
	}
	return nil
}

// BaseURL is the public origin used to build photo links.
func (c *Config) BaseURL() string {
	if c.HTTPServer.PublicURL != "" {
		return strings.TrimRight(c.HTTPServer.PublicURL, "/")
	}
	return "http://" + c.Addr()
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTPServer.Host, strconv.Itoa(c.HTTPServer.Port))
}
