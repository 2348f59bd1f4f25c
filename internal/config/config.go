package config

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Path   string `yaml:"path" env:"STORAGE_PATH"`
}

type HTTPServer struct {
	Host        string        `yaml:"host" env:"HTTP_HOST"`
	Port        int           `yaml:"port" env-default:"3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

func (s HTTPServer) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Database struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB" env-default:"campusapi"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type Option func(*Config) error

// PortFromEnv lets the named environment variable override the listen port.
func PortFromEnv(key string) Option {
	return func(cfg *Config) error {
		raw := os.Getenv(key)
		if raw == "" {
			return nil
		}

		port, err := strconv.Atoi(raw)
		if err != nil || port < 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", key, raw)
		}
		cfg.HTTPServer.Port = port

		return nil
	}
}

// DefaultStoragePath is used when neither the file nor STORAGE_PATH set one.
func DefaultStoragePath(path string) Option {
	return func(cfg *Config) error {
		if cfg.Storage.Path == "" {
			cfg.Storage.Path = path
		}
		return nil
	}
}

// Load reads the YAML file at path, or only the environment when path is
// empty, then applies opts in order.
func Load(path string, opts ...Option) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: config file %s: %w", op, path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	switch cfg.Storage.Driver {
	case DriverFile, DriverPostgres:
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
	}

	if cfg.Storage.Driver == DriverFile && cfg.Storage.Path == "" {
		return nil, fmt.Errorf("%s: storage path is not set", op)
	}

	return &cfg, nil
}

// MustLoad takes the config path from CONFIG_PATH or the -config flag and
// exits the process if the config cannot be loaded.
func MustLoad(opts ...Option) *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the YAML config file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath, opts...)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
