package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	APIBaseURL  string `yaml:"api_base_url"`
	WSURL       string `yaml:"ws_url"`
	APIToken    string `yaml:"api_token"`
	UserID      string `yaml:"user_id"`
	PartnerID   string `yaml:"partner_id"`
	PostgresDSN string `yaml:"postgres_dsn"`
	RabbitMQURL string `yaml:"rabbitmq_url"`

	PollInterval      time.Duration `yaml:"poll_interval"`
	TransitionTimeout time.Duration `yaml:"transition_timeout"`
	HTTPTimeout       time.Duration `yaml:"http_timeout"`
	AlertTTL          time.Duration `yaml:"alert_ttl"`
	AudioCeiling      time.Duration `yaml:"audio_ceiling"`
	ReconnectDelay    time.Duration `yaml:"reconnect_delay"`
	MaxReconnects     int           `yaml:"max_reconnects"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		ListenAddr:        ":8090",
		APIBaseURL:        "http://localhost:3000/api",
		WSURL:             "ws://localhost:3000/ws",
		PollInterval:      30 * time.Second,
		TransitionTimeout: 10 * time.Second,
		HTTPTimeout:       10 * time.Second,
		AlertTTL:          30 * time.Second,
		AudioCeiling:      30 * time.Second,
		ReconnectDelay:    time.Second,
		MaxReconnects:     5,
		LogFormat:         "text",
		LogLevel:          "info",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

func getint(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

// Load builds the configuration from defaults, then the optional YAML file
// at path, then the environment (a .env file is loaded first if present).
func Load(path string) (Config, error) {
	_ = godotenv.Load() // load .env if it exists
	cfg := Defaults()
	if path == "" {
		path = os.Getenv("DASHBOARD_CONFIG")
	}
	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.APIBaseURL = strings.TrimRight(getenv("API_BASE_URL", cfg.APIBaseURL), "/")
	cfg.WSURL = getenv("WS_URL", cfg.WSURL)
	cfg.APIToken = getenv("API_TOKEN", cfg.APIToken)
	cfg.UserID = getenv("USER_ID", cfg.UserID)
	cfg.PartnerID = getenv("PARTNER_ID", cfg.PartnerID)
	cfg.PostgresDSN = getenv("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RabbitMQURL = getenv("RABBITMQ_URL", cfg.RabbitMQURL)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	var errs []error
	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"POLL_INTERVAL", &cfg.PollInterval},
		{"TRANSITION_TIMEOUT", &cfg.TransitionTimeout},
		{"HTTP_TIMEOUT", &cfg.HTTPTimeout},
		{"ALERT_TTL", &cfg.AlertTTL},
		{"AUDIO_CEILING", &cfg.AudioCeiling},
		{"RECONNECT_DELAY", &cfg.ReconnectDelay},
	} {
		v, err := getduration(d.key, *d.dst)
		errs = append(errs, err)
		*d.dst = v
	}
	n, err := getint("MAX_RECONNECTS", cfg.MaxReconnects)
	errs = append(errs, err)
	cfg.MaxReconnects = n

	if err := errors.Join(errs...); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func overlayFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("API_BASE_URL is required"))
	}
	if c.WSURL == "" {
		errs = append(errs, errors.New("WS_URL is required"))
	}
	for k, d := range map[string]time.Duration{
		"POLL_INTERVAL":      c.PollInterval,
		"TRANSITION_TIMEOUT": c.TransitionTimeout,
		"HTTP_TIMEOUT":       c.HTTPTimeout,
		"ALERT_TTL":          c.AlertTTL,
		"AUDIO_CEILING":      c.AudioCeiling,
		"RECONNECT_DELAY":    c.ReconnectDelay,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", k))
		}
	}
	if c.MaxReconnects <= 0 {
		errs = append(errs, errors.New("MAX_RECONNECTS must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Logger builds the process logger from LOG_FORMAT and LOG_LEVEL.
func (c Config) Logger() *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// LogValue keeps secrets out of the startup log.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("listen_addr", c.ListenAddr),
		slog.String("api_base_url", c.APIBaseURL),
		slog.String("ws_url", c.WSURL),
		slog.String("user_id", c.UserID),
		slog.String("partner_id", c.PartnerID),
		slog.Bool("postgres", c.PostgresDSN != ""),
		slog.Bool("rabbitmq", c.RabbitMQURL != ""),
		slog.Duration("poll_interval", c.PollInterval),
		slog.Duration("alert_ttl", c.AlertTTL),
	)
}
