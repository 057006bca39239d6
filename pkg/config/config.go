package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Commerce     CommerceConfig
	RateLimit    RateLimitConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VOICECART_APP_ENV" default:"dev"`
	Port         string `envconfig:"VOICECART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VOICECART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VOICECART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VOICECART_DB_DSN"`
	Driver string `envconfig:"VOICECART_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"VOICECART_DB_HOST"`
	LegacyPort     int    `envconfig:"VOICECART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VOICECART_DB_USER"`
	LegacyPassword string `envconfig:"VOICECART_DB_PASSWORD"`
	LegacyName     string `envconfig:"VOICECART_DB_NAME"`
	LegacySSLMode  string `envconfig:"VOICECART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VOICECART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VOICECART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VOICECART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VOICECART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsPostgres() bool {
	return strings.EqualFold(db.Driver, DBDriverPostgres)
}

type RedisConfig struct {
	URL          string        `envconfig:"VOICECART_REDIS_URL"`
	Address      string        `envconfig:"VOICECART_REDIS_ADDR"`
	Password     string        `envconfig:"VOICECART_REDIS_PASSWORD"`
	DB           int           `envconfig:"VOICECART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VOICECART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VOICECART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VOICECART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VOICECART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VOICECART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint has been configured at all.
// The demo runs without Redis; idempotency and rate limiting degrade to no-ops.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CommerceConfig struct {
	Currency          string `envconfig:"VOICECART_COMMERCE_CURRENCY" default:"INR"`
	TaxRateBasisPoint int    `envconfig:"VOICECART_COMMERCE_TAX_RATE_BP" default:"1000"`
	TrackStock        bool   `envconfig:"VOICECART_COMMERCE_TRACK_STOCK" default:"true"`
}

type RateLimitConfig struct {
	SessionWindow time.Duration `envconfig:"VOICECART_RATE_LIMIT_SESSION_WINDOW" default:"1m"`
	SessionLimit  int           `envconfig:"VOICECART_RATE_LIMIT_SESSION_LIMIT" default:"120"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"VOICECART_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"VOICECART_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"VOICECART_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	EventsTopic string `envconfig:"VOICECART_PUBSUB_EVENTS_TOPIC"`
}

// Enabled reports whether the out-of-band event channel is configured.
func (p PubSubConfig) Enabled() bool {
	return strings.TrimSpace(p.EventsTopic) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VOICECART_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if !db.IsPostgres() {
		db.DSN = DefaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
