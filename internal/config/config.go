package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type HTTPCfg struct {
	Port            int           `env:"PORT" envDefault:"4000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CorsOrigins     []string      `env:"HTTP_CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

type MongoCfg struct {
	URI            string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DATABASE" envDefault:"hedef-filo"`
	MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"5s"`
	Transactions   bool          `env:"MONGO_TRANSACTIONS" envDefault:"false"`
}

type RedisCfg struct {
	Addr      string        `env:"REDIS_ADDR" envDefault:""`
	Password  string        `env:"REDIS_PASSWORD" envDefault:""`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	LookupTTL time.Duration `env:"REDIS_LOOKUP_TTL" envDefault:"10m"`
}

type KafkaCfg struct {
	Brokers string `env:"KAFKA_BROKERS" envDefault:""`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"case-events"`
}

type PushCfg struct {
	Enabled bool   `env:"PUSH_ENABLED" envDefault:"true"`
	Prefix  string `env:"PUSH_PREFIX" envDefault:"/socket"`
}

type CaseCfg struct {
	// Transitions restricts allowed status changes, e.g. "1:2,2:3,2:1", empty allows any change
	Transitions string `env:"CASE_TRANSITIONS" envDefault:""`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type TelemetryCfg struct {
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"fleetcases"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	Insecure    bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
}

type Config struct {
	HTTPCfg      HTTPCfg
	MongoCfg     MongoCfg
	RedisCfg     RedisCfg
	KafkaCfg     KafkaCfg
	PushCfg      PushCfg
	CaseCfg      CaseCfg
	LogCfg       LogCfg
	TelemetryCfg TelemetryCfg
}

func Build() (*Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	return &cfg, nil
}
