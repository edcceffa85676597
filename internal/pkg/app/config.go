package app

import (
	"time"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host string
	Port string
}

type LoggingConfig struct {
	Level int
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	// TTL is fixed and measured from creation, not from last use.
	TTL time.Duration
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type Config struct {
	Web     WebConfig
	Logging LoggingConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Kafka   KafkaConfig
}

// ReadLocalConfig loads a YAML config file. The process has no useful mode
// without one, so callers treat an error as fatal.
func ReadLocalConfig(path string) (Config, error) {
	loader := konf.New()
	if err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	var config Config
	if err := loader.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if config.Session.TTL == 0 {
		config.Session.TTL = 10 * time.Minute
	}

	return config, nil
}
