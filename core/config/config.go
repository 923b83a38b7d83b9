package config

import (
	"reflect"
	"strings"

	"id-reserve/core/cache"
	"id-reserve/core/database"
	"id-reserve/core/logger"
	"id-reserve/core/queue"
	"id-reserve/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, divided into partial
// configurations owned by the packages that consume them.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the MySQL connection.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Cache holds configuration for the Redis author cache.
	Cache cache.Config `mapstructure:"cache"`
	// Queue holds configuration for the RabbitMQ compaction queue.
	Queue queue.Config `mapstructure:"queue"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. Nested keys map to environment variables with underscores,
// e.g. server.port <- SERVER_PORT.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Walk the struct tags to register defaults for every key.
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues recursively registers default values in Viper from the
// 'default' and 'mapstructure' struct tags, which also registers the keys
// for AutomaticEnv.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
