package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort         string
	Environment        string
	LogLevel           string
	FirebaseProject    string
	ServiceAccountJSON string
	ServiceAccountPath string

	Redis RedisConfig
	Kafka KafkaConfig

	NearbyDefaultLimit int
	RateLimitPerMinute int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers      []string
	RequestTopic string
}

// Enabled reports whether an event broker was configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject variables directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		Environment:        v.GetString("ENVIRONMENT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		FirebaseProject:    v.GetString("FIREBASE_PROJECT_ID"),
		ServiceAccountJSON: v.GetString("FIREBASE_SERVICE_ACCOUNT_JSON"),
		ServiceAccountPath: v.GetString("FIREBASE_SERVICE_ACCOUNT_PATH"),
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Brokers:      splitList(v.GetString("KAFKA_BROKERS")),
			RequestTopic: v.GetString("KAFKA_REQUEST_TOPIC"),
		},
		NearbyDefaultLimit: v.GetInt("NEARBY_DEFAULT_LIMIT"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_JSON", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_PATH", "./firebase-service-account.json")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_REQUEST_TOPIC", "requests.status")
	v.SetDefault("NEARBY_DEFAULT_LIMIT", 50)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 30)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
