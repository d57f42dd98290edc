package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type StorageConfig struct {
	// Driver selects the key-value backend: "badger" (embedded, default) or "redis".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"badger"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"./data/resident"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type NATSConfig struct {
	Enabled bool   `yaml:"enabled" env:"NATS_ENABLED" env-default:"false"`
	URL     string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
}

type HTTPServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:"localhost:8470"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	TimeoutGraceful time.Duration `yaml:"timeout_graceful_shutdown" env-default:"15s"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type DocumentStoreConfig struct {
	Enabled   bool   `yaml:"enabled" env:"DOCSTORE_ENABLED" env-default:"false"`
	Endpoint  string `yaml:"endpoint" env:"DOCSTORE_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"DOCSTORE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"DOCSTORE_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"DOCSTORE_BUCKET" env-default:"resident-documents"`
	UseSSL    bool   `yaml:"use_ssl" env:"DOCSTORE_USE_SSL" env-default:"false"`
}

type SessionConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"SESSION_JWT_SECRET" env-default:"dev-only-secret"`
}

type DraftsConfig struct {
	// TTL bounds how long a saved application draft stays restorable.
	TTL time.Duration `yaml:"ttl" env:"DRAFT_TTL" env-default:"24h"`
}

type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    HTTPServerConfig    `yaml:"http_server"`
	Storage       StorageConfig       `yaml:"storage"`
	Redis         RedisConfig         `yaml:"redis"`
	NATS          NATSConfig          `yaml:"nats"`
	Logger        LoggerConfig        `yaml:"logger"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	Session       SessionConfig       `yaml:"session"`
	Drafts        DraftsConfig        `yaml:"drafts"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		err := cleanenv.ReadEnv(&cfg)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			errEnv := cleanenv.ReadEnv(&cfg)
			if errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH_RESIDENT_SERVICE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
