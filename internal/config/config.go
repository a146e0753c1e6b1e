package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB          DBConfig
	Server      ServerConfig
	Redis       RedisConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	Translation TranslationConfig
	Points      PointsConfig
	Session     SessionConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type AuthConfig struct {
	JWTSecret string
}

// TranslationConfig selects and configures the external translation backend.
type TranslationConfig struct {
	Source         string // "deepl" or "ollama"
	BatchSize      int
	RequestTimeout time.Duration
	DeepL          DeepLConfig
	Ollama         OllamaConfig
}

type DeepLConfig struct {
	APIKey  string
	BaseURL string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type PointsConfig struct {
	// DiscoveryTTL bounds how long a session's "seen affordances" set lives.
	DiscoveryTTL time.Duration
}

type SessionConfig struct {
	// TTL is how long an abandoned quiz session stays resumable.
	TTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("translation.source", "deepl")
	viper.SetDefault("translation.batch_size", 10)
	viper.SetDefault("translation.request_timeout", 15)
	viper.SetDefault("points.discovery_ttl", 43200)
	viper.SetDefault("session.ttl", 7200)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Translation: TranslationConfig{
			Source:         viper.GetString("translation.source"),
			BatchSize:      viper.GetInt("translation.batch_size"),
			RequestTimeout: viper.GetDuration("translation.request_timeout") * time.Second,
			DeepL: DeepLConfig{
				APIKey:  viper.GetString("translation.deepl.api_key"),
				BaseURL: viper.GetString("translation.deepl.base_url"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("translation.ollama.server_url"),
				Model:     viper.GetString("translation.ollama.model"),
			},
		},
		Points: PointsConfig{
			DiscoveryTTL: viper.GetDuration("points.discovery_ttl") * time.Second,
		},
		Session: SessionConfig{
			TTL: viper.GetDuration("session.ttl") * time.Second,
		},
	}

	// Environment variables win over the file for deployment-sensitive values.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if deeplKey := os.Getenv("DEEPL_API_KEY"); deeplKey != "" {
		config.Translation.DeepL.APIKey = deeplKey
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
