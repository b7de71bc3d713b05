package config

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	JwtTTL      time.Duration `yaml:"jwt_ttl" env:"JWT_TTL" validate:"required"`
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON     bool          `yaml:"log_json" env:"LOG_JSON"`
	Http        Http          `yaml:"http"`
	CorsOrigins []string      `yaml:"cors_origins"`
}

type Http struct {
	Port            int           `yaml:"port" env:"HTTP_PORT" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
}

type Pg struct {
	Host     string `yaml:"host" env:"PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"PG_USER" validate:"required"`
	Password string `yaml:"password" env:"PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"PG_DBNAME" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" env:"JWT_KEY" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// mustApplyEnv overrides yaml values with environment variables.
// An optional .env file in the config folder is loaded first; variables
// already set in the process environment win over it.
func mustApplyEnv(configFolder string, outputs ...interface{}) {
	if err := godotenv.Load(path.Join(configFolder, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("can't load .env file: " + err.Error())
	}
	for _, output := range outputs {
		if err := cleanenv.UpdateEnv(output); err != nil {
			panic("can't read environment: " + err.Error())
		}
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides and panics if a required value is missing.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	mustApplyEnv(configFolder, &public, &private)

	cfg := &Config{Public: public, Private: private}
	if err := validator.New().Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
