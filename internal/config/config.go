package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidDefaultSize = errors.New("default board size must be between 1 and max size")
	ErrInvalidRunLength   = errors.New("run length must not be negative")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"GRIDGAME_LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"GRIDGAME_HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"GRIDGAME_SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"GRIDGAME_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GRIDGAME_REDIS_PORT" env-default:"6379"`
}

type Game struct {
	DefaultSize int `yaml:"default-size" env:"GRIDGAME_GAME_DEFAULT_SIZE" env-default:"3"`
	MaxSize     int `yaml:"max-size" env:"GRIDGAME_GAME_MAX_SIZE" env-default:"10"`

	// RunLength of 0 requires a full line, 3 keeps the classic three-in-a-row rule on every size.
	RunLength  int           `yaml:"run-length" env:"GRIDGAME_GAME_RUN_LENGTH" env-default:"0"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"GRIDGAME_GAME_SESSION_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Game.Validate(); err != nil {
		panic(fmt.Errorf("invalid game config: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) Validate() error {
	if that.DefaultSize < 1 || that.DefaultSize > that.MaxSize {
		return fmt.Errorf("%w: default %d, max %d", ErrInvalidDefaultSize, that.DefaultSize, that.MaxSize)
	}

	if that.RunLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRunLength, that.RunLength)
	}

	return nil
}
