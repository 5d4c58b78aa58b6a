package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppEnv = uint8

const (
	Dev AppEnv = iota
	Prod
)

const (
	DefaultBoardSize = 8
	MaxBoardSize     = 26
)

type Env struct {
	AppEnv      AppEnv
	BoardWidth  int
	BoardHeight int
	LogLevel    slog.Level
}

var ErrInvalidEnv = errors.New("invalid environment variable")

// GetEnv reads the process environment. In dev, a missing board size is
// looked up in ./.env, or in the file named by ENV_FILE.
func GetEnv() (env *Env, err error) {
	appEnvStr, _ := os.LookupEnv("APP_ENV")

	appEnv := Dev
	if strings.EqualFold(appEnvStr, "prod") {
		appEnv = Prod
	}

	_, widthExists := os.LookupEnv("BOARD_WIDTH")
	_, heightExists := os.LookupEnv("BOARD_HEIGHT")
	if appEnv == Dev && (!widthExists || !heightExists) {
		if err := loadDotEnv(); err != nil {
			return nil, err
		}
	}

	width, err := boardSize("BOARD_WIDTH")
	if err != nil {
		return nil, err
	}
	height, err := boardSize("BOARD_HEIGHT")
	if err != nil {
		return nil, err
	}

	levelStr, _ := os.LookupEnv("LOG_LEVEL")
	level, err := ParseLogLevel(levelStr)
	if err != nil {
		return nil, err
	}

	return &Env{
		AppEnv:      appEnv,
		BoardWidth:  width,
		BoardHeight: height,
		LogLevel:    level,
	}, nil
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv() error {
	path, found := os.LookupEnv("ENV_FILE")
	if !found || path == "" {
		path = "./.env"
	}

	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no .env file, using process environment", slog.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	slog.Debug("loaded .env file", slog.String("path", path))
	return nil
}

func boardSize(key string) (int, error) {
	str, found := os.LookupEnv(key)
	if !found || strings.TrimSpace(str) == "" {
		return DefaultBoardSize, nil
	}

	size, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidEnv, key, str, err)
	}
	if size < 1 || size > MaxBoardSize {
		return 0, fmt.Errorf("%w: %s=%d must be in 1..%d", ErrInvalidEnv, key, size, MaxBoardSize)
	}
	return size, nil
}

// ParseLogLevel accepts debug, info, warn and error. Empty means info.
func ParseLogLevel(str string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: LOG_LEVEL=%q", ErrInvalidEnv, str)
}
