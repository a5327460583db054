package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultPort          = 4117
	DefaultDataFile      = "pins.json"
	DefaultTileCache     = "tiles.db"
	DefaultTileURL       = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultTileTimeout   = 10000 // ms
	DefaultLocateTimeout = 15000 // ms
)

type Config struct {
	Port            int
	DataFile        string
	TileCachePath   string
	TileURLTemplate string
	TileTimeoutMs   int
	LocateTimeoutMs int
}

// ParseFlags validates flags and fills in environment/default values
func ParseFlags(args []string) (Config, error) {
	// .env is optional; real env vars win over it
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("unitracker", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataFile, "f", "", "Pin data file")
	fs.StringVar(&cfg.TileCachePath, "tile-cache", "", "Tile cache database path")
	fs.StringVar(&cfg.TileURLTemplate, "tile-url", "", "Tile origin URL template")
	fs.IntVar(&cfg.TileTimeoutMs, "tile-timeout", 0, "Tile fetch timeout (ms)")
	fs.IntVar(&cfg.LocateTimeoutMs, "locate-timeout", 0, "One-shot locate timeout (ms)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("PIN_DATA_FILE")
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	if cfg.TileCachePath == "" {
		cfg.TileCachePath = os.Getenv("TILE_CACHE_PATH")
	}
	if cfg.TileCachePath == "" {
		cfg.TileCachePath = DefaultTileCache
	}

	if cfg.TileURLTemplate == "" {
		cfg.TileURLTemplate = os.Getenv("TILE_URL_TEMPLATE")
	}
	if cfg.TileURLTemplate == "" {
		cfg.TileURLTemplate = DefaultTileURL
	}

	if cfg.TileTimeoutMs == 0 {
		cfg.TileTimeoutMs = envInt("TILE_TIMEOUT_MS", DefaultTileTimeout)
	}
	if cfg.LocateTimeoutMs == 0 {
		cfg.LocateTimeoutMs = envInt("LOCATE_TIMEOUT_MS", DefaultLocateTimeout)
	}

	if cfg.TileTimeoutMs < 0 || cfg.LocateTimeoutMs < 0 {
		return Config{}, errors.New("timeouts must be positive")
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
