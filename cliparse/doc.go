// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv); real
environment variables take precedence over it, and CLI flags over both.

# Config Fields

  - Port: server listen port (default: 4117)
  - DataFile: pin data file path (default: pins.json)
  - TileCachePath: tile cache database (default: tiles.db)
  - TileURLTemplate: tile origin, {s}/{z}/{x}/{y} placeholders
  - TileTimeoutMs: tile fetch timeout
  - LocateTimeoutMs: one-shot locate timeout

# CLI Flags

	-p              Server port
	-f              Pin data file
	-tile-cache     Tile cache database path
	-tile-url       Tile origin URL template
	-tile-timeout   Tile fetch timeout (ms)
	-locate-timeout One-shot locate timeout (ms)

# Environment Variables

Flags fall back to environment variables: PORT, PIN_DATA_FILE,
TILE_CACHE_PATH, TILE_URL_TEMPLATE, TILE_TIMEOUT_MS, LOCATE_TIMEOUT_MS.
*/
package cliparse
