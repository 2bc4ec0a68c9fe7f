// Package config loads the pipeline configuration: the legacy config.json
// (directories/files layout), optional .env / environment overrides, the
// player alias map and the event-pattern catalog. The resulting Config is an
// immutable value passed into components; nothing here is global.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// Defaults match the directory names the rest of the toolchain (downloader,
// CSV post-processing) has always used.
const (
	DefaultRawDir       = "full-game-stats-raw"
	DefaultOutputDir    = "full-game-stats-output"
	DefaultScheduleFile = "gameScheduleDB.json"
	DefaultAliasFile    = "data/playerNameAliases.json"
)

// Config is the resolved pipeline configuration.
type Config struct {
	RawDir       string
	OutputDir    string
	ScheduleFile string
	AliasFile    string
	PatternsFile string
}

// configFile mirrors the legacy data/config.json shape.
type configFile struct {
	Directories map[string]string `json:"directories"`
	Files       map[string]string `json:"files"`
}

// Load resolves the configuration from three layers: built-in defaults, the
// config file (if it exists) and FLBB_* environment variables, with a .env
// file applied first so local runs can override without exporting anything.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	cfg := Config{
		RawDir:       DefaultRawDir,
		OutputDir:    DefaultOutputDir,
		ScheduleFile: DefaultScheduleFile,
		AliasFile:    DefaultAliasFile,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		var file configFile
		if err := json.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		applyString(&cfg.RawDir, file.Directories["fullGameStatsRaw"])
		applyString(&cfg.OutputDir, file.Directories["fullGameStatsOutput"])
		applyString(&cfg.ScheduleFile, file.Files["gameScheduleDb"])
		applyString(&cfg.AliasFile, file.Files["playerNameAliases"])
		applyString(&cfg.PatternsFile, file.Files["gameEventPatterns"])
	}

	applyString(&cfg.RawDir, os.Getenv("FLBB_RAW_DIR"))
	applyString(&cfg.OutputDir, os.Getenv("FLBB_OUTPUT_DIR"))
	applyString(&cfg.ScheduleFile, os.Getenv("FLBB_SCHEDULE_FILE"))
	applyString(&cfg.AliasFile, os.Getenv("FLBB_ALIAS_FILE"))
	applyString(&cfg.PatternsFile, os.Getenv("FLBB_PATTERNS_FILE"))
	return cfg, nil
}

func applyString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// LoadAliases reads the player alias map. A missing file just means no
// aliases are configured yet.
func (c Config) LoadAliases() (normalize.AliasMap, error) {
	data, err := os.ReadFile(c.AliasFile)
	if os.IsNotExist(err) {
		log.Debug("no player alias file", "path", c.AliasFile)
		return normalize.AliasMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading alias map: %w", err)
	}
	var aliases normalize.AliasMap
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("parsing alias map %s: %w", c.AliasFile, err)
	}
	return aliases, nil
}

// LoadCatalog returns the event-pattern catalog: the configured file when
// one is set, the built-in catalog otherwise.
func (c Config) LoadCatalog() ([]classify.Category, error) {
	if c.PatternsFile == "" {
		return classify.DefaultCatalog(), nil
	}
	return classify.LoadCatalog(c.PatternsFile)
}
