package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the tool defaults. Precedence, lowest to highest:
// built-in values, config file, environment, command-line flags (applied by
// the CLI layer).
type Config struct {
	Resize    ResizeConfig    `yaml:"resize"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
}

type ResizeConfig struct {
	MaxSide            int  `yaml:"max_side"`
	Quality            int  `yaml:"quality"`
	WithoutEnlargement bool `yaml:"without_enlargement"`
}

type ThumbnailConfig struct {
	Size    int `yaml:"size"`
	Quality int `yaml:"quality"`
}

func defaults() Config {
	return Config{
		Resize: ResizeConfig{
			MaxSide:            1024,
			Quality:            85,
			WithoutEnlargement: true,
		},
		Thumbnail: ThumbnailConfig{
			Size:    256,
			Quality: 80,
		},
	}
}

// Load resolves the tool defaults. A missing config file is not an error;
// a present but unparseable one is.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := configPath()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// no config file, defaults apply
		default:
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.Resize.MaxSide = envInt("IMAGEOPS_MAX_SIDE", cfg.Resize.MaxSide)
	cfg.Resize.Quality = envInt("IMAGEOPS_RESIZE_QUALITY", cfg.Resize.Quality)
	cfg.Resize.WithoutEnlargement = envBool("IMAGEOPS_WITHOUT_ENLARGEMENT", cfg.Resize.WithoutEnlargement)
	cfg.Thumbnail.Size = envInt("IMAGEOPS_THUMBNAIL_SIZE", cfg.Thumbnail.Size)
	cfg.Thumbnail.Quality = envInt("IMAGEOPS_THUMBNAIL_QUALITY", cfg.Thumbnail.Quality)

	return cfg, nil
}

func configPath() string {
	if path := env("IMAGEOPS_CONFIG", ""); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "imageops", "config.yaml")
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
