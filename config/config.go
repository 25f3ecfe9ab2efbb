// Package config gathers the settings of the paletton command from the
// environment and from optional YAML files.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Scheme      string
	Preset      string
	Format      string
	Decimals    int // negative: no rounding
	Wheel       string
	PresetsFile string
	Policy      string
	Shader      string
	Debug       bool
}

// Load reads a .env file from the working directory when present, then the
// PALETTE_* environment variables.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() Config {
	return Config{
		Scheme:      getEnv("PALETTE_SCHEME", "mono"),
		Preset:      getEnv("PALETTE_PRESET", "pastel"),
		Format:      getEnv("PALETTE_FORMAT", "hex"),
		Decimals:    getEnvInt("PALETTE_DECIMALS", -1),
		Wheel:       getEnv("PALETTE_WHEEL", "paletton"),
		PresetsFile: getEnv("PALETTE_PRESETS_FILE", ""),
		Policy:      getEnv("PALETTE_POLICY", "absolute"),
		Shader:      getEnv("PALETTE_SHADER", "blend"),
		Debug:       getEnvBool("PALETTE_DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}
