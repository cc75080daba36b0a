package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	WeatherAPIBase string
	WeatherAPIKey  string
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	CropTableXLSX  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Ho_Chi_Minh"),
		DBPath:         get("DB_PATH", "irriga.db"),
		WeatherAPIBase: get("WEATHER_API_BASE", "https://api.openweathermap.org"),
		WeatherAPIKey:  get("WEATHER_API_KEY", ""),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		CropTableXLSX:  get("CROP_TABLE_XLSX", ""),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s weather=%s llm_model=%s", cfg.Port, cfg.Timezone, cfg.DBPath, cfg.WeatherAPIBase, cfg.LLMModel)
	return cfg
}
