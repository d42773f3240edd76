package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Server holds the API process settings, read from the environment.
type Server struct {
	Port           string
	Env            string
	PresetDir      string
	LogLevel       string
	AllowedOrigins []string
	PresetCacheTTL time.Duration // 0 disables the preset cache
}

func ServerFromEnv() Server {
	s := Server{
		Port:     os.Getenv("API_PORT"),
		Env:      os.Getenv("API_ENV"),
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
	if s.Port == "" {
		s.Port = "8080"
	}

	s.PresetDir = os.Getenv("PRESET_DIR")
	if s.PresetDir == "" {
		s.PresetDir = filepath.Join("examples", "presets")
	}
	if abs, err := filepath.Abs(s.PresetDir); err == nil {
		s.PresetDir = abs
	}

	s.PresetCacheTTL = time.Minute
	if raw := os.Getenv("PRESET_CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			s.PresetCacheTTL = d
		}
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			s.AllowedOrigins = append(s.AllowedOrigins, o)
		}
	}
	if len(s.AllowedOrigins) == 0 && !s.Production() {
		s.AllowedOrigins = []string{"*"}
	}
	return s
}

func (s Server) Production() bool {
	return s.Env == "production"
}
