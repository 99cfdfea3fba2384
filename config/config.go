package config

import (
	"os"
	"strconv"
)

// GetEnv membaca environment variable, pakai fallback kalau tidak diset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt seperti GetEnv untuk nilai numerik (contoh: SMTP_PORT).
// Nilai yang tidak bisa diparse dianggap tidak diset.
func GetEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
