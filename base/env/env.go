package env

import (
	"os"
)

// PodName example: k8ssta-dasgo-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: dasgo-api
func AppName() string {
	return os.Getenv("APP_NAME")
}

// ConfigFile overrides the default config location when set
func ConfigFile(fallback string) string {
	if f := os.Getenv("DAS_CONFIG"); f != "" {
		return f
	}
	return fallback
}
