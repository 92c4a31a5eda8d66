package config

import "os"

type Config struct {
	HTTPPort   string
	RedisURI   string // empty disables the report cache
	ModelPath  string
	RiskPolicy string
}

func Load() *Config {
	return &Config{
		HTTPPort:   getEnv("PORT", "8080"),
		RedisURI:   getEnv("REDIS_URI", ""),
		ModelPath:  getEnv("MODEL_PATH", "model.json"),
		RiskPolicy: getEnv("RISK_POLICY", "weighted"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
