package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ProjectName        string
	ServerHost         string
	ServerPort         string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	SecretKey          string
	JWTAlgorithm       string
	TokenExpireMinutes int
	AllowedOrigins     []string
	AllowedHosts       []string
	ResetDB            bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PROJECT_NAME", "Event Management System")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/event_management?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SECRET_KEY", "change-me")
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*7) // 7 days
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ALLOWED_HOSTS", "localhost,127.0.0.1,0.0.0.0")

	return &Config{
		ProjectName:        v.GetString("PROJECT_NAME"),
		ServerHost:         v.GetString("SERVER_HOST"),
		ServerPort:         v.GetString("SERVER_PORT"),
		MySQLDSN:           v.GetString("MYSQL_DSN"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisPass:          v.GetString("REDIS_PASSWORD"),
		SecretKey:          v.GetString("SECRET_KEY"),
		JWTAlgorithm:       v.GetString("JWT_ALGORITHM"),
		TokenExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		AllowedOrigins:     splitList(v.GetString("ALLOWED_ORIGINS")),
		AllowedHosts:       splitList(v.GetString("ALLOWED_HOSTS")),
		ResetDB:            v.GetBool("RESET_DB"),
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
