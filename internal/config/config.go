package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	ListenAddr  string
	DatabaseURL string

	CacheEnabled    bool
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	TelegramToken  string
	DispatchChatID int64
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		instance = &ServerConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.ListenAddr = getEnv("LISTEN_ADDR", ":8080")

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		instance.CacheEnabled = getEnvAsBool("CACHE_ENABLED", false)
		instance.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
		instance.RedisPassword = getEnv("REDIS_PASSWORD", "")
		instance.RedisDB = int(getEnvAsInt("REDIS_DB", 0))
		instance.CacheTTLSeconds = int(getEnvAsInt("CACHE_TTL_SECONDS", 300))

		// Notifications are optional; leave the token empty to disable.
		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		instance.DispatchChatID = getEnvAsInt("DISPATCH_CHAT_ID", 0)
		if instance.TelegramToken != "" && instance.DispatchChatID == 0 {
			logrus.Fatal("could not get dispatch chat id")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
