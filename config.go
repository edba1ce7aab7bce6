package main

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr              string `json:"listen_addr"`
	AiUseTranspositionTable bool   `json:"ai_use_transposition_table"`
	AiTtSize                int    `json:"ai_tt_size"`
	AiTtPersistencePath     string `json:"ai_tt_persistence_path"`
	AiBacklogWorkers        int    `json:"ai_backlog_workers"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:              ":8080",
		AiUseTranspositionTable: true,
		AiTtSize:                1 << 16,
		AiBacklogWorkers:        1,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

// LoadConfigFromEnv overlays the defaults with environment variables, after
// loading an optional .env file.
func LoadConfigFromEnv() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using environment variables")
	}
	config := DefaultConfig()
	config.ListenAddr = getEnv("LISTEN_ADDR", config.ListenAddr)
	config.AiUseTranspositionTable = getEnvAsBool("AI_USE_TT", config.AiUseTranspositionTable)
	config.AiTtSize = getEnvAsInt("AI_TT_SIZE", config.AiTtSize)
	config.AiTtPersistencePath = getEnv("AI_TT_PERSISTENCE_PATH", config.AiTtPersistencePath)
	config.AiBacklogWorkers = getEnvAsInt("AI_BACKLOG_WORKERS", config.AiBacklogWorkers)
	configStore.Update(config)
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[config] %s=%q is not an integer, keeping %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[config] %s=%q is not a boolean, keeping %t", key, raw, fallback)
		return fallback
	}
	return value
}
