package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	// simulated kitchen timing, measured from placement
	DelayPreparing      time.Duration
	DelayReady          time.Duration
	DelayOutForDelivery time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBSource:            getEnv("DB_SOURCE", "canteen.db"),
		Port:                getEnv("PORT", "8000"),
		DelayPreparing:      getDurationEnv("DELAY_PREPARING", 30*time.Second),
		DelayReady:          getDurationEnv("DELAY_READY", 2*time.Minute),
		DelayOutForDelivery: getDurationEnv("DELAY_OUT_FOR_DELIVERY", 3*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using %v", key, v, fallback)
		return fallback
	}
	return d
}
