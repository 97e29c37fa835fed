package env

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file when one exists. Absence is not an error; the
// process then runs on system environment variables alone.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system envs")
	}
}

// GetEnv returns the value of key or fallback when unset
func GetEnv(key string, fallback string) string {
	if value, exist := os.LookupEnv(key); exist {
		return value
	}
	return fallback
}
