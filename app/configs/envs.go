package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBPath     string
	Port       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	env := ENV{
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		DBPath:     os.Getenv("DB_PATH"),
		Port:       os.Getenv("APP_PORT"),
	}

	if env.DBDriver == "" {
		env.DBDriver = "sqlite"
	}
	if env.DBPath == "" {
		env.DBPath = "foodorder.db"
	}
	if env.Port == "" {
		env.Port = ":8080"
	}

	return env
}
