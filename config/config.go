package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Options struct {
	runAddr           string
	logLevel          string
	databasePath      string
	jwtSecret         string
	openAIKey         string
	openAIBaseURL     string
	recipeModel       string
	recipeMaxTokens   int
	recipeTemperature float64
	recipeTimeout     time.Duration
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments and environment variables
// and stores their values in the corresponding fields.
func (o *Options) ParseFlags() {
	// Load environment variables from the .env file
	loadEnvFile()

	// Override variable values with values from command line flags
	flag.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8000"), "address and port to run server")
	flag.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	flag.StringVar(&o.databasePath, "d", getEnvOrDefault("DATABASE_PATH", "database.db"), "sqlite database file path")
	flag.Parse()

	o.jwtSecret = getEnvOrDefault("JWT_SECRET", "freshplate-dev-secret")
	o.openAIKey = os.Getenv("OPENAI_API_KEY")
	o.openAIBaseURL = getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	o.recipeModel = getEnvOrDefault("RECIPE_MODEL", "gpt-3.5-turbo")
	o.recipeMaxTokens = getEnvIntOrDefault("RECIPE_MAX_TOKENS", 1000)
	o.recipeTemperature = getEnvFloatOrDefault("RECIPE_TEMPERATURE", 0.7)
	o.recipeTimeout = getEnvDurationOrDefault("RECIPE_TIMEOUT", 60*time.Second)
}

func (o *Options) RunAddr() string {
	return o.runAddr
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) DatabasePath() string {
	return o.databasePath
}

func (o *Options) JWTSecret() string {
	return o.jwtSecret
}

func (o *Options) OpenAIKey() string {
	return o.openAIKey
}

func (o *Options) OpenAIBaseURL() string {
	return o.openAIBaseURL
}

func (o *Options) RecipeModel() string {
	return o.recipeModel
}

func (o *Options) RecipeMaxTokens() int {
	return o.recipeMaxTokens
}

func (o *Options) RecipeTemperature() float64 {
	return o.recipeTemperature
}

func (o *Options) RecipeTimeout() time.Duration {
	return o.recipeTimeout
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %d", value, key, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %g", value, key, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %s", value, key, defaultValue)
		return defaultValue
	}
	return parsed
}

// loadEnvFile loads environment variables from a .env file in the working directory.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, proceeding without it")
	}
}
