package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	TaxRate decimal.Decimal

	PrintAPIURL        string
	PrintAPIKey        string
	PrintPrinterID     string
	PrintWebhookSecret string

	ToastLimit          int
	ToastMobileSeconds  int
	ToastDesktopSeconds int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "kiosk.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		TaxRate: getEnvDecimal("TAX_RATE", "0.10"),

		PrintAPIURL:        getEnv("PRINT_API_URL", "https://api.print.example/v1/jobs"),
		PrintAPIKey:        os.Getenv("PRINT_API_KEY"),
		PrintPrinterID:     os.Getenv("PRINT_PRINTER_ID"),
		PrintWebhookSecret: os.Getenv("PRINT_WEBHOOK_SECRET"),

		ToastLimit:          getEnvInt("TOAST_LIMIT", 1),
		ToastMobileSeconds:  getEnvInt("TOAST_MOBILE_SECONDS", 3),
		ToastDesktopSeconds: getEnvInt("TOAST_DESKTOP_SECONDS", 5),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	s := getEnv(key, fallback)
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
