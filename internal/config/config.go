package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	StaticDir string
	LogFile   string
	SeedDemo  bool
}

func Load() Config {
	// Local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stock.db"
	} // sqlite file in project root
	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./web/static"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		StaticDir: static,
		LogFile:   logFile,
		SeedDemo:  os.Getenv("SEED_DEMO") == "1",
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s SEED_DEMO=%v",
		cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.LogFile, cfg.SeedDemo)
	return cfg
}
