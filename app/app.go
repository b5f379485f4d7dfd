package app

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/cache"
	"github.com/Mu6a9922/v3/db"
)

// Aliases to keep handler signatures short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Cache  *cache.Store
	Config Config
}

// Config is read from environment variables.
type Config struct {
	RedisAddr string
	RedisPwd  string
	WebOrigin string
	// ImportHeaderRows is how many template header rows the importer skips
	// before the first data row.
	ImportHeaderRows int
}

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis (optional: stats cache + migration lock) ---
	var rdb *redis.Client
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
		_ = client.Close()
	} else {
		rdb = client
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r,
		DB:     dbConn,
		RDB:    rdb,
		Cache:  cache.NewStore(rdb),
		Config: cfg,
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	headerRows := 3
	if n, err := strconv.Atoi(get("IMPORT_HEADER_ROWS", "3")); err == nil && n >= 0 {
		headerRows = n
	}
	return Config{
		RedisAddr:        get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:         os.Getenv("REDIS_PASSWORD"),
		WebOrigin:        get("WEB_ORIGIN", "http://localhost:3000"),
		ImportHeaderRows: headerRows,
	}
}
