// File: cmd/service/main.go
// @title        EarnHub API
// @version      1.0
// @description  Referral and rewards backend: registration with referral bonuses, sponsored tasks and cash withdrawals
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "earnhub/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is not set")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		redisIndex = i
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(redisAddr, os.Getenv("REDIS_PASSWORD"), redisIndex)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
