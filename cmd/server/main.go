package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/velobay/bike-rental/internal/config"
	"github.com/velobay/bike-rental/internal/database"
	"github.com/velobay/bike-rental/internal/handler"
	"github.com/velobay/bike-rental/internal/queue"
	"github.com/velobay/bike-rental/internal/repository"
	"github.com/velobay/bike-rental/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the response cache and the
	// rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bikes := repository.NewBikeRepo(db)
	parts := repository.NewPartRepo(db)
	rentals := repository.NewRentalRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	catalogH := handler.NewCatalogHandler(bikes, parts, users)
	rentalH := handler.NewRentalHandler(bikes, rentals)

	e := echo.New()
	e.Use(echomw.Recover())
	if cfg.Debug {
		e.Use(echomw.Logger())
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, rdb)
	router.RegisterCatalog(e, catalogH, cfg.JWTSecret, rdb)
	router.RegisterRental(e, rentalH, cfg.JWTSecret)

	// Background consumer appending confirmed rentals to logs/rental.log.
	go func() {
		if err := queue.StartRentalConsumer(); err != nil {
			log.Printf("rental consumer stopped: %v", err)
		}
	}()

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
