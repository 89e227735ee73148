package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/Harshhjs/farmconnect/internal/config"
	"github.com/Harshhjs/farmconnect/internal/handler"
	"github.com/Harshhjs/farmconnect/internal/queue"
	"github.com/Harshhjs/farmconnect/internal/router"
	"github.com/Harshhjs/farmconnect/internal/seed"
	"github.com/Harshhjs/farmconnect/internal/store"
	"github.com/Harshhjs/farmconnect/internal/weather"
)

func main() {
	_ = godotenv.Load() // absent .env is fine; real env vars still apply
	cfg := config.Load()

	st, err := store.Open(store.Config{DataDir: cfg.DataDir})
	if err != nil {
		log.Fatal(err)
	}
	if err := seed.Run(st, cfg.BcryptCost); err != nil {
		log.Fatal(err)
	}

	// Optional infrastructure. A nil redis client disables rate limiting
	// and the weather cache; the contact consumer only starts when asked.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and weather cache disabled")
	}
	eventsEnabled := os.Getenv("CONTACT_EVENTS_ENABLED") == "true"
	if os.Getenv("CONTACT_CONSUMER_ENABLED") == "true" {
		go queue.StartContactConsumer(os.Getenv("RABBITMQ_URL"))
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, rdb, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, st),
		Products: handler.NewProductHandler(st),
		Users:    handler.NewUserHandler(cfg, st),
		Contacts: handler.NewContactHandler(st, eventsEnabled),
		Stats:    handler.NewStatsHandler(st),
		Weather:  handler.NewWeatherHandler(weather.NewClient(cfg.WeatherTimeout), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
