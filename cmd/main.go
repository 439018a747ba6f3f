package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ATripathi13/Human-Resource-Management-System/config"
	"github.com/ATripathi13/Human-Resource-Management-System/database"
	"github.com/ATripathi13/Human-Resource-Management-System/middlewares"
	"github.com/ATripathi13/Human-Resource-Management-System/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	// fails fast if the database is not up yet
	db := database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middlewares.CORS())

	routes.Register(e, db)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
