package main

import (
	"brand-sell/pkg/config"
	"brand-sell/services/api/internal/app"
)

//go:generate swag init -g main.go -d ./,../../internal/controller/http --parseInternal -o ../../docs --outputTypes go

// @title           Brand&Sell API
// @version         1.0
// @description     Product briefs, prompt composition, Claude generation, social posts, templates and the download center.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
