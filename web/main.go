package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"itg.uk/invoicegen/config"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/web/handlers"
	"itg.uk/invoicegen/web/middlewares"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load(os.Getenv("INVOICEGEN_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	store, err := session.NewStore(session.MemoryDSN)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api/v1.0")
	if cfg.SigningSecret != "" {
		jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
		if err != nil {
			log.Fatal("Failed to decode JWT secret:", err)
		}
		api.Use(middlewares.Authentication(jwtSecret))
	} else {
		fmt.Println("[WARN] no signing secret configured, API is unauthenticated")
	}
	handlers.Register(api, &handlers.Endpoint{Store: store, Cfg: cfg})

	r.Run(cfg.ListenAddr)
}
