package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/service"
)

// token prints a signed device token for the write routes
func main() {
	device := flag.String("device", "", "Name of the device the token is issued to")
	ttl := flag.Duration("ttl", 0, "Token lifetime (0 for no expiry)")
	flag.Parse()

	if *device == "" {
		log.Fatal("-device is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := service.NewTokenService(cfg.JWTSecret).GenerateToken(*device, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
