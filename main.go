package main

import (
	"log"

	"auth-api/internals/config"
	"auth-api/internals/initializers"
	"auth-api/internals/routes"
)

func main() {
	initializers.LoadEnvVariables()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("SECRET_KEY must be set")
	}

	db, err := initializers.ConnectToDb(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := routes.SetupRouter(cfg, db)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
