package main

import (
	"log"
	"net/http"

	"tienda-catalogo/app"
	"tienda-catalogo/config"
	"tienda-catalogo/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := app.Initialize(cfg); err != nil {
		log.Fatalf("❌ Initialization error: %v", err)
	}
	defer db.CloseDB()

	log.Printf("🎉 Server listening on %s (env: %s)", cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
