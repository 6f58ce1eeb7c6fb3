package main

import (
	"fmt"
	"log"

	"gestion-radiografias/internal/config"
	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}

	database.Init(cfg.DSN())

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("servidor escuchando en %s (base de datos: %s)", addr, cfg.DBName)
	if err := r.Run(addr); err != nil {
		log.Fatalf("error del servidor: %v", err)
	}
}
