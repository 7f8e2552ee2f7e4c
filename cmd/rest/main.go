package main

import (
	"context"
	"log"

	"policy-rag-be/internal/bootstrap"
	"policy-rag-be/internal/config"
	"policy-rag-be/internal/server"
	"policy-rag-be/internal/tracer"
	"policy-rag-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	// A missing vector index must not take the chat surface down: the server
	// starts degraded and /chat reports retrieval as unavailable.
	var gormDB *gorm.DB
	if cfg.Database.Connection == "" {
		log.Println("[WARN] DB_CONNECTION_STRING not set, starting with retrieval disabled")
	} else {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Printf("[WARN] Unable to connect to GORM DB: %v, starting with retrieval disabled", err)
		} else {
			gormDB = db
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	if gormDB != nil {
		go func() {
			log.Println("Background: Starting Consumer Service...")
			if err := container.ConsumerService.Consume(context.Background()); err != nil {
				log.Printf("Background Consumer Error: %v", err)
			}
		}()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
