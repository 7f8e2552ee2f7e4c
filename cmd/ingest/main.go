package main

import (
	"context"
	"flag"
	"log"
	"time"

	"policy-rag-be/internal/bootstrap"
	"policy-rag-be/internal/config"
	"policy-rag-be/internal/model"
	"policy-rag-be/pkg/database"
)

// ingest loads a line-delimited policy corpus into the vector index. It runs
// the same publisher/consumer pair the server uses, in-process, and exits once
// every published chunk event has been handled.
func main() {
	cfg := config.Load()

	dataFile := flag.String("file", cfg.Ingest.DataFile, "path to the policy JSONL file")
	flag.Parse()

	if cfg.Database.Connection == "" {
		log.Fatal("[FATAL] DB_CONNECTION_STRING is required for ingestion")
	}
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("[FATAL] Unable to enable pgvector extension: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.PolicyChunk{}); err != nil {
		log.Fatalf("[FATAL] Unable to migrate policy_chunks: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("[FATAL] Unable to start consumer: %v", err)
	}

	start := time.Now()
	published, err := container.IngestService.IngestFile(ctx, *dataFile)
	if err != nil {
		log.Fatalf("[FATAL] Ingestion failed: %v", err)
	}

	// Drain: embedding runs behind the event bus, wait until every chunk
	// event has been handled before exiting.
	for container.ConsumerService.Processed() < int64(published) {
		time.Sleep(200 * time.Millisecond)
	}

	log.Printf("✅ Ingested %d chunks from %s in %s", published, *dataFile, time.Since(start).Round(time.Millisecond))
}
