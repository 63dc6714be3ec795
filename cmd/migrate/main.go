package main

import (
	"context"
	"flag"
	"log"

	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/shared/storage/db"
)

func main() {
	var direction string
	flag.StringVar(&direction, "direction", "up", "migration direction: up, down, or status")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer sqlDB.Close()

	switch direction {
	case "up":
		err = db.RunMigrations(ctx, sqlDB)
	case "down":
		err = db.RollbackMigration(ctx, sqlDB)
	case "status":
		err = db.MigrationStatus(ctx, sqlDB)
	default:
		log.Fatalf("unknown direction %q", direction)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", direction, err)
	}
}
