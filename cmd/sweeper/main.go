package main

import (
	"log"

	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/vault"
)

// One-shot vault sweep for cron use.
func main() {
	cfg := config.Load()

	v, err := vault.New(vault.Options{
		WorkingDir:     cfg.VaultDir,
		ArchiveDir:     cfg.ArchiveDir,
		ArchiveEnabled: cfg.ArchiveEnabled,
		WorkingExpiry:  cfg.VaultExpiry,
		ArchiveExpiry:  cfg.ArchiveExpiry,
	})
	if err != nil {
		log.Fatalf("vault: %v", err)
	}

	deleted := v.Sweep()
	log.Printf("sweep complete: %d file(s) removed", deleted)
}
