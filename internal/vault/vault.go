package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/telemetry"
	"careerai-backend/internal/shared/util"
)

// ErrNotFound is returned by Load when the named artifact does not exist in
// the working directory.
var ErrNotFound = errors.New("artifact not found")

const timestampLayout = "20060102150405"

// Entry is one listed artifact.
type Entry struct {
	Name     string    `json:"name"`
	Modified time.Time `json:"modified"`
}

// Mirror receives a copy of every stored artifact, typically an S3 bucket.
type Mirror interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

// Options configure a Vault.
type Options struct {
	WorkingDir     string
	ArchiveDir     string
	ArchiveEnabled bool
	WorkingExpiry  time.Duration
	ArchiveExpiry  time.Duration
	Mirror         Mirror
}

// Vault stores generated artifacts as write-once files under deterministic
// timestamped names. No locking: unique filenames avoid store collisions, and
// sweep races with stores are accepted since expiries are hours or days.
type Vault struct {
	workingDir     string
	archiveDir     string
	archiveEnabled bool
	workingExpiry  time.Duration
	archiveExpiry  time.Duration
	mirror         Mirror

	now func() time.Time
}

// New creates the vault directories and returns the vault.
func New(opts Options) (*Vault, error) {
	if opts.WorkingDir == "" {
		return nil, errors.New("vault: working dir is required")
	}
	if err := os.MkdirAll(opts.WorkingDir, 0o755); err != nil {
		return nil, fmt.Errorf("vault: create working dir: %w", err)
	}
	if opts.ArchiveEnabled {
		if opts.ArchiveDir == "" {
			return nil, errors.New("vault: archive dir is required when archival is enabled")
		}
		if err := os.MkdirAll(opts.ArchiveDir, 0o755); err != nil {
			return nil, fmt.Errorf("vault: create archive dir: %w", err)
		}
	}
	if opts.WorkingExpiry <= 0 {
		opts.WorkingExpiry = 48 * time.Hour
	}
	if opts.ArchiveExpiry <= 0 {
		opts.ArchiveExpiry = 60 * 24 * time.Hour
	}
	return &Vault{
		workingDir:     opts.WorkingDir,
		archiveDir:     opts.ArchiveDir,
		archiveEnabled: opts.ArchiveEnabled,
		workingExpiry:  opts.WorkingExpiry,
		archiveExpiry:  opts.ArchiveExpiry,
		mirror:         opts.Mirror,
		now:            time.Now,
	}, nil
}

// Store writes data under {file_type}_{role}_{company}_{timestamp}.pdf and
// returns the filename as the caller-facing handle. When archival is enabled
// the bytes are also copied to the archive dir and, if configured, the mirror.
func (v *Vault) Store(ctx context.Context, data []byte, role, company, fileType string) (string, error) {
	filename := fmt.Sprintf("%s_%s_%s_%s.pdf",
		util.SanitizeNamePart(fileType),
		util.SanitizeNamePart(role),
		util.SanitizeNamePart(company),
		v.now().Format(timestampLayout))

	workingPath := filepath.Join(v.workingDir, filename)
	if err := os.WriteFile(workingPath, data, 0o644); err != nil {
		return "", fmt.Errorf("vault: store %s: %w", filename, err)
	}

	if v.archiveEnabled {
		archivePath := filepath.Join(v.archiveDir, filename)
		if err := os.WriteFile(archivePath, data, 0o644); err != nil {
			telemetry.Warn("vault.archive.failed", map[string]any{"file": filename, "err": err.Error()})
		}
		if v.mirror != nil {
			if err := v.mirror.Put(ctx, filename, "application/pdf", data); err != nil {
				telemetry.Warn("vault.mirror.failed", map[string]any{"file": filename, "err": err.Error()})
			}
		}
	}

	telemetry.Info("vault.stored", map[string]any{"file": filename, "bytes": len(data)})
	return filename, nil
}

// Load reads an artifact from the working directory.
func (v *Vault) Load(filename string) ([]byte, error) {
	clean, err := util.SanitizeFileName(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	data, err := os.ReadFile(filepath.Join(v.workingDir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, fmt.Errorf("vault: load %s: %w", clean, err)
	}
	return data, nil
}

// Sweep deletes expired files from both tiers and returns how many were
// removed. Per-file delete failures are logged and never abort the sweep.
func (v *Vault) Sweep() int {
	deleted := v.sweepDir(v.workingDir, v.workingExpiry)
	if v.archiveEnabled {
		deleted += v.sweepDir(v.archiveDir, v.archiveExpiry)
	}
	if deleted > 0 {
		metrics.AddVaultSweptFiles(deleted)
		telemetry.Info("vault.swept", map[string]any{"deleted": deleted})
	}
	return deleted
}

func (v *Vault) sweepDir(dir string, expiry time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		telemetry.Warn("vault.sweep.readdir", map[string]any{"dir": dir, "err": err.Error()})
		return 0
	}

	cutoff := v.now().Add(-expiry)
	deleted := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			telemetry.Warn("vault.sweep.delete", map[string]any{"file": e.Name(), "err": err.Error()})
			continue
		}
		deleted++
	}
	return deleted
}

// List returns working-directory artifacts sorted by modification time,
// newest first.
func (v *Vault) List() ([]Entry, error) {
	entries, err := os.ReadDir(v.workingDir)
	if err != nil {
		return nil, fmt.Errorf("vault: list: %w", err)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: e.Name(), Modified: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Modified.After(out[j].Modified) })
	return out, nil
}
