package testing

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const DefaultPGImage = "postgres:17.5"

// PGContainer is a disposable Postgres with the repository migrations applied
type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

// Terminate stops and removes the container
func (c *PGContainer) Terminate() error {
	return testcontainers.TerminateContainer(c.Container)
}

type PGConfig struct {
	Database string
	Username string
	Password string
	// Image defaults to DefaultPGImage
	Image string
	// MigrationsDir defaults to db/migrations at the module root
	MigrationsDir string
	// SkipSeed leaves out the *_seed_*.up.sql scripts
	SkipSeed bool
}

// DefaultPGConfig is the configuration used by the integration suites
func DefaultPGConfig() PGConfig {
	return PGConfig{
		Database: "creditos_test_db",
		Username: "test",
		Password: "test",
	}
}

func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	return createPGContainer(ctx, cfg)
}

// NewPGContainerWithCleanup starts a container and terminates it when tb finishes
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB, cfg PGConfig) *PGContainer {
	tb.Helper()

	container, err := createPGContainer(ctx, cfg)
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := container.Terminate(); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

func migrationsDir() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "..", "..", "db", "migrations")
}

// upScripts returns the up migrations of dir in the order they must run
func upScripts(dir string, skipSeed bool) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migration files found in %s", dir)
	}
	if skipSeed {
		files = slices.DeleteFunc(files, func(f string) bool {
			return strings.Contains(filepath.Base(f), "_seed_")
		})
	}
	slices.Sort(files)
	return files, nil
}

func createPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	if cfg.Image == "" {
		cfg.Image = DefaultPGImage
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = migrationsDir()
	}

	scripts, err := upScripts(cfg.MigrationsDir, cfg.SkipSeed)
	if err != nil {
		return nil, err
	}

	pgContainer, err := postgres.Run(ctx,
		cfg.Image,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(pgContainer)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}, nil
}
