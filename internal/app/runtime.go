// Package app assembles the record store, seed data and services from a
// resolved configuration.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/researchdesk/internal/config"
	"github.com/alexanderramin/researchdesk/internal/db"
	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/repository"
	"github.com/alexanderramin/researchdesk/internal/seed"
	"github.com/alexanderramin/researchdesk/internal/service"
)

// Store is what a backend must provide: the repository contract plus the
// ability to load seed records with their ids intact.
type Store interface {
	repository.ProjectRepo
	repository.Seeder
}

// Runtime is a fully wired application. Close releases the database and the
// log file.
type Runtime struct {
	Config   config.Config
	Projects service.ProjectService

	closers []io.Closer
}

// Build opens the configured backend, loads the seed and wires the project
// service with logging.
func Build(ctx context.Context, cfg config.Config) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rt := &Runtime{Config: cfg}

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, logCloser)

	store, database, err := openStore(cfg.Backend)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if database != nil {
		rt.closers = append(rt.closers, database)
	}

	projects, err := loadSeed(cfg.SeedPath)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if err := repository.Seed(ctx, store, projects); err != nil {
		rt.Close()
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	rt.Projects = service.NewProjectService(store, service.NewLogUseCaseObserver(logger))
	if logger != nil {
		logger.Info("runtime_ready", "backend", string(cfg.Backend), "projects", len(projects))
	}
	return rt, nil
}

func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

func openStore(backend config.Backend) (Store, *sql.DB, error) {
	switch backend {
	case config.BackendSQLite:
		database, err := db.OpenDB()
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteProjectRepo(database), database, nil
	default:
		return repository.NewMemoryProjectRepo(), nil, nil
	}
}

func loadSeed(path string) ([]*domain.Project, error) {
	if path == "" {
		return seed.Default()
	}
	projects, err := seed.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading seed %s: %w", path, err)
	}
	return projects, nil
}
