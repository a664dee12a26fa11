package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/researchdesk/internal/db"
	"github.com/alexanderramin/researchdesk/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo on an in-memory SQLite database.
type SQLiteProjectRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(database *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

const projectColumns = `id, title, description, objectives, owner, area, start_date, end_date, status, progress, funding, results`

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	return getProject(ctx, r.db, id)
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := nextProjectID(ctx, tx)
		if err != nil {
			return err
		}
		p.ID = id
		return insertProject(ctx, tx, p)
	})
}

// Insert stores p keeping its id.
func (r *SQLiteProjectRepo) Insert(ctx context.Context, p *domain.Project) error {
	if p.ID <= 0 {
		return fmt.Errorf("inserting project: id must be positive, got %d", p.ID)
	}
	return insertProject(ctx, r.db, p)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, id int, patch domain.ProjectPatch) (bool, error) {
	found := false
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := getProject(ctx, tx, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(p)

		query := `UPDATE projects SET title = ?, description = ?, objectives = ?, owner = ?, area = ?,
			start_date = ?, end_date = ?, status = ?, progress = ?, funding = ?, results = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query,
			p.Title, p.Description, p.Objectives, p.Owner, p.Area,
			p.StartDate, p.EndDate, string(p.Status), p.Progress, p.Funding, p.Results,
			id,
		); err != nil {
			return fmt.Errorf("updating project: %w", err)
		}
		found = true
		return nil
	})
	return found, err
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteProjectRepo) NextID(ctx context.Context) (int, error) {
	return nextProjectID(ctx, r.db)
}

func nextProjectID(ctx context.Context, conn db.DBTX) (int, error) {
	var maxID int
	if err := conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM projects`).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("computing next project id: %w", err)
	}
	return maxID + 1, nil
}

func insertProject(ctx context.Context, conn db.DBTX, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := conn.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Objectives, p.Owner, p.Area,
		p.StartDate, p.EndDate, string(p.Status), p.Progress, p.Funding, p.Results,
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func getProject(ctx context.Context, conn db.DBTX, id int) (*domain.Project, error) {
	row := conn.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status string
	err := s.Scan(
		&p.ID, &p.Title, &p.Description, &p.Objectives, &p.Owner, &p.Area,
		&p.StartDate, &p.EndDate, &status, &p.Progress, &p.Funding, &p.Results,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Status = domain.ProjectStatus(status)
	return &p, nil
}
