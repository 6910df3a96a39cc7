package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"movie-catalog/internal/domains/director/model"
	"movie-catalog/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

const directorColumns = `id, first_name, family_name, date_of_birth, date_of_death, version, created_at, updated_at`

func scanDirector(row pgx.Row) (*model.Director, error) {
	var d model.Director
	err := row.Scan(
		&d.ID,
		&d.FirstName,
		&d.FamilyName,
		&d.DateOfBirth,
		&d.DateOfDeath,
		&d.Version,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, d *model.Director) (*model.Director, error) {
	query := `
        INSERT INTO directors (first_name, family_name, date_of_birth, date_of_death, version)
        VALUES ($1, $2, $3, $4, 1)
        RETURNING ` + directorColumns

	created, err := scanDirector(r.db.QueryRow(ctx, query,
		d.FirstName,
		d.FamilyName,
		d.DateOfBirth,
		d.DateOfDeath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create director: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	query := `SELECT ` + directorColumns + ` FROM directors WHERE id = $1`

	d, err := scanDirector(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDirectorNotFound
		}
		return nil, fmt.Errorf("failed to get director by id: %w", err)
	}
	return d, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Director, error) {
	query := `SELECT ` + directorColumns + ` FROM directors ORDER BY family_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}
	defer rows.Close()

	directors := []model.Director{}
	for rows.Next() {
		d, err := scanDirector(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan director: %w", err)
		}
		directors = append(directors, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate directors: %w", err)
	}
	return directors, nil
}

func (r *postgresRepository) Update(ctx context.Context, d *model.Director, currentVersion int) (*model.Director, error) {
	// currentVersion 0 disables the version check.
	query := `
        UPDATE directors
        SET
            first_name = $2,
            family_name = $3,
            date_of_birth = $4,
            date_of_death = $5,
            version = version + 1,
            updated_at = NOW()
        WHERE id = $1 AND ($6::int = 0 OR version = $6::int)
        RETURNING ` + directorColumns

	updated, err := scanDirector(r.db.QueryRow(ctx, query,
		d.ID,
		d.FirstName,
		d.FamilyName,
		d.DateOfBirth,
		d.DateOfDeath,
		currentVersion,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, checkErr := r.Exists(ctx, d.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, model.ErrDirectorNotFound
			}
			return nil, model.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update director: %w", err)
	}
	return updated, nil
}

// Delete checks for referencing movies in the same statement as the delete.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM directors
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM movies WHERE director_id = $1)
    `

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if database.IsPgError(err, database.CodeForeignKeyViolation) {
			return model.ErrDirectorHasMovies
		}
		return fmt.Errorf("failed to delete director: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrDirectorNotFound
		}
		return model.ErrDirectorHasMovies
	}
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM directors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check director existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM directors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count directors: %w", err)
	}
	return count, nil
}
