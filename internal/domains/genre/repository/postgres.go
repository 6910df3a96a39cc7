package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"movie-catalog/internal/domains/genre/model"
	"movie-catalog/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

const genreColumns = `id, name, version, created_at, updated_at`

func scanGenre(row pgx.Row) (*model.Genre, error) {
	var g model.Genre
	if err := row.Scan(&g.ID, &g.Name, &g.Version, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	query := `INSERT INTO genres (name, version) VALUES ($1, 1) RETURNING ` + genreColumns

	created, err := scanGenre(r.db.QueryRow(ctx, query, g.Name))
	if err != nil {
		if database.IsPgError(err, database.CodeUniqueViolation) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return r.findOne(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = $1`, id)
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	return r.findOne(ctx, `SELECT `+genreColumns+` FROM genres WHERE LOWER(name) = LOWER($1)`, name)
}

func (r *postgresRepository) findOne(ctx context.Context, query string, arg any) (*model.Genre, error) {
	g, err := scanGenre(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return []model.Genre{}, nil
	}
	params := make([]string, len(ids))
	for i, id := range ids {
		params[i] = id.String()
	}
	return r.list(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = ANY($1::uuid[]) ORDER BY name`, params)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Genre, error) {
	return r.list(ctx, `SELECT `+genreColumns+` FROM genres ORDER BY name`)
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...any) ([]model.Genre, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := []model.Genre{}
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate genres: %w", err)
	}
	return genres, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *model.Genre, currentVersion int) (*model.Genre, error) {
	query := `
        UPDATE genres
        SET name = $2, version = version + 1, updated_at = NOW()
        WHERE id = $1 AND ($3::int = 0 OR version = $3::int)
        RETURNING ` + genreColumns

	updated, err := scanGenre(r.db.QueryRow(ctx, query, g.ID, g.Name, currentVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, checkErr := r.exists(ctx, g.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, model.ErrGenreNotFound
			}
			return nil, model.ErrVersionConflict
		}
		if database.IsPgError(err, database.CodeUniqueViolation) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return updated, nil
}

// Delete checks for referencing movies in the same statement as the delete.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM genres
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM movies WHERE $1 = ANY(genre_ids))
    `

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrGenreNotFound
		}
		return model.ErrGenreHasMovies
	}
	return nil
}

func (r *postgresRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}
