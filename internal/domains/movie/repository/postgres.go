package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

const movieColumns = `id, title, summary, director_id, genre_ids::text[], version, created_at, updated_at`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	var (
		m      model.Movie
		genres []string
	)
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Summary,
		&m.DirectorID,
		&genres,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.GenreIDs = make([]uuid.UUID, 0, len(genres))
	for _, g := range genres {
		id, err := uuid.Parse(g)
		if err != nil {
			return nil, fmt.Errorf("movie %s has invalid genre id %q: %w", m.ID, g, err)
		}
		m.GenreIDs = append(m.GenreIDs, id)
	}
	return &m, nil
}

func genreParams(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (r *postgresRepository) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	query := `
        INSERT INTO movies (title, summary, director_id, genre_ids, version)
        VALUES ($1, $2, $3, $4::uuid[], 1)
        RETURNING ` + movieColumns

	created, err := scanMovie(r.db.QueryRow(ctx, query,
		m.Title,
		m.Summary,
		m.DirectorID,
		genreParams(m.GenreIDs),
	))
	if err != nil {
		if database.IsPgError(err, database.CodeForeignKeyViolation) {
			return nil, model.ErrDirectorUnknown
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	m, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return m, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY title`)
}

func (r *postgresRepository) FindByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies WHERE director_id = $1 ORDER BY title`, directorID)
}

func (r *postgresRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies WHERE $1 = ANY(genre_ids) ORDER BY title`, genreID)
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return movies, nil
}

func (r *postgresRepository) CountByDirector(ctx context.Context, directorID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM movies WHERE director_id = $1`, directorID)
}

func (r *postgresRepository) CountByGenre(ctx context.Context, genreID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM movies WHERE $1 = ANY(genre_ids)`, genreID)
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM movies`)
}

func (r *postgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) Update(ctx context.Context, m *model.Movie, currentVersion int) (*model.Movie, error) {
	query := `
        UPDATE movies
        SET
            title = $2,
            summary = $3,
            director_id = $4,
            genre_ids = $5::uuid[],
            version = version + 1,
            updated_at = NOW()
        WHERE id = $1 AND ($6::int = 0 OR version = $6::int)
        RETURNING ` + movieColumns

	updated, err := scanMovie(r.db.QueryRow(ctx, query,
		m.ID,
		m.Title,
		m.Summary,
		m.DirectorID,
		genreParams(m.GenreIDs),
		currentVersion,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`, m.ID).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("failed to check movie existence: %w", checkErr)
			}
			if !exists {
				return nil, model.ErrMovieNotFound
			}
			return nil, model.ErrVersionConflict
		}
		if database.IsPgError(err, database.CodeForeignKeyViolation) {
			return nil, model.ErrDirectorUnknown
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
