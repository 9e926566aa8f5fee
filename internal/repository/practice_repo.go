package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"practice-recommender/internal/domain"
)

// ErrPracticeNotFound se devuelve cuando el ID no existe en el catalogo.
var ErrPracticeNotFound = errors.New("practice not found")

// PracticeRepository entrega el catalogo en orden estable.
type PracticeRepository interface {
	List(ctx context.Context) ([]domain.Practice, error)
	GetByID(ctx context.Context, id string) (domain.Practice, error)
}

type PgPracticeRepository struct {
	pool *pgxpool.Pool
}

func NewPgPracticeRepository(pool *pgxpool.Pool) *PgPracticeRepository {
	return &PgPracticeRepository{pool: pool}
}

const practiceColumns = `
	id, COALESCE(name, '') AS name, COALESCE(description, '') AS description,
	approach, structure, difficulty_level, time_to_results,
	cultural_context, teacher_required, retreat_friendly,
	cognitive_benefits, emotional_benefits, physical_benefits, goals, books, apps
`

func (r *PgPracticeRepository) List(ctx context.Context) ([]domain.Practice, error) {
	query := `SELECT ` + practiceColumns + ` FROM practices ORDER BY position ASC, id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var practices []domain.Practice
	for rows.Next() {
		p, err := scanPractice(rows)
		if err != nil {
			return nil, err
		}
		practices = append(practices, p)
	}
	return practices, rows.Err()
}

func (r *PgPracticeRepository) GetByID(ctx context.Context, id string) (domain.Practice, error) {
	query := `SELECT ` + practiceColumns + ` FROM practices WHERE id = $1`
	p, err := scanPractice(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Practice{}, ErrPracticeNotFound
	}
	return p, err
}

func scanPractice(row pgx.Row) (domain.Practice, error) {
	var (
		p        domain.Practice
		approach []string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&approach,
		&p.Tags.Structure,
		&p.Tags.DifficultyLevel,
		&p.Tags.TimeToResults,
		&p.Tags.CulturalContext,
		&p.Tags.TeacherRequired,
		&p.Tags.RetreatFriendly,
		&p.Benefits.Cognitive,
		&p.Benefits.Emotional,
		&p.Benefits.Physical,
		&p.Goals,
		&p.Resources.Books,
		&p.Resources.Apps,
	)
	if err != nil {
		return domain.Practice{}, err
	}
	p.Tags.Approach = make([]domain.Approach, 0, len(approach))
	for _, a := range approach {
		p.Tags.Approach = append(p.Tags.Approach, domain.Approach(a))
	}
	if err := p.Validate(); err != nil {
		return domain.Practice{}, fmt.Errorf("practice row: %w", err)
	}
	return p, nil
}

// StaticPracticeRepository sirve un catalogo fijo en memoria (embebido o YAML).
type StaticPracticeRepository struct {
	catalog *domain.Catalog
}

func NewStaticPracticeRepository(catalog *domain.Catalog) *StaticPracticeRepository {
	return &StaticPracticeRepository{catalog: catalog}
}

func (r *StaticPracticeRepository) List(_ context.Context) ([]domain.Practice, error) {
	return r.catalog.Practices(), nil
}

func (r *StaticPracticeRepository) GetByID(_ context.Context, id string) (domain.Practice, error) {
	p, ok := r.catalog.Get(id)
	if !ok {
		return domain.Practice{}, ErrPracticeNotFound
	}
	return p, nil
}
