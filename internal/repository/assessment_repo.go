package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"behavior-insights/internal/domain"
)

// ErrNotFound se devuelve cuando no hay registro para la clave pedida.
var ErrNotFound = errors.New("not found")

type AssessmentRepository interface {
	Create(ctx context.Context, assessment domain.Assessment) error
	GetByID(ctx context.Context, id string) (domain.Assessment, error)
	GetLatestByUserID(ctx context.Context, userID string) (domain.Assessment, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Create(ctx context.Context, a domain.Assessment) error {
	const query = `
		INSERT INTO assessments (id, user_id, scores, recommendations, insight_summary, chase_hughes_profile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	scores, err := json.Marshal(a.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	recommendations, err := json.Marshal(a.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	profile, err := json.Marshal(a.ChaseHughesProfile)
	if err != nil {
		return fmt.Errorf("marshal chase hughes profile: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		a.AssessmentID,
		a.UserID,
		scores,
		recommendations,
		a.InsightSummary,
		profile,
		a.Timestamp,
	)
	return err
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (domain.Assessment, error) {
	const query = `
		SELECT id, user_id, scores, recommendations, insight_summary, chase_hughes_profile, created_at
		FROM assessments
		WHERE id = $1
	`
	return scanAssessment(r.pool.QueryRow(ctx, query, id))
}

func (r *PgAssessmentRepository) GetLatestByUserID(ctx context.Context, userID string) (domain.Assessment, error) {
	const query = `
		SELECT id, user_id, scores, recommendations, insight_summary, chase_hughes_profile, created_at
		FROM assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanAssessment(r.pool.QueryRow(ctx, query, userID))
}

func scanAssessment(row pgx.Row) (domain.Assessment, error) {
	var (
		a               domain.Assessment
		scores          []byte
		recommendations []byte
		profile         []byte
	)
	err := row.Scan(
		&a.AssessmentID,
		&a.UserID,
		&scores,
		&recommendations,
		&a.InsightSummary,
		&profile,
		&a.Timestamp,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, ErrNotFound
	}
	if err != nil {
		return domain.Assessment{}, err
	}
	if err := json.Unmarshal(scores, &a.Scores); err != nil {
		return domain.Assessment{}, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
		return domain.Assessment{}, fmt.Errorf("decode recommendations: %w", err)
	}
	if err := json.Unmarshal(profile, &a.ChaseHughesProfile); err != nil {
		return domain.Assessment{}, fmt.Errorf("decode chase hughes profile: %w", err)
	}
	return a, nil
}

// MemoryAssessmentRepository se usa cuando no hay DATABASE_URL y en pruebas.
type MemoryAssessmentRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Assessment
}

func NewMemoryAssessmentRepository() *MemoryAssessmentRepository {
	return &MemoryAssessmentRepository{items: make(map[string]domain.Assessment)}
}

func (r *MemoryAssessmentRepository) Create(_ context.Context, a domain.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.AssessmentID] = a
	return nil
}

func (r *MemoryAssessmentRepository) GetByID(_ context.Context, id string) (domain.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return domain.Assessment{}, ErrNotFound
	}
	return a, nil
}

func (r *MemoryAssessmentRepository) GetLatestByUserID(_ context.Context, userID string) (domain.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []domain.Assessment
	for _, a := range r.items {
		if a.UserID == userID {
			list = append(list, a)
		}
	}
	if len(list) == 0 {
		return domain.Assessment{}, ErrNotFound
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Timestamp.After(list[j].Timestamp)
	})
	return list[0], nil
}
