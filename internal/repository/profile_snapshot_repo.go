package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"behavior-insights/internal/domain"
)

type ProfileSnapshotRepository interface {
	Create(ctx context.Context, snapshot domain.BehavioralProfileSnapshot) error
	GetLatestByUserID(ctx context.Context, userID string) (domain.BehavioralProfileSnapshot, error)
}

type PgProfileSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileSnapshotRepository(pool *pgxpool.Pool) *PgProfileSnapshotRepository {
	return &PgProfileSnapshotRepository{pool: pool}
}

func (r *PgProfileSnapshotRepository) Create(ctx context.Context, s domain.BehavioralProfileSnapshot) error {
	const query = `
		INSERT INTO behavioral_profiles (id, user_id, profile, influence_phase, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	profile, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.pool.Exec(ctx, query,
		s.ID,
		s.UserID,
		profile,
		string(s.Profile.CurrentInfluencePhase),
		s.CreatedAt,
	)
	return err
}

func (r *PgProfileSnapshotRepository) GetLatestByUserID(ctx context.Context, userID string) (domain.BehavioralProfileSnapshot, error) {
	const query = `
		SELECT id, user_id, profile, created_at
		FROM behavioral_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var (
		s       domain.BehavioralProfileSnapshot
		profile []byte
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.ID,
		&s.UserID,
		&profile,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BehavioralProfileSnapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.BehavioralProfileSnapshot{}, err
	}
	if err := json.Unmarshal(profile, &s.Profile); err != nil {
		return domain.BehavioralProfileSnapshot{}, fmt.Errorf("decode profile: %w", err)
	}
	return s, nil
}

type MemoryProfileSnapshotRepository struct {
	mu     sync.RWMutex
	latest map[string]domain.BehavioralProfileSnapshot
}

func NewMemoryProfileSnapshotRepository() *MemoryProfileSnapshotRepository {
	return &MemoryProfileSnapshotRepository{latest: make(map[string]domain.BehavioralProfileSnapshot)}
}

func (r *MemoryProfileSnapshotRepository) Create(_ context.Context, s domain.BehavioralProfileSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.latest[s.UserID]; ok && prev.CreatedAt.After(s.CreatedAt) {
		return nil
	}
	r.latest[s.UserID] = s
	return nil
}

func (r *MemoryProfileSnapshotRepository) GetLatestByUserID(_ context.Context, userID string) (domain.BehavioralProfileSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.latest[userID]
	if !ok {
		return domain.BehavioralProfileSnapshot{}, ErrNotFound
	}
	return s, nil
}
