package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"behavior-insights/internal/domain"
	"behavior-insights/internal/repository"
)

// AssessmentRecorder envuelve al motor puro con persistencia y cache.
type AssessmentRecorder struct {
	assessments *AssessmentService
	analyzer    BehavioralAnalyzer
	repo        repository.AssessmentRepository
	snapshots   repository.ProfileSnapshotRepository
	cache       AssessmentCache
	logger      *zap.Logger
}

func NewAssessmentRecorder(
	assessments *AssessmentService,
	repo repository.AssessmentRepository,
	snapshots repository.ProfileSnapshotRepository,
	cache AssessmentCache,
	logger *zap.Logger,
) *AssessmentRecorder {
	if assessments == nil {
		assessments = NewAssessmentService()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentRecorder{
		assessments: assessments,
		analyzer:    DefaultBehavioralAnalyzer,
		repo:        repo,
		snapshots:   snapshots,
		cache:       cache,
		logger:      logger,
	}
}

// RecordAssessment genera la evaluacion, la persiste y actualiza la cache.
// Un fallo de cache se registra y no corta la operacion.
func (r *AssessmentRecorder) RecordAssessment(ctx context.Context, profile domain.EnhancedBehavioralProfile) (domain.Assessment, error) {
	assessment := r.assessments.GenerateAssessment(profile)

	if err := r.repo.Create(ctx, assessment); err != nil {
		return domain.Assessment{}, fmt.Errorf("persist assessment for user %s: %w", profile.UserID, err)
	}
	if r.cache != nil {
		if err := r.cache.Set(ctx, assessment); err != nil {
			r.logger.Warn("assessment cache set failed", zap.Error(err), zap.String("user_id", assessment.UserID))
		}
	}
	r.logger.Info("assessment recorded",
		zap.String("assessment_id", assessment.AssessmentID),
		zap.String("user_id", assessment.UserID),
		zap.String("influence_phase", string(assessment.ChaseHughesProfile.CurrentInfluencePhase)),
	)
	return assessment, nil
}

func (r *AssessmentRecorder) GetAssessment(ctx context.Context, id string) (domain.Assessment, error) {
	a, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("get assessment %s: %w", id, err)
	}
	return a, nil
}

// LatestAssessment consulta primero la cache y luego el repositorio.
func (r *AssessmentRecorder) LatestAssessment(ctx context.Context, userID string) (domain.Assessment, error) {
	if r.cache != nil {
		a, ok, err := r.cache.Get(ctx, userID)
		if err != nil {
			r.logger.Warn("assessment cache get failed", zap.Error(err), zap.String("user_id", userID))
		} else if ok {
			return a, nil
		}
	}
	a, err := r.repo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("latest assessment for user %s: %w", userID, err)
	}
	if r.cache != nil {
		if err := r.cache.Set(ctx, a); err != nil {
			r.logger.Warn("assessment cache set failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
	return a, nil
}

// RecordBehavioralProfile calcula el perfil desde señales crudas y guarda un snapshot
// cuando hay usuario.
func (r *AssessmentRecorder) RecordBehavioralProfile(ctx context.Context, userID string, signals domain.RawSignals) (domain.ChaseHughesProfile, error) {
	profile := r.analyzer.CreateBehavioralProfile(signals)
	if userID == "" || r.snapshots == nil {
		return profile, nil
	}
	snapshot := domain.BehavioralProfileSnapshot{
		ID:        uuid.NewString(),
		UserID:    userID,
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.snapshots.Create(ctx, snapshot); err != nil {
		return domain.ChaseHughesProfile{}, fmt.Errorf("persist profile snapshot for user %s: %w", userID, err)
	}
	return profile, nil
}

func (r *AssessmentRecorder) LatestBehavioralProfile(ctx context.Context, userID string) (domain.BehavioralProfileSnapshot, error) {
	if r.snapshots == nil {
		return domain.BehavioralProfileSnapshot{}, repository.ErrNotFound
	}
	s, err := r.snapshots.GetLatestByUserID(ctx, userID)
	if err != nil {
		return domain.BehavioralProfileSnapshot{}, fmt.Errorf("latest profile for user %s: %w", userID, err)
	}
	return s, nil
}
