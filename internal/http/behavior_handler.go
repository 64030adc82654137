package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-insights/internal/domain"
	"behavior-insights/internal/repository"
	"behavior-insights/internal/service"
)

// BehaviorHandler expone el analizador conductual y el servicio de evaluaciones.
// limiter es opcional: nil desactiva el limite de escrituras.
type BehaviorHandler struct {
	logger   *zap.Logger
	recorder *service.AssessmentRecorder
	limiter  service.RateLimiter
}

// NewBehaviorHandler crea una instancia de BehaviorHandler con dependencias necesarias.
func NewBehaviorHandler(logger *zap.Logger, recorder *service.AssessmentRecorder, limiter service.RateLimiter) *BehaviorHandler {
	return &BehaviorHandler{
		logger:   logger,
		recorder: recorder,
		limiter:  limiter,
	}
}

type behavioralProfileRequest struct {
	UserID string `json:"userId"`
	domain.RawSignals
}

// resolveUserID prioriza el usuario del token sobre el del cuerpo.
func resolveUserID(c *gin.Context, fromBody string) string {
	if claims, ok := GetAuthClaims(c); ok {
		return claims.UserID
	}
	return fromBody
}

// allowWrite aplica el rate limit por usuario, o por IP si no hay usuario.
func (h *BehaviorHandler) allowWrite(c *gin.Context, userID string) bool {
	if h.limiter == nil {
		return true
	}
	key := userID
	if key == "" {
		key = "ip:" + c.ClientIP()
	}
	if h.limiter.Allow(c.Request.Context(), key) {
		return true
	}
	h.logger.Warn("write rate limited", zap.String("key", key))
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	return false
}

// CreateBehavioralProfile maneja POST /profiles/behavioral.
func (h *BehaviorHandler) CreateBehavioralProfile(c *gin.Context) {
	var req behavioralProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid behavioral profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := resolveUserID(c, req.UserID)
	if !h.allowWrite(c, userID) {
		return
	}
	profile, err := h.recorder.RecordBehavioralProfile(c.Request.Context(), userID, req.RawSignals)
	if err != nil {
		h.logger.Error("record behavioral profile failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetLatestBehavioralProfile maneja GET /users/:user_id/profiles/latest.
func (h *BehaviorHandler) GetLatestBehavioralProfile(c *gin.Context) {
	userID := c.Param("user_id")
	snapshot, err := h.recorder.LatestBehavioralProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeLookupError(c, "get latest profile failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

// CreateAssessment maneja POST /assessments.
func (h *BehaviorHandler) CreateAssessment(c *gin.Context) {
	var req domain.EnhancedBehavioralProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.UserID = resolveUserID(c, req.UserID)
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if !h.allowWrite(c, req.UserID) {
		return
	}

	assessment, err := h.recorder.RecordAssessment(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("record assessment failed", zap.Error(err), zap.String("user_id", req.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store assessment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assessment": assessment})
}

// GetAssessment maneja GET /assessments/:id.
func (h *BehaviorHandler) GetAssessment(c *gin.Context) {
	assessment, err := h.recorder.GetAssessment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLookupError(c, "get assessment failed", err)
		return
	}
	if claims, ok := GetAuthClaims(c); ok && claims.UserID != assessment.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// GetLatestAssessment maneja GET /users/:user_id/assessments/latest.
func (h *BehaviorHandler) GetLatestAssessment(c *gin.Context) {
	assessment, err := h.recorder.LatestAssessment(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.writeLookupError(c, "get latest assessment failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// PriorityInsights maneja POST /insights.
func (h *BehaviorHandler) PriorityInsights(c *gin.Context) {
	var req domain.EnhancedBehavioralProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid insights request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": service.GetPriorityInsights(req)})
}

// InsightsByCategory maneja POST /insights/categories/:category.
func (h *BehaviorHandler) InsightsByCategory(c *gin.Context) {
	var req domain.EnhancedBehavioralProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid insights request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	category := c.Param("category")
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"insights": service.GetInsightsByCategory(req, category),
	})
}

func (h *BehaviorHandler) writeLookupError(c *gin.Context, msg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
}
