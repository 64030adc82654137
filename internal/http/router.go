package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-insights/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
// Si jwtSvc es nil las rutas quedan sin autenticación.
func NewRouter(
	logger *zap.Logger,
	behaviorH *BehaviorHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("")
	if jwtSvc != nil {
		api.Use(JWTAuthMiddleware(jwtSvc))
	}

	api.POST("/profiles/behavioral", behaviorH.CreateBehavioralProfile)
	api.GET("/users/:user_id/profiles/latest", behaviorH.GetLatestBehavioralProfile)

	api.POST("/assessments", behaviorH.CreateAssessment)
	api.GET("/assessments/:id", behaviorH.GetAssessment)
	api.GET("/users/:user_id/assessments/latest", behaviorH.GetLatestAssessment)

	api.POST("/insights", behaviorH.PriorityInsights)
	api.POST("/insights/categories/:category", behaviorH.InsightsByCategory)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
