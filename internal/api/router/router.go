package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"premiumcalc/internal/api/controllers"
	"premiumcalc/pkg/middleware"
)

type Controllers struct {
	Premium *controllers.PremiumController
	Records *controllers.RecordsController
	Health  *controllers.HealthController
}

func New(logger *zap.Logger, ctrls Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, ctrls)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.POST("/predict", ctrls.Premium.Predict)
	r.GET("/model", ctrls.Premium.ModelInfo)
	r.GET("/healthz", ctrls.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	premiumGroup := r.Group("/premiums")
	premiumGroup.POST("/estimate", ctrls.Premium.Estimate)
	premiumGroup.GET("/records", ctrls.Records.ListRecords)
}
