package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/api/handler"
	"github.com/varun-k1411/gipl-quality-alert/internal/api/middleware"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// rendered alert documents, served by filename <nc_no>.png
	r.Static("/files/alerts", cfg.Data.AlertDir())

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		alerts := v1.Group("/alerts")
		{
			alerts.POST("", h.Alert.SubmitAlert)
			alerts.GET("", h.Alert.ListAlerts)
		}

		masters := v1.Group("/masters")
		{
			masters.GET("/customers", h.Master.ListCustomers)
			masters.GET("/machines", h.Master.ListMachines)
			masters.GET("/operators", h.Master.ListOperators)
			masters.GET("/shifts", h.Master.ListShifts)
			masters.GET("/parts", h.Master.ListParts)
			masters.GET("/parts/:part_no", h.Master.GetPart)
			masters.GET("/parts/:part_no/processes", h.Master.ListProcessSteps)
		}

		export := v1.Group("/export")
		{
			export.GET("/register", h.Export.ExportRegister)
		}
	}

	return r
}
