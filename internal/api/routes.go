package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"showtracker/internal/api/handlers"
	"showtracker/internal/middleware"
	"showtracker/internal/service"
)

// NewRouter 建立已掛上中間件與所有路由的 gin 引擎
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
			handlers.Abort(c, http.StatusInternalServerError, "Internal server error")
		}),
	)

	SetupRoutes(r, services, log)
	return r
}

func SetupRoutes(r *gin.Engine, services *service.Services, log zerolog.Logger) {
	// 初始化 handlers
	showHandler := handlers.NewShowHandler(services.Show, log)
	feedHandler := handlers.NewFeedHandler(services.Feed)

	// 處理 404 錯誤
	r.NoRoute(handlers.NotFound)

	// 基本路由
	r.GET("/", handlers.HelloWorld)
	r.GET("/mirror/:name", handlers.Mirror)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 影集相關
	shows := r.Group("/shows")
	{
		shows.GET("", showHandler.ListShows)
		shows.POST("", showHandler.CreateShow)
		shows.GET("/feed", feedHandler.HandleWebSocket) // 影集變動推播
		shows.GET("/:id", showHandler.GetShow)
		shows.PUT("/:id", showHandler.UpdateShow)
		shows.DELETE("/:id", showHandler.DeleteShow)
	}
}
