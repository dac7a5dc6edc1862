package web

import (
	"movierecommender/internal/recommend"
	"movierecommender/internal/web/handler"
	"movierecommender/internal/web/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter builds the web front end. All routes are bound here, once.
func NewRouter(fetcher recommend.Fetcher, flights *recommend.FlightTable, gameURL string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Session())
	r.SetHTMLTemplate(handler.PageTemplate)

	h := handler.NewRecommendHandler(fetcher, flights, gameURL, log)
	h.RegisterRoutes(r)
	return r
}
