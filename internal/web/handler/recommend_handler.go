package handler

import (
	"errors"
	"net/http"

	"movierecommender/internal/recommend"
	"movierecommender/internal/web/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const inFlightNotice = "Your previous request is still loading. Please wait for it to finish."

type RecommendHandler struct {
	fetcher recommend.Fetcher
	flights *recommend.FlightTable
	gameURL string
	log     zerolog.Logger
}

func NewRecommendHandler(fetcher recommend.Fetcher, flights *recommend.FlightTable, gameURL string, log zerolog.Logger) *RecommendHandler {
	return &RecommendHandler{
		fetcher: fetcher,
		flights: flights,
		gameURL: gameURL,
		log:     log,
	}
}

// RegisterRoutes binds every route once, at startup.
func (h *RecommendHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/recommend", h.Recommend)
	r.GET("/play", h.Play)
	r.GET("/healthz", h.Health)
}

// Index renders the empty search page.
func (h *RecommendHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "page", pageData(recommend.Input{}, recommend.IdleState()))
}

// Recommend runs one activation for the caller's session. Once the request
// starts, the page is streamed: the loading indicator and play-game link
// first, the terminal state when the fetch ends. Rejected activations get
// the whole page at once.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var in recommend.Input
	if err := c.ShouldBindQuery(&in); err != nil {
		c.HTML(http.StatusBadRequest, "page", PageData{Alert: err.Error(), State: recommend.IdleState()})
		return
	}

	sessionID := middleware.SessionID(c)
	log := h.log.With().Str("session_id", sessionID).Logger()
	view := newPageView(c.Writer, in, log)
	activation := recommend.NewHandler(h.fetcher, view,
		recommend.WithGuard(h.flights.For(sessionID)),
		recommend.WithLogger(log),
	)

	err := activation.Activate(c.Request.Context(), in)
	if view.streamed() {
		// server and transport failures were shown in the results area
		return
	}

	data := view.data()
	var validationErr *recommend.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.HTML(http.StatusBadRequest, "page", data)
	case errors.Is(err, recommend.ErrInFlight):
		data.Notice = inFlightNotice
		c.HTML(http.StatusConflict, "page", data)
	default:
		c.HTML(http.StatusOK, "page", data)
	}
}

// Play sends the browser to the game URL.
func (h *RecommendHandler) Play(c *gin.Context) {
	c.Redirect(http.StatusFound, h.gameURL)
}

func (h *RecommendHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
