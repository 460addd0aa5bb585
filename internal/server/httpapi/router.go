package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Register(ctx context.Context, pseudo, email string) (*models.User, error)
	Login(ctx context.Context, email string) (*models.User, error)
}

type VoteService interface {
	Cast(ctx context.Context, userID, choice string) (*models.Vote, error)
	List(ctx context.Context) ([]models.Vote, error)
}

type Handler struct {
	users  UserService
	votes  VoteService
	logger logging.Logger
}

func NewHandler(us UserService, vs VoteService, logger logging.Logger) *Handler {
	return &Handler{users: us, votes: vs, logger: logger.With("module", "httpapi")}
}

// NewRouter builds the gin engine with middleware and all routes.
// corsOrigin is sent as Access-Control-Allow-Origin; empty disables CORS.
func NewRouter(h *Handler, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), WithLogging(h.logger), Recovery(h.logger))
	if corsOrigin != "" {
		r.Use(CORS(corsOrigin))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	{
		api.POST("/user", h.Register)
		api.POST("/login", h.Login)
		api.GET("/votes", h.ListVotes)
		api.POST("/vote", h.CastVote)
	}

	return r
}
