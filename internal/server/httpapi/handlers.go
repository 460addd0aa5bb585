package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgInvalidJSON = "invalid JSON body"

type registerRequest struct {
	Pseudo string `json:"pseudo" binding:"required"`
	Email  string `json:"email" binding:"required"`
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

type voteRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Choice string `json:"choice" binding:"required,oneof=Oui Non"`
}

// messages maps sentinel errors to the response text of one endpoint.
type messages map[error]string

var statusBySentinel = []struct {
	err  error
	code int
}{
	{common.ErrorValidation, http.StatusBadRequest},
	{common.ErrorNotFound, http.StatusNotFound},
	{common.ErrorAlreadyExists, http.StatusConflict},
}

// bind decodes the JSON body into dst. On failure it writes a 400 and
// returns false: missing or invalid fields answer with invalidMsg, anything
// else (malformed JSON, empty body) with "invalid JSON body".
func (h *Handler) bind(c *gin.Context, dst any, invalidMsg string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.String(http.StatusBadRequest, invalidMsg)
	} else {
		c.String(http.StatusBadRequest, msgInvalidJSON)
	}
	return false
}

func (h *Handler) writeError(c *gin.Context, err error, msgs messages) {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			if msg, ok := msgs[s.err]; ok {
				c.String(s.code, msg)
				return
			}
		}
	}

	h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	c.String(http.StatusInternalServerError, "internal server error")
}

// Register handles POST /api/user.
func (h *Handler) Register(c *gin.Context) {
	const invalid = "pseudo and email are required"

	var req registerRequest
	if !h.bind(c, &req, invalid) {
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Pseudo, req.Email)
	if err != nil {
		h.writeError(c, err, messages{
			common.ErrorValidation:    invalid,
			common.ErrorAlreadyExists: "user already exists",
		})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	const invalid = "email is required"

	var req loginRequest
	if !h.bind(c, &req, invalid) {
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.writeError(c, err, messages{
			common.ErrorValidation: invalid,
			common.ErrorNotFound:   "user not found",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListVotes handles GET /api/votes.
func (h *Handler) ListVotes(c *gin.Context) {
	votes, err := h.votes.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	if votes == nil {
		votes = []models.Vote{}
	}

	c.JSON(http.StatusOK, votes)
}

// CastVote handles POST /api/vote.
func (h *Handler) CastVote(c *gin.Context) {
	const invalid = "missing parameters or invalid choice"

	var req voteRequest
	if !h.bind(c, &req, invalid) {
		return
	}

	vote, err := h.votes.Cast(c.Request.Context(), req.UserID, req.Choice)
	if err != nil {
		h.writeError(c, err, messages{
			common.ErrorValidation:    invalid,
			common.ErrorNotFound:      "user not found",
			common.ErrorAlreadyExists: "user already voted",
		})
		return
	}

	c.JSON(http.StatusCreated, vote)
}
