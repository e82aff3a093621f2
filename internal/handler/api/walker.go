package api

import (
	"errors"
	"net/http"

	reqdto "walkies/internal/handler/dto/request"
	resdto "walkies/internal/handler/dto/response"
	"walkies/internal/handler/middleware"
	"walkies/internal/usecase/commands"
	"walkies/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalkerHandler struct {
	walkerCommands commands.WalkerCommands
	walkerQueries  queries.WalkerQueries
}

func NewWalkerHandler(walkerCommands commands.WalkerCommands, walkerQueries queries.WalkerQueries) *WalkerHandler {
	return &WalkerHandler{
		walkerCommands: walkerCommands,
		walkerQueries:  walkerQueries,
	}
}

func (h *WalkerHandler) SearchWalkers(c *gin.Context) {
	var query reqdto.SearchWalkersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	views, err := h.walkerQueries.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.WalkerResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromWalkerView(view)
	}
	c.JSON(http.StatusOK, response)
}

func (h *WalkerHandler) GetWalker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid walker ID format",
		})
		return
	}

	view, err := h.walkerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrWalkerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Walker not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalkerView(view))
}

func (h *WalkerHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.walkerCommands.UpdateProfile(c.Request.Context(), actor, commands.UpdateProfileParams{
		Bio:             req.Bio,
		HourlyRateCents: req.HourlyRateCents,
		Experience:      req.Experience,
		Services:        req.Services,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only walkers may edit their profile",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid profile data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalkerView(view))
}
