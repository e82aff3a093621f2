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

type PetHandler struct {
	petCommands commands.PetCommands
	petQueries  queries.PetQueries
}

func NewPetHandler(petCommands commands.PetCommands, petQueries queries.PetQueries) *PetHandler {
	return &PetHandler{
		petCommands: petCommands,
		petQueries:  petQueries,
	}
}

func (h *PetHandler) CreatePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.petCommands.Create(c.Request.Context(), actor, commands.CreatePetParams{
		Name:         req.Name,
		Breed:        req.Breed,
		Size:         req.Size,
		Temperament:  req.Temperament,
		SpecialNeeds: req.SpecialNeeds,
		MedicalInfo:  req.MedicalInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only owners may register pets",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pet data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

func (h *PetHandler) GetPet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return
	}

	view, err := h.petQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		case errors.Is(err, queries.ErrNotPetOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Pet belongs to another owner",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

func (h *PetHandler) ListPets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.petQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PetResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPetView(view)
	}
	c.JSON(http.StatusOK, response)
}
