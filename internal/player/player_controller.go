package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/courtline/shuttlescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// --- DTOs for requests ---

// CreatePlayerRequest defines the request payload for creating a player
type CreatePlayerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Team  string  `json:"team,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string  `json:"phone,omitempty"`
}

// UpdatePlayerRequest defines the request payload for updating a player
type UpdatePlayerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Team  string  `json:"team,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string  `json:"phone,omitempty"`
}

// GetPlayers retrieves all players.
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	players, err := pc.repo.GetPlayers()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch players: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, players)
}

// CreatePlayer handles the creation of a new player.
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	p := Player{
		Name:  req.Name,
		Team:  req.Team,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := pc.repo.CreatePlayer(&p); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create player: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message":   "Player created successfully",
		"player_id": p.ID,
		"player":    p,
	})
}

// UpdatePlayer updates player details.
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch player: "+err.Error())
		return
	}
	if p == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Player not found")
		return
	}

	p.Name = req.Name
	p.Team = req.Team
	p.Email = req.Email
	p.Phone = req.Phone

	if err := pc.repo.UpdatePlayer(p); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update player: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Player updated successfully",
		"player":  p,
	})
}

// DeletePlayer deletes a player.
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if err := pc.repo.DeletePlayer(uint(id)); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete player: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Player deleted successfully"})
}
