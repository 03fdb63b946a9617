package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtline/shuttlescore/internal/setting"
	"github.com/courtline/shuttlescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	service  *MatchService
	settings setting.SettingRepository
}

// NewMatchController creates a new match controller
func NewMatchController(service *MatchService, settings setting.SettingRepository) *MatchController {
	return &MatchController{
		service:  service,
		settings: settings,
	}
}

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for creating a match.
// Rule parameters left unset fall back to the venue's settings defaults.
type CreateMatchRequest struct {
	EventType    string `json:"event_type" binding:"required"`
	MatchNumber  string `json:"match_number" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Court        string `json:"court" binding:"required"`
	Umpire       string `json:"umpire,omitempty"`
	ServiceJudge string `json:"service_judge,omitempty"`
	MaxPoints    *int   `json:"max_points,omitempty" binding:"omitempty,min=1"`
	TotalSets    *int   `json:"total_sets,omitempty" binding:"omitempty,min=1"`
	DeuceEnabled *bool  `json:"deuce_enabled,omitempty"`
	Player1      string `json:"player1" binding:"required"`
	Player2      string `json:"player2" binding:"required"`
}

// UpdateMatchRequest defines the request payload for updating match details.
// Lifecycle fields (status, timestamps, duration) are owned by the
// start/end/next-set endpoints and cannot be set here.
type UpdateMatchRequest struct {
	EventType    *string `json:"event_type,omitempty"`
	MatchNumber  *string `json:"match_number,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Court        *string `json:"court,omitempty"`
	Umpire       *string `json:"umpire,omitempty"`
	ServiceJudge *string `json:"service_judge,omitempty"`
	Player1      *string `json:"player1,omitempty"`
	Player2      *string `json:"player2,omitempty"`
	ShuttlesUsed *int    `json:"shuttles_used,omitempty" binding:"omitempty,min=0"`
}

// UpdateScoreRequest defines the request payload for recording a point.
type UpdateScoreRequest struct {
	SetNumber int         `json:"set_number" binding:"required,min=1"`
	Player    int         `json:"player" binding:"required,oneof=1 2"`
	Action    ScoreAction `json:"action" binding:"required,oneof=increment decrement"`
}

// --- Controller Methods ---

// CreateMatch handles the creation of a new match with its score rows.
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	maxPoints, totalSets, deuceEnabled := setting.MatchRuleDefaults(mc.settings)
	if req.MaxPoints != nil {
		maxPoints = *req.MaxPoints
	}
	if req.TotalSets != nil {
		totalSets = *req.TotalSets
	}
	if req.DeuceEnabled != nil {
		deuceEnabled = *req.DeuceEnabled
	}

	m := Match{
		EventType:    req.EventType,
		MatchNumber:  req.MatchNumber,
		Date:         req.Date,
		Time:         req.Time,
		Court:        req.Court,
		Umpire:       req.Umpire,
		ServiceJudge: req.ServiceJudge,
		MaxPoints:    maxPoints,
		TotalSets:    totalSets,
		DeuceEnabled: deuceEnabled,
		Player1:      req.Player1,
		Player2:      req.Player2,
	}

	if err := mc.service.Create(&m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message":  "Match created successfully",
		"match_id": m.ID,
		"match":    m,
	})
}

// GetMatches retrieves matches with optional filtering and sorting.
func (mc *MatchController) GetMatches(c *gin.Context) {
	q := MatchListQuery{
		Status:    c.Query("status"),
		Court:     c.Query("court"),
		Date:      c.Query("date"),
		EventType: c.Query("event_type"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sort_by", "end_time"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	matches, err := mc.service.List(q)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, matches)
}

// GetMatchByID retrieves a specific match with its scores.
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	m, err := mc.service.Get(id)
	if err != nil {
		mc.respondError(c, err, "Failed to fetch match")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, m)
}

// UpdateMatch updates scheduling and officiating details of a match.
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m, err := mc.service.Get(id)
	if err != nil {
		mc.respondError(c, err, "Failed to fetch match")
		return
	}

	if req.EventType != nil {
		m.EventType = *req.EventType
	}
	if req.MatchNumber != nil {
		m.MatchNumber = *req.MatchNumber
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.Time != nil {
		m.Time = *req.Time
	}
	if req.Court != nil {
		m.Court = *req.Court
	}
	if req.Umpire != nil {
		m.Umpire = *req.Umpire
	}
	if req.ServiceJudge != nil {
		m.ServiceJudge = *req.ServiceJudge
	}
	if req.Player1 != nil {
		m.Player1 = *req.Player1
	}
	if req.Player2 != nil {
		m.Player2 = *req.Player2
	}
	if req.ShuttlesUsed != nil {
		m.ShuttlesUsed = *req.ShuttlesUsed
	}

	if err := mc.service.repo.UpdateMatch(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update match: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Match updated successfully",
		"match":   m,
	})
}

// DeleteMatch deletes a match and all of its score rows.
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	if err := mc.service.Delete(id); err != nil {
		mc.respondError(c, err, "Failed to delete match")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// StartMatch transitions a scheduled match to live.
func (mc *MatchController) StartMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	m, err := mc.service.Start(id)
	if err != nil {
		mc.respondError(c, err, "Failed to start match")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message":    "Match started",
		"start_time": m.StartTime,
	})
}

// UpdateScore records one point change on the match's current set.
func (mc *MatchController) UpdateScore(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	score, err := mc.service.RecordPoint(id, req.SetNumber, req.Player, req.Action)
	if err != nil {
		mc.respondError(c, err, "Failed to update score")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"player1_score": score.Player1Score,
		"player2_score": score.Player2Score,
		"completed":     score.Completed,
	})
}

// NextSet moves a live match to the next set.
func (mc *MatchController) NextSet(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	m, err := mc.service.AdvanceSet(id)
	if err != nil {
		mc.respondError(c, err, "Failed to move to next set")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{"current_set": m.CurrentSet})
}

// EndMatch completes a live match.
func (mc *MatchController) EndMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	m, err := mc.service.End(id)
	if err != nil {
		mc.respondError(c, err, "Failed to end match")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message":  "Match ended",
		"end_time": m.EndTime,
		"duration": m.Duration,
	})
}

// ExportMatch returns the scoresheet payload a renderer would consume.
func (mc *MatchController) ExportMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}

	m, err := mc.service.Get(id)
	if err != nil {
		mc.respondError(c, err, "Failed to fetch match")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"match_data":   m,
		"generated_at": time.Now(),
		"export_type":  "scoresheet",
	})
}

// --- helpers ---

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

// respondError maps lifecycle sentinel errors to HTTP statuses. Anything
// unrecognized is a persistence failure; the transaction has already been
// rolled back by the service.
func (mc *MatchController) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrScoreNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrSetCompleted),
		errors.Is(err, ErrSetNotCurrent),
		errors.Is(err, ErrFinalSetReached),
		errors.Is(err, ErrInvalidPlayer),
		errors.Is(err, ErrInvalidAction):
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		responses.ErrorResponse(c, http.StatusInternalServerError, fallback+": "+err.Error())
	}
}
