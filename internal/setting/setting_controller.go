package setting

import (
	"fmt"
	"net/http"

	"github.com/courtline/shuttlescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SettingController handles settings HTTP requests
type SettingController struct {
	repo SettingRepository
}

// NewSettingController creates a new settings controller
func NewSettingController(repo SettingRepository) *SettingController {
	return &SettingController{repo: repo}
}

// GetSettings returns all settings as a key/value map.
func (sc *SettingController) GetSettings(c *gin.Context) {
	settings, err := sc.repo.GetAll()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch settings: "+err.Error())
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	responses.SuccessResponse(c, http.StatusOK, out)
}

// UpdateSettings upserts every key/value pair in the request body.
func (sc *SettingController) UpdateSettings(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	values := make(map[string]string, len(req))
	for key, value := range req {
		values[key] = fmt.Sprintf("%v", value)
	}
	if err := sc.repo.UpsertMany(values); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update settings: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
