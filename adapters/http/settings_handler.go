package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsUC "github.com/khoahotran/profile-directory/internal/application/usecase/settings"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type SettingsHandler struct {
	settingsUseCase *settingsUC.SettingsUseCase
	logger          logger.Logger
}

func NewSettingsHandler(uc *settingsUC.SettingsUseCase, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: uc,
		logger:          log,
	}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	output, err := h.settingsUseCase.ExecuteGetSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSettingsDTO(output.Settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(bindError(err, ""))
		return
	}

	input := settingsUC.UpdateSettingsInput{Fields: req.ToDomainPatch()}
	output, err := h.settingsUseCase.ExecuteUpdateSettings(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSettingsDTO(output.Settings))
}
