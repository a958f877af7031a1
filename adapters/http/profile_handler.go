package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/profile-directory/internal/application/usecase/profile"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const MsgInvalidProfileID = "Invalid profile ID"

type ProfileHandler struct {
	listProfilesUseCase  *profileUC.ListProfilesUseCase
	getProfileUseCase    *profileUC.GetProfileUseCase
	createProfileUseCase *profileUC.CreateProfileUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	deleteProfileUseCase *profileUC.DeleteProfileUseCase
	logger               logger.Logger
}

func NewProfileHandler(
	listUC *profileUC.ListProfilesUseCase,
	getUC *profileUC.GetProfileUseCase,
	createUC *profileUC.CreateProfileUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	deleteUC *profileUC.DeleteProfileUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		listProfilesUseCase:  listUC,
		getProfileUseCase:    getUC,
		createProfileUseCase: createUC,
		updateProfileUseCase: updateUC,
		deleteProfileUseCase: deleteUC,
		logger:               log,
	}
}

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// parseLeadingInt reads the integer prefix of s, so "12abc" and "12.5" are 12.
// A string with no leading digits is an error.
func parseLeadingInt(s string) (int, error) {
	prefix := leadingInt.FindString(s)
	if prefix == "" {
		return 0, fmt.Errorf("no integer prefix in %q", s)
	}
	return strconv.Atoi(strings.TrimSpace(prefix))
}

func parseProfileID(c *gin.Context) (int, bool) {
	id, err := parseLeadingInt(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput(MsgInvalidProfileID, err))
		return 0, false
	}
	return id, true
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listProfilesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTOs(output.Profiles))
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	output, err := h.getProfileUseCase.Execute(c.Request.Context(), profileUC.GetProfileInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(bindError(err, ""))
		return
	}

	input := profileUC.CreateProfileInput{Fields: req.ToDomainPatch()}
	output, err := h.createProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(bindError(err, ""))
		return
	}

	input := profileUC.UpdateProfileInput{ID: id, Fields: req.ToDomainPatch()}
	output, err := h.updateProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	if err := h.deleteProfileUseCase.Execute(c.Request.Context(), profileUC.DeleteProfileInput{ID: id}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Profile deleted successfully"})
}
