package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/khoahotran/profile-directory/internal/application/usecase/search"
	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

// Search reads q, location, age and premium from the query string.
// age is read by its integer prefix and ignored when it has none; any premium
// value other than "true" means false.
func (h *SearchHandler) Search(c *gin.Context) {
	filter := profile.SearchFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
	}
	if raw := c.Query("age"); raw != "" {
		if age, err := parseLeadingInt(raw); err == nil {
			target := float64(age)
			filter.Age = &target
		}
	}
	if raw, ok := c.GetQuery("premium"); ok {
		premium := raw == "true"
		filter.IsPremium = &premium
	}

	output, err := h.searchUseCase.Execute(c.Request.Context(), searchUC.SearchInput{Filter: filter})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTOs(output.Results))
}
