package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type SearchUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewSearchUseCase(repo profile.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		profileRepo: repo,
		logger:      log,
	}
}

type SearchInput struct {
	Filter profile.SearchFilter
}

type SearchOutput struct {
	Results []*profile.Profile
}

// Execute filters the whole store. Criteria left unset do not narrow the result,
// so an empty filter returns every profile.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	fields := []zap.Field{
		zap.String("query", input.Filter.Query),
		zap.String("location", input.Filter.Location),
	}
	if input.Filter.Age != nil {
		fields = append(fields, zap.Float64("age", *input.Filter.Age))
	}
	if input.Filter.IsPremium != nil {
		fields = append(fields, zap.Bool("premium", *input.Filter.IsPremium))
	}
	uc.logger.Debug("Executing profile search", fields...)

	results, err := uc.profileRepo.Search(ctx, input.Filter)
	if err != nil {
		uc.logger.Error("Search execution failed", err)
		return nil, apperror.NewInternal("search failed", err)
	}

	return &SearchOutput{Results: results}, nil
}
