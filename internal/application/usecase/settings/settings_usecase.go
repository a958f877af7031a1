package settings

import (
	"context"
	"fmt"

	"github.com/khoahotran/profile-directory/internal/domain/settings"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type SettingsUseCase struct {
	settingsRepo settings.Repository
	logger       logger.Logger
}

func NewSettingsUseCase(repo settings.Repository, log logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: repo,
		logger:       log,
	}
}

type GetSettingsOutput struct {
	Settings *settings.Settings
}

func (uc *SettingsUseCase) ExecuteGetSettings(ctx context.Context) (*GetSettingsOutput, error) {
	s, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings failed: %w", err)
	}
	return &GetSettingsOutput{Settings: s}, nil
}

type UpdateSettingsInput struct {
	Fields settings.Patch
}

type UpdateSettingsOutput struct {
	Settings *settings.Settings
}

func (uc *SettingsUseCase) ExecuteUpdateSettings(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	s, err := uc.settingsRepo.Update(ctx, input.Fields.Apply)
	if err != nil {
		return nil, fmt.Errorf("update settings failed: %w", err)
	}
	uc.logger.Info("Website settings updated")
	return &UpdateSettingsOutput{Settings: s}, nil
}
