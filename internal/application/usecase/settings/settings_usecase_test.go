package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/profile-directory/adapters/persistence"
	"github.com/khoahotran/profile-directory/internal/domain/settings"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

func TestSettingsUseCase(t *testing.T) {
	repo := persistence.NewMemorySettingsRepo(&settings.Settings{SiteName: "Old", ContactEmail: "a@example.com"}, logger.NewNop())
	uc := NewSettingsUseCase(repo, logger.NewNop())
	ctx := context.Background()

	before, err := uc.ExecuteGetSettings(ctx)
	require.NoError(t, err)

	title := "Welcome"
	out, err := uc.ExecuteUpdateSettings(ctx, UpdateSettingsInput{Fields: settings.Patch{HeroTitle: &title}})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", out.Settings.HeroTitle)
	assert.Equal(t, "Old", out.Settings.SiteName)
	assert.Equal(t, "a@example.com", out.Settings.ContactEmail)
	assert.False(t, out.Settings.UpdatedAt.Before(before.Settings.UpdatedAt))

	after, err := uc.ExecuteGetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", after.Settings.HeroTitle)
}
