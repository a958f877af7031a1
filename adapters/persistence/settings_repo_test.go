package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/profile-directory/internal/domain/settings"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

func TestSettingsRepo_UpdateRefreshesTimestamp(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemorySettingsRepo(&settings.Settings{SiteName: "Old"}, logger.NewNop(), WithClock(func() time.Time { return clock }))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clock, got.UpdatedAt)
	assert.NotNil(t, got.SocialLinks)

	clock = clock.Add(time.Hour)
	updated, err := repo.Update(context.Background(), func(s *settings.Settings) {
		s.SiteName = "New"
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.SiteName)
	assert.Equal(t, clock, updated.UpdatedAt)

	got, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New", got.SiteName)
}

func TestSettingsRepo_NilSeed(t *testing.T) {
	repo := NewMemorySettingsRepo(nil, logger.NewNop())
	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.SiteName)
}

func TestLoadSeed_Default(t *testing.T) {
	s, err := LoadSeed("")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Profiles)
	assert.NotNil(t, s.Settings)
	for _, p := range s.Profiles {
		assert.NoError(t, p.Validate(), "seed profile %d", p.ID)
	}
}

func TestLoadSeed_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	doc := `
profiles:
  - id: 1
    name: Ava
    age: 25
    location: Paris
    services: [Dinner]
    isPremium: false
settings:
  siteName: Test Site
  socialLinks:
    instagram: "@test"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, s.Profiles, 1)
	assert.Equal(t, "Ava", s.Profiles[0].Name)
	assert.Equal(t, []string{"Dinner"}, s.Profiles[0].Services)
	assert.Equal(t, "Test Site", s.Settings.SiteName)
	assert.Equal(t, "@test", s.Settings.SocialLinks["instagram"])
}

func TestLoadSeed_JSONFileWithoutSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profiles":[{"id":3,"name":"Bo","age":30,"location":"Lyon"}]}`), 0o600))

	s, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, s.Profiles, 1)
	assert.Equal(t, 3, s.Profiles[0].ID)
	assert.NotNil(t, s.Settings)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profiles: {not: [a list"), 0o600))
	_, err = LoadSeed(bad)
	assert.Error(t, err)
}

func TestLoadSeed_RejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := `
profiles:
  - {id: 1, name: Ava, age: 25, location: Paris}
  - {id: 1, name: Bo, age: 30, location: Lyon}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := LoadSeed(path)
	assert.ErrorContains(t, err, "duplicate profile id 1")
}

func TestLoadSeed_FractionalAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - {id: 2, name: Bo, age: 30.5, location: Lyon}\n"), 0o600))

	s, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, 30.5, s.Profiles[0].Age)
}
