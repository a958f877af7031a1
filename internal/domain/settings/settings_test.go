package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply_OnlyTouchesPresentFields(t *testing.T) {
	s := &Settings{SiteName: "Old", ContactEmail: "a@example.com", SocialLinks: map[string]string{"x": "1"}}
	name := "New"
	on := true

	Patch{SiteName: &name, MaintenanceMode: &on}.Apply(s)

	assert.Equal(t, "New", s.SiteName)
	assert.Equal(t, "a@example.com", s.ContactEmail)
	assert.True(t, s.MaintenanceMode)
	assert.Equal(t, map[string]string{"x": "1"}, s.SocialLinks)
}

func TestPatchApply_ReplacesSocialLinks(t *testing.T) {
	s := &Settings{SocialLinks: map[string]string{"x": "1"}}
	links := map[string]string{"instagram": "@site"}

	Patch{SocialLinks: links}.Apply(s)
	links["instagram"] = "mutated"

	assert.Equal(t, map[string]string{"instagram": "@site"}, s.SocialLinks)
}

func TestClone(t *testing.T) {
	s := &Settings{SocialLinks: map[string]string{"x": "1"}}
	cp := s.Clone()
	cp.SocialLinks["x"] = "2"
	assert.Equal(t, "1", s.SocialLinks["x"])
}
