package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/internal/domain/settings"
)

// Seed is the initial content of the in-memory stores.
type Seed struct {
	Profiles []*profile.Profile `yaml:"profiles"`
	Settings *settings.Settings `yaml:"settings"`
}

// LoadSeed reads a YAML (or JSON) seed document. An empty path yields DefaultSeed.
// Timestamps in the file are optional; missing ones are stamped at startup.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := checkUniqueIDs(s.Profiles); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	if s.Settings == nil {
		s.Settings = DefaultSeed().Settings
	}
	return &s, nil
}

// checkUniqueIDs rejects repeated explicit ids. Id 0 means "assign one".
func checkUniqueIDs(profiles []*profile.Profile) error {
	seen := make(map[int]bool, len(profiles))
	for _, p := range profiles {
		if p.ID == 0 {
			continue
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate profile id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func DefaultSeed() *Seed {
	return &Seed{
		Profiles: []*profile.Profile{
			{
				ID:               1,
				Name:             "Sophia",
				Age:              24,
				Location:         "Mumbai",
				ShortDescription: "Warm, witty and always up for a good conversation.",
				Description:      "Sophia loves live music, long dinners and exploring the city after dark.",
				Services:         []string{"Dinner Date", "Event Companion", "City Tour"},
				Images:           []string{"/images/profiles/sophia-1.jpg"},
				IsPremium:        true,
				IsVerified:       true,
				IsAvailable:      true,
			},
			{
				ID:               2,
				Name:             "Isabella",
				Age:              27,
				Location:         "Delhi",
				ShortDescription: "Elegant travel partner with a passion for art.",
				Description:      "Isabella speaks three languages and knows every gallery in town.",
				Services:         []string{"Travel Companion", "Museum Visit"},
				Images:           []string{"/images/profiles/isabella-1.jpg"},
				IsPremium:        false,
				IsVerified:       true,
				IsAvailable:      true,
			},
			{
				ID:               3,
				Name:             "Olivia",
				Age:              22,
				Location:         "Bangalore",
				ShortDescription: "Bubbly foodie who never says no to dessert.",
				Description:      "Olivia is a culinary student and a great guide to the local food scene.",
				Services:         []string{"Dinner Date", "Cooking Class"},
				Images:           []string{"/images/profiles/olivia-1.jpg"},
				IsPremium:        false,
				IsVerified:       false,
				IsAvailable:      true,
			},
			{
				ID:               4,
				Name:             "Mia",
				Age:              29,
				Location:         "Goa",
				ShortDescription: "Beach lover and sunset chaser.",
				Description:      "Mia grew up by the sea and organises the best coastal day trips.",
				Services:         []string{"Beach Outing", "Yacht Party", "Event Companion"},
				Images:           []string{"/images/profiles/mia-1.jpg"},
				IsPremium:        true,
				IsVerified:       true,
				IsAvailable:      false,
			},
		},
		Settings: &settings.Settings{
			SiteName:        "Profile Directory",
			SiteDescription: "Browse verified profiles and book in minutes.",
			LogoURL:         "/images/logo.svg",
			PrimaryColor:    "#e11d48",
			SecondaryColor:  "#1f2937",
			ContactEmail:    "hello@example.com",
			ContactPhone:    "+91 00000 00000",
			HeroTitle:       "Find your perfect companion",
			HeroSubtitle:    "Hand-picked, verified profiles across the country.",
			FooterText:      "All rights reserved.",
			SocialLinks:     map[string]string{},
		},
	}
}
