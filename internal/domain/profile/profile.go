package profile

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"time"
)

type Profile struct {
	ID               int       `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Age              float64   `json:"age" yaml:"age"`
	Location         string    `json:"location" yaml:"location"`
	ShortDescription string    `json:"shortDescription" yaml:"shortDescription"`
	Description      string    `json:"description" yaml:"description"`
	Services         []string  `json:"services" yaml:"services"`
	Images           []string  `json:"images" yaml:"images"`
	IsPremium        bool      `json:"isPremium" yaml:"isPremium"`
	IsVerified       bool      `json:"isVerified" yaml:"isVerified"`
	IsAvailable      bool      `json:"isAvailable" yaml:"isAvailable"`
	CreatedAt        time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// AgeTolerance is the widest accepted distance between a profile's age and a searched age.
const AgeTolerance = 2

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrMissingFields   = errors.New("missing required fields: name, age, location")
)

// Validate checks the fields a profile cannot be created without. Presence only:
// whitespace counts as a value and any non-zero age is accepted.
func (p *Profile) Validate() error {
	if p.Name == "" || p.Age == 0 || p.Location == "" {
		return ErrMissingFields
	}
	return nil
}

// Clone returns a deep copy so callers never share slices with the store.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Services = slices.Clone(p.Services)
	cp.Images = slices.Clone(p.Images)
	return &cp
}

// Patch is the whitelist of client-writable fields. Nil means "leave unchanged".
type Patch struct {
	Name             *string
	Age              *float64
	Location         *string
	ShortDescription *string
	Description      *string
	Services         *[]string
	Images           *[]string
	IsPremium        *bool
	IsVerified       *bool
	IsAvailable      *bool
}

// Apply shallow-merges the patch onto p. ID and timestamps are never touched.
func (pt Patch) Apply(p *Profile) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Age != nil {
		p.Age = *pt.Age
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.ShortDescription != nil {
		p.ShortDescription = *pt.ShortDescription
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Services != nil {
		p.Services = slices.Clone(*pt.Services)
	}
	if pt.Images != nil {
		p.Images = slices.Clone(*pt.Images)
	}
	if pt.IsPremium != nil {
		p.IsPremium = *pt.IsPremium
	}
	if pt.IsVerified != nil {
		p.IsVerified = *pt.IsVerified
	}
	if pt.IsAvailable != nil {
		p.IsAvailable = *pt.IsAvailable
	}
}

// SearchFilter holds the optional search criteria. Unset criteria match everything.
type SearchFilter struct {
	Query     string
	Location  string
	Age       *float64
	IsPremium *bool
}

// Matches reports whether p satisfies every criterion set on f.
func (f SearchFilter) Matches(p *Profile) bool {
	if f.Query != "" && !matchesText(p, strings.ToLower(f.Query)) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Age != nil {
		if math.Abs(p.Age-*f.Age) > AgeTolerance {
			return false
		}
	}
	if f.IsPremium != nil && p.IsPremium != *f.IsPremium {
		return false
	}
	return true
}

func matchesText(p *Profile, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.ShortDescription), term) {
		return true
	}
	return slices.ContainsFunc(p.Services, func(s string) bool {
		return strings.Contains(strings.ToLower(s), term)
	})
}

type Repository interface {
	List(ctx context.Context) ([]*Profile, error)
	FindByID(ctx context.Context, id int) (*Profile, error)
	// Create assigns the next ID and both timestamps, then appends.
	Create(ctx context.Context, p *Profile) (*Profile, error)
	// Update applies the mutation under the store lock and refreshes UpdatedAt.
	Update(ctx context.Context, id int, mutate func(p *Profile)) (*Profile, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, filter SearchFilter) ([]*Profile, error)
}
