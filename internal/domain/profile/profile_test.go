package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func sample() *Profile {
	return &Profile{
		ID:               1,
		Name:             "Ava",
		Age:              25,
		Location:         "Paris",
		ShortDescription: "Art lover",
		Services:         []string{"Dinner", "Museum Tour"},
		IsPremium:        false,
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample().Validate())

	for name, mutate := range map[string]func(p *Profile){
		"missing name":     func(p *Profile) { p.Name = "" },
		"missing age":      func(p *Profile) { p.Age = 0 },
		"missing location": func(p *Profile) { p.Location = "" },
	} {
		t.Run(name, func(t *testing.T) {
			p := sample()
			mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrMissingFields)
		})
	}
}

func TestClone_DoesNotShareSlices(t *testing.T) {
	p := sample()
	cp := p.Clone()
	cp.Services[0] = "Changed"
	assert.Equal(t, "Dinner", p.Services[0])
}

func TestPatchApply(t *testing.T) {
	p := sample()
	Patch{
		Location:  ptr("Lyon"),
		IsPremium: ptr(true),
		Services:  &[]string{"Opera"},
	}.Apply(p)

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Ava", p.Name)
	assert.Equal(t, 25.0, p.Age)
	assert.Equal(t, "Lyon", p.Location)
	assert.True(t, p.IsPremium)
	assert.Equal(t, []string{"Opera"}, p.Services)
}

func TestSearchFilter(t *testing.T) {
	p := sample()
	cases := []struct {
		name   string
		filter SearchFilter
		want   bool
	}{
		{"empty filter", SearchFilter{}, true},
		{"query on name", SearchFilter{Query: "av"}, true},
		{"query on description", SearchFilter{Query: "ART"}, true},
		{"query on service", SearchFilter{Query: "museum"}, true},
		{"query miss", SearchFilter{Query: "yoga"}, false},
		{"location substring", SearchFilter{Location: "par"}, true},
		{"location miss", SearchFilter{Location: "Lyon"}, false},
		{"age low edge", SearchFilter{Age: ptr(23.0)}, true},
		{"age high edge", SearchFilter{Age: ptr(27.0)}, true},
		{"age out of range", SearchFilter{Age: ptr(28.0)}, false},
		{"fractional age inside window", SearchFilter{Age: ptr(26.5)}, true},
		{"fractional age outside window", SearchFilter{Age: ptr(22.5)}, false},
		{"premium false", SearchFilter{IsPremium: ptr(false)}, true},
		{"premium true", SearchFilter{IsPremium: ptr(true)}, false},
		{"combined", SearchFilter{Query: "dinner", Location: "paris", Age: ptr(26.0), IsPremium: ptr(false)}, true},
		{"combined one miss", SearchFilter{Query: "dinner", Location: "rome"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(p))
		})
	}
}

func TestValidate_PresenceOnly(t *testing.T) {
	p := sample()
	p.Name = " "
	p.Location = " "
	p.Age = 30.5
	assert.NoError(t, p.Validate())
}

func TestSearchFilter_FractionalProfileAge(t *testing.T) {
	p := sample()
	p.Age = 27.5

	assert.True(t, SearchFilter{Age: ptr(26.0)}.Matches(p))
	assert.True(t, SearchFilter{Age: ptr(29.5)}.Matches(p))
	assert.False(t, SearchFilter{Age: ptr(25.0)}.Matches(p))
}
