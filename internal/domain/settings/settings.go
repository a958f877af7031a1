package settings

import (
	"context"
	"maps"
	"time"
)

// Settings is the site-wide display configuration. There is exactly one per process.
type Settings struct {
	SiteName         string            `json:"siteName" yaml:"siteName"`
	SiteDescription  string            `json:"siteDescription" yaml:"siteDescription"`
	LogoURL          string            `json:"logoUrl" yaml:"logoUrl"`
	PrimaryColor     string            `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor   string            `json:"secondaryColor" yaml:"secondaryColor"`
	ContactEmail     string            `json:"contactEmail" yaml:"contactEmail"`
	ContactPhone     string            `json:"contactPhone" yaml:"contactPhone"`
	WhatsappNumber   string            `json:"whatsappNumber" yaml:"whatsappNumber"`
	TelegramUsername string            `json:"telegramUsername" yaml:"telegramUsername"`
	Address          string            `json:"address" yaml:"address"`
	HeroTitle        string            `json:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle     string            `json:"heroSubtitle" yaml:"heroSubtitle"`
	FooterText       string            `json:"footerText" yaml:"footerText"`
	SocialLinks      map[string]string `json:"socialLinks" yaml:"socialLinks"`
	MaintenanceMode  bool              `json:"maintenanceMode" yaml:"maintenanceMode"`
	UpdatedAt        time.Time         `json:"updatedAt" yaml:"updatedAt"`
}

func (s *Settings) Clone() *Settings {
	cp := *s
	cp.SocialLinks = maps.Clone(s.SocialLinks)
	return &cp
}

type Patch struct {
	SiteName         *string
	SiteDescription  *string
	LogoURL          *string
	PrimaryColor     *string
	SecondaryColor   *string
	ContactEmail     *string
	ContactPhone     *string
	WhatsappNumber   *string
	TelegramUsername *string
	Address          *string
	HeroTitle        *string
	HeroSubtitle     *string
	FooterText       *string
	SocialLinks      map[string]string
	MaintenanceMode  *bool
}

// Apply overwrites the top-level fields present in the patch.
// SocialLinks is replaced as a whole, not merged key by key.
func (pt Patch) Apply(s *Settings) {
	setString(&s.SiteName, pt.SiteName)
	setString(&s.SiteDescription, pt.SiteDescription)
	setString(&s.LogoURL, pt.LogoURL)
	setString(&s.PrimaryColor, pt.PrimaryColor)
	setString(&s.SecondaryColor, pt.SecondaryColor)
	setString(&s.ContactEmail, pt.ContactEmail)
	setString(&s.ContactPhone, pt.ContactPhone)
	setString(&s.WhatsappNumber, pt.WhatsappNumber)
	setString(&s.TelegramUsername, pt.TelegramUsername)
	setString(&s.Address, pt.Address)
	setString(&s.HeroTitle, pt.HeroTitle)
	setString(&s.HeroSubtitle, pt.HeroSubtitle)
	setString(&s.FooterText, pt.FooterText)
	if pt.SocialLinks != nil {
		s.SocialLinks = maps.Clone(pt.SocialLinks)
	}
	if pt.MaintenanceMode != nil {
		s.MaintenanceMode = *pt.MaintenanceMode
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	// Update applies the mutation under the store lock and refreshes UpdatedAt.
	Update(ctx context.Context, mutate func(s *Settings)) (*Settings, error)
}
