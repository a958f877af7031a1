package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/internal/domain/settings"
	"github.com/khoahotran/profile-directory/internal/domain/submission"
)

// looseString accepts any JSON scalar and keeps its text. Used for references
// the server passes through without checking.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(t)
	default:
		*s = looseString(bytes.TrimSpace(b))
	}
	return nil
}

// looseNumber accepts a JSON number or a numeric string.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*n = looseNumber(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", t)
		}
		*n = looseNumber(f)
	default:
		return fmt.Errorf("not a number: %s", b)
	}
	return nil
}

// Profile DTOs

type ProfileDTO struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Age              float64   `json:"age"`
	Location         string    `json:"location"`
	ShortDescription string    `json:"shortDescription"`
	Description      string    `json:"description"`
	Services         []string  `json:"services"`
	Images           []string  `json:"images"`
	IsPremium        bool      `json:"isPremium"`
	IsVerified       bool      `json:"isVerified"`
	IsAvailable      bool      `json:"isAvailable"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProfileRequest is used for both create and update. Absent fields stay nil,
// which is what makes update a partial merge. Any "id" in the body is dropped.
type ProfileRequest struct {
	Name             *string      `json:"name" form:"name"`
	Age              *looseNumber `json:"age" form:"age"`
	Location         *string      `json:"location" form:"location"`
	ShortDescription *string      `json:"shortDescription" form:"shortDescription"`
	Description      *string      `json:"description" form:"description"`
	Services         *[]string    `json:"services" form:"-"`
	Images           *[]string    `json:"images" form:"-"`
	IsPremium        *bool        `json:"isPremium" form:"isPremium"`
	IsVerified       *bool        `json:"isVerified" form:"isVerified"`
	IsAvailable      *bool        `json:"isAvailable" form:"isAvailable"`
}

func (r *ProfileRequest) ToDomainPatch() profile.Patch {
	var age *float64
	if r.Age != nil {
		v := float64(*r.Age)
		age = &v
	}
	return profile.Patch{
		Name:             r.Name,
		Age:              age,
		Location:         r.Location,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Services:         r.Services,
		Images:           r.Images,
		IsPremium:        r.IsPremium,
		IsVerified:       r.IsVerified,
		IsAvailable:      r.IsAvailable,
	}
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:               p.ID,
		Name:             p.Name,
		Age:              p.Age,
		Location:         p.Location,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Services:         p.Services,
		Images:           p.Images,
		IsPremium:        p.IsPremium,
		IsVerified:       p.IsVerified,
		IsAvailable:      p.IsAvailable,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToProfileDTOs(ps []*profile.Profile) []ProfileDTO {
	dtos := make([]ProfileDTO, len(ps))
	for i, p := range ps {
		dtos[i] = ToProfileDTO(p)
	}
	return dtos
}

// Settings DTOs

type SettingsDTO struct {
	SiteName         string            `json:"siteName"`
	SiteDescription  string            `json:"siteDescription"`
	LogoURL          string            `json:"logoUrl"`
	PrimaryColor     string            `json:"primaryColor"`
	SecondaryColor   string            `json:"secondaryColor"`
	ContactEmail     string            `json:"contactEmail"`
	ContactPhone     string            `json:"contactPhone"`
	WhatsappNumber   string            `json:"whatsappNumber"`
	TelegramUsername string            `json:"telegramUsername"`
	Address          string            `json:"address"`
	HeroTitle        string            `json:"heroTitle"`
	HeroSubtitle     string            `json:"heroSubtitle"`
	FooterText       string            `json:"footerText"`
	SocialLinks      map[string]string `json:"socialLinks"`
	MaintenanceMode  bool              `json:"maintenanceMode"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// UpdateSettingsRequest lists the only keys a client may write. Unknown keys are ignored.
type UpdateSettingsRequest struct {
	SiteName         *string           `json:"siteName" form:"siteName"`
	SiteDescription  *string           `json:"siteDescription" form:"siteDescription"`
	LogoURL          *string           `json:"logoUrl" form:"logoUrl"`
	PrimaryColor     *string           `json:"primaryColor" form:"primaryColor"`
	SecondaryColor   *string           `json:"secondaryColor" form:"secondaryColor"`
	ContactEmail     *string           `json:"contactEmail" form:"contactEmail"`
	ContactPhone     *string           `json:"contactPhone" form:"contactPhone"`
	WhatsappNumber   *string           `json:"whatsappNumber" form:"whatsappNumber"`
	TelegramUsername *string           `json:"telegramUsername" form:"telegramUsername"`
	Address          *string           `json:"address" form:"address"`
	HeroTitle        *string           `json:"heroTitle" form:"heroTitle"`
	HeroSubtitle     *string           `json:"heroSubtitle" form:"heroSubtitle"`
	FooterText       *string           `json:"footerText" form:"footerText"`
	SocialLinks      map[string]string `json:"socialLinks" form:"-"`
	MaintenanceMode  *bool             `json:"maintenanceMode" form:"maintenanceMode"`
}

func (r *UpdateSettingsRequest) ToDomainPatch() settings.Patch {
	return settings.Patch{
		SiteName:         r.SiteName,
		SiteDescription:  r.SiteDescription,
		LogoURL:          r.LogoURL,
		PrimaryColor:     r.PrimaryColor,
		SecondaryColor:   r.SecondaryColor,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		WhatsappNumber:   r.WhatsappNumber,
		TelegramUsername: r.TelegramUsername,
		Address:          r.Address,
		HeroTitle:        r.HeroTitle,
		HeroSubtitle:     r.HeroSubtitle,
		FooterText:       r.FooterText,
		SocialLinks:      r.SocialLinks,
		MaintenanceMode:  r.MaintenanceMode,
	}
}

func ToSettingsDTO(s *settings.Settings) SettingsDTO {
	return SettingsDTO{
		SiteName:         s.SiteName,
		SiteDescription:  s.SiteDescription,
		LogoURL:          s.LogoURL,
		PrimaryColor:     s.PrimaryColor,
		SecondaryColor:   s.SecondaryColor,
		ContactEmail:     s.ContactEmail,
		ContactPhone:     s.ContactPhone,
		WhatsappNumber:   s.WhatsappNumber,
		TelegramUsername: s.TelegramUsername,
		Address:          s.Address,
		HeroTitle:        s.HeroTitle,
		HeroSubtitle:     s.HeroSubtitle,
		FooterText:       s.FooterText,
		SocialLinks:      s.SocialLinks,
		MaintenanceMode:  s.MaintenanceMode,
		UpdatedAt:        s.UpdatedAt,
	}
}

// Submission DTOs

type ContactRequest struct {
	Name      string      `json:"name" form:"name" binding:"required"`
	Email     string      `json:"email" form:"email" binding:"required"`
	Phone     string      `json:"phone" form:"phone"`
	Message   string      `json:"message" form:"message" binding:"required"`
	ProfileID looseString `json:"profileId" form:"profileId"`
}

func (r *ContactRequest) ToDomain() submission.Contact {
	return submission.Contact{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		ProfileID: string(r.ProfileID),
	}
}

type BookingRequest struct {
	CustomerName string `json:"customerName" form:"customerName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" form:"phoneNumber" binding:"required"`
	Country      string `json:"country" form:"country"`
	State        string `json:"state" form:"state"`
	GirlName     string `json:"girlName" form:"girlName" binding:"required"`
	Platform     string `json:"platform" form:"platform"`
}

func (r *BookingRequest) ToDomain() submission.Booking {
	return submission.Booking{
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Country:      r.Country,
		State:        r.State,
		GirlName:     r.GirlName,
		Platform:     r.Platform,
	}
}

type ContactResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type BookingResponse struct {
	Message   string    `json:"message"`
	BookingID string    `json:"bookingId"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}
