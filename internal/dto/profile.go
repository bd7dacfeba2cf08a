package dto

import (
	"fmt"

	"VCARD_BACK-END/internal/models"
)

// ProfileUpdateRequest is the body of PUT/PATCH /api/profile.
// Omitted fields keep their value; socialLinks and galleryImages replace the whole value.
type ProfileUpdateRequest struct {
	Name          *string             `json:"name"`
	Profession    *string             `json:"profession"`
	Bio           *string             `json:"bio"`
	Email         *string             `json:"email"`
	Phone         *string             `json:"phone"`
	PaymentKey    *string             `json:"pixKey"`
	ProfileImage  *string             `json:"profileImage"`
	GalleryImages *[]string           `json:"galleryImages"`
	SocialLinks   *models.SocialLinks `json:"socialLinks"`
	Layout        *string             `json:"layout"`
	Theme         *string             `json:"theme"`
	PrimaryColor  *string             `json:"primaryColor"`
}

// ToPatch converts the request, rejecting layout and theme values outside the enumeration
func (r ProfileUpdateRequest) ToPatch() (models.ProfilePatch, error) {
	p := models.ProfilePatch{
		Name:          r.Name,
		Profession:    r.Profession,
		Bio:           r.Bio,
		Email:         r.Email,
		Phone:         r.Phone,
		PaymentKey:    r.PaymentKey,
		ProfileImage:  r.ProfileImage,
		GalleryImages: r.GalleryImages,
		SocialLinks:   r.SocialLinks,
		PrimaryColor:  r.PrimaryColor,
	}
	if r.Layout != nil {
		l := models.Layout(*r.Layout)
		if !l.Valid() {
			return p, fmt.Errorf("unknown layout %q", *r.Layout)
		}
		p.Layout = &l
	}
	if r.Theme != nil {
		t := models.Theme(*r.Theme)
		if !t.Valid() {
			return p, fmt.Errorf("unknown theme %q", *r.Theme)
		}
		p.Theme = &t
	}
	return p, nil
}

// ProfileResponse wraps the current record
type ProfileResponse struct {
	Profile models.ProfileRecord `json:"profile"`
	Message string               `json:"message,omitempty"`
}

// SocialLinkView is one social entry as the card views draw it
type SocialLinkView struct {
	Platform string `json:"platform"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	URL      string `json:"url"`
}

// CardResponse is the render model for GET /api/card
type CardResponse struct {
	Name          string           `json:"name"`
	Profession    string           `json:"profession"`
	Bio           string           `json:"bio"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	PaymentKey    string           `json:"pixKey"`
	ProfileImage  string           `json:"profileImage"`
	GalleryImages []string         `json:"galleryImages"`
	SocialLinks   []SocialLinkView `json:"socialLinks"`
	Layout        string           `json:"layout"`
	Theme         string           `json:"theme"`
	PrimaryColor  string           `json:"primaryColor"`
	VCardURL      string           `json:"vcardUrl"`
}

// LayoutOption is one entry of GET /api/layouts
type LayoutOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}
