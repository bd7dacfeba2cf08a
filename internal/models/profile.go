package models

import "strings"

// EncodedImagePrefix marks an image field that already holds a data URI.
const EncodedImagePrefix = "data:image/"

// ProfileRecord is the single card owner record.
// JSON keys follow the format already written to durable storage.
type ProfileRecord struct {
	Name          string      `json:"name"`
	Profession    string      `json:"profession"`
	Bio           string      `json:"bio"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	PaymentKey    string      `json:"pixKey"`
	ProfileImage  string      `json:"profileImage"`
	GalleryImages []string    `json:"galleryImages"`
	SocialLinks   SocialLinks `json:"socialLinks"`
	Layout        Layout      `json:"layout"`
	Theme         Theme       `json:"theme"`
	PrimaryColor  string      `json:"primaryColor"`
}

// ProfilePatch is a partial update. Nil fields keep their previous value.
// SocialLinks and GalleryImages are replaced whole when set.
type ProfilePatch struct {
	Name          *string
	Profession    *string
	Bio           *string
	Email         *string
	Phone         *string
	PaymentKey    *string
	ProfileImage  *string
	GalleryImages *[]string
	SocialLinks   *SocialLinks
	Layout        *Layout
	Theme         *Theme
	PrimaryColor  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p == ProfilePatch{}
}

// Merge returns a copy of r with every non-nil field of p applied.
// The merge is shallow: nested values are taken from p as a whole.
func (r ProfileRecord) Merge(p ProfilePatch) ProfileRecord {
	out := r.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Profession != nil {
		out.Profession = *p.Profession
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.PaymentKey != nil {
		out.PaymentKey = *p.PaymentKey
	}
	if p.ProfileImage != nil {
		out.ProfileImage = *p.ProfileImage
	}
	if p.GalleryImages != nil {
		out.GalleryImages = copyStrings(*p.GalleryImages)
	}
	if p.SocialLinks != nil {
		out.SocialLinks = *p.SocialLinks
	}
	if p.Layout != nil {
		out.Layout = *p.Layout
	}
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.PrimaryColor != nil {
		out.PrimaryColor = *p.PrimaryColor
	}
	return out
}

// Clone returns a deep copy so callers can never alias the store's slice.
func (r ProfileRecord) Clone() ProfileRecord {
	out := r
	out.GalleryImages = copyStrings(r.GalleryImages)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// IsEncodedImage reports whether ref is already a self-contained data URI.
func IsEncodedImage(ref string) bool {
	return strings.HasPrefix(ref, EncodedImagePrefix)
}

// DefaultProfile returns the built-in record used when storage holds nothing usable.
func DefaultProfile() ProfileRecord {
	return ProfileRecord{
		Name:         "Kelvin Harness",
		Profession:   "CEO da Harena Techh",
		Bio:          "Transformo ideias em produtos digitais com propósito. Empreendedor, estrategista e apaixonado por construir soluções que resolvem problemas reais.",
		Email:        "kelvin.harness@harenatech.com.br",
		Phone:        "+55 (81) 99778-00402",
		PaymentKey:   "(81) 99778-00402",
		ProfileImage: "assets/perfil.png",
		GalleryImages: []string{
			"assets/img1.jpeg",
			"assets/img2.jpeg",
			"assets/img3.jpeg",
			"assets/img4.jpg",
		},
		SocialLinks: SocialLinks{
			Instagram: "https://instagram.com/_kelvinharness",
			LinkedIn:  "https://linkedin.com/in/kelvinharness",
			YouTube:   "https://youtube.com/@harenatech",
			X:         "https://x.com/",
		},
		Layout:       LayoutModern,
		Theme:        ThemeDark,
		PrimaryColor: "#3B82F6",
	}
}
