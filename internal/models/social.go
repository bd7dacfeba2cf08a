package models

import "fmt"

// SocialPlatform enumerates the supported social networks.
type SocialPlatform int

const (
	Instagram SocialPlatform = iota
	LinkedIn
	YouTube
	X
)

// SocialPlatforms lists every platform in display order.
var SocialPlatforms = []SocialPlatform{Instagram, LinkedIn, YouTube, X}

// SocialLinks holds one URL per platform. All four keys are always serialized.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
	X         string `json:"x"`
}

// Get returns the URL stored for p.
func (s SocialLinks) Get(p SocialPlatform) string {
	switch p {
	case Instagram:
		return s.Instagram
	case LinkedIn:
		return s.LinkedIn
	case YouTube:
		return s.YouTube
	case X:
		return s.X
	}
	panic(fmt.Sprintf("models: unknown social platform %d", int(p)))
}

// With returns a copy of s with the URL for p replaced.
func (s SocialLinks) With(p SocialPlatform, url string) SocialLinks {
	switch p {
	case Instagram:
		s.Instagram = url
	case LinkedIn:
		s.LinkedIn = url
	case YouTube:
		s.YouTube = url
	case X:
		s.X = url
	default:
		panic(fmt.Sprintf("models: unknown social platform %d", int(p)))
	}
	return s
}

// Key is the JSON key of the platform.
func (p SocialPlatform) Key() string {
	switch p {
	case Instagram:
		return "instagram"
	case LinkedIn:
		return "linkedin"
	case YouTube:
		return "youtube"
	case X:
		return "x"
	}
	return ""
}

// Label is the human readable platform name.
func (p SocialPlatform) Label() string {
	switch p {
	case Instagram:
		return "Instagram"
	case LinkedIn:
		return "LinkedIn"
	case YouTube:
		return "YouTube"
	case X:
		return "X"
	}
	return ""
}

// Icon is the icon identifier the card views render for the platform.
func (p SocialPlatform) Icon() string {
	switch p {
	case Instagram:
		return "instagram"
	case LinkedIn:
		return "linkedin"
	case YouTube:
		return "youtube"
	case X:
		return "twitter"
	}
	return ""
}

func (p SocialPlatform) String() string {
	return p.Key()
}

// ParseSocialPlatform maps a JSON key back to its platform.
func ParseSocialPlatform(key string) (SocialPlatform, bool) {
	for _, p := range SocialPlatforms {
		if p.Key() == key {
			return p, true
		}
	}
	return 0, false
}
