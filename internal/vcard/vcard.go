// Package vcard renders the profile as a vCard 3.0 text block.
//
// Field values are written verbatim. Commas, semicolons and newlines in free
// text are not escaped, which keeps exports byte-identical to earlier ones.
package vcard

import (
	"regexp"
	"strings"

	"VCARD_BACK-END/internal/models"
)

// ContentType is the MIME type of the downloaded file.
const ContentType = "text/vcard"

// Serialize maps the record to vCard text. Lines are joined with "\n" and
// there is no trailing newline.
func Serialize(r models.ProfileRecord) string {
	return strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + r.Name,
		"ORG:" + r.Profession,
		"EMAIL:" + r.Email,
		"TEL:" + r.Phone,
		"NOTE:" + r.Bio,
		"URL:" + r.SocialLinks.Get(models.LinkedIn),
		"END:VCARD",
	}, "\n")
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename is the download name: whitespace runs become underscores.
func Filename(name string) string {
	if name == "" {
		return "contact.vcf"
	}
	return whitespace.ReplaceAllString(name, "_") + ".vcf"
}
