package vcard

import (
	"strings"
	"testing"

	"VCARD_BACK-END/internal/models"
)

func TestSerializeEndToEnd(t *testing.T) {
	r := models.DefaultProfile()
	r.Name = "Ana Silva"
	r.Profession = "Designer"
	r.Email = "ana@x.com"
	r.Phone = "+550000"
	r.Bio = "Hello"
	r.SocialLinks.LinkedIn = "https://linkedin.com/in/ana"

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"FN:Ana Silva\n" +
		"ORG:Designer\n" +
		"EMAIL:ana@x.com\n" +
		"TEL:+550000\n" +
		"NOTE:Hello\n" +
		"URL:https://linkedin.com/in/ana\n" +
		"END:VCARD"

	if got := Serialize(r); got != want {
		t.Fatalf("Serialize =\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeEmptyRecord(t *testing.T) {
	got := Serialize(models.ProfileRecord{})
	want := "BEGIN:VCARD\nVERSION:3.0\nFN:\nORG:\nEMAIL:\nTEL:\nNOTE:\nURL:\nEND:VCARD"
	if got != want {
		t.Fatalf("Serialize = %q", got)
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	records := []models.ProfileRecord{
		models.DefaultProfile(),
		{},
		{Name: "a;b,c", Bio: "line1\nline2"},
	}
	for _, r := range records {
		first := Serialize(r)
		for i := 0; i < 5; i++ {
			if got := Serialize(r); got != first {
				t.Fatalf("Serialize not deterministic for %+v", r)
			}
		}
		if strings.HasSuffix(first, "\n") {
			t.Errorf("trailing newline in %q", first)
		}
	}
}

func TestSerializeDoesNotEscape(t *testing.T) {
	r := models.ProfileRecord{Name: "Silva, Ana; Jr", Bio: "a\nb"}
	got := Serialize(r)
	if !strings.Contains(got, "FN:Silva, Ana; Jr\n") {
		t.Errorf("name was altered: %q", got)
	}
	if !strings.Contains(got, "NOTE:a\nb\n") {
		t.Errorf("bio was altered: %q", got)
	}
}

func TestSerializeIgnoresOtherLinks(t *testing.T) {
	r := models.ProfileRecord{SocialLinks: models.SocialLinks{
		Instagram: "https://instagram.com/x",
		X:         "https://x.com/x",
	}}
	if !strings.Contains(Serialize(r), "\nURL:\n") {
		t.Error("URL line should only carry the LinkedIn link")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana Silva", "Ana_Silva.vcf"},
		{"Kelvin  Harness", "Kelvin_Harness.vcf"},
		{"Solo", "Solo.vcf"},
		{"a\tb c", "a_b_c.vcf"},
		{"", "contact.vcf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.name); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
