package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMergeKeepsUnsetFields(t *testing.T) {
	base := DefaultProfile()
	name := "X"
	got := base.Merge(ProfilePatch{Name: &name})

	want := DefaultProfile()
	want.Name = "X"
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %+v, want %+v", got, want)
	}
}

func TestMergeReplacesNestedWhole(t *testing.T) {
	base := DefaultProfile()
	links := SocialLinks{X: "https://x.com/ana"}
	got := base.Merge(ProfilePatch{SocialLinks: &links})

	if got.SocialLinks != links {
		t.Fatalf("SocialLinks = %+v, want %+v", got.SocialLinks, links)
	}
}

func TestMergeDoesNotAliasPatchSlice(t *testing.T) {
	gallery := []string{"a"}
	got := DefaultProfile().Merge(ProfilePatch{GalleryImages: &gallery})
	gallery[0] = "b"
	if got.GalleryImages[0] != "a" {
		t.Fatal("merged record aliases patch slice")
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(ProfilePatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	c := "#fff"
	if (ProfilePatch{PrimaryColor: &c}).IsEmpty() {
		t.Error("patch with a field should not be empty")
	}
}

func TestJSONKeys(t *testing.T) {
	b, err := json.Marshal(ProfileRecord{})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"name", "profession", "bio", "email", "phone", "pixKey",
		"profileImage", "galleryImages", "socialLinks", "layout", "theme", "primaryColor"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	links, _ := m["socialLinks"].(map[string]any)
	for _, p := range SocialPlatforms {
		if _, ok := links[p.Key()]; !ok {
			t.Errorf("socialLinks missing %q", p.Key())
		}
	}
}

func TestIsEncodedImage(t *testing.T) {
	if !IsEncodedImage("data:image/jpeg;base64,AA") {
		t.Error("data URI not recognized")
	}
	for _, ref := range []string{"assets/a.png", "https://x/a.png", "data:text/plain,hi", ""} {
		if IsEncodedImage(ref) {
			t.Errorf("%q reported as encoded", ref)
		}
	}
}
