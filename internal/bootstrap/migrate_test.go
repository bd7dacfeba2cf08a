package bootstrap

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/models"
	"VCARD_BACK-END/internal/storage"
	"VCARD_BACK-END/internal/store"
)

type fakeEncoder struct {
	fail  map[string]bool
	delay time.Duration
	calls atomic.Int32

	mu         sync.Mutex
	sawLoading bool
	store      *store.Store
}

func (f *fakeEncoder) Encode(ctx context.Context, ref string) (string, error) {
	f.calls.Add(1)
	if f.store != nil && f.store.Loading() {
		f.mu.Lock()
		f.sawLoading = true
		f.mu.Unlock()
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.fail[ref] {
		return "", errors.New("unreachable")
	}
	return "data:image/png;base64," + ref, nil
}

func newStore(t *testing.T, rec models.ProfileRecord) (*store.Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	s := store.New(kv, store.DefaultKey, zap.NewNop())
	s.Load(context.Background())
	if _, err := s.Update(context.Background(), models.ProfilePatch{
		ProfileImage:  &rec.ProfileImage,
		GalleryImages: &rec.GalleryImages,
	}); err != nil {
		t.Fatal(err)
	}
	return s, kv
}

func TestMigrateEncodesAllPreservingOrder(t *testing.T) {
	rec := models.ProfileRecord{
		ProfileImage:  "assets/perfil.png",
		GalleryImages: []string{"a.jpg", "data:image/png;base64,KEEP", "b.jpg", "c.jpg"},
	}
	s, kv := newStore(t, rec)
	writesBefore := kv.Writes()

	enc := &fakeEncoder{store: s}
	if err := NewMigrator(s, enc, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := s.Current()
	want := []string{
		"data:image/png;base64,a.jpg",
		"data:image/png;base64,KEEP",
		"data:image/png;base64,b.jpg",
		"data:image/png;base64,c.jpg",
	}
	if !reflect.DeepEqual(got.GalleryImages, want) {
		t.Errorf("gallery = %v, want %v", got.GalleryImages, want)
	}
	if got.ProfileImage != "data:image/png;base64,assets/perfil.png" {
		t.Errorf("profile image = %q", got.ProfileImage)
	}
	if enc.calls.Load() != 4 {
		t.Errorf("encode calls = %d, want 4", enc.calls.Load())
	}
	if kv.Writes()-writesBefore != 1 {
		t.Errorf("writes = %d, want exactly 1", kv.Writes()-writesBefore)
	}
	if !enc.sawLoading {
		t.Error("store was not in loading state during encode")
	}
	if s.Loading() {
		t.Error("loading state not cleared")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	rec := models.ProfileRecord{GalleryImages: []string{"a.jpg", "b.jpg"}}
	s, kv := newStore(t, rec)

	if err := NewMigrator(s, &fakeEncoder{}, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := s.Current()
	writes := kv.Writes()

	enc := &fakeEncoder{}
	if err := NewMigrator(s, enc, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if enc.calls.Load() != 0 {
		t.Errorf("re-run encoded %d images", enc.calls.Load())
	}
	if kv.Writes() != writes {
		t.Error("re-run wrote to storage")
	}
	if !reflect.DeepEqual(s.Current(), first) {
		t.Error("re-run changed the record")
	}
}

func TestMigrateFailureKeepsReference(t *testing.T) {
	rec := models.ProfileRecord{GalleryImages: []string{"a.jpg", "broken.jpg", "c.jpg"}}
	s, _ := newStore(t, rec)

	enc := &fakeEncoder{fail: map[string]bool{"broken.jpg": true}}
	err := NewMigrator(s, enc, zap.NewNop()).Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	want := []string{"data:image/png;base64,a.jpg", "broken.jpg", "data:image/png;base64,c.jpg"}
	if got := s.Current().GalleryImages; !reflect.DeepEqual(got, want) {
		t.Errorf("gallery = %v, want %v", got, want)
	}

	// next start retries only what is still a reference
	retry := &fakeEncoder{}
	if err := NewMigrator(s, retry, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if retry.calls.Load() != 1 {
		t.Errorf("retry encoded %d images, want 1", retry.calls.Load())
	}
}

func TestMigrateRunsEncodesConcurrently(t *testing.T) {
	rec := models.ProfileRecord{GalleryImages: []string{"a", "b", "c", "d"}}
	s, _ := newStore(t, rec)

	enc := &fakeEncoder{delay: 100 * time.Millisecond}
	start := time.Now()
	if err := NewMigrator(s, enc, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 300*time.Millisecond {
		t.Errorf("expected parallel execution (~100ms), but took %v", d)
	}
}

func TestRunOnlyOnce(t *testing.T) {
	rec := models.ProfileRecord{GalleryImages: []string{"a.jpg"}}
	s, _ := newStore(t, rec)

	enc := &fakeEncoder{}
	m := NewMigrator(s, enc, zap.NewNop())
	_ = m.Run(context.Background())

	// a later edit adds a reference; the migrator must not touch it
	gallery := append(s.Current().GalleryImages, "new.jpg")
	if _, err := s.Update(context.Background(), models.ProfilePatch{GalleryImages: &gallery}); err != nil {
		t.Fatal(err)
	}
	_ = m.Run(context.Background())

	if enc.calls.Load() != 1 {
		t.Errorf("encode calls = %d, want 1", enc.calls.Load())
	}
}

func TestApplySkipsChangedPositions(t *testing.T) {
	cur := models.ProfileRecord{
		ProfileImage:  "me.png",
		GalleryImages: []string{"edited.jpg", "b.jpg"},
	}
	slots := []*slot{
		{index: profileSlot, ref: "old.png", uri: "data:image/png;base64,old"},
		{index: 0, ref: "a.jpg", uri: "data:image/png;base64,a"},
		{index: 1, ref: "b.jpg", uri: "data:image/png;base64,b"},
		{index: 5, ref: "gone.jpg", uri: "data:image/png;base64,gone"},
	}

	patch, ok := apply(cur, slots)
	if !ok {
		t.Fatal("expected a patch")
	}
	if patch.ProfileImage != nil {
		t.Error("profile image replaced although it changed")
	}
	want := []string{"edited.jpg", "data:image/png;base64,b"}
	if patch.GalleryImages == nil || !reflect.DeepEqual(*patch.GalleryImages, want) {
		t.Errorf("gallery patch = %v, want %v", patch.GalleryImages, want)
	}
}
