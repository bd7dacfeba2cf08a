// Package bootstrap runs the one-time image migration after the store loads.
//
// A failed encode leaves that image as a plain reference and nothing records
// the failure, so the format check picks it up again on the next start.
package bootstrap

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"VCARD_BACK-END/internal/models"
	"VCARD_BACK-END/internal/store"
)

// ImageEncoder converts a reference into a data URI.
type ImageEncoder interface {
	Encode(ctx context.Context, ref string) (string, error)
}

// Migrator encodes every image field that is not yet a data URI.
type Migrator struct {
	store   *store.Store
	encoder ImageEncoder
	logger  *zap.Logger

	once sync.Once
	err  error
}

func NewMigrator(s *store.Store, enc ImageEncoder, logger *zap.Logger) *Migrator {
	return &Migrator{store: s, encoder: enc, logger: logger}
}

// Run executes the migration at most once. Later calls return the first result.
func (m *Migrator) Run(ctx context.Context) error {
	m.once.Do(func() {
		m.err = m.migrate(ctx)
	})
	return m.err
}

// slot is one image field position: index into galleryImages, or -1 for profileImage.
type slot struct {
	index int
	ref   string
	uri   string
	err   error
}

const profileSlot = -1

func pending(rec models.ProfileRecord) []*slot {
	var out []*slot
	if rec.ProfileImage != "" && !models.IsEncodedImage(rec.ProfileImage) {
		out = append(out, &slot{index: profileSlot, ref: rec.ProfileImage})
	}
	for i, ref := range rec.GalleryImages {
		if !models.IsEncodedImage(ref) {
			out = append(out, &slot{index: i, ref: ref})
		}
	}
	return out
}

func (m *Migrator) migrate(ctx context.Context) error {
	slots := pending(m.store.Current())
	if len(slots) == 0 {
		m.logger.Debug("all images already encoded")
		return nil
	}

	m.store.SetLoading(true)
	defer m.store.SetLoading(false)

	start := time.Now()
	m.logger.Info("encoding images", zap.Int("count", len(slots)))

	// every encode runs to completion; one failure must not cancel the others
	var g errgroup.Group
	for _, s := range slots {
		s := s
		g.Go(func() error {
			s.uri, s.err = m.encoder.Encode(ctx, s.ref)
			return s.err
		})
	}
	_ = g.Wait()

	var errs []error
	encoded := 0
	for _, s := range slots {
		if s.err != nil {
			m.logger.Warn("image left unencoded", zap.String("ref", s.ref), zap.Error(s.err))
			errs = append(errs, s.err)
			continue
		}
		encoded++
	}

	if encoded > 0 {
		if _, err := m.store.UpdateWith(ctx, func(cur models.ProfileRecord) (models.ProfilePatch, bool) {
			return apply(cur, slots)
		}); err != nil {
			errs = append(errs, err)
		}
	}

	m.logger.Info("image migration finished",
		zap.Int("encoded", encoded),
		zap.Int("failed", len(slots)-encoded),
		zap.Duration("took", time.Since(start)),
	)
	return errors.Join(errs...)
}

// apply builds the patch that swaps each encoded slot into cur, skipping any
// position whose reference changed while the encodes were running.
func apply(cur models.ProfileRecord, slots []*slot) (models.ProfilePatch, bool) {
	var patch models.ProfilePatch
	gallery := cur.GalleryImages
	galleryChanged := false

	for _, s := range slots {
		if s.err != nil {
			continue
		}
		if s.index == profileSlot {
			if cur.ProfileImage == s.ref {
				uri := s.uri
				patch.ProfileImage = &uri
			}
			continue
		}
		if s.index < len(gallery) && gallery[s.index] == s.ref {
			gallery[s.index] = s.uri
			galleryChanged = true
		}
	}

	if galleryChanged {
		patch.GalleryImages = &gallery
	}
	return patch, !patch.IsEmpty()
}
