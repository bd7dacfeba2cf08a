// Package store owns the single profile record and its durability contract.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/metrics"
	"VCARD_BACK-END/internal/models"
	"VCARD_BACK-END/internal/storage"
)

// DefaultKey is the storage key the record lives under.
const DefaultKey = "vcard-data"

// Store holds the current ProfileRecord. Every update is written to the KV
// before the in-memory record is replaced.
type Store struct {
	kv     storage.KV
	key    string
	logger *zap.Logger

	mu      sync.RWMutex
	current models.ProfileRecord
	loading atomic.Bool
}

// New creates a store holding the default record. Call Load to read storage.
func New(kv storage.KV, key string, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		kv:      kv,
		key:     key,
		logger:  logger,
		current: models.DefaultProfile(),
	}
}

// Load reads the record from storage and makes it current. A missing key,
// a read failure or an unparseable value all yield the default record.
func (s *Store) Load(ctx context.Context) models.ProfileRecord {
	rec := s.read(ctx)

	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()

	return rec.Clone()
}

func (s *Store) read(ctx context.Context) models.ProfileRecord {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("no stored profile, using default", zap.String("key", s.key))
		return models.DefaultProfile()
	}
	if err != nil {
		s.logger.Warn("read stored profile failed, using default", zap.String("key", s.key), zap.Error(err))
		return models.DefaultProfile()
	}

	rec, err := decode(raw)
	if err != nil {
		s.logger.Warn("stored profile is not valid, using default", zap.String("key", s.key), zap.Error(err))
		return models.DefaultProfile()
	}
	return rec
}

func decode(raw []byte) (models.ProfileRecord, error) {
	var rec models.ProfileRecord
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return rec, fmt.Errorf("stored value is not a JSON object")
	}
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return rec, err
	}
	if rec.GalleryImages == nil {
		rec.GalleryImages = []string{}
	}
	return rec, nil
}

// Current returns a copy of the current record.
func (s *Store) Current() models.ProfileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update merges patch into the current record, persists the result and then
// makes it current. On a storage error the current record is left unchanged.
func (s *Store) Update(ctx context.Context, patch models.ProfilePatch) (models.ProfileRecord, error) {
	return s.UpdateWith(ctx, func(models.ProfileRecord) (models.ProfilePatch, bool) {
		return patch, true
	})
}

// UpdateWith computes the patch from the current record while holding the
// write lock. Returning false skips the write and leaves the record as is.
func (s *Store) UpdateWith(ctx context.Context, fn func(current models.ProfileRecord) (models.ProfilePatch, bool)) (models.ProfileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch, ok := fn(s.current.Clone())
	if !ok {
		return s.current.Clone(), nil
	}

	merged := s.current.Merge(patch)
	if err := s.persist(ctx, merged); err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("error").Inc()
		s.logger.Error("persist profile failed", zap.String("key", s.key), zap.Error(err))
		return s.current.Clone(), err
	}

	s.current = merged
	metrics.ProfileUpdatesTotal.WithLabelValues("ok").Inc()
	return merged.Clone(), nil
}

func (s *Store) persist(ctx context.Context, rec models.ProfileRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	start := time.Now()
	defer func() { metrics.StorageWriteDuration.Observe(time.Since(start).Seconds()) }()

	if err := s.kv.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Loading reports whether the image migration is still running.
// Views show a neutral loading state instead of the profile while it is.
func (s *Store) Loading() bool {
	return s.loading.Load()
}

func (s *Store) SetLoading(v bool) {
	s.loading.Store(v)
}

// Ping checks the underlying storage.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
