package content

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/domain/pricing"
)

// SectionContent is a section's stored overrides together with the resolved field values
type SectionContent struct {
	Section   string            `json:"section"`
	Overrides pricing.Overrides `json:"overrides"`
	Resolved  map[string]string `json:"resolved"`
}

// Service manages stored pricing content. Reads go through an LRU cache
// that is invalidated on every write.
type Service struct {
	repo  Repository
	cache *lru.Cache[string, pricing.Overrides]
	hub   *Hub
	log   logrus.FieldLogger

	// generation is bumped on every invalidation. A read that started under an
	// older generation must not fill the cache.
	mu         sync.Mutex
	generation uint64
}

// NewService builds a Service. hub may be nil when live preview is not served.
func NewService(repo Repository, cacheSize int, hub *Hub, log logrus.FieldLogger) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, pricing.Overrides](cacheSize)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{repo: repo, cache: cache, hub: hub, log: log.WithField("component", "content")}, nil
}

// GetOverrides returns the stored overrides of a section. A section with no rows has no overrides.
func (s *Service) GetOverrides(ctx context.Context, section string) (pricing.Overrides, error) {
	if !pricing.ValidSection(section) {
		return nil, ErrInvalidSection
	}
	if cached, ok := s.cache.Get(section); ok {
		return copyOverrides(cached), nil
	}

	gen := s.currentGeneration()
	rows, err := s.repo.ListBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	overrides := make(pricing.Overrides, len(rows))
	for _, row := range rows {
		overrides[row.Field] = row.Value
	}
	s.fill(gen, section, overrides)
	return copyOverrides(overrides), nil
}

func (s *Service) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// fill caches overrides unless an invalidation happened since gen was read
func (s *Service) fill(gen uint64, section string, overrides pricing.Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.cache.Add(section, overrides)
}

func (s *Service) invalidate(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if section == "" {
		s.cache.Purge()
		return
	}
	s.cache.Remove(section)
}

// GetSection returns stored overrides and the fully resolved fields of a section
func (s *Service) GetSection(ctx context.Context, section string) (*SectionContent, error) {
	overrides, err := s.GetOverrides(ctx, section)
	if err != nil {
		return nil, err
	}
	return &SectionContent{
		Section:   section,
		Overrides: overrides,
		Resolved:  pricing.ResolveDefaults(overrides).Fields(),
	}, nil
}

// SetFields stores new values for the given fields of a section
func (s *Service) SetFields(ctx context.Context, section string, fields map[string]string, editor string) (*SectionContent, error) {
	if !pricing.ValidSection(section) {
		return nil, ErrInvalidSection
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	for key, value := range fields {
		if !pricing.IsField(key) {
			return nil, &FieldError{Field: key, Err: ErrUnknownField}
		}
		if len(value) > MaxValueLength {
			return nil, &FieldError{Field: key, Err: ErrValueTooLong}
		}
	}

	if err := s.repo.Upsert(ctx, section, fields, editor); err != nil {
		return nil, err
	}
	s.invalidate(section)

	s.log.WithFields(logrus.Fields{
		"section": section,
		"fields":  len(fields),
		"editor":  editor,
	}).Info("section content updated")

	return s.publish(ctx, section)
}

// RevertField deletes a stored override so the field falls back to its default
func (s *Service) RevertField(ctx context.Context, section, field, editor string) (*SectionContent, error) {
	if !pricing.ValidSection(section) {
		return nil, ErrInvalidSection
	}
	if !pricing.IsField(field) {
		return nil, &FieldError{Field: field, Err: ErrUnknownField}
	}
	if err := s.repo.Delete(ctx, section, field); err != nil {
		return nil, err
	}
	s.invalidate(section)

	s.log.WithFields(logrus.Fields{
		"section": section,
		"field":   field,
		"editor":  editor,
	}).Info("section field reverted")

	return s.publish(ctx, section)
}

// ListSections returns every section that has stored overrides
func (s *Service) ListSections(ctx context.Context) ([]string, error) {
	return s.repo.ListSections(ctx)
}

// Prune deletes stored overrides for keys that are no longer configuration fields
func (s *Service) Prune(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteFieldsNotIn(ctx, pricing.FieldKeys())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.invalidate("")
		s.log.WithField("deleted", n).Info("stale overrides pruned")
	}
	return n, nil
}

// Snapshot is the live-preview payload for a section on the monthly cycle
func (s *Service) Snapshot(ctx context.Context, section string) (*WSEvent, error) {
	overrides, err := s.GetOverrides(ctx, section)
	if err != nil {
		return nil, err
	}
	view := pricing.NewView(pricing.ResolveDefaults(overrides))
	return &WSEvent{Type: EventSnapshot, Section: section, Payload: view.Section()}, nil
}

func (s *Service) publish(ctx context.Context, section string) (*SectionContent, error) {
	content, err := s.GetSection(ctx, section)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		view := pricing.NewView(pricing.ResolveDefaults(content.Overrides))
		s.hub.Broadcast(&WSEvent{
			Type:    EventContentUpdated,
			Section: section,
			Payload: view.Section(),
		})
	}
	return content, nil
}

func copyOverrides(in pricing.Overrides) pricing.Overrides {
	out := make(pricing.Overrides, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
