package pricing

import (
	"context"
	"errors"
	"regexp"

	"github.com/sirupsen/logrus"
)

var ErrSectionNotFound = errors.New("pricing section not found")

var sectionPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// ValidSection reports whether name can identify a pricing section
func ValidSection(name string) bool {
	return sectionPattern.MatchString(name)
}

// OverrideSource supplies the stored overrides of a section
type OverrideSource interface {
	GetOverrides(ctx context.Context, section string) (Overrides, error)
}

// Service resolves section configuration from stored overrides
type Service struct {
	source OverrideSource
	log    logrus.FieldLogger
}

// NewService builds a Service. A nil source renders every section with the defaults.
func NewService(source OverrideSource, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{source: source, log: log.WithField("component", "pricing")}
}

// Config returns the resolved configuration of a section. A failing source
// degrades to the defaults so the page always renders.
func (s *Service) Config(ctx context.Context, section string) (Config, error) {
	if !ValidSection(section) {
		return Config{}, ErrSectionNotFound
	}
	if s.source == nil {
		return DefaultConfig(), nil
	}

	overrides, err := s.source.GetOverrides(ctx, section)
	if err != nil {
		s.log.WithError(err).WithField("section", section).Warn("loading overrides failed, using defaults")
		return DefaultConfig(), nil
	}
	return ResolveDefaults(overrides), nil
}

// View returns a view of section on the given cycle
func (s *Service) View(ctx context.Context, section string, cycle BillingCycle) (*View, error) {
	cfg, err := s.Config(ctx, section)
	if err != nil {
		return nil, err
	}
	v := NewView(cfg)
	v.SetCycle(cycle)
	return v, nil
}
