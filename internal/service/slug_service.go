package service

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cms-admin/internal/naming"
	"cms-admin/pkg/slug"
)

var (
	slugMetricsOnce sync.Once
	slugsGenerated  *prometheus.CounterVec
)

func initSlugMetrics() {
	slugMetricsOnce.Do(func() {
		slugsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cms_admin",
			Subsystem: "slug",
			Name:      "generated_total",
			Help:      "Slugs generated from titles, by non-ASCII mode and outcome",
		}, []string{"mode", "outcome"})
	})
}

type SlugResult struct {
	Slug      string `json:"slug"`
	Generated bool   `json:"generated"`
	Mode      string `json:"mode"`
}

type SlugService struct {
	generator *slug.Generator
	rules     naming.Rules
}

func NewSlugService(generator *slug.Generator, rules naming.Rules) *SlugService {
	initSlugMetrics()
	if generator == nil {
		generator = slug.NewGenerator(slug.ModeFold)
	}
	return &SlugService{generator: generator, rules: rules}
}

func (s *SlugService) Generator() *slug.Generator {
	return s.generator
}

// Generate converts title with the configured mode, or with mode when it is
// not empty. An empty title yields an empty, not generated, result.
func (s *SlugService) Generate(title, mode string) (SlugResult, error) {
	generator := s.generator
	if mode != "" {
		parsed, err := slug.ParseMode(mode)
		if err != nil {
			return SlugResult{}, fmt.Errorf("%w: %s", ErrInvalidSlugMode, mode)
		}
		generator = slug.NewGenerator(parsed)
	}

	result := SlugResult{Mode: generator.Mode().String()}
	if title == "" {
		slugsGenerated.WithLabelValues(result.Mode, "skipped").Inc()
		return result, nil
	}

	result.Slug = generator.Generate(title)
	result.Generated = true

	outcome := "empty"
	if slug.IsValid(result.Slug) {
		outcome = "ok"
	}
	slugsGenerated.WithLabelValues(result.Mode, outcome).Inc()

	return result, nil
}

// ValidateName checks name against the naming rules and the given sibling
// names.
func (s *SlugService) ValidateName(name string, siblings []string) error {
	return s.rules.Veto(name, naming.NewNames(siblings...), true)
}
