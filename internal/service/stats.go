package service

import (
	"context"
	"fmt"
	"math"

	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/model"
)

// Stats computes aggregate statistics over the full record set. The set
// is loaded in memory; fine at this system's scale.
type Stats struct {
	store  model.PersonStore
	logger *logger.Logger
}

func NewStats(store model.PersonStore, logger *logger.Logger) *Stats {
	return &Stats{
		store:  store,
		logger: logger,
	}
}

// Compute returns count, arithmetic means and the most frequent
// profession, education level and language. On an empty set the numeric
// fields are zero and the most-common fields nil.
func (s *Stats) Compute(ctx context.Context) (model.Statistics, error) {
	persons, err := s.store.GetAll(ctx)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("failed to load persons for statistics: %w", err)
	}

	total := len(persons)
	if total == 0 {
		return model.Statistics{}, nil
	}

	var ageSum, experienceSum int
	for _, p := range persons {
		ageSum += p.Age
		experienceSum += p.Experience
	}

	stats := model.Statistics{
		Total:             total,
		AverageAge:        round2(float64(ageSum) / float64(total)),
		AverageExperience: round2(float64(experienceSum) / float64(total)),
		TopProfession: mostCommon(persons, func(p model.Person) []string {
			return []string{p.Profession}
		}),
		TopEducationLevel: mostCommon(persons, func(p model.Person) []string {
			return []string{p.Education}
		}),
		TopLanguage: mostCommon(persons, func(p model.Person) []string {
			names := make([]string, 0, len(p.Languages))
			for _, lang := range p.Languages {
				names = append(names, lang.Name)
			}
			return names
		}),
	}

	s.logger.Debug("Stats service: statistics computed", "total", total)

	return stats, nil
}

// mostCommon tallies every value each record contributes and returns
// the first value reaching the maximal count, scanning records in slice
// order. Ties therefore resolve to the first value encountered, which
// keeps the result deterministic for a fixed input ordering.
func mostCommon(persons []model.Person, extract func(model.Person) []string) *string {
	counts := map[string]int{}
	order := []string{}

	for _, p := range persons {
		for _, value := range extract(p) {
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}
	}

	if len(order) == 0 {
		return nil
	}

	winner := order[0]
	for _, value := range order[1:] {
		if counts[value] > counts[winner] {
			winner = value
		}
	}
	return &winner
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
