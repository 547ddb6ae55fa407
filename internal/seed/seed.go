// Package seed loads a small set of example records on startup, for
// local development and demos.
package seed

import (
	"context"
	"fmt"

	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/model"
	"github.com/acamargo/persona-server/internal/service"
)

// Run inserts the fixture records through the regular create path so
// they are validated and normalized like any client input. A non-empty
// collection is left untouched.
func Run(ctx context.Context, persons *service.Person, log *logger.Logger) error {
	count, err := persons.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count existing persons: %w", err)
	}
	if count > 0 {
		log.Info("Seed: collection not empty, skipping", "count", count)
		return nil
	}

	for _, params := range fixtures() {
		if _, err := persons.Create(ctx, params); err != nil {
			return fmt.Errorf("failed to seed person %s: %w", params.Email, err)
		}
	}

	log.Info("Seed: fixture records loaded", "count", len(fixtures()))
	return nil
}

func fixtures() []model.CreatePersonParams {
	return []model.CreatePersonParams{
		{
			FullName:       "María García López",
			Age:            28,
			Phone:          "+57-300-111-2222",
			Email:          "maria.garcia@email.com",
			EducationLevel: "UNIVERSITARIO",
			Profession:     "Médica General",
			Experience:     5,
			Skills:         []string{"Medicina General", "Urgencias", "Pediatría", "Comunicación"},
			Languages: []model.LanguageParams{
				{Name: "Español", Level: "NATIVO"},
				{Name: "Inglés", Level: "AVANZADO"},
				{Name: "Portugués", Level: "INTERMEDIO"},
			},
		},
		{
			FullName:       "Carlos Rodríguez Martínez",
			Age:            35,
			Phone:          "+57-310-333-4444",
			Email:          "carlos.rodriguez@email.com",
			EducationLevel: "UNIVERSITARIO",
			Profession:     "Ingeniero de Software",
			Experience:     12,
			Skills:         []string{"JavaScript", "Python", "React", "Node.js", "MongoDB", "AWS", "Docker"},
			Languages: []model.LanguageParams{
				{Name: "Español", Level: "NATIVO"},
				{Name: "Inglés", Level: "AVANZADO"},
			},
		},
		{
			FullName:       "Ana Isabel Fernández",
			Age:            42,
			Phone:          "+57-320-555-6666",
			Email:          "ana.fernandez@email.com",
			EducationLevel: "MAESTRIA",
			Profession:     "Psicóloga Clínica",
			Experience:     18,
			Skills:         []string{"Terapia Cognitivo-Conductual", "Psicología Infantil", "Evaluación Psicológica", "Mindfulness"},
			Languages: []model.LanguageParams{
				{Name: "Español", Level: "NATIVO"},
				{Name: "Inglés", Level: "INTERMEDIO"},
				{Name: "Francés", Level: "BASICO"},
			},
		},
		{
			FullName:       "Luis Fernando Gómez",
			Age:            26,
			Phone:          "+57-300-777-8888",
			Email:          "luis.gomez@email.com",
			EducationLevel: "TECNICO",
			Profession:     "Técnico en Sistemas",
			Experience:     3,
			Skills:         []string{"Soporte Técnico", "Redes", "Hardware", "Windows", "Linux"},
			Languages: []model.LanguageParams{
				{Name: "Español", Level: "NATIVO"},
				{Name: "Inglés", Level: "BASICO"},
			},
		},
		{
			FullName:       "Claudia Patricia Ruiz",
			Age:            39,
			Phone:          "+57-315-999-0000",
			Email:          "claudia.ruiz@email.com",
			EducationLevel: "DOCTORADO",
			Profession:     "Investigadora Biomédica",
			Experience:     15,
			Skills:         []string{"Biología Molecular", "Bioinformática", "Escritura Científica"},
			Languages: []model.LanguageParams{
				{Name: "Español", Level: "NATIVO"},
				{Name: "Inglés", Level: "AVANZADO"},
				{Name: "Alemán", Level: "INTERMEDIO"},
			},
		},
	}
}
