package graphql

import (
	"time"

	"github.com/acamargo/persona-server/internal/enum"
	"github.com/acamargo/persona-server/internal/model"
)

// personToWire converts an internal record into the shape the schema
// exposes: opaque string id, ISO-8601 dates, wire enum tokens.
func personToWire(p model.Person) map[string]interface{} {
	idiomas := make([]map[string]interface{}, 0, len(p.Languages))
	for _, lang := range p.Languages {
		idiomas = append(idiomas, map[string]interface{}{
			"idioma": lang.Name,
			"nivel":  enum.ProficiencyToWire(lang.Level),
		})
	}

	habilidades := p.Skills
	if habilidades == nil {
		habilidades = []string{}
	}

	return map[string]interface{}{
		"id":                 p.ID.Hex(),
		"nombre":             p.FullName,
		"edad":               p.Age,
		"telefono":           p.Phone,
		"email":              p.Email,
		"nivelEducativo":     enum.EducationToWire(p.Education),
		"profesion":          p.Profession,
		"experienciaLaboral": p.Experience,
		"habilidades":        habilidades,
		"idiomas":            idiomas,
		"createdAt":          isoTime(p.CreatedAt),
		"updatedAt":          isoTime(p.UpdatedAt),
	}
}

func personsToWire(persons []model.Person) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(persons))
	for _, p := range persons {
		out = append(out, personToWire(p))
	}
	return out
}

func statsToWire(s model.Statistics) map[string]interface{} {
	return map[string]interface{}{
		"total":                  s.Total,
		"promedioEdad":           s.AverageAge,
		"promedioExperiencia":    s.AverageExperience,
		"profesionMasComun":      strOrNil(s.TopProfession),
		"nivelEducativoMasComun": strOrNil(s.TopEducationLevel),
		"idiomaMasComun":         strOrNil(s.TopLanguage),
	}
}

func isoTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func parseCreateInput(input map[string]interface{}) model.CreatePersonParams {
	return model.CreatePersonParams{
		FullName:       stringArg(input, "nombre"),
		Age:            intArg(input, "edad"),
		Phone:          stringArg(input, "telefono"),
		Email:          stringArg(input, "email"),
		EducationLevel: stringArg(input, "nivelEducativo"),
		Profession:     stringArg(input, "profesion"),
		Experience:     intArg(input, "experienciaLaboral"),
		Skills:         stringListArg(input, "habilidades"),
		Languages:      languageListArg(input, "idiomas"),
	}
}

func parseUpdateInput(input map[string]interface{}) model.UpdatePersonParams {
	return model.UpdatePersonParams{
		FullName:       stringPtrArg(input, "nombre"),
		Age:            intPtrArg(input, "edad"),
		Phone:          stringPtrArg(input, "telefono"),
		Email:          stringPtrArg(input, "email"),
		EducationLevel: stringPtrArg(input, "nivelEducativo"),
		Profession:     stringPtrArg(input, "profesion"),
		Experience:     intPtrArg(input, "experienciaLaboral"),
		Skills:         stringListArg(input, "habilidades"),
		Languages:      languageListArg(input, "idiomas"),
	}
}

func parseFilterInput(input map[string]interface{}) model.SearchFilter {
	return model.SearchFilter{
		Name:           stringPtrArg(input, "nombre"),
		Profession:     stringPtrArg(input, "profesion"),
		EducationLevel: stringPtrArg(input, "nivelEducativo"),
		MinExperience:  intPtrArg(input, "experienciaMinima"),
		MaxExperience:  intPtrArg(input, "experienciaMaxima"),
		MinAge:         intPtrArg(input, "edadMinima"),
		MaxAge:         intPtrArg(input, "edadMaxima"),
		Skill:          stringPtrArg(input, "habilidad"),
		Language:       stringPtrArg(input, "idioma"),
	}
}

func stringArg(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intArg(m map[string]interface{}, key string) int {
	if v, ok := m[key].(int); ok {
		return v
	}
	return 0
}

func stringPtrArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func intPtrArg(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func stringListArg(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func languageListArg(m map[string]interface{}, key string) []model.LanguageParams {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]model.LanguageParams, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, model.LanguageParams{
			Name:  stringArg(entry, "idioma"),
			Level: stringArg(entry, "nivel"),
		})
	}
	return out
}
