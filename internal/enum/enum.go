// Package enum maps between the upper-case tokens the GraphQL schema
// exposes and the display strings stored in the database.
package enum

// EducationTokens lists the wire tokens of the education-level
// vocabulary in schema order.
var EducationTokens = []string{
	"PRIMARIA",
	"SECUNDARIA",
	"TECNICO",
	"TECNOLOGICO",
	"UNIVERSITARIO",
	"POSGRADO",
	"MAESTRIA",
	"DOCTORADO",
}

// ProficiencyTokens lists the wire tokens of the language-proficiency
// vocabulary in schema order.
var ProficiencyTokens = []string{
	"BASICO",
	"INTERMEDIO",
	"AVANZADO",
	"NATIVO",
}

var educationToStorage = map[string]string{
	"PRIMARIA":      "Primaria",
	"SECUNDARIA":    "Secundaria",
	"TECNICO":       "Técnico",
	"TECNOLOGICO":   "Tecnológico",
	"UNIVERSITARIO": "Universitario",
	"POSGRADO":      "Posgrado",
	"MAESTRIA":      "Maestría",
	"DOCTORADO":     "Doctorado",
}

var proficiencyToStorage = map[string]string{
	"BASICO":     "Básico",
	"INTERMEDIO": "Intermedio",
	"AVANZADO":   "Avanzado",
	"NATIVO":     "Nativo",
}

var educationToWire = invert(educationToStorage)
var proficiencyToWire = invert(proficiencyToStorage)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// EducationToStorage converts a wire token to its storage form.
// Unknown input passes through unchanged so documents written with a
// vocabulary this build does not know about survive a round trip.
func EducationToStorage(token string) string {
	if v, ok := educationToStorage[token]; ok {
		return v
	}
	return token
}

// EducationToWire converts a storage value to its wire token. Unknown
// input passes through unchanged.
func EducationToWire(value string) string {
	if v, ok := educationToWire[value]; ok {
		return v
	}
	return value
}

// ProficiencyToStorage converts a wire token to its storage form.
// Unknown input passes through unchanged.
func ProficiencyToStorage(token string) string {
	if v, ok := proficiencyToStorage[token]; ok {
		return v
	}
	return token
}

// ProficiencyToWire converts a storage value to its wire token. Unknown
// input passes through unchanged.
func ProficiencyToWire(value string) string {
	if v, ok := proficiencyToWire[value]; ok {
		return v
	}
	return value
}

// IsEducationToken reports whether token is a known wire education level.
func IsEducationToken(token string) bool {
	_, ok := educationToStorage[token]
	return ok
}

// IsProficiencyToken reports whether token is a known wire proficiency
// level.
func IsProficiencyToken(token string) bool {
	_, ok := proficiencyToStorage[token]
	return ok
}
