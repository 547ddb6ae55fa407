package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationRoundTrip(t *testing.T) {
	for _, token := range EducationTokens {
		storage := EducationToStorage(token)
		assert.NotEqual(t, token, storage, "storage form should differ from wire token")
		assert.Equal(t, token, EducationToWire(storage))
	}
}

func TestProficiencyRoundTrip(t *testing.T) {
	for _, token := range ProficiencyTokens {
		storage := ProficiencyToStorage(token)
		assert.NotEqual(t, token, storage, "storage form should differ from wire token")
		assert.Equal(t, token, ProficiencyToWire(storage))
	}
}

func TestEducationToStorage(t *testing.T) {
	assert.Equal(t, "Universitario", EducationToStorage("UNIVERSITARIO"))
	assert.Equal(t, "Maestría", EducationToStorage("MAESTRIA"))
	assert.Equal(t, "Técnico", EducationToStorage("TECNICO"))
}

func TestProficiencyToStorage(t *testing.T) {
	assert.Equal(t, "Básico", ProficiencyToStorage("BASICO"))
	assert.Equal(t, "Nativo", ProficiencyToStorage("NATIVO"))
}

func TestUnknownValuesPassThrough(t *testing.T) {
	assert.Equal(t, "BOOTCAMP", EducationToStorage("BOOTCAMP"))
	assert.Equal(t, "Bootcamp", EducationToWire("Bootcamp"))
	assert.Equal(t, "FLUIDO", ProficiencyToStorage("FLUIDO"))
	assert.Equal(t, "Fluido", ProficiencyToWire("Fluido"))
}

func TestTokenChecks(t *testing.T) {
	for _, token := range EducationTokens {
		assert.True(t, IsEducationToken(token))
	}
	for _, token := range ProficiencyTokens {
		assert.True(t, IsProficiencyToken(token))
	}
	assert.False(t, IsEducationToken("Universitario"))
	assert.False(t, IsProficiencyToken("AVANZADA"))
}
