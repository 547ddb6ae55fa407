package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/persona-server/internal/model"
)

func TestValidateFullName_CountsCharactersNotBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"accented name within limit", strings.Repeat("á", 60), false},
		{"accented name at limit", strings.Repeat("é", 100), false},
		{"accented name over limit", strings.Repeat("é", 101), true},
		{"ascii name at limit", strings.Repeat("a", 100), false},
		{"single character", "á", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFullName(tt.input)

			if tt.wantErr {
				var validation *model.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "nombre", validation.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProfession_CountsCharactersNotBytes(t *testing.T) {
	assert.NoError(t, validateProfession(strings.Repeat("ó", 100)))

	var validation *model.ValidationError
	require.ErrorAs(t, validateProfession(strings.Repeat("ó", 101)), &validation)
	assert.Equal(t, "profesion", validation.Field)
}

func TestValidateSkill_CountsCharactersNotBytes(t *testing.T) {
	assert.NoError(t, validateSkill(strings.Repeat("ñ", 50)))

	var validation *model.ValidationError
	require.ErrorAs(t, validateSkill(strings.Repeat("ñ", 51)), &validation)
	assert.Equal(t, "habilidad", validation.Field)
}
