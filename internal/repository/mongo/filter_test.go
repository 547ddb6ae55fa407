package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acamargo/persona-server/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildSearchFilter_Empty(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{})
	assert.Empty(t, query)
}

func TestBuildSearchFilter_SubstringFields(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{
		Name:       strPtr("ana"),
		Profession: strPtr("eng"),
		Skill:      strPtr("python"),
		Language:   strPtr("ingl"),
	})

	assert.Equal(t, primitive.Regex{Pattern: "ana", Options: "i"}, query["nombre"])
	assert.Equal(t, primitive.Regex{Pattern: "eng", Options: "i"}, query["profesion"])
	assert.Equal(t, primitive.Regex{Pattern: "python", Options: "i"}, query["habilidades"])
	assert.Equal(t, primitive.Regex{Pattern: "ingl", Options: "i"}, query["idiomas.idioma"])
}

func TestBuildSearchFilter_QuotesPatternSyntax(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{Name: strPtr("a.*b")})

	// User input must be matched literally, not as a pattern.
	assert.Equal(t, primitive.Regex{Pattern: `a\.\*b`, Options: "i"}, query["nombre"])
}

func TestBuildSearchFilter_PreservesWhitespace(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{Name: strPtr(" ana ")})

	// Padding is part of the substring the caller asked for.
	assert.Equal(t, primitive.Regex{Pattern: " ana ", Options: "i"}, query["nombre"])
}

func TestBuildSearchFilter_EducationExactMatch(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{EducationLevel: strPtr("Universitario")})
	assert.Equal(t, "Universitario", query["nivelEducativo"])
}

func TestBuildSearchFilter_ExperienceRange(t *testing.T) {
	tests := []struct {
		name     string
		filter   model.SearchFilter
		expected bson.M
	}{
		{
			name:     "both bounds",
			filter:   model.SearchFilter{MinExperience: intPtr(5), MaxExperience: intPtr(10)},
			expected: bson.M{"$gte": 5, "$lte": 10},
		},
		{
			name:     "min only",
			filter:   model.SearchFilter{MinExperience: intPtr(5)},
			expected: bson.M{"$gte": 5},
		},
		{
			name:     "max only",
			filter:   model.SearchFilter{MaxExperience: intPtr(10)},
			expected: bson.M{"$lte": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := buildSearchFilter(tt.filter)
			assert.Equal(t, tt.expected, query["experienciaLaboral"])
		})
	}
}

func TestBuildSearchFilter_AgeRange(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{MinAge: intPtr(18), MaxAge: intPtr(65)})
	assert.Equal(t, bson.M{"$gte": 18, "$lte": 65}, query["edad"])

	query = buildSearchFilter(model.SearchFilter{MinAge: intPtr(30)})
	assert.Equal(t, bson.M{"$gte": 30}, query["edad"])
}

func TestBuildSearchFilter_CombinedCriteria(t *testing.T) {
	query := buildSearchFilter(model.SearchFilter{
		EducationLevel: strPtr("Universitario"),
		MinExperience:  intPtr(10),
	})

	assert.Len(t, query, 2)
	assert.Equal(t, "Universitario", query["nivelEducativo"])
	assert.Equal(t, bson.M{"$gte": 10}, query["experienciaLaboral"])
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name         string
		pageSize     int
		page         int
		expectedSkip int64
		expectedLim  int64
	}{
		{"defaults", 0, 0, 0, 10},
		{"first page", 10, 1, 0, 10},
		{"second page", 5, 2, 5, 5},
		{"large page size is not capped", 10000, 3, 20000, 10000},
		{"negative inputs fall back", -1, -2, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := pageWindow(tt.pageSize, tt.page)
			assert.Equal(t, tt.expectedSkip, skip)
			assert.Equal(t, tt.expectedLim, limit)
		})
	}
}
