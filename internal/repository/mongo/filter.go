package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acamargo/persona-server/internal/model"
)

const (
	defaultPageSize   = 10
	defaultPageNumber = 1
)

// substringMatch builds a case-insensitive, unanchored match for the
// given user-supplied text. The text is quoted so it is matched
// literally, never as pattern syntax, and is otherwise passed through
// untouched, whitespace included.
func substringMatch(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

// buildSearchFilter translates a sparse filter into a query document.
// Present criteria combine with logical AND; absent ones impose no
// constraint.
func buildSearchFilter(f model.SearchFilter) bson.M {
	query := bson.M{}

	if f.Name != nil {
		query["nombre"] = substringMatch(*f.Name)
	}
	if f.Profession != nil {
		query["profesion"] = substringMatch(*f.Profession)
	}
	if f.EducationLevel != nil {
		query["nivelEducativo"] = *f.EducationLevel
	}

	experience := bson.M{}
	if f.MinExperience != nil {
		experience["$gte"] = *f.MinExperience
	}
	if f.MaxExperience != nil {
		experience["$lte"] = *f.MaxExperience
	}
	if len(experience) > 0 {
		query["experienciaLaboral"] = experience
	}

	age := bson.M{}
	if f.MinAge != nil {
		age["$gte"] = *f.MinAge
	}
	if f.MaxAge != nil {
		age["$lte"] = *f.MaxAge
	}
	if len(age) > 0 {
		query["edad"] = age
	}

	if f.Skill != nil {
		query["habilidades"] = substringMatch(*f.Skill)
	}
	if f.Language != nil {
		query["idiomas.idioma"] = substringMatch(*f.Language)
	}

	return query
}

// pageWindow converts 1-indexed pagination parameters into the skip and
// limit the find operation needs. Out-of-range inputs fall back to the
// defaults; page size is not capped.
func pageWindow(pageSize, page int) (skip, limit int64) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = defaultPageNumber
	}
	return int64((page - 1) * pageSize), int64(pageSize)
}
