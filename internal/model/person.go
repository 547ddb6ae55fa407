package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonStore defines persistence operations for persons.
//
// Enum-valued fields cross this interface in storage form (display
// strings such as "Universitario"); the service layer converts wire
// tokens before calling in.
type PersonStore interface {
	GetAll(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Person, error)
	GetByEmail(ctx context.Context, email string) (Person, error)
	Create(ctx context.Context, person Person) (Person, error)
	Update(ctx context.Context, id primitive.ObjectID, update PersonUpdate) (Person, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, filter SearchFilter, pageSize, page int) ([]Person, error)
	GetByProfession(ctx context.Context, profession string) ([]Person, error)
	GetByEducationLevel(ctx context.Context, level string) ([]Person, error)
	GetByMinExperience(ctx context.Context, minExperience int) ([]Person, error)
	GetByLanguage(ctx context.Context, language string) ([]Person, error)
}

// Person represents a stored person record. The bson field names match
// the documents written by the original deployment, so existing data
// stays readable.
type Person struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FullName   string             `bson:"nombre"`
	Age        int                `bson:"edad"`
	Phone      string             `bson:"telefono"`
	Email      string             `bson:"email"`
	Education  string             `bson:"nivelEducativo"`
	Profession string             `bson:"profesion"`
	Experience int                `bson:"experienciaLaboral"`
	Skills     []string           `bson:"habilidades"`
	Languages  []Language         `bson:"idiomas"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// Language is one spoken-language entry. Name is unique per person,
// compared case-insensitively.
type Language struct {
	Name  string `bson:"idioma"`
	Level string `bson:"nivel"`
}

// PersonUpdate describes a partial update. Nil fields are left
// untouched; Skills and Languages replace the whole collection when
// non-nil.
type PersonUpdate struct {
	FullName   *string
	Age        *int
	Phone      *string
	Email      *string
	Education  *string
	Profession *string
	Experience *int
	Skills     []string
	Languages  []Language
}

// SearchFilter is a sparse set of search criteria. Every field is
// optional; present fields combine with logical AND.
type SearchFilter struct {
	Name           *string
	Profession     *string
	EducationLevel *string
	MinExperience  *int
	MaxExperience  *int
	MinAge         *int
	MaxAge         *int
	Skill          *string
	Language       *string
}

// CreatePersonParams contains wire-shaped parameters to create a person.
type CreatePersonParams struct {
	FullName       string
	Age            int
	Phone          string
	Email          string
	EducationLevel string
	Profession     string
	Experience     int
	Skills         []string
	Languages      []LanguageParams
}

// UpdatePersonParams contains wire-shaped parameters for a partial
// update. Nil means "not provided".
type UpdatePersonParams struct {
	FullName       *string
	Age            *int
	Phone          *string
	Email          *string
	EducationLevel *string
	Profession     *string
	Experience     *int
	Skills         []string
	Languages      []LanguageParams
}

// LanguageParams is a wire-shaped language entry; Level is a wire token.
type LanguageParams struct {
	Name  string
	Level string
}

// Statistics aggregates the full record set. The most-common fields are
// nil when no records exist.
type Statistics struct {
	Total             int
	AverageAge        float64
	AverageExperience float64
	TopProfession     *string
	TopEducationLevel *string
	TopLanguage       *string
}
