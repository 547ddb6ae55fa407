package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acamargo/persona-server/internal/enum"
	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/model"
)

// Person implements the person operations behind the GraphQL facade:
// CRUD, search and the embedded skill/language editors.
type Person struct {
	store  model.PersonStore
	logger *logger.Logger
}

func NewPerson(store model.PersonStore, logger *logger.Logger) *Person {
	return &Person{
		store:  store,
		logger: logger,
	}
}

func (s *Person) GetAll(ctx context.Context) ([]model.Person, error) {
	persons, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}
	return persons, nil
}

func (s *Person) GetByID(ctx context.Context, id string) (model.Person, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Person{}, err
	}

	person, err := s.store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, fmt.Errorf("person %s: %w", id, model.ErrNotFound)
		}
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// GetByEmail looks a person up by the lower-cased email key. Absence is
// reported as model.ErrNotFound; the facade maps it to a null result
// rather than a failure.
func (s *Person) GetByEmail(ctx context.Context, email string) (model.Person, error) {
	person, err := s.store.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person by email: %w", err)
	}
	return person, nil
}

// Create validates and normalizes the input, pre-checks email
// uniqueness and persists the record. The pre-check can race; the
// store's unique index is the authoritative guard and its violation
// surfaces as the same conflict.
func (s *Person) Create(ctx context.Context, params model.CreatePersonParams) (model.Person, error) {
	if err := validateCreateParams(params); err != nil {
		return model.Person{}, err
	}

	email := strings.ToLower(strings.TrimSpace(params.Email))

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Person{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if err == nil && !existing.ID.IsZero() {
		s.logger.Info("Person service: email already registered", "email", email)
		return model.Person{}, &model.ConflictError{Field: "email", Value: params.Email}
	}

	person := model.Person{
		FullName:   strings.TrimSpace(params.FullName),
		Age:        params.Age,
		Phone:      strings.TrimSpace(params.Phone),
		Email:      email,
		Education:  enum.EducationToStorage(params.EducationLevel),
		Profession: strings.TrimSpace(params.Profession),
		Experience: params.Experience,
		Skills:     params.Skills,
		Languages:  languagesToStorage(params.Languages),
	}

	created, err := s.store.Create(ctx, person)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			return model.Person{}, err
		}
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	s.logger.Info("Person service: person created", "id", created.ID.Hex(), "email", created.Email)

	return created, nil
}

// Update applies a partial update. Absent fields are left untouched; a
// changing email re-runs the uniqueness check excluding the record
// itself.
func (s *Person) Update(ctx context.Context, id string, params model.UpdatePersonParams) (model.Person, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Person{}, err
	}

	if err := validateUpdateParams(params); err != nil {
		return model.Person{}, err
	}

	current, err := s.store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, fmt.Errorf("person %s: %w", id, model.ErrNotFound)
		}
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	update := model.PersonUpdate{}

	if params.FullName != nil {
		name := strings.TrimSpace(*params.FullName)
		update.FullName = &name
	}
	update.Age = params.Age
	if params.Phone != nil {
		phone := strings.TrimSpace(*params.Phone)
		update.Phone = &phone
	}
	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		if email != current.Email {
			other, err := s.store.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return model.Person{}, fmt.Errorf("failed to check existing email: %w", err)
			}
			if err == nil && other.ID != oid {
				s.logger.Info("Person service: email already registered", "email", email)
				return model.Person{}, &model.ConflictError{Field: "email", Value: *params.Email}
			}
		}
		update.Email = &email
	}
	if params.EducationLevel != nil {
		level := enum.EducationToStorage(*params.EducationLevel)
		update.Education = &level
	}
	if params.Profession != nil {
		profession := strings.TrimSpace(*params.Profession)
		update.Profession = &profession
	}
	update.Experience = params.Experience
	update.Skills = params.Skills
	if params.Languages != nil {
		update.Languages = languagesToStorage(params.Languages)
	}

	updated, err := s.store.Update(ctx, oid, update)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			return model.Person{}, err
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, fmt.Errorf("person %s: %w", id, model.ErrNotFound)
		}
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}

	return updated, nil
}

// Delete removes the person permanently. It reports false without
// error when nothing matched the id.
func (s *Person) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	deleted, err := s.store.Delete(ctx, oid)
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	if deleted {
		s.logger.Info("Person service: person deleted", "id", id)
	}
	return deleted, nil
}

func (s *Person) Count(ctx context.Context) (int64, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return count, nil
}

// Search normalizes the education criterion to storage form and
// delegates to the repository's filtered find.
func (s *Person) Search(ctx context.Context, filter model.SearchFilter, pageSize, page int) ([]model.Person, error) {
	if filter.EducationLevel != nil {
		level := enum.EducationToStorage(*filter.EducationLevel)
		filter.EducationLevel = &level
	}

	persons, err := s.store.Search(ctx, filter, pageSize, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search persons: %w", err)
	}
	return persons, nil
}

func (s *Person) GetByProfession(ctx context.Context, profession string) ([]model.Person, error) {
	persons, err := s.store.GetByProfession(ctx, profession)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons by profession: %w", err)
	}
	return persons, nil
}

func (s *Person) GetByEducationLevel(ctx context.Context, wireLevel string) ([]model.Person, error) {
	persons, err := s.store.GetByEducationLevel(ctx, enum.EducationToStorage(wireLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to get persons by education level: %w", err)
	}
	return persons, nil
}

func (s *Person) GetByMinExperience(ctx context.Context, minExperience int) ([]model.Person, error) {
	persons, err := s.store.GetByMinExperience(ctx, minExperience)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons by experience: %w", err)
	}
	return persons, nil
}

func (s *Person) GetByLanguage(ctx context.Context, language string) ([]model.Person, error) {
	persons, err := s.store.GetByLanguage(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons by language: %w", err)
	}
	return persons, nil
}

// AddSkill appends a skill, rejecting exact duplicates.
func (s *Person) AddSkill(ctx context.Context, id, skill string) (model.Person, error) {
	skill = strings.TrimSpace(skill)
	if err := validateSkill(skill); err != nil {
		return model.Person{}, err
	}

	person, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	for _, existing := range person.Skills {
		if existing == skill {
			return model.Person{}, &model.ConflictError{Field: "habilidad", Value: skill}
		}
	}

	skills := append(append([]string{}, person.Skills...), skill)
	return s.persistSkills(ctx, person.ID, skills)
}

// RemoveSkill drops all exact matches. Removing an absent skill is not
// an error; the collection is simply persisted unchanged.
func (s *Person) RemoveSkill(ctx context.Context, id, skill string) (model.Person, error) {
	person, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	skills := []string{}
	for _, existing := range person.Skills {
		if existing != skill {
			skills = append(skills, existing)
		}
	}
	return s.persistSkills(ctx, person.ID, skills)
}

// AddLanguage appends a language, rejecting case-insensitive duplicate
// names.
func (s *Person) AddLanguage(ctx context.Context, id string, lang model.LanguageParams) (model.Person, error) {
	if err := validateLanguage(lang); err != nil {
		return model.Person{}, err
	}

	person, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	name := strings.TrimSpace(lang.Name)
	for _, existing := range person.Languages {
		if strings.EqualFold(existing.Name, name) {
			return model.Person{}, &model.ConflictError{Field: "idioma", Value: name}
		}
	}

	languages := append(append([]model.Language{}, person.Languages...), model.Language{
		Name:  name,
		Level: enum.ProficiencyToStorage(lang.Level),
	})
	return s.persistLanguages(ctx, person.ID, languages)
}

// RemoveLanguage drops the case-insensitive name match if present;
// removing an absent language is not an error.
func (s *Person) RemoveLanguage(ctx context.Context, id, name string) (model.Person, error) {
	person, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	languages := []model.Language{}
	for _, existing := range person.Languages {
		if !strings.EqualFold(existing.Name, name) {
			languages = append(languages, existing)
		}
	}
	return s.persistLanguages(ctx, person.ID, languages)
}

// UpdateLanguageLevel replaces the proficiency of an existing language;
// the language must already be present.
func (s *Person) UpdateLanguageLevel(ctx context.Context, id, name, wireLevel string) (model.Person, error) {
	if !enum.IsProficiencyToken(wireLevel) {
		return model.Person{}, &model.ValidationError{Field: "nivel", Reason: fmt.Sprintf("unknown proficiency level %q", wireLevel)}
	}

	person, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	found := false
	languages := make([]model.Language, len(person.Languages))
	for i, existing := range person.Languages {
		if strings.EqualFold(existing.Name, name) {
			existing.Level = enum.ProficiencyToStorage(wireLevel)
			found = true
		}
		languages[i] = existing
	}
	if !found {
		return model.Person{}, fmt.Errorf("language %q: %w", name, model.ErrNotFound)
	}

	return s.persistLanguages(ctx, person.ID, languages)
}

func (s *Person) persistSkills(ctx context.Context, id primitive.ObjectID, skills []string) (model.Person, error) {
	updated, err := s.store.Update(ctx, id, model.PersonUpdate{Skills: skills})
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to update skills: %w", err)
	}
	return updated, nil
}

func (s *Person) persistLanguages(ctx context.Context, id primitive.ObjectID, languages []model.Language) (model.Person, error) {
	updated, err := s.store.Update(ctx, id, model.PersonUpdate{Languages: languages})
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to update languages: %w", err)
	}
	return updated, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &model.ValidationError{Field: "id", Reason: fmt.Sprintf("malformed identifier %q", id)}
	}
	return oid, nil
}

func languagesToStorage(params []model.LanguageParams) []model.Language {
	languages := make([]model.Language, 0, len(params))
	for _, p := range params {
		languages = append(languages, model.Language{
			Name:  strings.TrimSpace(p.Name),
			Level: enum.ProficiencyToStorage(p.Level),
		})
	}
	return languages
}
