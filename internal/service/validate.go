package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/acamargo/persona-server/internal/enum"
	"github.com/acamargo/persona-server/internal/model"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	minNameLength  = 2
	maxNameLength  = 100
	maxAge         = 120
	maxExperience  = 70
	maxSkillLength = 50
)

func validateFullName(name string) error {
	// Length limits count characters, not bytes; accented names must
	// not hit the ceiling early.
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < minNameLength || length > maxNameLength {
		return &model.ValidationError{Field: "nombre", Reason: fmt.Sprintf("must be %d-%d characters", minNameLength, maxNameLength)}
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 || age > maxAge {
		return &model.ValidationError{Field: "edad", Reason: fmt.Sprintf("must be between 0 and %d", maxAge)}
	}
	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return &model.ValidationError{Field: "telefono", Reason: "must be a valid phone number"}
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return &model.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

func validateEducationLevel(token string) error {
	if !enum.IsEducationToken(token) {
		return &model.ValidationError{Field: "nivelEducativo", Reason: fmt.Sprintf("unknown education level %q", token)}
	}
	return nil
}

func validateProfession(profession string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(profession))
	if length < minNameLength || length > maxNameLength {
		return &model.ValidationError{Field: "profesion", Reason: fmt.Sprintf("must be %d-%d characters", minNameLength, maxNameLength)}
	}
	return nil
}

func validateExperience(years int) error {
	if years < 0 || years > maxExperience {
		return &model.ValidationError{Field: "experienciaLaboral", Reason: fmt.Sprintf("must be between 0 and %d", maxExperience)}
	}
	return nil
}

func validateSkill(skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return &model.ValidationError{Field: "habilidad", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(skill) > maxSkillLength {
		return &model.ValidationError{Field: "habilidad", Reason: fmt.Sprintf("must not exceed %d characters", maxSkillLength)}
	}
	return nil
}

func validateLanguage(lang model.LanguageParams) error {
	if strings.TrimSpace(lang.Name) == "" {
		return &model.ValidationError{Field: "idioma", Reason: "must not be empty"}
	}
	if !enum.IsProficiencyToken(lang.Level) {
		return &model.ValidationError{Field: "nivel", Reason: fmt.Sprintf("unknown proficiency level %q", lang.Level)}
	}
	return nil
}

func validateSkills(skills []string) error {
	for _, skill := range skills {
		if err := validateSkill(skill); err != nil {
			return err
		}
	}
	return nil
}

func validateLanguages(languages []model.LanguageParams) error {
	for _, lang := range languages {
		if err := validateLanguage(lang); err != nil {
			return err
		}
	}
	return nil
}

func validateCreateParams(params model.CreatePersonParams) error {
	if err := validateFullName(params.FullName); err != nil {
		return err
	}
	if err := validateAge(params.Age); err != nil {
		return err
	}
	if err := validatePhone(params.Phone); err != nil {
		return err
	}
	if err := validateEmail(params.Email); err != nil {
		return err
	}
	if err := validateEducationLevel(params.EducationLevel); err != nil {
		return err
	}
	if err := validateProfession(params.Profession); err != nil {
		return err
	}
	if err := validateExperience(params.Experience); err != nil {
		return err
	}
	if err := validateSkills(params.Skills); err != nil {
		return err
	}
	return validateLanguages(params.Languages)
}

func validateUpdateParams(params model.UpdatePersonParams) error {
	if params.FullName != nil {
		if err := validateFullName(*params.FullName); err != nil {
			return err
		}
	}
	if params.Age != nil {
		if err := validateAge(*params.Age); err != nil {
			return err
		}
	}
	if params.Phone != nil {
		if err := validatePhone(*params.Phone); err != nil {
			return err
		}
	}
	if params.Email != nil {
		if err := validateEmail(*params.Email); err != nil {
			return err
		}
	}
	if params.EducationLevel != nil {
		if err := validateEducationLevel(*params.EducationLevel); err != nil {
			return err
		}
	}
	if params.Profession != nil {
		if err := validateProfession(*params.Profession); err != nil {
			return err
		}
	}
	if params.Experience != nil {
		if err := validateExperience(*params.Experience); err != nil {
			return err
		}
	}
	if err := validateSkills(params.Skills); err != nil {
		return err
	}
	return validateLanguages(params.Languages)
}
