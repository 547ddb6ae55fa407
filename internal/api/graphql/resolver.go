package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/model"
	"github.com/acamargo/persona-server/internal/service"
)

// Resolver is the root resolver for the GraphQL API. It converts
// wire-shaped arguments into service calls and internal records back
// into wire-shaped results.
type Resolver struct {
	persons *service.Person
	stats   *service.Stats
	logger  *logger.Logger
}

func NewResolver(persons *service.Person, stats *service.Stats, logger *logger.Logger) *Resolver {
	return &Resolver{
		persons: persons,
		stats:   stats,
		logger:  logger,
	}
}

func (r *Resolver) getPersonas(p graphql.ResolveParams) (interface{}, error) {
	persons, err := r.persons.GetAll(p.Context)
	if err != nil {
		return nil, r.fail("getPersonas", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) getPersonaByID(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	person, err := r.persons.GetByID(p.Context, id)
	if err != nil {
		return nil, r.fail("getPersonaById", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) getPersonaByEmail(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	person, err := r.persons.GetByEmail(p.Context, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("getPersonaByEmail", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) searchPersonas(p graphql.ResolveParams) (interface{}, error) {
	filter := model.SearchFilter{}
	if input, ok := p.Args["filtros"].(map[string]interface{}); ok {
		filter = parseFilterInput(input)
	}
	pageSize, _ := p.Args["limite"].(int)
	page, _ := p.Args["pagina"].(int)

	persons, err := r.persons.Search(p.Context, filter, pageSize, page)
	if err != nil {
		return nil, r.fail("searchPersonas", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) countPersonas(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.persons.Count(p.Context)
	if err != nil {
		return nil, r.fail("countPersonas", err)
	}
	return int(count), nil
}

func (r *Resolver) getPersonasByProfesion(p graphql.ResolveParams) (interface{}, error) {
	profession, _ := p.Args["profesion"].(string)
	persons, err := r.persons.GetByProfession(p.Context, profession)
	if err != nil {
		return nil, r.fail("getPersonasByProfesion", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) getPersonasByNivelEducativo(p graphql.ResolveParams) (interface{}, error) {
	level, _ := p.Args["nivel"].(string)
	persons, err := r.persons.GetByEducationLevel(p.Context, level)
	if err != nil {
		return nil, r.fail("getPersonasByNivelEducativo", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) getEstadisticasPersonas(p graphql.ResolveParams) (interface{}, error) {
	stats, err := r.stats.Compute(p.Context)
	if err != nil {
		return nil, r.fail("getEstadisticasPersonas", err)
	}
	return statsToWire(stats), nil
}

func (r *Resolver) getPersonasConExperiencia(p graphql.ResolveParams) (interface{}, error) {
	minExperience, _ := p.Args["experienciaMinima"].(int)
	persons, err := r.persons.GetByMinExperience(p.Context, minExperience)
	if err != nil {
		return nil, r.fail("getPersonasConExperiencia", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) getPersonasPorIdioma(p graphql.ResolveParams) (interface{}, error) {
	language, _ := p.Args["idioma"].(string)
	persons, err := r.persons.GetByLanguage(p.Context, language)
	if err != nil {
		return nil, r.fail("getPersonasPorIdioma", err)
	}
	return personsToWire(persons), nil
}

func (r *Resolver) createPersona(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	person, err := r.persons.Create(p.Context, parseCreateInput(input))
	if err != nil {
		return nil, r.fail("createPersona", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) updatePersona(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	person, err := r.persons.Update(p.Context, id, parseUpdateInput(input))
	if err != nil {
		return nil, r.fail("updatePersona", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) deletePersona(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	deleted, err := r.persons.Delete(p.Context, id)
	if err != nil {
		return nil, r.fail("deletePersona", err)
	}
	return deleted, nil
}

func (r *Resolver) addHabilidad(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	skill, _ := p.Args["habilidad"].(string)
	person, err := r.persons.AddSkill(p.Context, id, skill)
	if err != nil {
		return nil, r.fail("addHabilidad", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) removeHabilidad(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	skill, _ := p.Args["habilidad"].(string)
	person, err := r.persons.RemoveSkill(p.Context, id, skill)
	if err != nil {
		return nil, r.fail("removeHabilidad", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) addIdioma(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["idioma"].(map[string]interface{})
	person, err := r.persons.AddLanguage(p.Context, id, model.LanguageParams{
		Name:  stringArg(input, "idioma"),
		Level: stringArg(input, "nivel"),
	})
	if err != nil {
		return nil, r.fail("addIdioma", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) removeIdioma(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	name, _ := p.Args["idioma"].(string)
	person, err := r.persons.RemoveLanguage(p.Context, id, name)
	if err != nil {
		return nil, r.fail("removeIdioma", err)
	}
	return personToWire(person), nil
}

func (r *Resolver) updateNivelIdioma(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	name, _ := p.Args["idioma"].(string)
	level, _ := p.Args["nuevoNivel"].(string)
	person, err := r.persons.UpdateLanguageLevel(p.Context, id, name, level)
	if err != nil {
		return nil, r.fail("updateNivelIdioma", err)
	}
	return personToWire(person), nil
}

// fail logs the underlying failure and returns its wire translation.
func (r *Resolver) fail(operation string, err error) error {
	r.logger.Error("GraphQL resolver: operation failed",
		"operation", operation,
		"error", err.Error())
	return translateError(err)
}
