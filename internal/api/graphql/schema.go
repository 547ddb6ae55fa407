package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/acamargo/persona-server/internal/enum"
)

// NewSchema builds the executable schema wired to the given resolver.
// Type and operation names match the original deployment's contract so
// existing clients keep working.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	nivelEducativo := newTokenEnum("NivelEducativo", enum.EducationTokens)
	nivelIdioma := newTokenEnum("NivelIdioma", enum.ProficiencyTokens)

	idiomaType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Idioma",
		Fields: graphql.Fields{
			"idioma": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"nivel":  &graphql.Field{Type: graphql.NewNonNull(nivelIdioma)},
		},
	})

	idiomaInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "IdiomaInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"idioma": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"nivel":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(nivelIdioma)},
		},
	})

	personaType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Persona",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"nombre":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"edad":               &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"telefono":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":              &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"nivelEducativo":     &graphql.Field{Type: graphql.NewNonNull(nivelEducativo)},
			"profesion":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"experienciaLaboral": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"habilidades":        &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"idiomas":            &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(idiomaType)))},
			"createdAt":          &graphql.Field{Type: graphql.String},
			"updatedAt":          &graphql.Field{Type: graphql.String},
		},
	})

	personaInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PersonaInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"edad":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"telefono":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":              &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"nivelEducativo":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(nivelEducativo)},
			"profesion":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"experienciaLaboral": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"habilidades":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"idiomas":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(idiomaInput))},
		},
	})

	personaUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PersonaUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":             &graphql.InputObjectFieldConfig{Type: graphql.String},
			"edad":               &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"telefono":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":              &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nivelEducativo":     &graphql.InputObjectFieldConfig{Type: nivelEducativo},
			"profesion":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"experienciaLaboral": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"habilidades":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"idiomas":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(idiomaInput))},
		},
	})

	personaFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PersonaFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"profesion":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nivelEducativo":    &graphql.InputObjectFieldConfig{Type: nivelEducativo},
			"experienciaMinima": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"experienciaMaxima": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"edadMinima":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"edadMaxima":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"habilidad":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"idioma":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	estadisticasType := graphql.NewObject(graphql.ObjectConfig{
		Name: "EstadisticasPersonas",
		Fields: graphql.Fields{
			"total":                  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"promedioEdad":           &graphql.Field{Type: graphql.Float},
			"promedioExperiencia":    &graphql.Field{Type: graphql.Float},
			"profesionMasComun":      &graphql.Field{Type: graphql.String},
			"nivelEducativoMasComun": &graphql.Field{Type: graphql.String},
			"idiomaMasComun":         &graphql.Field{Type: graphql.String},
		},
	})

	personaList := graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personaType)))

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getPersonas": &graphql.Field{
				Type:    personaList,
				Resolve: r.getPersonas,
			},
			"getPersonaById": &graphql.Field{
				Type: personaType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getPersonaByID,
			},
			"getPersonaByEmail": &graphql.Field{
				Type: personaType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getPersonaByEmail,
			},
			"searchPersonas": &graphql.Field{
				Type: personaList,
				Args: graphql.FieldConfigArgument{
					"filtros": &graphql.ArgumentConfig{Type: personaFilterInput},
					"limite":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"pagina":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: r.searchPersonas,
			},
			"countPersonas": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: r.countPersonas,
			},
			"getPersonasByProfesion": &graphql.Field{
				Type: personaList,
				Args: graphql.FieldConfigArgument{
					"profesion": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getPersonasByProfesion,
			},
			"getPersonasByNivelEducativo": &graphql.Field{
				Type: personaList,
				Args: graphql.FieldConfigArgument{
					"nivel": &graphql.ArgumentConfig{Type: graphql.NewNonNull(nivelEducativo)},
				},
				Resolve: r.getPersonasByNivelEducativo,
			},
			"getEstadisticasPersonas": &graphql.Field{
				Type:    graphql.NewNonNull(estadisticasType),
				Resolve: r.getEstadisticasPersonas,
			},
			"getPersonasConExperiencia": &graphql.Field{
				Type: personaList,
				Args: graphql.FieldConfigArgument{
					"experienciaMinima": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.getPersonasConExperiencia,
			},
			"getPersonasPorIdioma": &graphql.Field{
				Type: personaList,
				Args: graphql.FieldConfigArgument{
					"idioma": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getPersonasPorIdioma,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPersona": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(personaInput)},
				},
				Resolve: r.createPersona,
			},
			"updatePersona": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(personaUpdateInput)},
				},
				Resolve: r.updatePersona,
			},
			"deletePersona": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deletePersona,
			},
			"addHabilidad": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"habilidad": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.addHabilidad,
			},
			"removeHabilidad": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"habilidad": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.removeHabilidad,
			},
			"addIdioma": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"idioma": &graphql.ArgumentConfig{Type: graphql.NewNonNull(idiomaInput)},
				},
				Resolve: r.addIdioma,
			},
			"removeIdioma": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"idioma": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.removeIdioma,
			},
			"updateNivelIdioma": &graphql.Field{
				Type: graphql.NewNonNull(personaType),
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"idioma":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"nuevoNivel": &graphql.ArgumentConfig{Type: graphql.NewNonNull(nivelIdioma)},
				},
				Resolve: r.updateNivelIdioma,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build schema: %w", err)
	}

	return schema, nil
}

// newTokenEnum builds an enum whose internal values are the wire tokens
// themselves; the enum codec handles the storage form elsewhere.
func newTokenEnum(name string, tokens []string) *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, token := range tokens {
		values[token] = &graphql.EnumValueConfig{Value: token}
	}
	return graphql.NewEnum(graphql.EnumConfig{
		Name:   name,
		Values: values,
	})
}
