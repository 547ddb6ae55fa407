package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acamargo/persona-server/internal/model"
)

const personCollection = "personas"

var _ model.PersonStore = (*PersonRepository)(nil)

// PersonRepository owns all document-store access for persons.
type PersonRepository struct {
	collection *mongo.Collection
}

func NewPersonRepository(conn *Connection) *PersonRepository {
	return &PersonRepository{
		collection: conn.Collection(personCollection),
	}
}

// EnsureIndexes declares the indexes the repository relies on. The
// unique email index is the authoritative uniqueness guarantee; the
// service-level pre-check can race.
func (r *PersonRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "nombre", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create person indexes: %w", err)
	}
	return nil
}

func (r *PersonRepository) GetAll(ctx context.Context) ([]model.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func (r *PersonRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Person, error) {
	var person model.Person
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person by id: %w", err)
	}
	return person, nil
}

func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (model.Person, error) {
	var person model.Person
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person by email: %w", err)
	}
	return person, nil
}

// Create inserts the person and stamps both timestamps. A duplicate-key
// error from the unique email index is reported as a conflict, not a
// raw store error.
func (r *PersonRepository) Create(ctx context.Context, person model.Person) (model.Person, error) {
	now := time.Now().UTC()
	person.ID = primitive.NewObjectID()
	person.CreatedAt = now
	person.UpdatedAt = now
	if person.Skills == nil {
		person.Skills = []string{}
	}
	if person.Languages == nil {
		person.Languages = []model.Language{}
	}

	_, err := r.collection.InsertOne(ctx, person)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.Person{}, &model.ConflictError{Field: "email", Value: person.Email}
		}
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// Update applies only the fields present in the partial update and
// re-stamps updatedAt, returning the updated document.
func (r *PersonRepository) Update(ctx context.Context, id primitive.ObjectID, update model.PersonUpdate) (model.Person, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.FullName != nil {
		set["nombre"] = *update.FullName
	}
	if update.Age != nil {
		set["edad"] = *update.Age
	}
	if update.Phone != nil {
		set["telefono"] = *update.Phone
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Education != nil {
		set["nivelEducativo"] = *update.Education
	}
	if update.Profession != nil {
		set["profesion"] = *update.Profession
	}
	if update.Experience != nil {
		set["experienciaLaboral"] = *update.Experience
	}
	if update.Skills != nil {
		set["habilidades"] = update.Skills
	}
	if update.Languages != nil {
		set["idiomas"] = update.Languages
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var person model.Person
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Person{}, model.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			email := ""
			if update.Email != nil {
				email = *update.Email
			}
			return model.Person{}, &model.ConflictError{Field: "email", Value: email}
		}
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}

// Delete removes the person document. It reports whether a document was
// actually deleted.
func (r *PersonRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return count, nil
}

// Search runs the dynamic filter with pagination, newest first.
func (r *PersonRepository) Search(ctx context.Context, filter model.SearchFilter, pageSize, page int) ([]model.Person, error) {
	skip, limit := pageWindow(pageSize, page)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, buildSearchFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search persons: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func (r *PersonRepository) GetByProfession(ctx context.Context, profession string) ([]model.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"profesion": substringMatch(profession)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons by profession: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func (r *PersonRepository) GetByEducationLevel(ctx context.Context, level string) ([]model.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"nivelEducativo": level}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons by education level: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func (r *PersonRepository) GetByMinExperience(ctx context.Context, minExperience int) ([]model.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "experienciaLaboral", Value: -1}})
	filter := bson.M{"experienciaLaboral": bson.M{"$gte": minExperience}}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons by experience: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func (r *PersonRepository) GetByLanguage(ctx context.Context, language string) ([]model.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"idiomas.idioma": substringMatch(language)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons by language: %w", err)
	}
	return decodeAll(ctx, cursor)
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]model.Person, error) {
	defer cursor.Close(ctx)

	persons := []model.Person{}
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, fmt.Errorf("failed to decode persons: %w", err)
	}
	return persons, nil
}
