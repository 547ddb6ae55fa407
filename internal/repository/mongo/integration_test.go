//go:build integration

package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/acamargo/persona-server/internal/model"
	repo "github.com/acamargo/persona-server/internal/repository/mongo"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newRepository(t *testing.T) *repo.PersonRepository {
	t.Helper()
	ctx := context.Background()

	conn, err := repo.NewConnection(ctx, uri, fmt.Sprintf("personas_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	r := repo.NewPersonRepository(conn)
	require.NoError(t, r.EnsureIndexes(ctx))
	return r
}

func testPerson(email string) model.Person {
	return model.Person{
		FullName:   "Ana Gómez",
		Age:        30,
		Phone:      "+57-300-111-2222",
		Email:      email,
		Education:  "Universitario",
		Profession: "Engineer",
		Experience: 5,
		Skills:     []string{"Go"},
		Languages:  []model.Language{{Name: "Español", Level: "Nativo"}},
	}
}

func TestPersonRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)

	created, err := r.Create(ctx, testPerson("ana@x.com"))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", got.Email)

	byEmail, err := r.GetByEmail(ctx, "ANA@X.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	newAge := 31
	updated, err := r.Update(ctx, created.ID, model.PersonUpdate{Age: &newAge})
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "Ana Gómez", updated.FullName)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	deleted, err := r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPersonRepository_DuplicateEmailConflict(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)

	_, err := r.Create(ctx, testPerson("dup@x.com"))
	require.NoError(t, err)

	_, err = r.Create(ctx, testPerson("dup@x.com"))
	var conflict *model.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
}

func TestPersonRepository_SearchPagination(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)

	for i := 0; i < 12; i++ {
		p := testPerson(fmt.Sprintf("p%d@x.com", i))
		p.Experience = 15
		_, err := r.Create(ctx, p)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct createdAt for a stable sort
	}

	min := 10
	level := "Universitario"
	filter := model.SearchFilter{EducationLevel: &level, MinExperience: &min}

	page2, err := r.Search(ctx, filter, 5, 2)
	require.NoError(t, err)
	require.Len(t, page2, 5)

	page3, err := r.Search(ctx, filter, 5, 3)
	require.NoError(t, err)
	assert.Len(t, page3, 2)

	// createdAt descending: page 2 holds records ranked 6-10.
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all[5].ID, page2[0].ID)
	assert.Equal(t, all[9].ID, page2[4].ID)
}

func TestPersonRepository_FindByLanguage(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)

	p := testPerson("lang@x.com")
	p.Languages = []model.Language{{Name: "Inglés", Level: "Avanzado"}}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	found, err := r.GetByLanguage(ctx, "ingl")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "lang@x.com", found[0].Email)
}
