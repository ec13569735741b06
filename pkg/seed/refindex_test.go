package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masternet-io/masternet-engine/pkg/models"
)

func TestBuildIndex(t *testing.T) {
	a := &models.Instructor{ID: uuid.New(), Nombre: "A"}
	b := &models.Instructor{ID: uuid.New(), Nombre: "B"}

	ix := BuildIndex([]*models.Instructor{a, b}, func(i *models.Instructor) uuid.UUID { return i.ID })

	assert.Equal(t, 2, ix.Len())

	got, ok := ix.Resolve(a.ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Nombre)

	_, ok = ix.Resolve(uuid.New())
	assert.False(t, ok)
}

func TestBuildIndex_Empty(t *testing.T) {
	ix := BuildIndex(nil, func(i *models.Instructor) uuid.UUID { return i.ID })
	assert.Equal(t, 0, ix.Len())

	_, ok := ix.Resolve(uuid.Nil)
	assert.False(t, ok)
}

func TestBuildIndex_LastDuplicateWins(t *testing.T) {
	id := uuid.New()
	first := &models.Instructor{ID: id, Nombre: "first"}
	second := &models.Instructor{ID: id, Nombre: "second"}

	ix := BuildIndex([]*models.Instructor{first, second}, func(i *models.Instructor) uuid.UUID { return i.ID })

	assert.Equal(t, 1, ix.Len())
	got, ok := ix.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, "second", got.Nombre)
}
