package repository

import (
	"context"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_GetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	created := createTestGroup(t, db, "travel")

	group, err := repo.GetBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, created.ID, group.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestGroupRepository_List_OrderedByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, db.Create(&models.Group{Title: "Zebra", Slug: "zebra"}).Error)
	require.NoError(t, db.Create(&models.Group{Title: "Alpha", Slug: "alpha"}).Error)

	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Alpha", groups[0].Title)
}
