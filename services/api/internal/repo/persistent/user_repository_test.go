package persistent

import (
	"testing"

	"brand-sell/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_DeleteRemovesOwnedRecords(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	products := NewProductInfoRepository(db)
	posts := NewSocialPostRepository(db)

	user := &entity.User{Name: "Awa", Email: "awa@example.com", Password: "hash"}
	require.NoError(t, users.Create(user))

	product := &entity.ProductInfo{UserID: user.ID, Name: "CRM Pro"}
	require.NoError(t, products.Create(product))
	require.NoError(t, posts.Create(&entity.SocialPost{ProductID: product.ID, UserID: user.ID, Platform: entity.PlatformTwitter, Content: "x"}))

	found, err := users.GetByEmail("awa@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, users.Delete(user.ID))

	_, err = users.GetByID(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := products.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)

	saved, err := posts.ListByUser(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.ErrorIs(t, users.Delete(user.ID), ErrNotFound)
}

func TestUserRepository_EmailIsUnique(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	require.NoError(t, users.Create(&entity.User{Name: "A", Email: "dup@example.com", Password: "h"}))
	assert.Error(t, users.Create(&entity.User{Name: "B", Email: "dup@example.com", Password: "h"}))
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	require.NoError(t, users.Create(&entity.User{Name: "Awa", Email: "awa@example.com", Password: "hash"}))

	err := users.Create(&entity.User{Name: "Other", Email: "awa@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
