package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func TestAddFavorite(t *testing.T) {
	storage := newFakePropertyStorage()
	favorites := newFakeFavoriteRepo()
	uc := NewAddFavoriteUseCase(favorites, storage)

	propertyID := uuid.New()
	storage.properties[propertyID] = &domain.Property{ID: propertyID, UserID: uuid.New()}

	userID := uuid.New()
	require.NoError(t, uc.Execute(context.Background(), userID, propertyID))
	assert.True(t, favorites.favorites[userID][propertyID])

	// Saving twice stays a single favorite.
	require.NoError(t, uc.Execute(context.Background(), userID, propertyID))
	assert.Len(t, favorites.favorites[userID], 1)
}

func TestAddFavoriteUnknownProperty(t *testing.T) {
	storage := newFakePropertyStorage()
	favorites := newFakeFavoriteRepo()
	uc := NewAddFavoriteUseCase(favorites, storage)

	err := uc.Execute(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, favorites.favorites)
}

func TestRemoveFavorite(t *testing.T) {
	favorites := newFakeFavoriteRepo()
	uc := NewRemoveFavoriteUseCase(favorites)

	userID := uuid.New()
	propertyID := uuid.New()
	require.NoError(t, favorites.Add(context.Background(), userID, propertyID))

	require.NoError(t, uc.Execute(context.Background(), userID, propertyID))
	assert.Empty(t, favorites.favorites[userID])

	// Removing an absent favorite is a no-op, not an error.
	assert.NoError(t, uc.Execute(context.Background(), userID, propertyID))
}

func TestGetFavoriteIDs(t *testing.T) {
	favorites := newFakeFavoriteRepo()
	uc := NewGetFavoriteIDsUseCase(favorites)

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	require.NoError(t, favorites.Add(context.Background(), userID, first))
	require.NoError(t, favorites.Add(context.Background(), userID, second))

	ids, err := uc.Execute(context.Background(), userID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, ids)
}
