package service

import (
	"context"
	"database/sql"
	"io"

	"github.com/google/uuid"

	"github.com/phrazzld/places-api/internal/domain"
	"github.com/phrazzld/places-api/internal/store"
)

// mockPlaceStore is a function-field mock for store.PlaceStore. WithTx
// returns the same mock so tests observe calls made inside transactions.
type mockPlaceStore struct {
	CreateFunc       func(ctx context.Context, place *domain.Place) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	GetByOwnerFunc   func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	GetByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
	UpdateFunc       func(ctx context.Context, place *domain.Place) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	CreateCalls []*domain.Place
	DeleteCalls []uuid.UUID
	UpdateCalls []*domain.Place
}

func (m *mockPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	m.CreateCalls = append(m.CreateCalls, place)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, place)
	}
	return nil
}

func (m *mockPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, store.ErrPlaceNotFound
}

func (m *mockPlaceStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlaceStore) GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if m.GetByCreatorFunc != nil {
		return m.GetByCreatorFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	m.UpdateCalls = append(m.UpdateCalls, place)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, place)
	}
	return nil
}

func (m *mockPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore { return m }

// mockUserStore is a function-field mock for store.UserStore.
type mockUserStore struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	ListFunc        func(ctx context.Context) ([]*domain.User, error)
	AppendPlaceFunc func(ctx context.Context, userID, placeID uuid.UUID) error
	RemovePlaceFunc func(ctx context.Context, userID, placeID uuid.UUID) error

	AppendPlaceCalls [][2]uuid.UUID
	RemovePlaceCalls [][2]uuid.UUID
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) AppendPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.AppendPlaceCalls = append(m.AppendPlaceCalls, [2]uuid.UUID{userID, placeID})
	if m.AppendPlaceFunc != nil {
		return m.AppendPlaceFunc(ctx, userID, placeID)
	}
	return nil
}

func (m *mockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.RemovePlaceCalls = append(m.RemovePlaceCalls, [2]uuid.UUID{userID, placeID})
	if m.RemovePlaceFunc != nil {
		return m.RemovePlaceFunc(ctx, userID, placeID)
	}
	return nil
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// mockGeocoder resolves every address to a fixed location unless overridden.
type mockGeocoder struct {
	ResolveFunc func(ctx context.Context, address string) (domain.Location, error)
}

func (m *mockGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, address)
	}
	return domain.Location{Lat: 40.748, Lng: -73.985}, nil
}

// mockStorage records deletions so tests can check image release behavior.
type mockStorage struct {
	DeleteFunc func(ctx context.Context, key string) error

	DeletedKeys []string
}

func (m *mockStorage) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	return "uploads/" + uuid.New().String(), nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *mockStorage) Exists(ctx context.Context, key string) (bool, error) {
	return true, nil
}
