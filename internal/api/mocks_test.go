package api

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/phrazzld/places-api/internal/domain"
	"github.com/phrazzld/places-api/internal/service"
	"github.com/phrazzld/places-api/internal/store"
)

// mockUserStore implements store.UserStore with function fields.
type mockUserStore struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListFunc       func(ctx context.Context) ([]*domain.User, error)

	CreatedUsers []*domain.User
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.CreatedUsers = append(m.CreatedUsers, user)
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
	return []*domain.User{}, nil
}

func (m *mockUserStore) AppendPlace(_ context.Context, _, _ uuid.UUID) error { return nil }

func (m *mockUserStore) RemovePlace(_ context.Context, _, _ uuid.UUID) error { return nil }

func (m *mockUserStore) WithTx(_ *sql.Tx) store.UserStore { return m }

// mockPlaceService implements service.PlaceService with function fields.
type mockPlaceService struct {
	CreatePlaceFunc        func(ctx context.Context, ownerID uuid.UUID, in service.CreatePlaceInput) (*domain.Place, error)
	UpdatePlaceFunc        func(ctx context.Context, placeID, callerID uuid.UUID, title, description string) (*domain.Place, error)
	DeletePlaceFunc        func(ctx context.Context, placeID, callerID uuid.UUID) error
	GetPlaceFunc           func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	GetPlacesByOwnerFunc   func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	GetPlacesByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
}

func (m *mockPlaceService) CreatePlace(
	ctx context.Context,
	ownerID uuid.UUID,
	in service.CreatePlaceInput,
) (*domain.Place, error) {
	if m.CreatePlaceFunc != nil {
		return m.CreatePlaceFunc(ctx, ownerID, in)
	}
	return nil, errors.New("CreatePlaceFunc not set")
}

func (m *mockPlaceService) UpdatePlace(
	ctx context.Context,
	placeID, callerID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	if m.UpdatePlaceFunc != nil {
		return m.UpdatePlaceFunc(ctx, placeID, callerID, title, description)
	}
	return nil, errors.New("UpdatePlaceFunc not set")
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, placeID, callerID uuid.UUID) error {
	if m.DeletePlaceFunc != nil {
		return m.DeletePlaceFunc(ctx, placeID, callerID)
	}
	return errors.New("DeletePlaceFunc not set")
}

func (m *mockPlaceService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	if m.GetPlaceFunc != nil {
		return m.GetPlaceFunc(ctx, placeID)
	}
	return nil, errors.New("GetPlaceFunc not set")
}

func (m *mockPlaceService) GetPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if m.GetPlacesByOwnerFunc != nil {
		return m.GetPlacesByOwnerFunc(ctx, ownerID)
	}
	return nil, errors.New("GetPlacesByOwnerFunc not set")
}

func (m *mockPlaceService) GetPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if m.GetPlacesByCreatorFunc != nil {
		return m.GetPlacesByCreatorFunc(ctx, creatorID)
	}
	return nil, errors.New("GetPlacesByCreatorFunc not set")
}

// mockHasher implements auth.PasswordHasher.
type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

// mockVerifier implements auth.PasswordVerifier.
type mockVerifier struct {
	CompareFunc func(hashedPassword, password string) error
}

func (m *mockVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashedPassword, password)
	}
	return nil
}

// mockStorage implements blob.Storage.
type mockStorage struct {
	UploadFunc func(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
}

func (m *mockStorage) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, reader, size, contentType)
	}
	return uuid.New().String(), nil
}

func (m *mockStorage) Delete(_ context.Context, _ string) error { return nil }

func (m *mockStorage) Exists(_ context.Context, _ string) (bool, error) { return true, nil }
