package services_test

import (
	"context"

	"homefit/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBedRepository is a mock implementation of repositories.BedRepository
type MockBedRepository struct {
	mock.Mock
}

func (m *MockBedRepository) GetAll(ctx context.Context) ([]models.Bed, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Bed), args.Error(1)
}

func (m *MockBedRepository) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bed), args.Error(1)
}

func (m *MockBedRepository) Create(ctx context.Context, bed *models.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}

func (m *MockBedRepository) UpdateFields(ctx context.Context, id string, fields models.BedFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockBedRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkoutRepository is a mock implementation of repositories.WorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) GetAll(ctx context.Context) ([]models.Workout, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetByID(ctx context.Context, id string) (*models.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) UpdateFields(ctx context.Context, id string, fields models.WorkoutFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
