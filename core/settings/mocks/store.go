package mocks

import (
	"context"

	"potion-stacker/core/settings"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of settings.Store
type Store struct {
	mock.Mock
}

func (m *Store) Load(ctx context.Context) (settings.Values, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).(settings.Values); ok {
		return v, args.Error(1)
	}
	return settings.Values{}, args.Error(1)
}

func (m *Store) Save(ctx context.Context, v settings.Values) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
