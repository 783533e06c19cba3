package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/firebaseexport/internal/firestore"
)

// MockAPI is a mock implementation of the Firestore API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListCollectionIDs(ctx context.Context, projectID string) ([]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAPI) ListDocuments(ctx context.Context, projectID, collectionID string) ([]firestore.Document, error) {
	args := m.Called(ctx, projectID, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]firestore.Document), args.Error(1)
}
