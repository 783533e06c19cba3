package firestore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/firebaseexport/internal/export"
	"github.com/yourusername/firebaseexport/internal/firestore"
	"github.com/yourusername/firebaseexport/internal/firestore/testutils"
)

func TestCollect_MapsDocumentsToFragments(t *testing.T) {
	api := new(testutils.MockAPI)
	api.On("ListCollectionIDs", mock.Anything, "origin").Return([]string{"config"}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "config").Return([]firestore.Document{
		{
			Name:   "projects/origin/databases/(default)/documents/config/doc-1",
			Fields: json.RawMessage(`{"title":{"stringValue":"first"}}`),
		},
		{
			Name:   "projects/origin/databases/(default)/documents/config/doc-2",
			Fields: json.RawMessage(`{"title":{"stringValue":"second"}}`),
		},
	}, nil)

	collector := firestore.NewCollector(api)
	fragments, err := collector.Collect(context.Background(), "origin")
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	first := fragments[0]
	assert.Equal(t, export.Key{
		Category: export.CategoryResource,
		Type:     "google_firestore_document",
		Name:     "doc_1",
	}, first.Key)
	assert.Equal(t, "config", first.Attrs["collection"])
	assert.Equal(t, "doc-1", first.Attrs["document_id"])
	assert.Equal(t, `{"title":{"stringValue":"first"}}`, first.Attrs["fields"])

	second := fragments[1]
	assert.Equal(t, "doc_2", second.Key.Name)
	assert.Equal(t, "doc-2", second.Attrs["document_id"])
	assert.Equal(t, `{"title":{"stringValue":"second"}}`, second.Attrs["fields"])

	api.AssertExpectations(t)
}

func TestCollect_OrdinalSharedAcrossCollections(t *testing.T) {
	api := new(testutils.MockAPI)
	api.On("ListCollectionIDs", mock.Anything, "origin").Return([]string{"alpha", "beta"}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "alpha").Return([]firestore.Document{
		{Name: "projects/origin/databases/(default)/documents/alpha/a-1"},
	}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "beta").Return([]firestore.Document{
		{Name: "projects/origin/databases/(default)/documents/beta/b-1"},
		{Name: "projects/origin/databases/(default)/documents/beta/b-2"},
	}, nil)

	collector := firestore.NewCollector(api)
	fragments, err := collector.Collect(context.Background(), "origin")
	require.NoError(t, err)
	require.Len(t, fragments, 3)

	// The counter does not reset per collection.
	assert.Equal(t, "doc_1", fragments[0].Key.Name)
	assert.Equal(t, "doc_2", fragments[1].Key.Name)
	assert.Equal(t, "doc_3", fragments[2].Key.Name)
	assert.Equal(t, "beta", fragments[2].Attrs["collection"])
}

func TestCollect_EmptyFieldsBecomeEmptyObject(t *testing.T) {
	api := new(testutils.MockAPI)
	api.On("ListCollectionIDs", mock.Anything, "origin").Return([]string{"config"}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "config").Return([]firestore.Document{
		{Name: "projects/origin/databases/(default)/documents/config/empty"},
	}, nil)

	collector := firestore.NewCollector(api)
	fragments, err := collector.Collect(context.Background(), "origin")
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, "{}", fragments[0].Attrs["fields"])
}

func TestCollect_ListCollectionsErrorAborts(t *testing.T) {
	api := new(testutils.MockAPI)
	api.On("ListCollectionIDs", mock.Anything, "origin").Return(nil, errors.New("permission denied"))

	collector := firestore.NewCollector(api)
	fragments, err := collector.Collect(context.Background(), "origin")

	require.Error(t, err)
	assert.Nil(t, fragments)
}

func TestCollect_ListDocumentsErrorAborts(t *testing.T) {
	api := new(testutils.MockAPI)
	api.On("ListCollectionIDs", mock.Anything, "origin").Return([]string{"good", "bad"}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "good").Return([]firestore.Document{
		{Name: "projects/origin/databases/(default)/documents/good/g-1"},
	}, nil)
	api.On("ListDocuments", mock.Anything, "origin", "bad").Return(nil, errors.New("unavailable"))

	collector := firestore.NewCollector(api)
	fragments, err := collector.Collect(context.Background(), "origin")

	// No partial results: the whole export aborts.
	require.Error(t, err)
	assert.Nil(t, fragments)
}
