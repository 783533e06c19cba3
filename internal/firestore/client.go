// Package firestore reads the origin project's Cloud Firestore content
// over the REST v1 surface so it can be re-declared as Terraform
// document resources.
package firestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourusername/firebaseexport/internal/apiclient"
	"github.com/yourusername/firebaseexport/internal/logger"
)

const defaultBaseURL = "https://firestore.googleapis.com/v1"

// listPageSize caps every listing call. Listing is single-page by
// contract: when the backend returns a continuation token, the
// remainder is logged and omitted rather than fetched. Projects with
// more collections or documents than the cap are not fully exported.
const listPageSize = 300

// Document is one Firestore document as returned by the REST API. The
// field payload stays raw: the exporter never interprets it.
type Document struct {
	Name   string          `json:"name"`
	Fields json.RawMessage `json:"fields"`
}

// API is the slice of the Firestore REST surface the collector needs.
type API interface {
	// ListCollectionIDs returns the ids of the top-level collections in
	// the project's default database. Single page only.
	ListCollectionIDs(ctx context.Context, projectID string) ([]string, error)
	// ListDocuments returns the documents of one collection. Single
	// page only.
	ListDocuments(ctx context.Context, projectID, collectionID string) ([]Document, error)
}

type client struct {
	api  *apiclient.Client
	base string
	log  *logger.Logger
}

// NewAPI creates the REST-backed API implementation.
func NewAPI(api *apiclient.Client, log *logger.Logger) API {
	if log == nil {
		log = logger.Default
	}
	return &client{api: api, base: defaultBaseURL, log: log}
}

func (c *client) databasePath(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/databases/(default)/documents", c.base, projectID)
}

func (c *client) ListCollectionIDs(ctx context.Context, projectID string) ([]string, error) {
	var resp struct {
		CollectionIDs []string `json:"collectionIds"`
		NextPageToken string   `json:"nextPageToken"`
	}
	url := c.databasePath(projectID) + ":listCollectionIds"
	body := map[string]any{"pageSize": listPageSize}
	if err := c.api.PostJSON(ctx, url, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to list collections for project %s: %v", projectID, err)
	}
	if resp.NextPageToken != "" {
		c.log.Warn("Collection listing for project %s truncated at %d entries; remaining collections are not exported", projectID, listPageSize)
	}
	return resp.CollectionIDs, nil
}

func (c *client) ListDocuments(ctx context.Context, projectID, collectionID string) ([]Document, error) {
	var resp struct {
		Documents     []Document `json:"documents"`
		NextPageToken string     `json:"nextPageToken"`
	}
	url := fmt.Sprintf("%s/%s?pageSize=%d", c.databasePath(projectID), collectionID, listPageSize)
	if err := c.api.GetJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to list documents in collection %s: %v", collectionID, err)
	}
	if resp.NextPageToken != "" {
		c.log.Warn("Document listing for collection %s truncated at %d entries; remaining documents are not exported", collectionID, listPageSize)
	}
	return resp.Documents, nil
}
