package firestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/firebaseexport/internal/export"
)

// Collector turns the origin project's live Firestore content into
// document resource fragments.
type Collector struct {
	api API
}

// NewCollector creates a collector backed by the given API.
func NewCollector(api API) *Collector {
	return &Collector{api: api}
}

// Collect enumerates every collection and document and maps each
// document to one fragment. Fragment names use a single ordinal
// counter shared across all collections, starting at 1, so names are
// stable only while the live listing order is stable; re-running the
// export renumbers from scratch.
//
// Any API error propagates unmodified and aborts the export: a partial
// content export would look valid while silently missing data.
func (c *Collector) Collect(ctx context.Context, projectID string) ([]export.Fragment, error) {
	collectionIDs, err := c.api.ListCollectionIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var fragments []export.Fragment
	ordinal := 0
	for _, collectionID := range collectionIDs {
		documents, err := c.api.ListDocuments(ctx, projectID, collectionID)
		if err != nil {
			return nil, err
		}
		for _, doc := range documents {
			ordinal++
			fragments = append(fragments, documentFragment(ordinal, collectionID, doc))
		}
	}
	return fragments, nil
}

func documentFragment(ordinal int, collectionID string, doc Document) export.Fragment {
	fields := doc.Fields
	if len(fields) == 0 {
		fields = []byte("{}")
	}
	return export.Fragment{
		Key: export.Key{
			Category: export.CategoryResource,
			Type:     "google_firestore_document",
			Name:     fmt.Sprintf("doc_%d", ordinal),
		},
		Attrs: export.Attributes{
			"provider":    "google-beta",
			"project":     "${google_project.default.project_id}",
			"collection":  collectionID,
			"document_id": documentID(doc.Name),
			// The payload passes through byte-for-byte as a string;
			// its structure is the provisioning tool's concern.
			"fields":     string(fields),
			"depends_on": []any{"google_app_engine_application.firestore"},
		},
	}
}

// documentID extracts the trailing path segment of a full document
// resource name.
func documentID(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
