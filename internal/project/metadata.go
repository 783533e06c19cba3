// Package project looks up project metadata through the Firebase
// management API. The result feeds the export metadata before the
// generator runs.
package project

import (
	"context"
	"fmt"

	"github.com/yourusername/firebaseexport/internal/apiclient"
)

const defaultBaseURL = "https://firebase.googleapis.com/v1beta1"

// Metadata is the subset of project metadata the export needs.
type Metadata struct {
	DisplayName string
	LocationID  string
}

// API is the metadata lookup surface.
type API interface {
	Get(ctx context.Context, projectID string) (*Metadata, error)
}

type client struct {
	api  *apiclient.Client
	base string
}

// NewAPI creates the REST-backed API implementation.
func NewAPI(api *apiclient.Client) API {
	return &client{api: api, base: defaultBaseURL}
}

func (c *client) Get(ctx context.Context, projectID string) (*Metadata, error) {
	var resp struct {
		DisplayName string `json:"displayName"`
		Resources   struct {
			LocationID string `json:"locationId"`
		} `json:"resources"`
	}
	url := fmt.Sprintf("%s/projects/%s", c.base, projectID)
	if err := c.api.GetJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for project %s: %v", projectID, err)
	}
	return &Metadata{
		DisplayName: resp.DisplayName,
		LocationID:  resp.Resources.LocationID,
	}, nil
}
