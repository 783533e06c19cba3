// Package rules reads the origin project's Firestore security rules
// from the Firebase Rules service.
package rules

import (
	"context"
	"fmt"

	"github.com/yourusername/firebaseexport/internal/apiclient"
)

const defaultBaseURL = "https://firebaserules.googleapis.com/v1"

// ServiceName identifies the Firestore rules release.
const ServiceName = "cloud.firestore"

// DefaultContent is written when the origin project has no ruleset:
// locked-down rules the operator can relax after provisioning.
const DefaultContent = `rules_version = '2';
service cloud.firestore {
  match /databases/{database}/documents {
    match /{document=**} {
      allow read, write: if false;
    }
  }
}
`

// File is one source file of a ruleset.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// API is the slice of the Firebase Rules surface the exporter needs.
type API interface {
	// GetLatestRulesetName returns the ruleset name behind the
	// project's release for the given service, or "" when the project
	// has no such release.
	GetLatestRulesetName(ctx context.Context, projectID, service string) (string, error)
	// GetRulesetContent returns the source files of a ruleset.
	GetRulesetContent(ctx context.Context, rulesetName string) ([]File, error)
}

type client struct {
	api  *apiclient.Client
	base string
}

// NewAPI creates the REST-backed API implementation.
func NewAPI(api *apiclient.Client) API {
	return &client{api: api, base: defaultBaseURL}
}

func (c *client) GetLatestRulesetName(ctx context.Context, projectID, service string) (string, error) {
	var release struct {
		Name        string `json:"name"`
		RulesetName string `json:"rulesetName"`
	}
	url := fmt.Sprintf("%s/projects/%s/releases/%s", c.base, projectID, service)
	err := c.api.GetJSON(ctx, url, &release)
	if apiclient.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up %s release for project %s: %v", service, projectID, err)
	}
	return release.RulesetName, nil
}

func (c *client) GetRulesetContent(ctx context.Context, rulesetName string) ([]File, error) {
	var ruleset struct {
		Source struct {
			Files []File `json:"files"`
		} `json:"source"`
	}
	url := fmt.Sprintf("%s/%s", c.base, rulesetName)
	if err := c.api.GetJSON(ctx, url, &ruleset); err != nil {
		return nil, fmt.Errorf("failed to fetch ruleset %s: %v", rulesetName, err)
	}
	return ruleset.Source.Files, nil
}
