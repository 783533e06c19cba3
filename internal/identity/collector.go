// Package identity exports the origin project's Identity Platform
// configuration for the well-known Google provider.
package identity

import (
	"context"
	"fmt"

	"github.com/yourusername/firebaseexport/internal/apiclient"
	"github.com/yourusername/firebaseexport/internal/export"
	"github.com/yourusername/firebaseexport/internal/logger"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/admin/v2"

// ProviderID is the one well-known identity provider the export
// covers.
const ProviderID = "google.com"

// CredentialPlaceholder substitutes for the client id and secret when
// the live configuration cannot be fetched. The generated document is
// still applyable once the operator fills in real values.
const CredentialPlaceholder = "ADD_YOUR_CLIENT_CREDENTIAL"

// IdpConfig is the provider configuration returned by the admin API.
type IdpConfig struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// API is the slice of the Identity Platform admin surface the
// collector needs.
type API interface {
	GetDefaultSupportedIdpConfig(ctx context.Context, projectID, providerID string) (*IdpConfig, error)
}

type client struct {
	api  *apiclient.Client
	base string
}

// NewAPI creates the REST-backed API implementation.
func NewAPI(api *apiclient.Client) API {
	return &client{api: api, base: defaultBaseURL}
}

func (c *client) GetDefaultSupportedIdpConfig(ctx context.Context, projectID, providerID string) (*IdpConfig, error) {
	var cfg IdpConfig
	url := fmt.Sprintf("%s/projects/%s/defaultSupportedIdpConfigs/%s", c.base, projectID, providerID)
	if err := c.api.GetJSON(ctx, url, &cfg); err != nil {
		return nil, fmt.Errorf("failed to fetch idp config for project %s: %v", projectID, err)
	}
	return &cfg, nil
}

// lookupResult is the two-variant outcome of the provider fetch:
// either the live credentials, or unavailable for any reason.
type lookupResult struct {
	fetched bool
	config  IdpConfig
}

// Collector fetches the provider configuration with best-effort
// degradation: unlike the mandatory content fetches, a failure here
// never aborts the export.
type Collector struct {
	api API
	log *logger.Logger
}

// NewCollector creates a collector backed by the given API.
func NewCollector(api API, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.Default
	}
	return &Collector{api: api, log: log}
}

// Collect returns the identity-provider fragment. Every failure kind
// (not found, unauthorized, transient) collapses to the same
// placeholder substitution; there is deliberately no error-kind
// discrimination.
func (c *Collector) Collect(ctx context.Context, projectID string) export.Fragment {
	return fragmentFor(c.lookup(ctx, projectID))
}

func (c *Collector) lookup(ctx context.Context, projectID string) lookupResult {
	cfg, err := c.api.GetDefaultSupportedIdpConfig(ctx, projectID, ProviderID)
	if err != nil {
		c.log.Debug("Idp config unavailable for project %s, emitting placeholders: %v", projectID, err)
		return lookupResult{}
	}
	return lookupResult{fetched: true, config: *cfg}
}

// fragmentFor is the single decision point mapping the lookup outcome
// to a fragment. The provider is marked enabled even when the origin
// project never configured it, so the generated document always
// carries a ready-to-fill provider block. Downstream consumers depend
// on the block being present and active.
func fragmentFor(res lookupResult) export.Fragment {
	clientID := CredentialPlaceholder
	clientSecret := CredentialPlaceholder
	if res.fetched {
		clientID = res.config.ClientID
		clientSecret = res.config.ClientSecret
	}
	return export.Fragment{
		Key: export.Key{
			Category: export.CategoryResource,
			Type:     "google_identity_platform_default_supported_idp_config",
			Name:     "google",
		},
		Attrs: export.Attributes{
			"provider":      "google-beta.user_project_override",
			"project":       "${google_project.default.project_id}",
			"idp_id":        ProviderID,
			"client_id":     clientID,
			"client_secret": clientSecret,
			"enabled":       true,
			"depends_on":    []any{"google_identity_platform_config.default"},
		},
	}
}
