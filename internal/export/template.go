package export

import (
	"github.com/yourusername/firebaseexport/internal/models"
)

const (
	requiredVersion = ">= 1.0"
	providerSource  = "hashicorp/google-beta"
	providerVersion = "~> 4.61.0"

	// fallbackOrgID parents the generated project when neither
	// --organization nor --folder is supplied. This is an operational
	// assumption baked into the template: replace it with your own
	// organization id before applying the output.
	fallbackOrgID = "0000000000"

	// providerDefault is the provider reference used by most resources.
	// providerUserOverride attributes API cost to the billing project,
	// which the rules and identity-platform APIs require.
	providerDefault      = "google-beta"
	providerUserOverride = "google-beta.user_project_override"

	projectIDRef = "${google_project.default.project_id}"
)

// StaticFragments returns the fixed skeleton of the export: version
// pins, provider configurations, and the resources every exported
// project gets regardless of live content. It is a pure function of
// the metadata; no I/O happens here.
//
// rulesetName is the name of the origin project's latest Firestore
// ruleset, or empty when the project has none. A release resource
// activating the exported rules is emitted only when a live ruleset
// exists.
func StaticFragments(meta models.ExportMetadata, rulesetName string) []Fragment {
	fragments := []Fragment{
		{
			Key: Key{Category: CategoryTerraform, Type: "settings", Name: "default"},
			Attrs: Attributes{
				"required_version": requiredVersion,
				"required_providers": map[string]any{
					"google-beta": map[string]any{
						"source":  providerSource,
						"version": providerVersion,
					},
				},
			},
		},
		{
			Key: Key{Category: CategoryProvider, Type: "google-beta", Name: "default"},
			Attrs: Attributes{
				"project": "${local.project_id}",
				"region":  "${local.region}",
				"zone":    "${local.zone}",
			},
		},
		{
			Key: Key{Category: CategoryProvider, Type: "google-beta", Name: "user_project_override"},
			Attrs: Attributes{
				"alias":                 "user_project_override",
				"project":               "${local.project_id}",
				"region":                "${local.region}",
				"zone":                  "${local.zone}",
				"user_project_override": true,
				"billing_project":       "${local.project_id}",
			},
		},
		{
			Key:   Key{Category: CategoryResource, Type: "google_project", Name: "default"},
			Attrs: projectAttrs(meta),
		},
		{
			Key: Key{Category: CategoryResource, Type: "google_project_service", Name: "enabled_apis"},
			Attrs: Attributes{
				"provider":           providerDefault,
				"for_each":           "${toset(local.apis)}",
				"project":            projectIDRef,
				"service":            "${each.key}",
				"disable_on_destroy": false,
			},
		},
		{
			Key: Key{Category: CategoryResource, Type: "google_firebase_project", Name: "default"},
			Attrs: Attributes{
				"provider":   providerUserOverride,
				"project":    projectIDRef,
				"depends_on": []any{"google_project_service.enabled_apis"},
			},
		},
		{
			Key: Key{Category: CategoryResource, Type: "google_app_engine_application", Name: "firestore"},
			Attrs: Attributes{
				"provider":      providerDefault,
				"project":       projectIDRef,
				"location_id":   "${local.location_id}",
				"database_type": "CLOUD_FIRESTORE",
			},
		},
		{
			Key: Key{Category: CategoryResource, Type: "google_identity_platform_config", Name: "default"},
			Attrs: Attributes{
				"provider":   providerUserOverride,
				"project":    projectIDRef,
				"depends_on": []any{"google_firebase_project.default"},
			},
		},
		{
			Key: Key{Category: CategoryResource, Type: "google_firebaserules_ruleset", Name: "firestore"},
			Attrs: Attributes{
				"provider": providerUserOverride,
				"project":  projectIDRef,
				"source": map[string]any{
					"files": []any{
						map[string]any{
							"name":    RulesFileName,
							"content": "${file(\"" + RulesFileName + "\")}",
						},
					},
				},
			},
		},
	}

	if rulesetName != "" {
		fragments = append(fragments, Fragment{
			Key: Key{Category: CategoryResource, Type: "google_firebaserules_release", Name: "firestore"},
			Attrs: Attributes{
				"provider":     providerUserOverride,
				"project":      projectIDRef,
				"name":         "cloud.firestore",
				"ruleset_name": "${google_firebaserules_ruleset.firestore.name}",
			},
		})
	}

	return fragments
}

func projectAttrs(meta models.ExportMetadata) Attributes {
	parent, _ := parentAttribute(meta)
	return Attributes{
		"provider":   providerDefault,
		"name":       "${local.project_name}",
		"project_id": "${local.project_id}",
		// The literal parent id lives in the locals fragment like every
		// other metadata value; the resource only carries the reference.
		parent: "${local." + parent + "}",
	}
}

// parentAttribute resolves the generated project's parent: the folder
// or organization override when one was given, else the fallback org.
// The attribute name doubles as the locals key holding the literal.
func parentAttribute(meta models.ExportMetadata) (name, value string) {
	switch {
	case meta.FolderID != "":
		return "folder_id", meta.FolderID
	case meta.OrganizationID != "":
		return "org_id", meta.OrganizationID
	default:
		return "org_id", fallbackOrgID
	}
}
