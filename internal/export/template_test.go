package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/firebaseexport/internal/models"
)

func fragmentByKey(t *testing.T, fragments []Fragment, key Key) Fragment {
	t.Helper()
	for _, f := range fragments {
		if f.Key == key {
			return f
		}
	}
	t.Fatalf("fragment %s not found", key)
	return Fragment{}
}

func TestStaticFragments_NoInternalCollisions(t *testing.T) {
	fragments := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "projects/p/rulesets/abc")

	_, err := Merge(fragments)
	assert.NoError(t, err)
}

func TestStaticFragments_ProjectParent(t *testing.T) {
	projectKey := Key{Category: CategoryResource, Type: "google_project", Name: "default"}

	tests := []struct {
		name       string
		meta       models.ExportMetadata
		wantAttr   string
		absentAttr string
	}{
		{
			name:       "fallback org when no parent given",
			meta:       models.ExportMetadata{ProjectID: "p"},
			wantAttr:   "org_id",
			absentAttr: "folder_id",
		},
		{
			name:       "organization override",
			meta:       models.ExportMetadata{ProjectID: "p", OrganizationID: "9876"},
			wantAttr:   "org_id",
			absentAttr: "folder_id",
		},
		{
			name:       "folder override",
			meta:       models.ExportMetadata{ProjectID: "p", FolderID: "1234"},
			wantAttr:   "folder_id",
			absentAttr: "org_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := fragmentByKey(t, StaticFragments(tt.meta, ""), projectKey)
			// The resource carries only the locals reference; the
			// literal parent id lives in the locals fragment.
			assert.Equal(t, "${local."+tt.wantAttr+"}", frag.Attrs[tt.wantAttr])
			assert.NotContains(t, frag.Attrs, tt.absentAttr)
		})
	}
}

func TestStaticFragments_ReleaseOnlyWithLiveRuleset(t *testing.T) {
	releaseKey := Key{Category: CategoryResource, Type: "google_firebaserules_release", Name: "firestore"}

	withRuleset := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "projects/p/rulesets/abc")
	release := fragmentByKey(t, withRuleset, releaseKey)
	assert.Equal(t, "cloud.firestore", release.Attrs["name"])
	assert.Equal(t, "${google_firebaserules_ruleset.firestore.name}", release.Attrs["ruleset_name"])

	withoutRuleset := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "")
	for _, f := range withoutRuleset {
		assert.NotEqual(t, releaseKey, f.Key)
	}
}

func TestStaticFragments_RulesetReferencesRulesFile(t *testing.T) {
	fragments := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "")
	ruleset := fragmentByKey(t, fragments, Key{Category: CategoryResource, Type: "google_firebaserules_ruleset", Name: "firestore"})

	source, ok := ruleset.Attrs["source"].(map[string]any)
	require.True(t, ok)
	files, ok := source["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)
	file, ok := files[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "firestore.rules", file["name"])
	assert.Equal(t, `${file("firestore.rules")}`, file["content"])
}

func TestStaticFragments_EnabledAPIsIterateLocals(t *testing.T) {
	fragments := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "")
	services := fragmentByKey(t, fragments, Key{Category: CategoryResource, Type: "google_project_service", Name: "enabled_apis"})

	assert.Equal(t, "${toset(local.apis)}", services.Attrs["for_each"])
	assert.Equal(t, "${each.key}", services.Attrs["service"])
	assert.Equal(t, "${google_project.default.project_id}", services.Attrs["project"])
}

func TestStaticFragments_FirestoreConsistencyMode(t *testing.T) {
	fragments := StaticFragments(models.ExportMetadata{ProjectID: "p"}, "")
	app := fragmentByKey(t, fragments, Key{Category: CategoryResource, Type: "google_app_engine_application", Name: "firestore"})

	assert.Equal(t, "CLOUD_FIRESTORE", app.Attrs["database_type"])
	assert.Equal(t, "${local.location_id}", app.Attrs["location_id"])
}
