package export

import (
	"sort"

	"github.com/yourusername/firebaseexport/internal/models"
)

// BuildLocals turns the export metadata into the locals fragment every
// other fragment references through ${local.*} interpolation. Keeping
// the literals in one place lets the generated document be edited
// after the fact without touching every resource.
//
// The API list is deduplicated and sorted, so the emitted set is
// stable within a generation regardless of input order.
func BuildLocals(meta models.ExportMetadata) Fragment {
	seen := make(map[string]bool, len(meta.APIs))
	apis := make([]string, 0, len(meta.APIs))
	for _, api := range meta.APIs {
		if api == "" || seen[api] {
			continue
		}
		seen[api] = true
		apis = append(apis, api)
	}
	sort.Strings(apis)

	parent, parentID := parentAttribute(meta)
	return Fragment{
		Key: Key{Category: CategoryLocals, Type: "locals", Name: "default"},
		Attrs: Attributes{
			"project_id":   meta.ProjectID,
			"project_name": meta.DisplayName,
			"region":       meta.Region,
			"location_id":  meta.LocationID,
			"zone":         meta.Zone,
			"apis":         apis,
			parent:         parentID,
		},
	}
}
