// Package export builds the Terraform JSON document that describes an
// exported Firebase project.
//
// The document is assembled from fragments: named, typed declarations
// keyed by (category, type, name). Static fragments come from the
// built-in template, dynamic ones from the live collectors. Values that
// point at other fragments do so through Terraform interpolation
// strings; the export never resolves those references itself, the
// provisioning tool does.
package export

import (
	"fmt"
	"sort"
)

// Fragment categories. They correspond to the four top-level keys of
// the generated document.
const (
	CategoryTerraform = "terraform"
	CategoryLocals    = "locals"
	CategoryProvider  = "provider"
	CategoryResource  = "resource"
)

// Key uniquely identifies a fragment within the document.
type Key struct {
	Category string
	Type     string
	Name     string
}

// String returns the dotted form of the key, used in error messages.
func (k Key) String() string {
	return fmt.Sprintf("%s.%s.%s", k.Category, k.Type, k.Name)
}

// Attributes holds the body of a fragment. Values may be strings,
// bools, numbers, nested maps, or slices; interpolation references are
// plain strings.
type Attributes map[string]any

// Fragment is one named declaration in the output tree.
type Fragment struct {
	Key   Key
	Attrs Attributes
}

// Merge combines fragment groups into a single map keyed by fragment
// key. Two fragments with the same key are a build error, never a
// silent overwrite: losing a declared resource to a merge would
// produce an apparently valid but incomplete document.
func Merge(groups ...[]Fragment) (map[Key]Attributes, error) {
	merged := make(map[Key]Attributes)
	for _, group := range groups {
		for _, f := range group {
			if _, exists := merged[f.Key]; exists {
				return nil, fmt.Errorf("duplicate fragment key %s", f.Key)
			}
			merged[f.Key] = f.Attrs
		}
	}
	return merged, nil
}

// sortedKeys returns the merged map's keys in a stable order so that
// rendering is deterministic for deterministic input.
func sortedKeys(merged map[Key]Attributes) []Key {
	keys := make([]Key, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
