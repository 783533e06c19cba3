package export

import (
	"fmt"
)

// Document is the assembled export, keyed by the four top-level
// sections of a Terraform JSON configuration.
type Document map[string]any

// Assemble merges the given fragment groups and renders them into a
// document. Later groups never overwrite earlier ones: an identical
// key in two groups is an error (see Merge). The document always
// carries exactly the four top-level keys, even when a section ends up
// empty.
func Assemble(groups ...[]Fragment) (Document, error) {
	merged, err := Merge(groups...)
	if err != nil {
		return nil, err
	}

	terraform := Attributes{}
	locals := Attributes{}
	providers := map[string][]Attributes{}
	resources := map[string]map[string]Attributes{}

	for _, key := range sortedKeys(merged) {
		attrs := merged[key]
		switch key.Category {
		case CategoryTerraform:
			if err := mergeAttrs(terraform, attrs, key); err != nil {
				return nil, err
			}
		case CategoryLocals:
			if err := mergeAttrs(locals, attrs, key); err != nil {
				return nil, err
			}
		case CategoryProvider:
			// Multiple configurations of one provider type render as a
			// list; sortedKeys ordering keeps the list stable, with the
			// default configuration first.
			providers[key.Type] = append(providers[key.Type], attrs)
		case CategoryResource:
			byName := resources[key.Type]
			if byName == nil {
				byName = map[string]Attributes{}
				resources[key.Type] = byName
			}
			byName[key.Name] = attrs
		default:
			return nil, fmt.Errorf("fragment %s has unknown category %q", key, key.Category)
		}
	}

	return Document{
		"terraform": terraform,
		"locals":    locals,
		"provider":  providers,
		"resource":  resources,
	}, nil
}

// mergeAttrs folds one fragment's attributes into a flat section.
// Attribute collisions across fragments of the same category are
// errors for the same reason key collisions are.
func mergeAttrs(dst Attributes, src Attributes, key Key) error {
	for name, value := range src {
		if _, exists := dst[name]; exists {
			return fmt.Errorf("fragment %s redefines attribute %q", key, name)
		}
		dst[name] = value
	}
	return nil
}
