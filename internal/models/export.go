package models

// ExportMetadata is the resolved input for one export run. It combines
// the CLI arguments with the origin project's metadata fetched from
// the Firebase management API before the generator runs.
type ExportMetadata struct {
	// ProjectID is the target project id the generated configuration
	// will provision.
	ProjectID string
	// OriginProjectID is the live project being cloned from.
	OriginProjectID string
	DisplayName     string
	Region          string
	LocationID      string
	Zone            string
	// APIs lists the services to enable on the target project. Treated
	// as a set: duplicates collapse before emission.
	APIs []string
	// OrganizationID and FolderID override the generated project's
	// parent. At most one is set.
	OrganizationID string
	FolderID       string
}
