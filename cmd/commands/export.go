package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourusername/firebaseexport/internal/apiclient"
	"github.com/yourusername/firebaseexport/internal/firestore"
	"github.com/yourusername/firebaseexport/internal/generator"
	"github.com/yourusername/firebaseexport/internal/identity"
	"github.com/yourusername/firebaseexport/internal/logger"
	"github.com/yourusername/firebaseexport/internal/models"
	"github.com/yourusername/firebaseexport/internal/project"
	"github.com/yourusername/firebaseexport/internal/rules"
)

// NewExportCmd creates a new export command
func NewExportCmd() *cobra.Command {
	var (
		fromProject  string
		displayName  string
		organization string
		folder       string
		outFile      string
		configFile   string
		token        string
	)

	cmd := &cobra.Command{
		Use:   "export <target-project-id>",
		Short: "Export a live project into a provisioning document",
		Long: `Export reads the origin project's configuration and content and writes
a Terraform JSON document (plus the firestore.rules file it references)
that provisions an equivalent project under the given target id.

The command needs an authenticated session: pass a bearer token via
--token or the FIREBASE_TOKEN environment variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], fromProject, displayName, organization, folder, outFile, configFile, token)
		},
	}

	cmd.Flags().StringVar(&fromProject, "from", "", "Origin project id to clone from")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name for the target project (defaults to the origin's)")
	cmd.Flags().StringVar(&organization, "organization", "", "Organization id to parent the target project under")
	cmd.Flags().StringVar(&folder, "folder", "", "Folder id to parent the target project under")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file name (defaults to <target>.tf.json)")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML export configuration file")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token (defaults to FIREBASE_TOKEN)")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagsMutuallyExclusive("organization", "folder")

	return cmd
}

func runExport(cmd *cobra.Command, target, from, displayName, organization, folder, outFile, configFile, token string) error {
	log := logger.New(logger.Config{Level: logger.LevelInfo, Output: os.Stderr})
	if debugMode {
		log.SetLevel(logger.LevelDebug)
	}

	// Configuration errors fail fast, before any network call.
	if target == "" {
		return fmt.Errorf("target project id is required")
	}
	if token == "" {
		token = os.Getenv("FIREBASE_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("authentication required: pass --token or set FIREBASE_TOKEN")
	}

	cfg := models.DefaultExportConfig()
	if configFile != "" {
		loaded, err := models.LoadExportConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	api := apiclient.New(token, apiTimeout)

	log.Info("Fetching metadata for project %s...", from)
	meta, err := project.NewAPI(api).Get(cmd.Context(), from)
	if err != nil {
		return err
	}

	if displayName == "" {
		displayName = meta.DisplayName
	}
	if displayName == "" {
		displayName = target
	}
	locationID := meta.LocationID
	if locationID == "" {
		locationID = cfg.Region
	}

	exportMeta := models.ExportMetadata{
		ProjectID:       target,
		OriginProjectID: from,
		DisplayName:     displayName,
		Region:          cfg.Region,
		LocationID:      locationID,
		Zone:            cfg.Zone,
		APIs:            cfg.APIs,
		OrganizationID:  organization,
		FolderID:        folder,
	}

	gen := generator.New(
		firestore.NewCollector(firestore.NewAPI(api, log)),
		identity.NewCollector(identity.NewAPI(api), log),
		rules.NewAPI(api),
		log,
	)

	if outFile == "" {
		outFile = target + ".tf.json"
	}

	path, err := gen.Generate(cmd.Context(), exportMeta, outFile)
	if err != nil {
		return err
	}

	log.Info("Export written to %s", path)
	return nil
}
