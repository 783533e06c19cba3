// Package generator orchestrates one export run: fetch the security
// rules, collect live content and the identity-provider configuration,
// assemble the document, and write the artifacts.
package generator

import (
	"context"
	"fmt"

	"github.com/yourusername/firebaseexport/internal/export"
	"github.com/yourusername/firebaseexport/internal/logger"
	"github.com/yourusername/firebaseexport/internal/models"
	"github.com/yourusername/firebaseexport/internal/rules"
)

// ContentCollector enumerates the origin project's datastore content.
type ContentCollector interface {
	Collect(ctx context.Context, projectID string) ([]export.Fragment, error)
}

// IdentityCollector fetches the identity-provider fragment. It never
// fails; unavailable configurations degrade to placeholders.
type IdentityCollector interface {
	Collect(ctx context.Context, projectID string) export.Fragment
}

// Generator runs the export. The two live collectors have no data
// dependency on each other and run concurrently; their fragments merge
// commutatively, so the ordering between them is not observable in the
// final document.
type Generator struct {
	Content  ContentCollector
	Identity IdentityCollector
	Rules    rules.API
	Log      *logger.Logger
	// OutputDir defaults to export.OutputDir when empty.
	OutputDir string
}

// New creates a generator with the given collaborators.
func New(content ContentCollector, identity IdentityCollector, rulesAPI rules.API, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Default
	}
	return &Generator{
		Content:  content,
		Identity: identity,
		Rules:    rulesAPI,
		Log:      log,
	}
}

type contentResult struct {
	fragments []export.Fragment
	err       error
}

// Generate produces the Terraform JSON document and the sibling rules
// file, returning the document path. All fetches happen before any
// write: a mandatory-path failure leaves no partial artifact on disk.
func (g *Generator) Generate(ctx context.Context, meta models.ExportMetadata, filename string) (string, error) {
	g.Log.Info("Fetching security rules for project %s...", meta.OriginProjectID)
	rulesContent, rulesetName, err := g.fetchRules(ctx, meta.OriginProjectID)
	if err != nil {
		return "", err
	}

	g.Log.Info("Collecting live content from project %s...", meta.OriginProjectID)
	contentCh := make(chan contentResult, 1)
	go func() {
		fragments, err := g.Content.Collect(ctx, meta.OriginProjectID)
		contentCh <- contentResult{fragments: fragments, err: err}
	}()

	idpCh := make(chan export.Fragment, 1)
	go func() {
		idpCh <- g.Identity.Collect(ctx, meta.OriginProjectID)
	}()

	content := <-contentCh
	idp := <-idpCh
	if content.err != nil {
		return "", content.err
	}
	g.Log.Debug("Collected %d document fragment(s)", len(content.fragments))

	doc, err := export.Assemble(
		export.StaticFragments(meta, rulesetName),
		[]export.Fragment{export.BuildLocals(meta)},
		content.fragments,
		[]export.Fragment{idp},
	)
	if err != nil {
		return "", err
	}

	data, err := export.Serialize(doc)
	if err != nil {
		return "", err
	}

	outputDir := g.OutputDir
	if outputDir == "" {
		outputDir = export.OutputDir
	}
	if _, err := export.WriteFile(outputDir, export.RulesFileName, []byte(rulesContent)); err != nil {
		return "", err
	}
	return export.WriteFile(outputDir, filename, data)
}

// fetchRules resolves the rules file content and the live ruleset
// name. A project without a ruleset gets the locked default content
// and no release resource. A ruleset holding anything other than
// exactly one file is a fatal shape violation, not a recoverable case.
func (g *Generator) fetchRules(ctx context.Context, projectID string) (content, rulesetName string, err error) {
	name, err := g.Rules.GetLatestRulesetName(ctx, projectID, rules.ServiceName)
	if err != nil {
		return "", "", err
	}
	if name == "" {
		g.Log.Info("Project %s has no %s ruleset, using default rules", projectID, rules.ServiceName)
		return rules.DefaultContent, "", nil
	}

	files, err := g.Rules.GetRulesetContent(ctx, name)
	if err != nil {
		return "", "", err
	}
	if len(files) != 1 {
		return "", "", fmt.Errorf("ruleset %s: expected exactly one rules file, got %d", name, len(files))
	}
	return files[0].Content, name, nil
}
