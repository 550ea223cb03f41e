package docs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nulzo/modeldocs/internal/catalog"
	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/pricing"
	"github.com/nulzo/modeldocs/pkg/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Source provides the live model catalog and pricing data.
type Source interface {
	Models(ctx context.Context) ([]schema.Model, error)
	Pricing(ctx context.Context) ([]schema.ModelPricing, error)
}

// Row is one line of the rendered model table.
type Row struct {
	ModelID  string `json:"model_id"`
	Provider string `json:"provider"`
	Category string `json:"category"`
	Input    string `json:"input"`
	Output   string `json:"output"`
}

// Generator joins the catalog with pricing and renders the documentation page.
type Generator struct {
	source      Source
	logger      *zap.Logger
	tracer      trace.Tracer
	gatewayName string
	baseURL     string
	outputPath  string
}

func NewGenerator(source Source, cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		source:      source,
		logger:      logger,
		tracer:      otel.Tracer("github.com/nulzo/modeldocs/internal/docs"),
		gatewayName: cfg.Gateway.Name,
		baseURL:     strings.TrimRight(cfg.Gateway.BaseURL, "/"),
		outputPath:  cfg.Docs.OutputPath,
	}
}

// BuildRows joins model records with their pricing and sorts them by
// (provider, model ID) so the table is grouped by provider and alphabetical
// within each group. Every model yields exactly one row; models without a
// pricing record price as free.
func BuildRows(models []schema.Model, prices []schema.ModelPricing) []Row {
	idx := pricing.NewIndex(prices)

	type entry struct {
		model    schema.Model
		provider string
	}

	// The provider name is a derived sort key, so compute it before sorting.
	entries := make([]entry, len(models))
	for i, m := range models {
		entries[i] = entry{model: m, provider: catalog.DetectProvider(m.ID, m.OwnedBy)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].provider != entries[j].provider {
			return entries[i].provider < entries[j].provider
		}
		return entries[i].model.ID < entries[j].model.ID
	})

	rows := make([]Row, len(entries))
	for i, e := range entries {
		input, output := idx.Labels(e.model.ID)
		rows[i] = Row{
			ModelID:  e.model.ID,
			Provider: e.provider,
			Category: catalog.DetectCategory(e.model.EndpointTypes),
			Input:    input,
			Output:   output,
		}
	}
	return rows
}

// Catalog fetches both endpoints and returns the joined, sorted rows.
func (g *Generator) Catalog(ctx context.Context) ([]Row, error) {
	ctx, span := g.tracer.Start(ctx, "docs.fetch")
	defer span.End()

	models, err := g.source.Models(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := g.source.Pricing(ctx)
	if err != nil {
		return nil, err
	}

	return BuildRows(models, prices), nil
}

// Generate runs the full pipeline and overwrites the output file. The
// document is assembled fully in memory before the file is touched, so a
// failed run never leaves partial output behind. Returns the model count.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	ctx, span := g.tracer.Start(ctx, "docs.generate")
	defer span.End()

	rows, err := g.Catalog(ctx)
	if err != nil {
		return 0, err
	}

	doc, err := g.render(rows)
	if err != nil {
		return 0, fmt.Errorf("failed to render document: %w", err)
	}

	if dir := filepath.Dir(g.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.outputPath, doc, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", g.outputPath, err)
	}

	g.logger.Info("Documentation updated",
		zap.String("path", g.outputPath),
		zap.Int("models", len(rows)),
	)
	return len(rows), nil
}

// OutputPath returns where Generate writes the document.
func (g *Generator) OutputPath() string {
	return g.outputPath
}

func (g *Generator) render(rows []Row) ([]byte, error) {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("| `%s` | %s | %s | %s |", r.ModelID, r.Provider, r.Input, r.Output)
	}

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, templateData{
		GatewayName: g.gatewayName,
		BaseURL:     g.baseURL,
		Count:       len(rows),
		Table:       strings.Join(lines, "\n"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
