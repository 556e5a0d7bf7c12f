// Package pipeline wires the stages together: parse, extract, score, assisted
// re-rank, refine, format. Each stage produces a new artifact from the
// previous stage's output; nothing is mutated across stages.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mouniksai/Challenge-1b/internal/artifact"
	"github.com/mouniksai/Challenge-1b/internal/assist"
	"github.com/mouniksai/Challenge-1b/internal/config"
	"github.com/mouniksai/Challenge-1b/internal/docmodel"
	"github.com/mouniksai/Challenge-1b/internal/keyword"
	"github.com/mouniksai/Challenge-1b/internal/parser"
	"github.com/mouniksai/Challenge-1b/internal/ranker"
	"github.com/mouniksai/Challenge-1b/internal/sectioner"
)

// Engine runs the full relevance pipeline for one input artifact.
type Engine struct {
	cfg    config.Config
	client *assist.Client // nil when the assistant is disabled
	log    *slog.Logger
}

func New(cfg config.Config, client *assist.Client, log *slog.Logger) *Engine {
	return &Engine{cfg: cfg, client: client, log: log}
}

// Run executes the pipeline. Per-document and per-call failures are isolated
// and logged; only a malformed input artifact (rejected before Run) aborts a
// run, so Run itself only fails on context cancellation.
func (e *Engine) Run(ctx context.Context, in *artifact.Input) (*artifact.Output, error) {
	persona := in.PersonaModel()

	docs := e.parseDocuments(ctx, in.Documents)

	scfg := sectioner.DefaultConfig()
	scfg.MaxBodyChars = e.cfg.MaxSectionChars

	var sections []docmodel.Section
	var processed []string
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		processed = append(processed, doc.Ref.Filename)
		sections = append(sections, sectioner.Extract(doc, i, scfg)...)
	}
	e.log.Info("extraction complete", "documents", len(processed), "sections", len(sections))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ks := keyword.Build(persona, e.domainTerms(ctx, persona))

	scored := ranker.Score(sections, ks, keyword.DefaultWeights())
	scored = ranker.Rerank(ctx, scored, persona, e.analyzer(), e.cfg.MaxAnalyzed, e.cfg.AssistWeight)
	ranker.AssignRanks(scored)

	top := scored
	if len(top) > e.cfg.TopK {
		top = top[:e.cfg.TopK]
	}

	refiner := ranker.Refiner{
		Completer:       e.completer(),
		MaxExcerptChars: e.cfg.MaxExcerptChars,
		MaxPromptChars:  e.cfg.MaxPromptChars,
		MaxTokens:       e.cfg.MaxCompletionTokens,
	}
	refined := refiner.Refine(ctx, top, persona)

	if e.client != nil {
		e.log.Info("assistant call stats", "stats", e.client.Stats.Snapshot())
	}

	return artifact.BuildOutput(in, processed, top, refined, time.Now()), nil
}

// parseDocuments parses each referenced document with bounded concurrency.
// Results land in an index-addressed slice so the combined section list
// follows input order regardless of completion order. Missing or unreadable
// documents leave a nil slot and a warning, never an error.
func (e *Engine) parseDocuments(ctx context.Context, refs []artifact.InputDocument) []*docmodel.Document {
	docs := make([]*docmodel.Document, len(refs))

	sem := make(chan struct{}, e.cfg.WorkerCount)
	var wg sync.WaitGroup

	for i, ref := range refs {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, ref artifact.InputDocument) {
			defer wg.Done()
			defer func() { <-sem }()
			docs[i] = e.loadDocument(ref)
		}(i, ref)
	}
	wg.Wait()

	return docs
}

func (e *Engine) loadDocument(ref artifact.InputDocument) *docmodel.Document {
	log := e.log.With("document", ref.Filename)

	if !parser.IsSupportedExtension(ref.Filename) {
		log.Warn("unsupported format, skipping")
		return nil
	}

	path := filepath.Join(e.cfg.InputDir, ref.Filename)
	f, err := os.Open(path)
	if err != nil {
		log.Warn("document unreadable, skipping", "error", err)
		return nil
	}
	defer f.Close()

	p, err := parser.ForFile(ref.Filename)
	if err != nil {
		log.Warn("no parser, skipping", "error", err)
		return nil
	}

	doc, err := p.Parse(f, ref.Filename)
	if err != nil {
		log.Warn("parse failed, skipping", "error", err)
		return nil
	}
	if ref.Title != "" {
		doc.Ref.Title = ref.Title
	}

	// Formats without intrinsic structure can bring their outline in a
	// sidecar JSON file.
	if len(doc.Outline) == 0 {
		entries, title, err := parser.LoadSidecarOutline(parser.SidecarPath(path))
		switch {
		case err == nil:
			doc.Outline = entries
			if doc.Ref.Title == "" && title != "" {
				doc.Ref.Title = title
			}
		case !os.IsNotExist(err):
			log.Warn("sidecar outline unreadable, using heuristics", "error", err)
		}
	}

	return doc
}

// domainTerms asks the assistant for subject-matter vocabulary. Any failure
// leaves the domain group empty; no error propagates.
func (e *Engine) domainTerms(ctx context.Context, p docmodel.Persona) []string {
	comp := e.completer()
	if comp == nil {
		return nil
	}
	reply, err := comp.Complete(ctx, assist.DomainTermsPrompt(p), e.cfg.MaxCompletionTokens)
	if err != nil {
		e.log.Warn("domain term generation unavailable", "error", err)
		return nil
	}
	return assist.ParseTerms(reply)
}

func (e *Engine) completer() assist.Completer {
	if e.client == nil {
		return nil
	}
	return e.client
}

func (e *Engine) analyzer() ranker.Analyzer {
	if e.client == nil {
		return ranker.LexicalOnly{}
	}
	return &ranker.Assisted{
		Completer:      e.client,
		MaxPromptChars: e.cfg.MaxPromptChars,
		MaxTokens:      e.cfg.MaxCompletionTokens,
	}
}
