// Package pipeline drives one document through normalization,
// classification, extraction, scoring and gap analysis, reporting
// progress to a status store at each stage boundary.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-intel/internal/model"
	"github.com/nurpe/contract-intel/internal/pipeline/classify"
	"github.com/nurpe/contract-intel/internal/pipeline/extract"
	"github.com/nurpe/contract-intel/internal/pipeline/gaps"
	"github.com/nurpe/contract-intel/internal/pipeline/score"
	"github.com/nurpe/contract-intel/internal/pipeline/textnorm"
)

// Progress checkpoints after each stage.
const (
	progressNormalized = 20
	progressClassified = 40
	progressExtracted  = 60
	progressScored     = 80
	progressDone       = 100
)

// StatusStore persists processing state transitions. The processor is
// its only writer; the stages themselves never touch status.
type StatusStore interface {
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetProgress(ctx context.Context, id uuid.UUID, pct int) error
	Complete(ctx context.Context, id uuid.UUID, data *model.ContractData) error
	Fail(ctx context.Context, id uuid.UUID, message string) error
}

type Processor struct {
	store    StatusStore
	classify classify.Config
	log      zerolog.Logger
}

func NewProcessor(store StatusStore, log zerolog.Logger) *Processor {
	return &Processor{
		store:    store,
		classify: classify.DefaultConfig(),
		log:      log,
	}
}

// Process runs the full pipeline for one submitted document. Only text
// extraction can fail the run; every later stage degrades confidence
// instead of aborting. The returned error reflects the pipeline
// outcome, status persistence problems are logged but not fatal.
func (p *Processor) Process(ctx context.Context, id uuid.UUID, raw []byte) error {
	if err := p.store.MarkProcessing(ctx, id); err != nil {
		p.log.Error().Err(err).Str("contract_id", id.String()).Msg("failed to mark contract processing")
	}

	res, err := textnorm.Extract(raw)
	if err != nil {
		p.log.Warn().Err(err).Str("contract_id", id.String()).Msg("text extraction failed")
		if failErr := p.store.Fail(ctx, id, err.Error()); failErr != nil {
			p.log.Error().Err(failErr).Str("contract_id", id.String()).Msg("failed to store failure")
		}
		return err
	}
	p.setProgress(ctx, id, progressNormalized)

	data := p.evaluate(res, func(pct int) { p.setProgress(ctx, id, pct) })

	if err := p.store.Complete(ctx, id, data); err != nil {
		p.log.Error().Err(err).Str("contract_id", id.String()).Msg("failed to store result")
		return err
	}

	p.log.Info().
		Str("contract_id", id.String()).
		Str("contract_type", string(data.ContractType)).
		Int("overall_confidence", data.OverallConfidence).
		Msg("contract processed")
	return nil
}

// evaluate is the persistence-free core of a run. Identical input text
// always yields identical contract data.
func (p *Processor) evaluate(res *textnorm.Result, progress func(int)) *model.ContractData {
	cls := classify.Classify(res.Text, p.classify)
	progress(progressClassified)

	data := extract.Run(res.Text, cls.Type)
	data.Structure = model.StructureInfo{
		PageCount:  res.PageCount,
		CharCount:  res.CharCount,
		Confidence: res.Quality,
	}
	progress(progressExtracted)

	score.Apply(data)
	progress(progressScored)

	data.GapAnalysis = gaps.Analyze(data)
	progress(progressDone)

	return data
}

func (p *Processor) setProgress(ctx context.Context, id uuid.UUID, pct int) {
	if err := p.store.SetProgress(ctx, id, pct); err != nil {
		p.log.Error().Err(err).Str("contract_id", id.String()).Int("progress", pct).Msg("failed to store progress")
	}
}
