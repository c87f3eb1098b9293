package importer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/rows"
)

// Stage is a step of one import run.
type Stage int

const (
	StageIdle Stage = iota
	StageParsed
	StageValidated
	StageValidationFailed
	StageTransformed
	StageSubmitting
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageParsed:
		return "parsed"
	case StageValidated:
		return "validated"
	case StageValidationFailed:
		return "validation_failed"
	case StageTransformed:
		return "transformed"
	case StageSubmitting:
		return "submitting"
	case StageCompleted:
		return "completed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Submitter sends records to the backend.
type Submitter interface {
	Submit(ctx context.Context, records []model.Record) model.ImportOutcome
}

// Outcome messages shown to the user.
const (
	MsgValidationFailed = "El archivo contiene errores de validación"
	msgUnsupported      = "Formato de archivo no soportado: %s"
	msgUnreadable       = "No se pudo leer el archivo: %v"
)

// CheckResult is the result of a dry run.
type CheckResult struct {
	Total      int
	Validation model.ValidationResult
	Records    []model.Record
}

// Pipeline wires parsing, validation, transformation and submission.
type Pipeline struct {
	registry  *Registry
	stores    rows.StoreResolver
	submitter Submitter
	log       zerolog.Logger

	// OnStage, when set, observes every stage transition.
	OnStage func(Stage)
}

// NewPipeline creates a Pipeline. submitter may be nil when only Check is used.
func NewPipeline(reg *Registry, stores rows.StoreResolver, submitter Submitter, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		registry:  reg,
		stores:    stores,
		submitter: submitter,
		log:       log.With().Str("component", "import").Logger(),
	}
}

// Check parses, validates and transforms without submitting anything. The
// error is non-nil only when the file cannot be read at all.
func (p *Pipeline) Check(data []byte, fileName string) (CheckResult, error) {
	p.enter(StageIdle, fileName)

	parser := p.registry.ForFile(fileName)
	if parser == nil {
		return CheckResult{}, fmt.Errorf(msgUnsupported, fileName)
	}
	raw, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return CheckResult{}, fmt.Errorf(msgUnreadable, err)
	}
	p.enter(StageParsed, fileName)

	res := CheckResult{Total: len(raw)}
	validated, vr := rows.Validate(raw, p.stores)
	res.Validation = vr
	if !vr.Valid {
		p.enter(StageValidationFailed, fileName)
		return res, nil
	}
	p.enter(StageValidated, fileName)

	res.Records = rows.Transform(validated)
	p.enter(StageTransformed, fileName)
	return res, nil
}

// Import runs the whole pipeline for one file. Failures are reported in the
// outcome, never as an error.
func (p *Pipeline) Import(ctx context.Context, data []byte, fileName string) model.ImportOutcome {
	res, err := p.Check(data, fileName)
	if err != nil {
		p.log.Error().Err(err).Str("file", fileName).Msg("reading import file")
		return model.ImportOutcome{Success: false, Message: err.Error()}
	}
	if !res.Validation.Valid {
		p.log.Warn().Str("file", fileName).Int("errors", len(res.Validation.Errors)).Msg("validation failed")
		return model.ImportOutcome{
			Success: false,
			Message: MsgValidationFailed,
			Total:   res.Total,
			Errors:  res.Validation.Errors,
		}
	}
	if p.submitter == nil {
		panic("importer: Import called without a submitter")
	}

	p.enter(StageSubmitting, fileName)
	out := p.submitter.Submit(ctx, res.Records)
	p.enter(StageCompleted, fileName)
	return out
}

func (p *Pipeline) enter(s Stage, fileName string) {
	p.log.Debug().Str("file", fileName).Stringer("stage", s).Msg("import stage")
	if p.OnStage != nil {
		p.OnStage(s)
	}
}
