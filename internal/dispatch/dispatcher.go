// Package dispatch submits canonical records to the backend API.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/gastos/internal/model"
)

// DefaultTimeout bounds a single submission when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Config carries everything the dispatcher needs to reach the backend.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Dispatcher posts records one at a time and aggregates the results.
type Dispatcher struct {
	baseURL string
	token   string
	client  *http.Client
	log     zerolog.Logger

	// Progress, when set, is called after each submission.
	Progress func(done, total int)
}

// New creates a Dispatcher for cfg.
func New(cfg Config, log zerolog.Logger) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "dispatch").Logger(),
	}
}

// Submit posts every record in order. A rejected record never stops the
// batch; its error is kept in the outcome. Imported plus the number of
// errors always equals Total.
func (d *Dispatcher) Submit(ctx context.Context, records []model.Record) model.ImportOutcome {
	total := len(records)
	if total == 0 {
		return model.ImportOutcome{Success: false, Message: msgNoRecords}
	}

	out := model.ImportOutcome{Total: total}
	for i, rec := range records {
		if err := d.post(ctx, rec); err != nil {
			serr := SubmissionError{Index: i + 1, Type: rec.Type(), Message: err.Error()}
			d.log.Warn().Int("index", i+1).Str("type", string(rec.Type())).Str("error", serr.Message).Msg("record rejected")
			out.Errors = append(out.Errors, serr.Error())
		} else {
			out.Imported++
		}
		if d.Progress != nil {
			d.Progress(i+1, total)
		}
	}

	switch {
	case out.Imported == total:
		out.Success = true
		out.Message = fmt.Sprintf("Se importaron %d registros exitosamente", total)
	case out.Imported > 0:
		out.Success = true
		out.Message = fmt.Sprintf("Se importaron %d de %d registros. Algunos registros fallaron.", out.Imported, total)
	default:
		out.Message = msgNoneImported
	}

	d.log.Info().Int("imported", out.Imported).Int("total", total).Msg("submission finished")
	return out
}

// post sends one record. The returned error's text is user-facing.
func (d *Dispatcher) post(ctx context.Context, rec model.Record) error {
	body, err := json.Marshal(newPayload(rec))
	if err != nil {
		return fmt.Errorf("%s: %w", msgGenericFailure, err)
	}

	url := d.baseURL + Route(rec.Type())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", msgGenericFailure, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	d.log.Debug().Str("url", url).Str("request_id", reqID).Msg("posting record")
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", msgGenericFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return responseError(resp)
}

// responseError extracts the server's message, falling back to a generic one.
func responseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Message) != "" {
		return errors.New(body.Message)
	}
	return fmt.Errorf("%s (HTTP %d)", msgGenericFailure, resp.StatusCode)
}
