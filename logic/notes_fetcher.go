package logic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"notes_board/dto"
	"notes_board/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notes_fetcher.go -package mocks notes_board/logic INotesFetcher

type INotesFetcher interface {
	Fetch(ctx context.Context) (*FetchResult, error)
}

// FetchResult is a successfully decoded response. Exactly one of Notes and
// Mismatch is meaningful: a non-nil Mismatch means the JSON was valid but
// had the wrong shape.
type FetchResult struct {
	Envelope dto.Envelope
	Notes    []dto.Note
	Mismatch *dto.ShapeMismatch
	Body     []byte
}

type notesFetcher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	envelope  dto.Envelope
	client    *http.Client
}

func NewNotesFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) INotesFetcher {

	envelope, err := dto.ParseEnvelope(cfg.Envelope)
	if err != nil {
		logger.Errorf("Invalid envelope in config: %v", err)
		panic(err)
	}

	client := &http.Client{}
	client.Timeout = time.Duration(cfg.FetchTimeoutSec) * time.Second

	return &notesFetcher{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		envelope:  envelope,
		client:    client,
	}
}

func (nf *notesFetcher) Fetch(ctx context.Context) (res *FetchResult, err error) {

	nf.logger.Debugf("Fetching notes from %s", nf.cfg.NotesUrl)
	obs := nf.metrics.StartNotesRequestOut()
	defer obs.Finish()

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", nf.cfg.NotesUrl, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}
	nf.userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = nf.client.Do(req); err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HttpStatusError{resp.StatusCode}
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	notes, detected, mismatch, err := dto.DecodeNotes(bodyBytes, nf.envelope)
	if err != nil {
		return nil, &DecodeError{err}
	}
	if mismatch == nil {
		nf.logger.Debugf("Received %d notes in %s envelope", len(notes), detected)
	}

	return &FetchResult{
		Envelope: detected,
		Notes:    notes,
		Mismatch: mismatch,
		Body:     bodyBytes,
	}, nil
}
