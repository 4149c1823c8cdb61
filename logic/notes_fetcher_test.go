package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"notes_board/dto"
	"notes_board/logic"
	"notes_board/shared"
	"notes_board/test"
	"notes_board/test/mocks"
	"testing"
)

type fetcherHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	endpoint    *test.NotesEndpoint
}

func setupFetcherTest(t *testing.T, status int, body, envelope string) (*gomock.Controller, *fetcherHarness, logic.INotesFetcher) {

	ctrl := gomock.NewController(t)

	h := &fetcherHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		endpoint:    test.NewNotesEndpoint(t, status, body),
	}
	h.cfg = &shared.Config{
		NotesUrl: h.endpoint.NotesUrl(),
		Envelope: envelope,
		WwwDir:   t.TempDir() + "/",
	}
	h.cfg.ApplyDefaults()
	test.StubLogger(h.mockLogger)
	test.StubMetrics(h.mockMetrics)

	nf := logic.NewNotesFetcher(h.cfg, h.mockLogger, shared.NewUserAgent(h.cfg), h.mockMetrics)
	return ctrl, h, nf
}

func TestFetcherSendsPlainGet(t *testing.T) {
	ctrl, h, nf := setupFetcherTest(t, http.StatusOK, `[]`, "auto")
	defer ctrl.Finish()

	_, err := nf.Fetch(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 1, h.endpoint.Requests())
	req := h.endpoint.LastRequest()
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/api/notes", req.Path)
	assert.Equal(t, "", req.RawQuery)
	assert.Equal(t, int64(0), req.BodyLen)
	assert.Equal(t, "Notes-Board/dev", req.UserAgent)
}

func TestFetcherDecodesBothEnvelopes(t *testing.T) {
	bodies := map[string]dto.Envelope{
		`[{"title":"T","content":"C"}]`:          dto.EnvelopeBare,
		`{"data":[{"title":"T","content":"C"}]}`: dto.EnvelopeWrapped,
	}
	for body, detected := range bodies {
		ctrl, _, nf := setupFetcherTest(t, http.StatusOK, body, "auto")
		res, err := nf.Fetch(context.Background())
		assert.Nil(t, err)
		assert.Nil(t, res.Mismatch)
		assert.Equal(t, detected, res.Envelope)
		assert.Equal(t, []dto.Note{{Title: "T", Content: "C"}}, res.Notes)
		ctrl.Finish()
	}
}

func TestFetcherAcceptsAny2xx(t *testing.T) {
	ctrl, _, nf := setupFetcherTest(t, http.StatusNonAuthoritativeInfo, `[]`, "auto")
	defer ctrl.Finish()

	res, err := nf.Fetch(context.Background())
	assert.Nil(t, err)
	assert.Len(t, res.Notes, 0)
}

func TestFetcherHttpStatusError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusForbidden} {
		ctrl, _, nf := setupFetcherTest(t, status, `[{"title":"ignored"}]`, "auto")
		res, err := nf.Fetch(context.Background())
		assert.Nil(t, res)
		var statusErr *logic.HttpStatusError
		if assert.True(t, errors.As(err, &statusErr)) {
			assert.Equal(t, status, statusErr.Status)
		}
		ctrl.Finish()
	}
}

func TestFetcherDecodeError(t *testing.T) {
	ctrl, _, nf := setupFetcherTest(t, http.StatusOK, `<html>oops</html>`, "auto")
	defer ctrl.Finish()

	res, err := nf.Fetch(context.Background())
	assert.Nil(t, res)
	var decodeErr *logic.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestFetcherShapeMismatchIsNotAnError(t *testing.T) {
	ctrl, _, nf := setupFetcherTest(t, http.StatusOK, `[{"title":"T"}]`, "data")
	defer ctrl.Finish()

	res, err := nf.Fetch(context.Background())
	assert.Nil(t, err)
	if assert.NotNil(t, res.Mismatch) {
		assert.Equal(t, dto.EnvelopeWrapped, res.Mismatch.Expected)
	}
	assert.Nil(t, res.Notes)
	assert.Equal(t, `[{"title":"T"}]`, string(res.Body))
}

func TestFetcherNetworkError(t *testing.T) {
	ctrl, h, nf := setupFetcherTest(t, http.StatusOK, `[]`, "auto")
	defer ctrl.Finish()
	h.endpoint.Close()

	res, err := nf.Fetch(context.Background())
	assert.Nil(t, res)
	assert.NotNil(t, err)
	var statusErr *logic.HttpStatusError
	var decodeErr *logic.DecodeError
	assert.False(t, errors.As(err, &statusErr))
	assert.False(t, errors.As(err, &decodeErr))
	assert.Contains(t, err.Error(), "failed to fetch notes")
}

func TestFetcherHonorsContext(t *testing.T) {
	ctrl, h, nf := setupFetcherTest(t, http.StatusOK, `[]`, "auto")
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := nf.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, h.endpoint.Requests())
}

func TestFetcherRejectsUnknownEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	test.StubLogger(mockLogger)
	cfg := &shared.Config{Envelope: "wrapped"}

	assert.Panics(t, func() {
		logic.NewNotesFetcher(cfg, mockLogger, mocks.NewMockIUserAgent(ctrl), mocks.NewMockIMetrics(ctrl))
	})
}
