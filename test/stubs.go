// Package test holds mocks and fixtures shared by the package tests.
package test

import (
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"notes_board/logic"
	"notes_board/test/mocks"
	"sync"
	"testing"
)

func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type nopObserver struct{}

func (nopObserver) Finish() {}

func StubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartNotesRequestOut().Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().LoadFinished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotesRendered(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

func StubUserAgent(mockUserAgent *mocks.MockIUserAgent) {
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
}

// Ensures nopObserver keeps satisfying the observer interface
var _ logic.IRequestObserver = nopObserver{}

// NotesEndpoint is a fake remote notes API. It counts requests and records
// the method, path and user agent of the last one.
type NotesEndpoint struct {
	*httptest.Server
	mu       sync.Mutex
	requests int
	lastMeta RequestMeta
}

type RequestMeta struct {
	Method    string
	Path      string
	RawQuery  string
	UserAgent string
	BodyLen   int64
}

// NewNotesEndpoint starts a fake endpoint that answers every request with
// status and body. It is closed when the test ends.
func NewNotesEndpoint(t *testing.T, status int, body string) *NotesEndpoint {
	ep := &NotesEndpoint{}
	ep.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ep.mu.Lock()
		ep.requests++
		ep.lastMeta = RequestMeta{r.Method, r.URL.Path, r.URL.RawQuery, r.UserAgent(), r.ContentLength}
		ep.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ep.Server.Close)
	return ep
}

func (ep *NotesEndpoint) Requests() int {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return ep.requests
}

func (ep *NotesEndpoint) LastRequest() RequestMeta {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return ep.lastMeta
}

// NotesUrl is the endpoint's notes path.
func (ep *NotesEndpoint) NotesUrl() string {
	return ep.Server.URL + "/api/notes"
}
