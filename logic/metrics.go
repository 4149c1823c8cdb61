package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"notes_board/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks notes_board/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartNotesRequestOut() IRequestObserver
	LoadFinished(state RenderState)
	NotesRendered(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg             *shared.Config
	webRequestsIn   *prometheus.HistogramVec
	notesRequestOut prometheus.Histogram
	loadsFinished   *prometheus.CounterVec
	notesRendered   prometheus.Counter
	serviceStarted  prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	res.webRequestsIn = registerOrExisting(res.webRequestsIn)

	res.notesRequestOut = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "notes_request_out_duration",
		Help: "Duration in seconds of requests made to the notes endpoint.",
	})
	res.notesRequestOut = registerOrExisting(res.notesRequestOut)

	res.loadsFinished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_loads_finished",
		Help: "Number of finished load-and-render runs, by outcome",
	}, []string{"state"})
	res.loadsFinished = registerOrExisting(res.loadsFinished)

	res.notesRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_rendered",
		Help: "Number of note blocks rendered",
	})
	res.notesRendered = registerOrExisting(res.notesRendered)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	res.serviceStarted = registerOrExisting(res.serviceStarted)

	return &res
}

// Collectors are registered with the default registry. If one is already
// there (metrics built twice in one process), keep using the registered one.
func registerOrExisting[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

type requestObserver struct {
	start   time.Time
	observe func(float64)
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{time.Now(), m.webRequestsIn.WithLabelValues(label).Observe}
}

func (m *metrics) StartNotesRequestOut() IRequestObserver {
	return &requestObserver{time.Now(), m.notesRequestOut.Observe}
}

func (m *metrics) LoadFinished(state RenderState) {
	m.loadsFinished.WithLabelValues(state.String()).Add(1)
}

func (m *metrics) NotesRendered(count int) {
	m.notesRendered.Add(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
