package logic

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spaolacci/murmur3"
	"notes_board/dto"
	"notes_board/shared"
	"notes_board/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notes_renderer.go -package mocks notes_board/logic INotesRenderer

const (
	digestAttr    = "data-digest"
	noteBlockHtml = `<div class="note"><h2></h2><p></p></div>`
	messageHtml   = `<p></p>`
)

type RenderState int32

const (
	StateNotStarted RenderState = iota
	StateLoading
	StateRendered
	StateEmpty
	StateMalformed
	StateError
)

func (s RenderState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateMalformed:
		return "malformed"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("unknown(%d)", int32(s))
}

// RenderOutcome is the terminal state of one load-and-render run.
type RenderOutcome struct {
	State  RenderState
	Blocks int
	Err    error
}

type INotesRenderer interface {
	// LoadAndRender fetches the notes and renders them into the container
	// element of doc. Fetch failures are rendered, not returned; the only
	// error is ErrContainerNotFound.
	LoadAndRender(ctx context.Context, doc *goquery.Document) (*RenderOutcome, error)
}

type notesRenderer struct {
	cfg     *shared.Config
	logger  shared.ILogger
	fetcher INotesFetcher
	txt     texts.ITexts
	metrics IMetrics
	policy  *bluemonday.Policy
}

func NewNotesRenderer(
	cfg *shared.Config,
	logger shared.ILogger,
	fetcher INotesFetcher,
	txt texts.ITexts,
	metrics IMetrics,
) INotesRenderer {
	return &notesRenderer{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetcher,
		txt:     txt,
		metrics: metrics,
		policy:  newContainerPolicy(),
	}
}

func (nr *notesRenderer) LoadAndRender(ctx context.Context, doc *goquery.Document) (*RenderOutcome, error) {

	container := FindContainer(doc, nr.cfg.ContainerId)
	if container.Length() == 0 {
		nr.logger.Errorf("Page has no element with id '%s'", nr.cfg.ContainerId)
		return nil, ErrContainerNotFound
	}

	res, err := nr.fetcher.Fetch(ctx)
	outcome := nr.render(container, res, err)

	nr.metrics.LoadFinished(outcome.State)
	nr.metrics.NotesRendered(outcome.Blocks)
	return outcome, nil
}

func (nr *notesRenderer) render(container *goquery.Selection, res *FetchResult, err error) *RenderOutcome {

	if err != nil {
		nr.logger.Warnf("Error fetching notes (%s): %v", failureKind(err), err)
		msg := nr.txt.WithVals(texts.LoadError, map[string]string{"error": err.Error()})
		nr.sanitize(replaceWithMessage(container, msg))
		return &RenderOutcome{State: StateError, Err: err}
	}

	if res.Mismatch != nil {
		nr.logger.Warnf("API response is not in the expected format (%s): %s",
			res.Mismatch, diagnosticPreview(res.Body))
		nr.sanitize(replaceWithMessage(container, nr.txt.Get(texts.Malformed)))
		return &RenderOutcome{State: StateMalformed}
	}

	if len(res.Notes) == 0 {
		nr.sanitize(replaceWithMessage(container, nr.txt.Get(texts.NoNotes)))
		return &RenderOutcome{State: StateEmpty}
	}

	untitled := nr.txt.Get(texts.Untitled)
	noContent := nr.txt.Get(texts.NoContent)
	for _, note := range res.Notes {
		title, content := withFallbacks(note, untitled, noContent)
		nr.sanitize(appendNoteBlock(container, title, content))
	}
	return &RenderOutcome{State: StateRendered, Blocks: len(res.Notes)}
}

func withFallbacks(note dto.Note, untitled, noContent string) (title, content string) {
	title, content = note.Title, note.Content
	if title == "" {
		title = untitled
	}
	if content == "" {
		content = noContent
	}
	return
}

func noteDigest(title, content string) string {
	return fmt.Sprintf("%08x", murmur3.Sum32([]byte(title+"\t"+content)))
}

// FindContainer returns the first element of doc whose id is exactly id.
// The id is compared as a string, never spliced into a selector.
func FindContainer(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		val, _ := s.Attr("id")
		return val == id
	}).First()
}

// SetText escapes, so titles and content never become markup.
func appendNoteBlock(container *goquery.Selection, title, content string) *goquery.Selection {
	container.AppendHtml(noteBlockHtml)
	block := container.Children().Last()
	block.SetAttr(digestAttr, noteDigest(title, content))
	block.Find("h2").SetText(title)
	block.Find("p").SetText(content)
	return block
}

func replaceWithMessage(container *goquery.Selection, msg string) *goquery.Selection {
	container.Empty()
	container.AppendHtml(messageHtml)
	para := container.Children().Last()
	para.SetText(msg)
	return para
}

// Passes a node the renderer just created through the allow-list, in place.
// Content that was in the container before the load is not touched.
func (nr *notesRenderer) sanitize(node *goquery.Selection) {
	htm, err := goquery.OuterHtml(node)
	if err != nil {
		nr.logger.Warnf("Failed to serialize rendered node: %v", err)
		node.Remove()
		return
	}
	node.ReplaceWithHtml(nr.policy.Sanitize(htm))
}
