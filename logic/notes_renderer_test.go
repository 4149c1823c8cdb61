package logic_test

import (
	"context"
	"errors"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"html"
	"net/http"
	"notes_board/logic"
	"notes_board/shared"
	"notes_board/test"
	"notes_board/test/mocks"
	"notes_board/texts"
	"strings"
	"testing"
)

const pageHtml = `<!DOCTYPE html>
<html><head><title>Notes</title></head>
<body><h1>Notes</h1><div id="notes-container"></div></body></html>`

const pageWithEarlierContent = `<!DOCTYPE html>
<html><head><title>Notes</title></head>
<body><div id="notes-container"><p>Earlier</p></div></body></html>`

const pageWithRichEarlierContent = `<!DOCTYPE html>
<html><head><title>Notes</title></head>
<body><div id="notes-container"><span class="hint">Loading <a href="/x">link</a></span><div class="intro">Hi</div></div></body></html>`

type rendererHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	endpoint    *test.NotesEndpoint
}

func setupRendererTest(t *testing.T, status int, body, envelope string, expectState logic.RenderState) (
	*gomock.Controller, *rendererHarness, logic.INotesRenderer) {

	ctrl := gomock.NewController(t)

	h := &rendererHarness{
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
	h.mockMetrics.EXPECT().StartNotesRequestOut().Return(nopObserver{}).AnyTimes()
	h.mockMetrics.EXPECT().NotesRendered(gomock.Any()).AnyTimes()
	h.mockMetrics.EXPECT().LoadFinished(gomock.Eq(expectState)).Times(1)

	fetcher := logic.NewNotesFetcher(h.cfg, h.mockLogger, shared.NewUserAgent(h.cfg), h.mockMetrics)
	nr := logic.NewNotesRenderer(h.cfg, h.mockLogger, fetcher, texts.NewTexts(), h.mockMetrics)
	return ctrl, h, nr
}

type nopObserver struct{}

func (nopObserver) Finish() {}

func mustParsePage(t *testing.T, htm string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htm))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func headings(container *goquery.Selection) []string {
	var res []string
	container.Find(".note h2").Each(func(_ int, s *goquery.Selection) {
		res = append(res, s.Text())
	})
	return res
}

func TestRenderOneBlockPerNoteInOrder(t *testing.T) {
	body := `[
		{"title": "First", "content": "one"},
		{"title": "Second", "content": "two"},
		{"title": "First", "content": "one"}
	]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, logic.StateRendered, outcome.State)
	assert.Equal(t, 3, outcome.Blocks)

	container := doc.Find("#notes-container")
	assert.Equal(t, 3, container.Find("div.note").Length())
	assert.Equal(t, []string{"First", "Second", "First"}, headings(container))
	assert.Equal(t, "two", container.Find(".note").Eq(1).Find("p").Text())

	// Identical notes get identical digests; different notes differ
	d0, _ := container.Find(".note").Eq(0).Attr("data-digest")
	d1, _ := container.Find(".note").Eq(1).Attr("data-digest")
	d2, _ := container.Find(".note").Eq(2).Attr("data-digest")
	assert.Len(t, d0, 8)
	assert.Equal(t, d0, d2)
	assert.NotEqual(t, d0, d1)

	// Nothing outside the container changed
	assert.Equal(t, "Notes", doc.Find("h1").Text())
}

func TestRenderWrappedEnvelope(t *testing.T) {
	body := `{"data": [{"title": "Wrapped", "content": "yes"}]}`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "data", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, []string{"Wrapped"}, headings(doc.Find("#notes-container")))
}

func TestRenderKeepsEarlierContentWhenAppending(t *testing.T) {
	body := `[{"title": "A", "content": "a"}, {"title": "B", "content": "b"}]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageWithEarlierContent)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	children := doc.Find("#notes-container").Children()
	assert.Equal(t, 3, children.Length())
	assert.Equal(t, "Earlier", children.First().Text())
	assert.Equal(t, []string{"A", "B"}, headings(doc.Find("#notes-container")))
}

func TestRenderLeavesEarlierMarkupAlone(t *testing.T) {
	body := `[{"title": "A", "content": "a"}]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageWithRichEarlierContent)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	container := doc.Find("#notes-container")
	assert.Equal(t, 3, container.Children().Length())
	hint := container.Find("span.hint")
	assert.Equal(t, 1, hint.Length())
	href, _ := hint.Find("a").Attr("href")
	assert.Equal(t, "/x", href)
	assert.Equal(t, "Hi", container.Find("div.intro").Text())
	assert.Equal(t, []string{"A"}, headings(container))
	digest, _ := container.Find(".note").Attr("data-digest")
	assert.Len(t, digest, 8)
}

func TestRenderNumbersByValue(t *testing.T) {
	body := `[{"title": 1.0, "content": 1e2}, {"title": -2.50, "content": 1e21}]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	notes := doc.Find("#notes-container .note")
	assert.Equal(t, []string{"1", "-2.5"}, headings(doc.Find("#notes-container")))
	assert.Equal(t, "100", notes.Eq(0).Find("p").Text())
	assert.Equal(t, "1e+21", notes.Eq(1).Find("p").Text())
}

func TestRenderEmpty(t *testing.T) {
	for _, body := range []string{`[]`, `{"data": []}`} {
		ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateEmpty)

		doc := mustParsePage(t, pageWithEarlierContent)
		outcome, err := nr.LoadAndRender(context.Background(), doc)
		assert.Nil(t, err)
		assert.Equal(t, logic.StateEmpty, outcome.State)

		container := doc.Find("#notes-container")
		assert.Equal(t, "No notes found.", container.Text())
		assert.Equal(t, 0, container.Find(".note").Length())
		ctrl.Finish()
	}
}

func TestRenderFallbacks(t *testing.T) {
	body := `[{"content": "body only"}, {"title": "", "content": null}, {"title": "Title only"}]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	blocks := doc.Find("#notes-container .note")
	assert.Equal(t, 3, blocks.Length())
	assert.Equal(t, "Untitled Note", blocks.Eq(0).Find("h2").Text())
	assert.Equal(t, "body only", blocks.Eq(0).Find("p").Text())
	assert.Equal(t, "Untitled Note", blocks.Eq(1).Find("h2").Text())
	assert.Equal(t, "No content.", blocks.Eq(1).Find("p").Text())
	assert.Equal(t, "Title only", blocks.Eq(2).Find("h2").Text())
	assert.Equal(t, "No content.", blocks.Eq(2).Find("p").Text())
}

func TestRenderShapeMismatch(t *testing.T) {
	type scenario struct {
		body     string
		envelope string
	}
	scenarios := []scenario{
		{`[{"title": "bare"}]`, "data"},
		{`{"data": [{"title": "wrapped"}]}`, "bare"},
		{`{"items": []}`, "auto"},
		{`"hello"`, "auto"},
	}
	for _, s := range scenarios {
		ctrl, _, nr := setupRendererTest(t, http.StatusOK, s.body, s.envelope, logic.StateMalformed)

		doc := mustParsePage(t, pageWithEarlierContent)
		outcome, err := nr.LoadAndRender(context.Background(), doc)
		assert.Nil(t, err)
		assert.Equal(t, logic.StateMalformed, outcome.State)
		assert.Nil(t, outcome.Err)

		container := doc.Find("#notes-container")
		assert.Equal(t, "Error: Could not parse notes data.", container.Text())
		assert.Equal(t, 0, container.Find(".note").Length())
		ctrl.Finish()
	}
}

func TestRenderNeverInterpretsMarkup(t *testing.T) {
	title := `<img src=x onerror=alert(1)>`
	content := `<script>alert("pwned")</script><b>bold</b>`
	body := `[{"title": "<img src=x onerror=alert(1)>", "content": "<script>alert(\"pwned\")</script><b>bold</b>"}]`
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, body, "auto", logic.StateRendered)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	_, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	container := doc.Find("#notes-container")
	assert.Equal(t, 0, container.Find("img").Length())
	assert.Equal(t, 0, container.Find("script").Length())
	assert.Equal(t, 0, container.Find("b").Length())
	assert.Equal(t, title, container.Find(".note h2").Text())
	assert.Equal(t, content, container.Find(".note p").Text())

	htm, _ := container.Html()
	assert.NotContains(t, htm, "<img")
	assert.Contains(t, htm, "&lt;img")
}

func TestRenderHttpStatusError(t *testing.T) {
	ctrl, _, nr := setupRendererTest(t, http.StatusInternalServerError, `[{"title": "x"}]`, "auto", logic.StateError)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageWithEarlierContent)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, logic.StateError, outcome.State)
	assert.NotNil(t, outcome.Err)

	container := doc.Find("#notes-container")
	assert.Equal(t, "Error loading notes: HTTP error! status: 500. Please try again later.", container.Text())
	assert.Equal(t, 0, container.Find(".note").Length())
}

func TestRenderDecodeError(t *testing.T) {
	ctrl, _, nr := setupRendererTest(t, http.StatusOK, `{"data": [`, "auto", logic.StateError)
	defer ctrl.Finish()

	doc := mustParsePage(t, pageHtml)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)

	text := doc.Find("#notes-container").Text()
	assert.True(t, strings.HasPrefix(text, "Error loading notes: "))
	assert.Contains(t, text, outcome.Err.Error())
}

func TestRenderNetworkError(t *testing.T) {
	ctrl, h, nr := setupRendererTest(t, http.StatusOK, `[]`, "auto", logic.StateError)
	defer ctrl.Finish()
	h.endpoint.Close()

	doc := mustParsePage(t, pageHtml)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, logic.StateError, outcome.State)
	assert.Contains(t, doc.Find("#notes-container").Text(), outcome.Err.Error())
}

func TestRenderErrorMessageIsText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockFetcher := mocks.NewMockINotesFetcher(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New(`<b onclick="x()">boom</b>`)).Times(1)

	cfg := &shared.Config{}
	cfg.ApplyDefaults()
	nr := logic.NewNotesRenderer(cfg, mockLogger, mockFetcher, texts.NewTexts(), mockMetrics)

	doc := mustParsePage(t, pageHtml)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, logic.StateError, outcome.State)

	container := doc.Find("#notes-container")
	assert.Equal(t, 0, container.Find("b").Length())
	assert.Equal(t, `Error loading notes: <b onclick="x()">boom</b>. Please try again later.`, container.Text())
}

func TestRenderNeedsContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockFetcher := mocks.NewMockINotesFetcher(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	mockFetcher.EXPECT().Fetch(gomock.Any()).Times(0)
	mockMetrics.EXPECT().LoadFinished(gomock.Any()).Times(0)

	cfg := &shared.Config{}
	cfg.ApplyDefaults()
	nr := logic.NewNotesRenderer(cfg, mockLogger, mockFetcher, texts.NewTexts(), mockMetrics)

	doc := mustParsePage(t, `<html><body><div id="other"></div></body></html>`)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, logic.ErrContainerNotFound)
}

func TestRenderCustomContainerId(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockFetcher := mocks.NewMockINotesFetcher(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(&logic.FetchResult{Notes: nil}, nil).Times(1)

	cfg := &shared.Config{ContainerId: "board"}
	cfg.ApplyDefaults()
	nr := logic.NewNotesRenderer(cfg, mockLogger, mockFetcher, texts.NewTexts(), mockMetrics)

	doc := mustParsePage(t, `<html><body><section id="board"></section></body></html>`)
	outcome, err := nr.LoadAndRender(context.Background(), doc)
	assert.Nil(t, err)
	assert.Equal(t, logic.StateEmpty, outcome.State)
	assert.Equal(t, "No notes found.", doc.Find("#board").Text())
}

func TestRenderContainerIdNotValidSelector(t *testing.T) {
	for _, id := range []string{"notes.list", "1notes", "a:b", `we"ird`} {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockILogger(ctrl)
		mockFetcher := mocks.NewMockINotesFetcher(ctrl)
		mockMetrics := mocks.NewMockIMetrics(ctrl)
		test.StubLogger(mockLogger)
		test.StubMetrics(mockMetrics)
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(&logic.FetchResult{Notes: nil}, nil).Times(1)

		cfg := &shared.Config{ContainerId: id}
		cfg.ApplyDefaults()
		nr := logic.NewNotesRenderer(cfg, mockLogger, mockFetcher, texts.NewTexts(), mockMetrics)

		page := `<html><body><div id="notes"></div><div id="` + html.EscapeString(id) + `"></div></body></html>`
		doc := mustParsePage(t, page)
		outcome, err := nr.LoadAndRender(context.Background(), doc)
		assert.Nil(t, err, id)
		assert.Equal(t, logic.StateEmpty, outcome.State, id)
		assert.Equal(t, "No notes found.", logic.FindContainer(doc, id).Text(), id)
		assert.Equal(t, "", doc.Find("#notes").Text(), id)
		ctrl.Finish()
	}
}
