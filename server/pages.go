package server

import (
	"bytes"
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"html/template"
	"notes_board/logic"
	"notes_board/shared"
	"path/filepath"
	"strings"
	"time"
)

const notesPage = "notes"

// IPageBuilder produces the notes page: the page template with the notes
// renderer already run on its container.
type IPageBuilder interface {
	BuildNotesPage(ctx context.Context) (*goquery.Document, *logic.RenderOutcome, error)
}

type pageBuilder struct {
	cfg           *shared.Config
	logger        shared.ILogger
	renderer      logic.INotesRenderer
	version       string
	timestamp     string
	pageTemplates map[string]*template.Template
}

func NewPageBuilder(
	cfg *shared.Config,
	logger shared.ILogger,
	renderer logic.INotesRenderer,
) IPageBuilder {
	res := pageBuilder{
		cfg:           cfg,
		logger:        logger,
		renderer:      renderer,
		version:       shared.ReadVersion(cfg),
		timestamp:     fmt.Sprintf("%d", time.Now().UnixMilli()),
		pageTemplates: make(map[string]*template.Template),
	}
	res.initTemplates()
	return &res
}

func (pb *pageBuilder) initTemplates() {
	prefix := pb.cfg.WwwDir
	mainFiles, err := filepath.Glob(prefix + "main-*.tmpl")
	if err != nil {
		pb.logger.Errorf("Failed to list main-*.tmpl: %v", err)
		panic(err)
	}
	if len(mainFiles) == 0 {
		err = fmt.Errorf("no page templates found in %s", prefix)
		pb.logger.Errorf("%v", err)
		panic(err)
	}
	for _, fn := range mainFiles {
		mainName := strings.TrimPrefix(fn, prefix+"main-")
		mainName = strings.TrimSuffix(mainName, ".tmpl")
		var t *template.Template
		if t, err = pb.parsePageTemplate(mainName); err != nil {
			pb.logger.Errorf("Failed to parse page template: %s: %v", fn, err)
			panic(err)
		}
		pb.pageTemplates[mainName] = t
	}
}

func (pb *pageBuilder) parsePageTemplate(mainName string) (*template.Template, error) {
	prefix := pb.cfg.WwwDir
	t := template.New("master")
	var err error
	var tmplFiles []string
	if tmplFiles, err = filepath.Glob(prefix + "*.tmpl"); err != nil {
		return nil, err
	}
	for _, fn := range tmplFiles {
		if strings.HasPrefix(fn, prefix+"main-") && fn != prefix+"main-"+mainName+".tmpl" {
			continue
		}
		if _, err = t.ParseFiles(fn); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (pb *pageBuilder) getPageTemplate(mainName string) (*template.Template, *baseModel, error) {
	bm := baseModel{Version: pb.version}
	if pb.cfg.CachePageTemplates {
		t, found := pb.pageTemplates[mainName]
		if !found {
			return nil, nil, fmt.Errorf("page template not found: %s", mainName)
		}
		bm.Timestamp = pb.timestamp
		return t, &bm, nil
	}
	t, err := pb.parsePageTemplate(mainName)
	if err != nil {
		return nil, nil, err
	}
	bm.Timestamp = fmt.Sprintf("%d", time.Now().UnixMilli())
	return t, &bm, nil
}

type baseModel struct {
	Timestamp string
	Version   string
	Data      any
}

type notesPageModel struct {
	ContainerId string
}

// A failed notes load is part of the page; only template and container
// problems are errors.
func (pb *pageBuilder) BuildNotesPage(ctx context.Context) (*goquery.Document, *logic.RenderOutcome, error) {

	t, model, err := pb.getPageTemplate(notesPage)
	if err != nil {
		return nil, nil, err
	}
	model.Data = notesPageModel{ContainerId: pb.cfg.ContainerId}

	var buf bytes.Buffer
	if err = t.ExecuteTemplate(&buf, "index.tmpl", model); err != nil {
		return nil, nil, err
	}
	var doc *goquery.Document
	if doc, err = goquery.NewDocumentFromReader(&buf); err != nil {
		return nil, nil, err
	}
	var outcome *logic.RenderOutcome
	if outcome, err = pb.renderer.LoadAndRender(ctx, doc); err != nil {
		return nil, nil, err
	}
	pb.logger.Infof("Rendered notes page: %s, %d blocks", outcome.State, outcome.Blocks)
	return doc, outcome, nil
}
