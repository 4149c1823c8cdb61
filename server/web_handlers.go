package server

import (
	"fmt"
	"net/http"
	"notes_board/logic"
	"notes_board/shared"
)

type webHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	pages   IPageBuilder
	metrics logic.IMetrics
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	pages IPageBuilder,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		pages:   pages,
		metrics: metrics,
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.getNotesFragment(w, r) }},
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getRoot(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webHandlerGroup) getRoot(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("root")
	defer obs.Finish()

	doc, _, err := hg.pages.BuildNotesPage(r.Context())
	if err != nil {
		hg.logger.Errorf("Failed to render page: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	htm, err := doc.Html()
	if err != nil {
		hg.logger.Errorf("Failed to serialize page: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, htm)
}

func (hg *webHandlerGroup) getNotesFragment(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("notes")
	defer obs.Finish()

	doc, _, err := hg.pages.BuildNotesPage(r.Context())
	if err != nil {
		hg.logger.Errorf("Failed to render notes fragment: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	htm, err := logic.FindContainer(doc, hg.cfg.ContainerId).Html()
	if err != nil {
		hg.logger.Errorf("Failed to serialize notes fragment: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, htm)
}
