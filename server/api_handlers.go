package server

import (
	"net/http"
	"notes_board/dto"
	"notes_board/logic"
	"notes_board/shared"
	"notes_board/texts"
)

type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	fetcher logic.INotesFetcher
	txt     texts.ITexts
	metrics logic.IMetrics
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	fetcher logic.INotesFetcher,
	txt texts.ITexts,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetcher,
		txt:     txt,
		metrics: metrics,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.getNotes(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

type notesResp struct {
	Envelope dto.Envelope `json:"envelope"`
	Notes    []dto.Note   `json:"notes"`
}

// Relays the validated notes from the remote endpoint in one fixed shape.
func (hg *apiHandlerGroup) getNotes(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api-notes")
	defer obs.Finish()

	res, err := hg.fetcher.Fetch(r.Context())
	if err != nil {
		hg.logger.Warnf("GET /api/notes: upstream failed: %v", err)
		writeErrorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	if res.Mismatch != nil {
		hg.logger.Warnf("GET /api/notes: unexpected upstream shape: %s", res.Mismatch)
		writeErrorResponse(w, hg.txt.Get(texts.Malformed), http.StatusBadGateway)
		return
	}
	writeJsonResponse(hg.logger, w, &notesResp{res.Envelope, res.Notes})
}
