package logic

import (
	"github.com/charmbracelet/lipgloss"
	"notes_board/shared"
	"notes_board/texts"
	"strings"
)

var (
	termTitleStyle = lipgloss.NewStyle().Bold(true)
	termNoteStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	termMsgStyle   = lipgloss.NewStyle().Faint(true)
	termErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TermRenderer renders the outcome of a fetch as styled terminal text,
// with the same messages and fallbacks as the page container.
type TermRenderer struct {
	txt texts.ITexts
}

func NewTermRenderer(txt texts.ITexts) *TermRenderer {
	return &TermRenderer{txt}
}

// Render returns the terminal view and the state it represents.
func (tr *TermRenderer) Render(res *FetchResult, err error) (string, RenderState) {

	if err != nil {
		msg := tr.txt.WithVals(texts.LoadError, map[string]string{"error": err.Error()})
		return termErrorStyle.Render(shared.StripControl(msg)), StateError
	}
	if res.Mismatch != nil {
		return termErrorStyle.Render(tr.txt.Get(texts.Malformed)), StateMalformed
	}
	if len(res.Notes) == 0 {
		return termMsgStyle.Render(tr.txt.Get(texts.NoNotes)), StateEmpty
	}

	untitled := tr.txt.Get(texts.Untitled)
	noContent := tr.txt.Get(texts.NoContent)
	blocks := make([]string, 0, len(res.Notes))
	for _, note := range res.Notes {
		title, content := withFallbacks(note, untitled, noContent)
		body := termTitleStyle.Render(shared.StripControl(title)) + "\n" + shared.StripControl(content)
		blocks = append(blocks, termNoteStyle.Render(body))
	}
	return strings.Join(blocks, "\n"), StateRendered
}
