package report

import (
	"github.com/charmbracelet/glamour"
)

// Render styles markdown for the terminal. wordWrap <= 0 keeps glamour's default.
func Render(markdown string, wordWrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
