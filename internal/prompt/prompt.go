// Package prompt builds the model messages for an idea report request
// from the prompt set held by an assets.Loader.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-ideagen/internal/assets"
)

// ErrTemplate indicates a prompt template failed to parse or execute.
var ErrTemplate = errors.New("prompt template error")

// Params are the values substituted into the user prompt.
type Params struct {
	Niche      string
	Budget     string
	Market     string
	IdeasCount int
	Short      bool
}

// Builder renders prompts from a parsed prompt set. Safe for concurrent use.
type Builder struct {
	system string
	user   *template.Template
	notice *template.Template
}

// NewBuilder loads the prompt set from loader and parses its templates.
func NewBuilder(loader assets.Loader) (*Builder, error) {
	set, err := assets.LoadPromptSet(loader)
	if err != nil {
		return nil, err
	}

	user, err := template.New(assets.PromptUser).Option("missingkey=error").Parse(set.User)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, assets.PromptUser, err)
	}
	if _, err := user.New(assets.PromptShort).Parse(strings.TrimSpace(set.Short)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, assets.PromptShort, err)
	}

	notice, err := template.New(assets.PromptNotice).Parse(set.Notice)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, assets.PromptNotice, err)
	}

	return &Builder{
		system: strings.TrimSpace(set.System),
		user:   user,
		notice: notice,
	}, nil
}

// Build returns the system and user messages for p.
func (b *Builder) Build(p Params) (system, user string, err error) {
	var sb strings.Builder
	if err := b.user.ExecuteTemplate(&sb, assets.PromptUser, p); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return b.system, strings.TrimSpace(sb.String()), nil
}

// Notice renders the markdown shown to the user when generation fails.
func (b *Builder) Notice(cause error) (string, error) {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}

	var sb strings.Builder
	if err := b.notice.Execute(&sb, struct{ Error string }{msg}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
