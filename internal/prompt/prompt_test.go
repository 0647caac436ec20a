package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-ideagen/internal/assets"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()

	b, err := NewBuilder(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	params := Params{
		Niche:      "💰 Финтех",
		Budget:     "до $10k",
		Market:     "Россия/СНГ",
		IdeasCount: 3,
	}

	system, user, err := b.Build(params)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if system == "" {
		t.Error("Build() system prompt is empty")
	}
	for _, want := range []string{"Сгенерируй 3 идей", "Ниша: 💰 Финтех", "Бюджет: до $10k", "Целевой рынок: Россия/СНГ"} {
		if !strings.Contains(user, want) {
			t.Errorf("Build() user prompt missing %q:\n%s", want, user)
		}
	}
	if strings.Contains(user, "кратким") {
		t.Error("Build() detailed prompt should not contain the short instruction")
	}
}

func TestBuilder_BuildShort(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	_, user, err := b.Build(Params{Niche: "a", Budget: "b", Market: "c", IdeasCount: 4, Short: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(user, "кратким") {
		t.Errorf("Build() short prompt missing short instruction:\n%s", user)
	}
	if strings.Index(user, "кратким") > strings.Index(user, "Дай конкретные") {
		t.Error("short instruction should precede the closing line")
	}
}

func TestBuilder_Notice(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)

	tests := []struct {
		name  string
		cause error
		want  string
	}{
		{"error message", errors.New("timeout"), "timeout"},
		{"nil cause", nil, "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := b.Notice(tt.cause)
			if err != nil {
				t.Fatalf("Notice() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Notice() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

type stubLoader struct {
	prompts map[string]string
}

func (s stubLoader) LoadPrompt(name string) (string, error) {
	if p, ok := s.prompts[name]; ok {
		return p, nil
	}
	return "", assets.ErrPromptNotFound
}

func (s stubLoader) LoadSample(string) (string, error) { return "", assets.ErrSampleNotFound }

func (s stubLoader) LoadCatalog() (*assets.Catalog, error) { return nil, assets.ErrCatalogNotFound }

func TestNewBuilder_Errors(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		assets.PromptSystem: "sys",
		assets.PromptUser:   "{{.Niche}}",
		assets.PromptShort:  "short",
		assets.PromptNotice: "{{.Error}}",
	}

	with := func(name, content string) map[string]string {
		m := make(map[string]string, len(valid))
		for k, v := range valid {
			m[k] = v
		}
		if content == "" {
			delete(m, name)
		} else {
			m[name] = content
		}
		return m
	}

	tests := []struct {
		name    string
		prompts map[string]string
		wantErr error
	}{
		{"missing notice", with(assets.PromptNotice, ""), assets.ErrIncompletePromptSet},
		{"broken user template", with(assets.PromptUser, "{{.Niche"), ErrTemplate},
		{"broken short template", with(assets.PromptShort, "{{if}}"), ErrTemplate},
		{"broken notice template", with(assets.PromptNotice, "{{end}}"), ErrTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuilder(stubLoader{prompts: tt.prompts})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuilder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuilder_UnknownField(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(stubLoader{prompts: map[string]string{
		assets.PromptSystem: "sys",
		assets.PromptUser:   "{{.Unknown}}",
		assets.PromptShort:  "short",
		assets.PromptNotice: "{{.Error}}",
	}})
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	if _, _, err := b.Build(Params{}); !errors.Is(err, ErrTemplate) {
		t.Errorf("Build() error = %v, want ErrTemplate", err)
	}
}
