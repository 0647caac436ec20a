package ideagen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

// recordingGenerator returns a fixed answer and records the last prompts.
type recordingGenerator struct {
	mu     sync.Mutex
	system string
	user   string
	answer string
	err    error
}

func (g *recordingGenerator) Generate(_ context.Context, system, user string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.system, g.user = system, user
	return g.answer, g.err
}

func newTestService(t *testing.T, gen Generator, opts ...ServiceOption) *Service {
	t.Helper()

	svc, err := NewService(gen, opts...)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

var validRequest = Request{Niche: "fintech", Budget: "micro", Market: "europe"}

func TestNewService_NilGenerator(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("NewService(nil) error = %v, want ErrNilGenerator", err)
	}
}

func TestNewService_DefaultLogger(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingGenerator{answer: "ok"})
	if svc.logger == nil {
		t.Fatal("logger is nil, want a discarding logger")
	}
	if _, err := svc.Generate(context.Background(), validRequest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestService_Generate_Success(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{answer: "# Идеи\n\n**FitBuddy** стоит 1500000 ₽"}
	svc := newTestService(t, gen)

	res, err := svc.Generate(context.Background(), validRequest)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if res.Failed || res.Err != nil {
		t.Fatalf("Generate() Failed = %v, Err = %v, want success", res.Failed, res.Err)
	}
	if res.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if res.Markdown != gen.answer {
		t.Errorf("Markdown = %q, want %q", res.Markdown, gen.answer)
	}
	want := "<b>Идеи</b>\n\n<b>FitBuddy</b> стоит 1 500 000 ₽"
	if len(res.Chunks) != 1 || res.Chunks[0] != want {
		t.Errorf("Chunks = %q, want [%q]", res.Chunks, want)
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if gen.system == "" {
		t.Error("system prompt was empty")
	}
	for _, want := range []string{"💰 Финтех", "$1,000 - $5,000", "Европа", "Сгенерируй 4 идей"} {
		if !strings.Contains(gen.user, want) {
			t.Errorf("user prompt missing %q:\n%s", want, gen.user)
		}
	}
}

func TestService_Generate_ShortFormat(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{answer: "ok"}
	svc := newTestService(t, gen)

	req := validRequest
	req.Format = ReportShort
	req.IdeasCount = 3
	req.Niche = "садоводство"
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	for _, want := range []string{"кратким", "Сгенерируй 3 идей", "Ниша: садоводство"} {
		if !strings.Contains(gen.user, want) {
			t.Errorf("user prompt missing %q:\n%s", want, gen.user)
		}
	}
}

func TestService_Generate_FailureNotice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gen     Generator
		wantErr error
		notice  string
	}{
		{
			name:    "generator error",
			gen:     &recordingGenerator{err: errors.New("status 502 & retry")},
			notice:  "status 502 &amp; retry",
			wantErr: nil,
		},
		{
			name:    "blank answer",
			gen:     &recordingGenerator{answer: "  \n"},
			notice:  ErrEmptyGeneration.Error(),
			wantErr: ErrEmptyGeneration,
		},
		{
			name: "generator panic",
			gen: GeneratorFunc(func(context.Context, string, string) (string, error) {
				panic("boom")
			}),
			notice:  "boom",
			wantErr: ErrGeneratorPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger := log.New(&logs)
			svc := newTestService(t, tt.gen, WithServiceLogger(logger))

			res, err := svc.Generate(context.Background(), validRequest)
			if err != nil {
				t.Fatalf("Generate() error = %v, want nil", err)
			}
			if !res.Failed || res.Err == nil {
				t.Fatalf("Generate() Failed = %v, Err = %v, want failure", res.Failed, res.Err)
			}
			if tt.wantErr != nil && !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("Result.Err = %v, want %v", res.Err, tt.wantErr)
			}

			joined := strings.Join(res.Chunks, "\n")
			if !strings.Contains(joined, "❌") || !strings.Contains(joined, tt.notice) {
				t.Errorf("notice chunks = %q, want error text %q", res.Chunks, tt.notice)
			}
			if !strings.Contains(logs.String(), "generation failed") {
				t.Errorf("log output %q missing failure record", logs.String())
			}
		})
	}
}

func TestService_Generate_Canceled(t *testing.T) {
	t.Parallel()

	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	svc := newTestService(t, gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.Generate(ctx, validRequest)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !res.IsCanceled() {
		t.Errorf("IsCanceled() = false, Err = %v", res.Err)
	}
}

func TestService_Generate_InvalidRequest(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{answer: "unused"}
	svc := newTestService(t, gen)

	_, err := svc.Generate(context.Background(), Request{Budget: "b", Market: "m"})
	if !errors.Is(err, ErrEmptyNiche) {
		t.Errorf("Generate() error = %v, want ErrEmptyNiche", err)
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if gen.user != "" {
		t.Error("generator should not be called for an invalid request")
	}
}

func TestService_WithRenderer(t *testing.T) {
	t.Parallel()

	r := NewRenderer(WithMaxChunkLength(10))
	svc := newTestService(t, &recordingGenerator{answer: "one two three four five"}, WithRenderer(r))

	if svc.Renderer() != r {
		t.Fatal("Renderer() did not return the configured renderer")
	}

	res, err := svc.Generate(context.Background(), validRequest)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Chunks) < 2 {
		t.Errorf("Chunks = %q, want several chunks with a 10 rune budget", res.Chunks)
	}
}

func TestService_WithAssetPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prompts"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prompts", "system.tmpl"), []byte("custom system"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	gen := &recordingGenerator{answer: "ok"}
	svc := newTestService(t, gen, WithAssetPath(dir))
	if _, err := svc.Generate(context.Background(), validRequest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if gen.system != "custom system" {
		t.Errorf("system prompt = %q, want custom override", gen.system)
	}
}

func TestNewService_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := NewService(&recordingGenerator{}, WithAssetPath(filepath.Join(t.TempDir(), "missing")))
	if err == nil {
		t.Fatal("NewService() with missing asset path should fail")
	}
}
