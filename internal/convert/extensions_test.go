package convert

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Handler marker types for registry tests. Only the type names matter.
type (
	fakePdfConverter   struct{}
	fakeDocxConverter  struct{}
	fakeDocConverter   struct{}
	fakeXlsxConverter  struct{}
	fakeHTMLConverter  struct{}
	fakeImageConverter struct{}
	unknownConverter   struct{}
)

// plainEngine implements Engine without a handler registry.
type plainEngine struct{}

func (plainEngine) Convert(context.Context, string) (*Result, error) {
	return PlainText(""), nil
}

// registryEngine is a plainEngine with a fixed handler list.
type registryEngine struct {
	plainEngine
	handlers []any
}

func (e registryEngine) Handlers() []any { return e.handlers }

func TestSupportedExtensions(t *testing.T) {
	tests := []struct {
		name        string
		engine      Engine
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "engine without registry yields always-supported set",
			engine:      plainEngine{},
			wantPresent: []string{".yaml", ".yml", ".tsv", ".rtf", ".eml", ".tex"},
			wantAbsent:  []string{".pdf", ".docx"},
		},
		{
			name:        "empty registry yields always-supported set",
			engine:      registryEngine{},
			wantPresent: []string{".yaml", ".yml", ".tsv", ".rtf", ".eml", ".tex"},
			wantAbsent:  []string{".pdf"},
		},
		{
			name: "pdf handler",
			engine: registryEngine{
				handlers: []any{fakePdfConverter{}},
			},
			wantPresent: []string{".pdf", ".yaml"},
			wantAbsent:  []string{".docx", ".html"},
		},
		{
			name: "docx handler does not register .doc",
			engine: registryEngine{
				handlers: []any{fakeDocxConverter{}},
			},
			wantPresent: []string{".docx"},
			wantAbsent:  []string{".doc"},
		},
		{
			name: "doc handler registers only .doc",
			engine: registryEngine{
				handlers: []any{fakeDocConverter{}},
			},
			wantPresent: []string{".doc"},
			wantAbsent:  []string{".docx"},
		},
		{
			name: "xlsx handler does not register .xls",
			engine: registryEngine{
				handlers: []any{fakeXlsxConverter{}},
			},
			wantPresent: []string{".xlsx"},
			wantAbsent:  []string{".xls"},
		},
		{
			name: "multi-extension handlers",
			engine: registryEngine{
				handlers: []any{fakeHTMLConverter{}, fakeImageConverter{}},
			},
			wantPresent: []string{".html", ".htm", ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"},
		},
		{
			name: "unrecognized handler contributes nothing",
			engine: registryEngine{
				handlers: []any{unknownConverter{}},
			},
			wantPresent: []string{".yaml"},
			wantAbsent:  []string{".pdf", ".zip"},
		},
		{
			name: "pointer handlers are matched too",
			engine: registryEngine{
				handlers: []any{&fakePdfConverter{}},
			},
			wantPresent: []string{".pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exts := SupportedExtensions(tt.engine)

			assert.True(t, sort.StringsAreSorted(exts), "extensions must be sorted: %v", exts)
			seen := make(map[string]bool)
			for _, ext := range exts {
				assert.False(t, seen[ext], "duplicate extension %s", ext)
				seen[ext] = true
			}

			for _, want := range tt.wantPresent {
				assert.Contains(t, exts, want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, exts, absent)
			}
		})
	}
}

func TestHandlerName(t *testing.T) {
	assert.Equal(t, "fakepdfconverter", handlerName(fakePdfConverter{}))
	assert.Equal(t, "fakepdfconverter", handlerName(&fakePdfConverter{}))
	assert.Equal(t, "string", handlerName("raw"))
}
