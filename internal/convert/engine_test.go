package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestResultNormalize(t *testing.T) {
	tests := []struct {
		name    string
		result  *Result
		want    string
		wantErr bool
	}{
		{
			name:   "plain string",
			result: PlainText("# Report\n\nBody"),
			want:   "# Report\n\nBody",
		},
		{
			name:    "nil result",
			result:  nil,
			wantErr: true,
		},
		{
			name:   "text field",
			result: &Result{Text: strptr("text content")},
			want:   "text content",
		},
		{
			name:   "markdown field",
			result: MarkdownText("## md content"),
			want:   "## md content",
		},
		{
			name:   "text field wins over markdown",
			result: &Result{Text: strptr("from text"), Markdown: strptr("from markdown")},
			want:   "from text",
		},
		{
			name:   "plain wins over everything",
			result: &Result{Plain: strptr("plain"), Text: strptr("text"), Markdown: strptr("md")},
			want:   "plain",
		},
		{
			name:   "sequence takes last string element",
			result: &Result{Sequence: []any{"first", "second", "last"}},
			want:   "last",
		},
		{
			name:   "sequence with non-string tail stringifies value",
			result: &Result{Sequence: []any{"first", 42}, Value: "raw"},
			want:   "raw",
		},
		{
			name:   "empty sequence falls through",
			result: &Result{Sequence: []any{}, Value: 7},
			want:   "7",
		},
		{
			name:   "opaque value stringified",
			result: &Result{Value: struct{ N int }{N: 3}},
			want:   "{3}",
		},
		{
			name:   "empty result stringifies nil value",
			result: &Result{},
			want:   "<nil>",
		},
		{
			name:   "empty plain string is still a success",
			result: PlainText(""),
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.Normalize()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
