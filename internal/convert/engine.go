// Package convert defines the contract between the HTTP layer and the
// external document-to-markdown conversion engine, plus the heuristics for
// advertising which file formats that engine supports.
package convert

import (
	"context"
	"errors"
	"fmt"
)

// Engine is the external conversion collaborator. Implementations take a path
// to a staged file and return whatever shape of result the underlying tool
// produces; Result.Normalize reduces it to plain text.
type Engine interface {
	Convert(ctx context.Context, path string) (*Result, error)
}

// HandlerRegistry is optionally implemented by engines that can enumerate
// their registered format handlers. Discovery treats its absence as an empty
// registry, never as an error.
type HandlerRegistry interface {
	Handlers() []any
}

// ErrUnexpectedShape is returned by Normalize when the converter produced a
// result that cannot be interpreted as text.
var ErrUnexpectedShape = errors.New("conversion result has an unexpected shape")

// Result carries a converter's output. Upstream tools have been observed to
// return a bare string, an object with a text or markdown attribute, or an
// ordered sequence; engines populate whichever field matches their native
// shape and leave the rest zero.
type Result struct {
	// Plain is set when the converter returned the text directly.
	Plain *string
	// Text is set when the converter returned an object with a text field.
	Text *string
	// Markdown is set when the converter returned an object with a markdown field.
	Markdown *string
	// Sequence is set when the converter returned an ordered collection;
	// the last element is taken when it is a string.
	Sequence []any
	// Value holds anything that fits none of the above.
	Value any
}

// Normalize reduces a result to a single plain-text value. The variants are
// tried in a fixed order and the first usable one wins; a nil result is the
// only hard failure. Anything unrecognized is stringified rather than
// rejected, since callers rely on that permissiveness.
func (r *Result) Normalize() (string, error) {
	if r == nil {
		return "", ErrUnexpectedShape
	}
	if r.Plain != nil {
		return *r.Plain, nil
	}
	if r.Text != nil {
		return *r.Text, nil
	}
	if r.Markdown != nil {
		return *r.Markdown, nil
	}
	if n := len(r.Sequence); n > 0 {
		if s, ok := r.Sequence[n-1].(string); ok {
			return s, nil
		}
	}
	return fmt.Sprint(r.Value), nil
}

// PlainText wraps a bare string result.
func PlainText(s string) *Result {
	return &Result{Plain: &s}
}

// MarkdownText wraps a result carrying a markdown field.
func MarkdownText(s string) *Result {
	return &Result{Markdown: &s}
}
