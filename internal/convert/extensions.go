package convert

import (
	"fmt"
	"sort"
	"strings"
)

// markerRule maps a substring of a handler's type name to the extensions that
// handler accepts. Rules are checked in order and a rule with an `unless`
// guard is skipped when the more specific marker is also present, so a
// docx handler never registers .doc.
type markerRule struct {
	marker string
	unless string
	exts   []string
}

var markerRules = []markerRule{
	{marker: "pdf", exts: []string{".pdf"}},
	{marker: "docx", exts: []string{".docx"}},
	{marker: "doc", unless: "docx", exts: []string{".doc"}},
	{marker: "pptx", exts: []string{".pptx"}},
	{marker: "ppt", unless: "pptx", exts: []string{".ppt"}},
	{marker: "xlsx", exts: []string{".xlsx"}},
	{marker: "xls", unless: "xlsx", exts: []string{".xls"}},
	{marker: "csv", exts: []string{".csv"}},
	{marker: "html", exts: []string{".html", ".htm"}},
	{marker: "epub", exts: []string{".epub"}},
	{marker: "ipynb", exts: []string{".ipynb"}},
	{marker: "image", exts: []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"}},
	{marker: "audio", exts: []string{".mp3", ".wav", ".m4a", ".flac"}},
	{marker: "msg", exts: []string{".msg"}},
	{marker: "plaintext", exts: []string{".txt", ".md", ".rst", ".log"}},
	{marker: "zip", exts: []string{".zip"}},
	{marker: "rss", exts: []string{".xml", ".rss"}},
	{marker: "json", exts: []string{".json"}},
}

// alwaysSupported are advertised regardless of what the registry reports.
var alwaysSupported = []string{".yaml", ".yml", ".tsv", ".rtf", ".eml", ".tex"}

// fallbackExtensions is the static list used when introspection and the
// always-supported set together yield nothing.
var fallbackExtensions = []string{
	".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx",
	".txt", ".md", ".html", ".htm", ".csv", ".tsv", ".json",
	".xml", ".yaml", ".yml", ".ipynb", ".rst", ".tex", ".rtf",
	".eml", ".msg", ".epub", ".zip",
}

// SupportedExtensions derives the set of file extensions the engine is
// believed to handle, sorted ascending. Engines without an introspectable
// registry degrade to the always-supported set; this endpoint's data is
// best-effort and never errors.
func SupportedExtensions(e Engine) []string {
	set := make(map[string]struct{})

	if reg, ok := e.(HandlerRegistry); ok {
		for _, h := range reg.Handlers() {
			name := handlerName(h)
			for _, rule := range markerRules {
				if !strings.Contains(name, rule.marker) {
					continue
				}
				if rule.unless != "" && strings.Contains(name, rule.unless) {
					continue
				}
				for _, ext := range rule.exts {
					set[ext] = struct{}{}
				}
			}
		}
	}

	for _, ext := range alwaysSupported {
		set[ext] = struct{}{}
	}

	// Unreachable while alwaysSupported is non-empty; kept so an empty
	// result can never be advertised.
	if len(set) == 0 {
		for _, ext := range fallbackExtensions {
			set[ext] = struct{}{}
		}
	}

	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// handlerName returns the lowercased bare type name of a registered handler,
// with package qualifier and pointer stripped.
func handlerName(h any) string {
	name := fmt.Sprintf("%T", h)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(strings.TrimPrefix(name, "*"))
}
