package renderer

import (
	"html/template"
	"strings"
	"time"

	"portfolio.site/pkg/uploads"
)

// TemplateFuncs are registered on the html engine.
func TemplateFuncs() map[string]interface{} {
	return map[string]interface{}{
		"media":    uploads.URL,
		"date":     formatDate,
		"datetime": formatDateTime,
		"year":     func() int { return time.Now().Year() },
		"nl2br":    nl2br,
		"add":      func(a, b int) int { return a + b },
	}
}

func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	}
	return ""
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

// nl2br escapes s and turns newlines into <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
