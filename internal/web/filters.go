package web

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatNumber renders fan counts, ranks and similar large numbers with
// thousands separators. Upstream payloads are loosely typed, so the value
// may be nil, a float64 (how encoding/json decodes numbers), or a string.
// Anything that is not an integral number falls back to its plain string
// form. Never panics.
func FormatNumber(v any) string {
	if v == nil {
		return "0"
	}

	switch n := v.(type) {
	case float64:
		return englishPrinter.Sprintf("%d", int64(n))
	case int:
		return englishPrinter.Sprintf("%d", n)
	case int64:
		return englishPrinter.Sprintf("%d", n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return englishPrinter.Sprintf("%d", i)
		}
		if f, err := n.Float64(); err == nil {
			return englishPrinter.Sprintf("%d", int64(f))
		}
		return n.String()
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return englishPrinter.Sprintf("%d", i)
		}
		return n
	default:
		return fmt.Sprint(v)
	}
}

// FormatDuration renders a track duration in seconds as M:SS, e.g. 125
// becomes "2:05". nil and non-numeric values render as "0:00". Never panics.
func FormatDuration(v any) string {
	var secs int64

	switch n := v.(type) {
	case float64:
		secs = int64(n)
	case int:
		secs = int64(n)
	case int64:
		secs = n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return "0:00"
		}
		secs = int64(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return "0:00"
		}
		secs = i
	default:
		return "0:00"
	}

	if secs < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
