package docstore

import (
	"time"

	store "smart-timetable/pkg/docstore"
)

// Decoded JSON documents carry float64 numbers, []any slices, and RFC3339
// strings for timestamps. The helpers below read fields defensively with a
// fallback, mirroring how loosely-typed documents are consumed.

func docString(doc store.Document, field, fallback string) string {
	if v, ok := doc[field].(string); ok && v != "" {
		return v
	}
	return fallback
}

func docInt(doc store.Document, field string, fallback int) int {
	switch v := doc[field].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func docTime(doc store.Document, field string) *time.Time {
	s, ok := doc[field].(string)
	if !ok || s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func docStrings(doc store.Document, field string) []string {
	switch raw := doc[field].(type) {
	case []string:
		// Freshly built documents carry tags as []string; only documents
		// decoded from JSON carry []any.
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func timeField(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
