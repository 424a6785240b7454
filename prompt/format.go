package prompt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fitcoach/metrics"
)

// FormatSection renders a mapping as a titled, indented key tree:
//
//	=== Title ===
//	key: value
//	nested:
//	  inner: value
//
// Keys are sorted for stable output. Nested mappings, string lists and
// mapping lists indent recursively.
func FormatSection(title string, data map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", title)
	for _, k := range sortedKeys(data) {
		writeValue(&b, k, data[k], 0)
	}
	return b.String()
}

// FormatReport renders a full report in the canonical group order. Groups
// that were not computed render as bare headings.
func FormatReport(title string, r *metrics.Report) string {
	flat := r.Flatten()
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", title)
	for _, group := range metrics.GroupOrder {
		g, ok := flat[group]
		if !ok {
			continue
		}
		writeValue(&b, group, g, 0)
	}
	return b.String()
}

func writeValue(b *strings.Builder, key string, value any, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch v := value.(type) {
	case map[string]any:
		fmt.Fprintf(b, "%s%s:\n", prefix, key)
		for _, k := range sortedKeys(v) {
			writeValue(b, k, v[k], indent+1)
		}
	case map[string]float64:
		fmt.Fprintf(b, "%s%s:\n", prefix, key)
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeValue(b, k, v[k], indent+1)
		}
	case []string:
		if len(v) == 0 {
			fmt.Fprintf(b, "%s%s: (empty)\n", prefix, key)
			return
		}
		fmt.Fprintf(b, "%s%s:\n", prefix, key)
		for _, item := range v {
			fmt.Fprintf(b, "%s  - %s\n", prefix, item)
		}
	case []map[string]any:
		if len(v) == 0 {
			fmt.Fprintf(b, "%s%s: (empty)\n", prefix, key)
			return
		}
		fmt.Fprintf(b, "%s%s:\n", prefix, key)
		for i, item := range v {
			fmt.Fprintf(b, "%s  Item %d:\n", prefix, i+1)
			for _, k := range sortedKeys(item) {
				writeValue(b, k, item[k], indent+2)
			}
		}
	case float64:
		fmt.Fprintf(b, "%s%s: %s\n", prefix, key, formatFloat(v))
	case time.Time:
		fmt.Fprintf(b, "%s%s: %s\n", prefix, key, v.Format(time.RFC3339))
	default:
		fmt.Fprintf(b, "%s%s: %v\n", prefix, key, v)
	}
}

// formatFloat keeps prompt text compact: two decimals for large or tiny
// magnitudes, three in between.
func formatFloat(v float64) string {
	if v > 100 || v < 0.01 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
