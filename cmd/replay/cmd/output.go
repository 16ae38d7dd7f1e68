package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ssargent/replaydb/pkg/codec"
	"github.com/ssargent/replaydb/pkg/state"
)

// printRecord prints one timestamped key/value mapping, either on a
// single line or in the multi-line pretty form.
func printRecord(out io.Writer, elapsed codec.Uint128, fields map[string]state.Value, pretty bool) {
	if pretty {
		fmt.Fprintf(out, "---- %s ----------\n", elapsed)
		for _, key := range sortedKeys(fields) {
			fmt.Fprintf(out, "%s: %s\n", key, formatValue(fields[key]))
		}
		return
	}

	parts := make([]string, 0, len(fields))
	for _, key := range sortedKeys(fields) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, formatValue(fields[key])))
	}
	fmt.Fprintf(out, "%s %s\n", elapsed, strings.Join(parts, " "))
}

func formatValue(v state.Value) string {
	switch v := v.(type) {
	case nil:
		return "<deleted>"
	case state.Scalar:
		return fmt.Sprintf("%v", v.Data)
	case state.Mapping:
		parts := make([]string, 0, len(v))
		for _, key := range sortedKeys(v) {
			parts = append(parts, fmt.Sprintf("%s: %s", key, formatValue(v[key])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys[M ~map[string]state.Value](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
