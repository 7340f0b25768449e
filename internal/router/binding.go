package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Snickdx/project-graph/internal/types"
)

// Recognizable entities in question text: double- or single-quoted names,
// and ID-like tokens such as DK-002 or STK-004.
var (
	doubleQuoted = regexp.MustCompile(`"([^"]+)"`)
	singleQuoted = regexp.MustCompile(`'([^']+)'`)
	idToken      = regexp.MustCompile(`\b([A-Z]{2,}-\d+)\b`)
)

// bindParams resolves a template's required parameters from entities
// recognizable in the raw question text. Entities are consumed left to
// right; parameters named "id" (or "*_id") prefer ID tokens, everything
// else prefers quoted names. Any unresolved parameter fails with
// BINDING_FAILED so the router can demote to fallback instead of executing
// a malformed query.
func bindParams(params []string, rawText string) (map[string]any, error) {
	bindings := make(map[string]any, len(params))
	if len(params) == 0 {
		return bindings, nil
	}

	quoted := extractQuoted(rawText)
	ids := extractIDs(rawText)

	for _, param := range params {
		var value string
		var ok bool

		if wantsID(param) {
			value, ids, ok = take(ids)
			if !ok {
				// An id parameter can still be satisfied by a quoted token.
				value, quoted, ok = take(quoted)
			}
		} else {
			value, quoted, ok = take(quoted)
			if !ok {
				value, ids, ok = take(ids)
			}
		}

		if !ok {
			return nil, types.NewError(types.BINDING_FAILED,
				fmt.Sprintf("no recognizable entity in question for required parameter $%s", param))
		}
		bindings[param] = value
	}

	return bindings, nil
}

// extractQuoted returns quoted names in order of appearance.
func extractQuoted(text string) []string {
	var out []string
	for _, m := range doubleQuoted.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	for _, m := range singleQuoted.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// extractIDs returns ID-like tokens (e.g. DK-002) in order of appearance.
func extractIDs(text string) []string {
	var out []string
	for _, m := range idToken.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// wantsID reports whether a parameter name refers to an identifier.
func wantsID(param string) bool {
	lower := strings.ToLower(param)
	return lower == "id" || strings.HasSuffix(lower, "_id")
}

// take pops the first element of a slice, if any.
func take(values []string) (string, []string, bool) {
	if len(values) == 0 {
		return "", values, false
	}
	return values[0], values[1:], true
}
