package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON pulls the outermost JSON object out of a model reply and decodes it
// into T. Replies often wrap the object in markdown fences or prose.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.IndexByte(response, '{')
	if start == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}
	end := strings.LastIndexByte(response, '}')
	if end < start {
		return zero, fmt.Errorf("no JSON object found in response (missing '}')")
	}

	raw := response[start : end+1]
	var result T
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, raw)
	}
	return result, nil
}
