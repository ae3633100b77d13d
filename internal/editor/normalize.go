package editor

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Parameters that hold an integer or an integer array. Callers routinely
// send "2" where 2 is meant; the coercion below repairs that before the
// strict decode so those calls are not rejected on a technicality.
var integerParams = map[string]bool{
	"insert_line": true,
}

var integerListParams = map[string]bool{
	"view_range":   true,
	"line_numbers": true,
	"line_range":   true,
	"delete_lines": true,
	"delete_range": true,
}

// DecodeRequest parses raw JSON into a Request. String-typed digits in the
// integer parameters are coerced first; anything still malformed after
// that fails with an invalid-parameter error.
func DecodeRequest(raw []byte) (*Request, error) {
	if coerced, err := coerceNumericParams(raw); err == nil {
		raw = coerced
	}
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &CommandError{
			Kind:    KindInvalidParam,
			Message: fmt.Sprintf("invalid arguments: %v", err),
		}
	}
	return &req, nil
}

// coerceNumericParams rewrites string digits into numbers for the
// parameters typed as integers. On any parse trouble it reports an error
// and the caller falls back to the original bytes.
func coerceNumericParams(raw []byte) ([]byte, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	changed := false
	for name, value := range args {
		switch {
		case integerParams[name]:
			if s, ok := value.(string); ok {
				if n, err := strconv.Atoi(s); err == nil {
					args[name] = n
					changed = true
				}
			}
		case integerListParams[name]:
			items, ok := value.([]any)
			if !ok {
				continue
			}
			for i, item := range items {
				if s, ok := item.(string); ok {
					if n, err := strconv.Atoi(s); err == nil {
						items[i] = n
						changed = true
					}
				}
			}
		}
	}
	if !changed {
		return raw, nil
	}
	return json.Marshal(args)
}
