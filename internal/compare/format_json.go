package compare

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter renders a comparison as JSON, suitable for piping into
// other tooling.
type JSONFormatter struct {
	Pretty bool
}

// Format serializes the full comparison, base and alternatives included.
func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(set, "", "  ")
	} else {
		data, err = json.Marshal(set)
	}
	if err != nil {
		return "", fmt.Errorf("encoding comparison: %w", err)
	}
	return string(data), nil
}
