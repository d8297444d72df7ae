package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/futurehub/horizon/internal/horizon"
)

// extractJSON strips markdown code fences the model tends to wrap its JSON
// output with.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// decodeResponse parses the model output into out. The intermediate map plus
// a weakly typed mapstructure decode tolerates the usual sloppiness (numbers
// as strings, ints as floats) without hand-written coercers per field.
func decodeResponse(raw string, out any) error {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return fmt.Errorf("parse gemini response: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build response decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func parseLevel(raw string) (horizon.Level, bool) {
	switch horizon.Level(strings.ToLower(strings.TrimSpace(raw))) {
	case horizon.LevelBeginner:
		return horizon.LevelBeginner, true
	case horizon.LevelIntermediate:
		return horizon.LevelIntermediate, true
	case horizon.LevelAdvanced:
		return horizon.LevelAdvanced, true
	default:
		return "", false
	}
}
