package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GeneratedProblem is the validated result of parsing the model's output.
type GeneratedProblem struct {
	ProblemText   string
	CorrectAnswer float64
}

// problemJSON tolerates models that return correct_answer as either a
// number or a quoted numeric string.
type problemJSON struct {
	ProblemText   string          `json:"problem_text"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
}

// ExtractJSON strips markdown code fences and surrounding commentary from
// raw model output, returning the substring between the first '{' and the
// last '}'. If no braces are found the cleaned text is returned as-is and
// left to the JSON decoder to reject.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		return cleaned[start : end+1]
	}
	return cleaned
}

// ParseGeneratedProblem turns raw model output into a validated problem.
// The model must have returned JSON with a non-empty problem_text and a
// finite numeric correct_answer; anything else is an error and no session
// should be created from it.
func ParseGeneratedProblem(raw string) (*GeneratedProblem, error) {
	var parsed problemJSON
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}

	problemText := strings.TrimSpace(parsed.ProblemText)
	if problemText == "" {
		return nil, fmt.Errorf("model did not return valid fields problem_text + correct_answer")
	}

	answer, err := parseNumericField(parsed.CorrectAnswer)
	if err != nil {
		return nil, fmt.Errorf("model did not return valid fields problem_text + correct_answer: %w", err)
	}

	return &GeneratedProblem{ProblemText: problemText, CorrectAnswer: answer}, nil
}

func parseNumericField(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing correct_answer")
	}

	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("correct_answer %q is not numeric", s)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("correct_answer %q is not finite", s)
	}
	return value, nil
}
