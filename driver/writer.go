package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
)

// TextWriter prints one result per line in canonical form and the summary
// as a last line.
type TextWriter struct {
	W io.Writer
}

func (t *TextWriter) Write(r *Result) error {
	_, err := fmt.Fprintln(t.W, formatValue(r.Value))
	return err
}

func (t *TextWriter) Summary(s *Summary) error {
	_, err := fmt.Fprintf(t.W, "commands=%d checksum=%d elapsed=%s\n", s.Commands, s.Checksum, s.Elapsed)
	return err
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []int64:
		parts := make([]string, len(v))
		for i, id := range v {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprint(value)
}

// JSONWriter prints one JSON object per line.
type JSONWriter struct {
	W io.Writer
}

func (j *JSONWriter) Write(r *Result) error {
	return j.encode(r)
}

func (j *JSONWriter) Summary(s *Summary) error {
	return j.encode(map[string]any{"summary": s})
}

func (j *JSONWriter) encode(v any) error {
	err := json.MarshalWrite(j.W, v, json.Deterministic(true))
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	_, err = io.WriteString(j.W, "\n")
	return err
}

// NewWriter returns the writer for format: "text" or "json".
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch format {
	case "", "text":
		return &TextWriter{W: w}, nil
	case "json":
		return &JSONWriter{W: w}, nil
	}
	return nil, fmt.Errorf("unknown format '%s'", format)
}
