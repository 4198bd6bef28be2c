package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
)

const streamBufferSize = 64

// readSSE consumes a server-sent-events body, invoking fn for each data
// payload. fn may return io.EOF to stop consumption cleanly.
func readSSE(r io.Reader, fn func(data string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if err := fn(data); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// emit delivers an event unless the consumer's context is gone.
// Returns false when delivery failed and the producer should stop.
func emit(ctx context.Context, ch chan<- StreamEvent, ev StreamEvent) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// encodeArguments renders a tool-call argument map as the JSON string the
// OpenAI wire format expects. A nil map encodes as "{}".
func encodeArguments(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// decodeArguments parses an accumulated tool-call argument buffer. Malformed
// buffers degrade to {"raw": <string>} rather than failing the whole turn.
func decodeArguments(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"raw": raw}
	}
	return args
}
