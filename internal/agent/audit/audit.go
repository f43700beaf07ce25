// Package audit writes a JSONL trail of everything a crew session does:
// which crew ran, which specialists were activated, which tools they
// called, and what the LLM cost. One file per session, replayable later.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Kind classifies an audit record.
type Kind string

const (
	KindSessionStart   Kind = "session_start"
	KindSessionEnd     Kind = "session_end"
	KindTaskDispatched Kind = "task_dispatched"
	KindUserMessage    Kind = "user_message"
	KindAgentActivated Kind = "agent_activated"
	KindToolStart      Kind = "tool_start"
	KindToolComplete   Kind = "tool_complete"
	KindAgentText      Kind = "agent_text"
	KindCrewComplete   Kind = "crew_complete"
	KindError          Kind = "error"
	KindLLMRequest     Kind = "llm_request"
	KindSessionMetrics Kind = "session_metrics"
	KindEventReceived  Kind = "event_received"
)

// Record is one line of the audit trail. Crew is set once the session
// starts and carried on every subsequent record so a trail can be
// filtered by crew even after mid-session switches.
type Record struct {
	Timestamp time.Time              `json:"timestamp"`
	Kind      Kind                   `json:"kind"`
	SessionID string                 `json:"session_id"`
	Crew      string                 `json:"crew,omitempty"`
	Agent     string                 `json:"agent,omitempty"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
}

// Logger appends records to a JSONL file, one per line, flushed on
// every write so a crash loses at most the record being written.
type Logger struct {
	file      *os.File
	writer    *bufio.Writer
	mu        sync.Mutex
	sessionID string
	crew      string
}

// NewLogger opens (or creates) the audit file at filePath. Records for
// an existing file are appended, so resuming a session extends its trail.
func NewLogger(filePath, sessionID string) (*Logger, error) {
	// #nosec G304 -- the audit path is operator-configured
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log file: %w", err)
	}

	return &Logger{
		file:      file,
		writer:    bufio.NewWriter(file),
		sessionID: sessionID,
	}, nil
}

func (l *Logger) emit(kind Kind, agent string, detail map[string]interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(Record{
		Timestamp: time.Now(),
		Kind:      kind,
		SessionID: l.sessionID,
		Crew:      l.crew,
		Agent:     agent,
		Detail:    detail,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	if _, err := l.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	if err := l.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush audit log: %w", err)
	}
	return nil
}

// LogSessionStart records the model and crew the session starts with.
// The crew name is remembered and stamped on every later record.
func (l *Logger) LogSessionStart(model, crew string) error {
	l.mu.Lock()
	l.crew = crew
	l.mu.Unlock()

	return l.emit(KindSessionStart, "", map[string]interface{}{
		"model": model,
	})
}

// LogTaskDispatched records a crew task handed to the coordinator, with
// the operation name and the specialist it targets.
func (l *Logger) LogTaskDispatched(operation, agentName string) error {
	return l.emit(KindTaskDispatched, agentName, map[string]interface{}{
		"operation": operation,
	})
}

// LogUserMessage records a user input message.
func (l *Logger) LogUserMessage(message string) error {
	return l.emit(KindUserMessage, "", map[string]interface{}{
		"message": message,
	})
}

// LogAgentActivated records a specialist becoming the active agent.
func (l *Logger) LogAgentActivated(agentName string) error {
	return l.emit(KindAgentActivated, agentName, nil)
}

// LogToolStart records a tool call with its arguments.
func (l *Logger) LogToolStart(agentName, toolName string, args map[string]interface{}) error {
	return l.emit(KindToolStart, agentName, map[string]interface{}{
		"tool_name": toolName,
		"args":      args,
	})
}

// LogToolComplete records a finished tool call with its outcome.
func (l *Logger) LogToolComplete(agentName, toolName string, success bool, duration time.Duration, result interface{}) error {
	return l.emit(KindToolComplete, agentName, map[string]interface{}{
		"tool_name":   toolName,
		"success":     success,
		"duration_ms": duration.Milliseconds(),
		"result":      result,
	})
}

// LogAgentText records text produced by an agent. isFinal marks the
// crew's final answer as opposed to intermediate reasoning.
func (l *Logger) LogAgentText(agentName, content string, isFinal bool) error {
	return l.emit(KindAgentText, agentName, map[string]interface{}{
		"content":  content,
		"is_final": isFinal,
	})
}

// LogPipelineComplete records the crew finishing a turn.
func (l *Logger) LogPipelineComplete(duration time.Duration) error {
	return l.emit(KindCrewComplete, "", map[string]interface{}{
		"duration_ms": duration.Milliseconds(),
	})
}

// LogError records a processing error.
func (l *Logger) LogError(agentName string, err error) error {
	return l.emit(KindError, agentName, map[string]interface{}{
		"error": err.Error(),
	})
}

// LogSessionEnd records the end of the session.
func (l *Logger) LogSessionEnd() error {
	return l.emit(KindSessionEnd, "", nil)
}

// LogLLMRequest records one LLM round trip with its token usage.
func (l *Logger) LogLLMRequest(provider, model string, inputTokens, outputTokens int, stopReason string) error {
	return l.emit(KindLLMRequest, "", map[string]interface{}{
		"provider":      provider,
		"model":         model,
		"input_tokens":  inputTokens,
		"output_tokens": outputTokens,
		"total_tokens":  inputTokens + outputTokens,
		"stop_reason":   stopReason,
	})
}

// LogSessionMetrics records the session's aggregate LLM usage.
func (l *Logger) LogSessionMetrics(totalRequests, totalInputTokens, totalOutputTokens int) error {
	return l.emit(KindSessionMetrics, "", map[string]interface{}{
		"total_llm_requests":  totalRequests,
		"total_input_tokens":  totalInputTokens,
		"total_output_tokens": totalOutputTokens,
		"total_tokens":        totalInputTokens + totalOutputTokens,
	})
}

// LogEventReceived records a raw runner event, for replay debugging.
func (l *Logger) LogEventReceived(eventID, author string, details map[string]interface{}) error {
	detail := map[string]interface{}{
		"event_id": eventID,
		"author":   author,
	}
	for k, v := range details {
		detail[k] = v
	}
	return l.emit(KindEventReceived, author, detail)
}

// Close flushes pending records and closes the file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	flushErr := l.writer.Flush()
	closeErr := l.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush audit log: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close audit log file: %w", closeErr)
	}
	return nil
}
