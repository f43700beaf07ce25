package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readTrail(t *testing.T, path string) []Record {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open audit file: %v", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("failed to unmarshal record %q: %v", scanner.Text(), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning audit file: %v", err)
	}
	return records
}

func TestLogger_SessionTrail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.audit.log")

	logger, err := NewLogger(logPath, "sess-crm-1")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	if err := logger.LogSessionStart("claude-sonnet-4-5-20250929", "crm"); err != nil {
		t.Errorf("LogSessionStart failed: %v", err)
	}
	if err := logger.LogUserMessage("show churn by segment"); err != nil {
		t.Errorf("LogUserMessage failed: %v", err)
	}
	if err := logger.LogTaskDispatched("build_sql", "query_builder_agent"); err != nil {
		t.Errorf("LogTaskDispatched failed: %v", err)
	}
	if err := logger.LogAgentActivated("query_builder_agent"); err != nil {
		t.Errorf("LogAgentActivated failed: %v", err)
	}
	if err := logger.LogToolStart("query_builder_agent", "build_sql", map[string]interface{}{"entity": "Contact"}); err != nil {
		t.Errorf("LogToolStart failed: %v", err)
	}
	if err := logger.LogToolComplete("query_builder_agent", "build_sql", true, 120*time.Millisecond, map[string]interface{}{"rows": 3}); err != nil {
		t.Errorf("LogToolComplete failed: %v", err)
	}
	if err := logger.LogAgentText("query_builder_agent", "here is the query", true); err != nil {
		t.Errorf("LogAgentText failed: %v", err)
	}
	if err := logger.LogError("query_builder_agent", errors.New("schema cache miss")); err != nil {
		t.Errorf("LogError failed: %v", err)
	}
	if err := logger.LogPipelineComplete(4 * time.Second); err != nil {
		t.Errorf("LogPipelineComplete failed: %v", err)
	}
	if err := logger.LogLLMRequest("anthropic", "claude-sonnet-4-5-20250929", 900, 250, "end_turn"); err != nil {
		t.Errorf("LogLLMRequest failed: %v", err)
	}
	if err := logger.LogSessionMetrics(3, 2700, 750); err != nil {
		t.Errorf("LogSessionMetrics failed: %v", err)
	}
	if err := logger.LogSessionEnd(); err != nil {
		t.Errorf("LogSessionEnd failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	records := readTrail(t, logPath)

	wantKinds := []Kind{
		KindSessionStart,
		KindUserMessage,
		KindTaskDispatched,
		KindAgentActivated,
		KindToolStart,
		KindToolComplete,
		KindAgentText,
		KindError,
		KindCrewComplete,
		KindLLMRequest,
		KindSessionMetrics,
		KindSessionEnd,
	}
	if len(records) != len(wantKinds) {
		t.Fatalf("expected %d records, got %d", len(wantKinds), len(records))
	}
	for i, want := range wantKinds {
		if records[i].Kind != want {
			t.Errorf("record %d: kind = %s, want %s", i, records[i].Kind, want)
		}
		if records[i].SessionID != "sess-crm-1" {
			t.Errorf("record %d: session = %s, want sess-crm-1", i, records[i].SessionID)
		}
		if records[i].Crew != "crm" {
			t.Errorf("record %d: crew = %q, want crm", i, records[i].Crew)
		}
	}

	if records[0].Detail["model"] != "claude-sonnet-4-5-20250929" {
		t.Errorf("session start model = %v", records[0].Detail["model"])
	}
	if records[2].Detail["operation"] != "build_sql" || records[2].Agent != "query_builder_agent" {
		t.Errorf("task dispatch = %+v", records[2])
	}
	if records[5].Detail["success"] != true {
		t.Errorf("tool complete success = %v", records[5].Detail["success"])
	}
	if records[6].Detail["is_final"] != true {
		t.Errorf("agent text is_final = %v", records[6].Detail["is_final"])
	}
	if records[7].Detail["error"] != "schema cache miss" {
		t.Errorf("error detail = %v", records[7].Detail["error"])
	}
	if records[9].Detail["total_tokens"] != float64(1150) {
		t.Errorf("llm request total_tokens = %v", records[9].Detail["total_tokens"])
	}
	if records[10].Detail["total_llm_requests"] != float64(3) {
		t.Errorf("session metrics requests = %v", records[10].Detail["total_llm_requests"])
	}
}

func TestLogger_CrewStampedAfterStart(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "trail.audit.log")

	logger, err := NewLogger(logPath, "sess-1")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	// Before session start the crew is unknown.
	if err := logger.LogUserMessage("hello"); err != nil {
		t.Fatalf("LogUserMessage failed: %v", err)
	}
	if err := logger.LogSessionStart("mock", "lifecycle"); err != nil {
		t.Fatalf("LogSessionStart failed: %v", err)
	}
	if err := logger.LogAgentActivated("sprint_planner_agent"); err != nil {
		t.Fatalf("LogAgentActivated failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	records := readTrail(t, logPath)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Crew != "" {
		t.Errorf("pre-start record crew = %q, want empty", records[0].Crew)
	}
	if records[1].Crew != "lifecycle" || records[2].Crew != "lifecycle" {
		t.Errorf("post-start crews = %q, %q, want lifecycle", records[1].Crew, records[2].Crew)
	}
}

func TestLogger_AppendOnResume(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "resume.audit.log")

	first, err := NewLogger(logPath, "session-1")
	if err != nil {
		t.Fatalf("failed to create first logger: %v", err)
	}
	if err := first.LogSessionStart("mock", "crm"); err != nil {
		t.Fatalf("LogSessionStart failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("failed to close first logger: %v", err)
	}

	second, err := NewLogger(logPath, "session-2")
	if err != nil {
		t.Fatalf("failed to create second logger: %v", err)
	}
	if err := second.LogSessionStart("mock", "lifecycle"); err != nil {
		t.Fatalf("LogSessionStart failed: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("failed to close second logger: %v", err)
	}

	records := readTrail(t, logPath)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].SessionID != "session-1" || records[0].Crew != "crm" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].SessionID != "session-2" || records[1].Crew != "lifecycle" {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.audit.log")

	logger, err := NewLogger(logPath, "sess-1")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 10; j++ {
				_ = logger.LogAgentActivated("schema_analyst_agent")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	records := readTrail(t, logPath)
	if len(records) != 100 {
		t.Errorf("expected 100 records, got %d", len(records))
	}
}
