package audit

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// AuditEvent is one structured log line describing what the engine did
// with a single input record.
type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	EventType string    `json:"event_type"`
	Tx        uint32    `json:"tx"`
	Client    uint16    `json:"client"`
	Status    string    `json:"status"`
	Details   any       `json:"details,omitempty"`
}

// AuditLogger writes JSON audit events through the standard logger,
// which targets stderr so stdout stays a clean snapshot.
// Events are observability only; disabling the logger never changes
// account state.
type AuditLogger struct {
	runID   string
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{
		runID:   uuid.NewString(),
		enabled: enabled,
	}
}

// RunID identifies all events emitted by this engine run.
func (a *AuditLogger) RunID() string {
	return a.runID
}

// LogApplied records a successfully applied transaction.
func (a *AuditLogger) LogApplied(operation string, client uint16, tx uint32) {
	a.log(AuditEvent{
		Timestamp: time.Now(),
		RunID:     a.runID,
		EventType: operation,
		Tx:        tx,
		Client:    client,
		Status:    "APPLIED",
	})
}

// LogRejected records a ledger rejection. The record is terminal; the
// run continues with the next one.
func (a *AuditLogger) LogRejected(operation string, client uint16, tx uint32, err error) {
	a.log(AuditEvent{
		Timestamp: time.Now(),
		RunID:     a.runID,
		EventType: operation,
		Tx:        tx,
		Client:    client,
		Status:    "REJECTED",
		Details:   map[string]string{"reason": err.Error()},
	})
}

// LogSkipped records a structurally malformed record that never reached
// the ledger.
func (a *AuditLogger) LogSkipped(rawType string, err error) {
	a.log(AuditEvent{
		Timestamp: time.Now(),
		RunID:     a.runID,
		EventType: "SKIP",
		Status:    "SKIPPED",
		Details: map[string]string{
			"type":   rawType,
			"reason": err.Error(),
		},
	})
}

func (a *AuditLogger) log(event AuditEvent) {
	if !a.enabled {
		return
	}
	data, _ := json.Marshal(event)
	log.Printf("AUDIT: %s", string(data))
}
