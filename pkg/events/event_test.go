package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "analysis-123"
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	event := NewBaseEvent("AnalysisCompleted", aggregateID, "Analysis", at)

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "AnalysisCompleted" {
		t.Errorf("expected event type %q, got %q", "AnalysisCompleted", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Analysis" {
		t.Errorf("expected aggregate type %q, got %q", "Analysis", event.AggregateType())
	}

	if !event.OccurredAt().Equal(at) || event.OccurredAt().Location() != time.UTC {
		t.Errorf("expected occurredAt %v in UTC, got %v", at, event.OccurredAt())
	}
}

func TestNewBaseEventGeneratesUniqueIDs(t *testing.T) {
	a := NewBaseEvent("E", "agg", "Aggregate", time.Now())
	b := NewBaseEvent("E", "agg", "Aggregate", time.Now())

	if a.EventID() == b.EventID() {
		t.Error("expected distinct event IDs")
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventJSONEnvelope(t *testing.T) {
	event := NewBaseEvent("AnalysisCompleted", "agg-789", "Analysis", time.Now())

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	for _, key := range []string{"event_id", "event_type", "aggregate_id", "aggregate_type", "occurred_at"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("expected key %q in payload", key)
		}
	}
	if parsed["event_type"] != "AnalysisCompleted" {
		t.Errorf("expected event_type %q, got %v", "AnalysisCompleted", parsed["event_type"])
	}
}
