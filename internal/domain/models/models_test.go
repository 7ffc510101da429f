package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPhase_Valid(t *testing.T) {
	for _, p := range []Phase{PhaseCheckIn, PhaseHotSeat, PhaseFeedback, PhaseActionSteps} {
		if !p.Valid() {
			t.Fatalf("phase %q should be valid", p)
		}
	}

	for _, p := range []Phase{"", "intro", "Hot-Seat"} {
		if p.Valid() {
			t.Fatalf("phase %q should be invalid", p)
		}
	}
}

func TestParticipantStatus_Valid(t *testing.T) {
	for _, s := range []ParticipantStatus{StatusWaiting, StatusSpeaking, StatusNext, StatusCompleted} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}

	if ParticipantStatus("done").Valid() {
		t.Fatal("unknown status should be invalid")
	}
}

func TestNewMeeting_StartsInCheckIn(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m := NewMeeting("Weekly", "room-1", now)

	if m.CurrentPhase != PhaseCheckIn || !m.PhaseStartTime.Equal(now) || !m.IsActive {
		t.Fatalf("unexpected meeting: %+v", m)
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, key := range []string{`"roomId":"room-1"`, `"currentPhase":"check-in"`, `"phaseStartTime"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("json %s missing %s", raw, key)
		}
	}
}
