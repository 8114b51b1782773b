package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIntention_DeadlineUnix(t *testing.T) {
	tests := []struct {
		name     string
		deadline any
		want     float64
		wantOK   bool
	}{
		{"nil", nil, 0, false},
		{"float", 1700000000.5, 1700000000.5, true},
		{"float zero", 0.0, 0, false},
		{"int", 42, 42, true},
		{"int64", int64(1700000000), 1700000000, true},
		{"json number", json.Number("123.25"), 123.25, true},
		{"numeric string", "1700000000", 1700000000, true},
		{"padded numeric string", " 12.5 ", 12.5, true},
		{"string zero", "0", 0, true},
		{"empty string", "", 0, false},
		{"non-numeric string", "tomorrow at noon", 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{"at": 5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Intention{Action: "act", Deadline: tt.deadline}
			got, ok := in.DeadlineUnix()
			if ok != tt.wantOK {
				t.Fatalf("DeadlineUnix(%v) ok = %v, want %v", tt.deadline, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DeadlineUnix(%v) = %v, want %v", tt.deadline, got, tt.want)
			}
		})
	}
}

func TestIntention_ExpiredAt(t *testing.T) {
	now := time.Unix(1_000_000, 0)

	tests := []struct {
		name     string
		deadline any
		want     bool
	}{
		{"no deadline", nil, false},
		{"past", float64(999_999), true},
		{"past as string", "999999", true},
		{"exactly now", float64(1_000_000), false},
		{"future", float64(1_000_001), false},
		{"uncoercible", "soon", false},
		{"time in past", now.Add(-time.Minute), true},
		{"time in future", now.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Intention{Action: "act", Deadline: tt.deadline}
			if got := in.ExpiredAt(now); got != tt.want {
				t.Errorf("ExpiredAt(%v) = %v, want %v", tt.deadline, got, tt.want)
			}
		})
	}
}

func TestNewIntention_CopiesParameters(t *testing.T) {
	params := map[string]any{"minutes": 15}
	in := NewIntention("rest", params, nil)
	params["minutes"] = 30

	if in.Parameters["minutes"] != 15 {
		t.Errorf("expected parameters to be copied, got %v", in.Parameters)
	}

	empty := NewIntention("rest", nil, nil)
	if empty.Parameters == nil {
		t.Fatal("expected non-nil parameters for nil input")
	}
	empty.Parameters["x"] = 1
	other := NewIntention("rest", nil, nil)
	if len(other.Parameters) != 0 {
		t.Error("default parameters must not be shared between intentions")
	}
}
