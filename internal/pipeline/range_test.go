package pipeline

import (
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantNil  bool
		wantErr  bool
		wantFrom string
		wantTo   string
	}{
		{name: "both empty", wantNil: true},
		{name: "full range", from: "2023-01", to: "2023-06", wantFrom: "2023-01-01", wantTo: "2023-06-30"},
		{name: "to covers leap february", from: "2024-01", to: "2024-02", wantFrom: "2024-01-01", wantTo: "2024-02-29"},
		{name: "from only", from: "2023-05", wantFrom: "2023-05-01", wantTo: "9999-12-31"},
		{name: "reversed", from: "2023-06", to: "2023-01", wantErr: true},
		{name: "bad format", from: "Jan 2023", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseRange(tc.from, tc.to)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantNil {
				if r != nil {
					t.Fatalf("expected nil range, got %+v", r)
				}
				return
			}
			if got := r.From.Format("2006-01-02"); got != tc.wantFrom {
				t.Errorf("From = %s, want %s", got, tc.wantFrom)
			}
			if got := r.To.Format("2006-01-02"); got != tc.wantTo {
				t.Errorf("To = %s, want %s", got, tc.wantTo)
			}
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r, err := ParseRange("2023-02", "2023-04")
	if err != nil {
		t.Fatal(err)
	}

	inside := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	edgeLo := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	edgeHi := time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	if !r.Contains(inside) {
		t.Error("Contains(inside) = false, want true")
	}
	if !r.Contains(edgeLo) || !r.Contains(edgeHi) {
		t.Error("closed interval must include both endpoints")
	}
	if r.Contains(outside) {
		t.Error("Contains(outside) = true, want false")
	}
}
