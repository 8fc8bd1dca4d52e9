package taskapi

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTimeDecodesKnownLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{`"2025-03-14"`, time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)},
		{`"2025-03-14T10:30"`, time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)},
		{`"2025-03-14T10:30:15"`, time.Date(2025, 3, 14, 10, 30, 15, 0, time.Local)},
	}

	for _, tc := range cases {
		var d DateTime
		if err := json.Unmarshal([]byte(tc.raw), &d); err != nil {
			t.Errorf("unmarshal %s: %v", tc.raw, err)
			continue
		}
		if !d.Equal(tc.want) {
			t.Errorf("unmarshal %s = %v, want %v", tc.raw, d.Time, tc.want)
		}
	}
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
		t.Error("expected an error for an unrecognized date format")
	}
}

func TestDateTimeRoundTripsRawValue(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"2025-03-14T10:00"`), &d); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2025-03-14T10:00"` {
		t.Errorf("marshal = %s, want the stored wire value back", out)
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusInProgress) || !ValidStatus(StatusCompleted) {
		t.Error("known statuses should validate")
	}
	if ValidStatus("Done") || ValidStatus("") {
		t.Error("unknown statuses should not validate")
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh} {
		if !ValidPriority(p) {
			t.Errorf("priority %q should validate", p)
		}
	}
	if ValidPriority("Urgent") {
		t.Error("unknown priority should not validate")
	}
}
