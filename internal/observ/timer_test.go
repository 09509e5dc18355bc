package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("collect")
	tm.End(idx, "3 files")
	tm.Add("passes", 2*time.Millisecond, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "collect" || r.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Phases[1].DurationMS != 2 || r.TotalMS < 2 {
		t.Fatalf("durations not summed: %+v", r)
	}
	if s := tm.Summary(); !strings.Contains(s, "collect") || !strings.Contains(s, "total") {
		t.Fatalf("summary %q", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("want zero report, got %+v", r)
	}
}
