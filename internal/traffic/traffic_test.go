package traffic

import (
	"testing"
	"time"
)

func TestTracker_ErrorRate(t *testing.T) {
	var tr Tracker

	tr.RecordSuccess()
	tr.RecordSuccess()
	tr.RecordSuccess()
	tr.RecordError()

	errs, total := tr.ErrorRate(time.Minute)
	if errs != 1 {
		t.Errorf("errors = %d, want 1", errs)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestTracker_DeniedExcludedFromErrorRate(t *testing.T) {
	var tr Tracker

	tr.RecordSuccess()
	tr.RecordDenied()
	tr.RecordDenied()

	errs, total := tr.ErrorRate(time.Minute)
	if errs != 0 || total != 1 {
		t.Errorf("ErrorRate = (%d, %d), want (0, 1)", errs, total)
	}
	if got := tr.RequestCount(time.Minute); got != 3 {
		t.Errorf("RequestCount = %d, want 3 (denials included)", got)
	}
}

func TestTracker_WindowExcludesOldOutcomes(t *testing.T) {
	var tr Tracker

	tr.RecordError()
	// A zero-length window should see nothing recorded before "now".
	time.Sleep(5 * time.Millisecond)
	errs, total := tr.ErrorRate(time.Millisecond)
	if errs != 0 || total != 0 {
		t.Errorf("ErrorRate over tiny window = (%d, %d), want (0, 0)", errs, total)
	}
}

func TestTracker_Reset(t *testing.T) {
	var tr Tracker

	tr.RecordSuccess()
	tr.RecordError()
	tr.RecordDenied()
	tr.Reset()

	if got := tr.RequestCount(time.Minute); got != 0 {
		t.Errorf("RequestCount after Reset = %d, want 0", got)
	}
}

func TestPackageLevelTracker(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RecordSuccess()
	RecordError()

	errs, total := ErrorRate(time.Minute)
	if errs != 1 || total != 2 {
		t.Errorf("ErrorRate = (%d, %d), want (1, 2)", errs, total)
	}
}
