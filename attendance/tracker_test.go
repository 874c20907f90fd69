package attendance

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	day1Morning = time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	day1Later   = time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	day2Morning = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	l := tempLog(t)
	if err := l.EnsureExists(); err != nil {
		t.Fatal(err)
	}
	tracker := NewTracker(l, nil)
	if err := tracker.ResetIfNewDay(day1Morning); err != nil {
		t.Fatal(err)
	}
	return tracker
}

func TestMarkPresent(t *testing.T) {
	tracker := newTestTracker(t)

	if tracker.IsPresent("Alice") {
		t.Fatal("Alice must not be present before being marked")
	}
	if err := tracker.MarkPresent("Alice", day1Morning); err != nil {
		t.Fatal(err)
	}
	if !tracker.IsPresent("Alice") {
		t.Error("Alice must be present after being marked")
	}
	if state, ok := tracker.State("Alice"); !ok || state != FirstSeen {
		t.Errorf("State(Alice) = (%v, %v), want (FirstSeen, true)", state, ok)
	}
	if tracker.PresentCount() != 1 {
		t.Errorf("PresentCount = %d, want 1", tracker.PresentCount())
	}
}

func TestMarkPresentRedundantCallDoesNotDuplicate(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.MarkPresent("Alice", day1Morning)
	tracker.MarkPresent("Alice", day1Later)

	data, err := os.ReadFile(tracker.records.Path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "Alice"); got != 1 {
		t.Errorf("Alice appears %d times in the log, want 1", got)
	}
	// First detection wins the timestamp.
	if !strings.Contains(string(data), "08:30:00") {
		t.Errorf("log lost the first-sighting time:\n%s", data)
	}
}

func TestDayRollover(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.MarkPresent("Alice", day1Morning)

	if err := tracker.ResetIfNewDay(day2Morning); err != nil {
		t.Fatal(err)
	}
	if tracker.IsPresent("Alice") {
		t.Error("Alice was present yesterday, not today")
	}
	if _, ok := tracker.State("Alice"); ok {
		t.Error("frame state must be cleared on rollover")
	}
	if tracker.PresentCount() != 0 {
		t.Errorf("PresentCount = %d, want 0", tracker.PresentCount())
	}
}

func TestRolloverRehydratesFromLog(t *testing.T) {
	l := tempLog(t)
	if err := l.EnsureExists(); err != nil {
		t.Fatal(err)
	}
	l.Append(day1Morning, "Alice")
	l.Append(day2Morning, "Bob")

	tracker := NewTracker(l, nil)
	if err := tracker.ResetIfNewDay(day2Morning); err != nil {
		t.Fatal(err)
	}
	if tracker.IsPresent("Alice") {
		t.Error("Alice's record is from yesterday")
	}
	if !tracker.IsPresent("Bob") {
		t.Error("Bob's record for today must be rehydrated")
	}
	// Rehydrated people were never seen by this process.
	if _, ok := tracker.State("Bob"); ok {
		t.Error("rehydrated people must have no frame state")
	}
}

func TestSameDayResetIsNoop(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.MarkPresent("Alice", day1Morning)
	if err := tracker.ResetIfNewDay(day1Later); err != nil {
		t.Fatal(err)
	}
	if !tracker.IsPresent("Alice") {
		t.Error("same-day reset must keep today's state")
	}
	if state, ok := tracker.State("Alice"); !ok || state != FirstSeen {
		t.Errorf("State(Alice) = (%v, %v), want (FirstSeen, true)", state, ok)
	}
}

func TestObserveFrameTransitions(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.MarkPresent("Alice", day1Morning)

	// Still in frame: no transition.
	tracker.ObserveFrame(map[string]bool{"Alice": true})
	if state, _ := tracker.State("Alice"); state != FirstSeen {
		t.Errorf("state = %v, want FirstSeen while still in frame", state)
	}

	// Absent for one frame: FirstSeen -> Departed.
	tracker.ObserveFrame(map[string]bool{})
	if state, _ := tracker.State("Alice"); state != Departed {
		t.Errorf("state = %v, want Departed after leaving the frame", state)
	}

	// Reappearing does not revert to FirstSeen within the same day.
	tracker.ObserveFrame(map[string]bool{"Alice": true})
	if state, _ := tracker.State("Alice"); state != Departed {
		t.Errorf("state = %v, Departed is final for the day", state)
	}
}

type recordingArchiver struct {
	names []string
	err   error
}

func (a *recordingArchiver) Archive(localPath, name string) error {
	a.names = append(a.names, name)
	return a.err
}

func TestRolloverArchivesPreviousDay(t *testing.T) {
	l := tempLog(t)
	if err := l.EnsureExists(); err != nil {
		t.Fatal(err)
	}
	archiver := &recordingArchiver{}
	tracker := NewTracker(l, archiver)

	// First observed day: nothing to archive yet.
	tracker.ResetIfNewDay(day1Morning)
	if len(archiver.names) != 0 {
		t.Fatalf("archived %v on first day", archiver.names)
	}

	tracker.ResetIfNewDay(day2Morning)
	if len(archiver.names) != 1 || archiver.names[0] != "attendance-2026-03-01.csv" {
		t.Errorf("archived %v, want [attendance-2026-03-01.csv]", archiver.names)
	}
}

func TestRolloverArchiveFailureIsNotFatal(t *testing.T) {
	l := tempLog(t)
	if err := l.EnsureExists(); err != nil {
		t.Fatal(err)
	}
	tracker := NewTracker(l, &recordingArchiver{err: errors.New("bucket gone")})
	tracker.ResetIfNewDay(day1Morning)
	if err := tracker.ResetIfNewDay(day2Morning); err != nil {
		t.Errorf("rollover must not fail on archive errors, got %v", err)
	}
}
