package attendance

import (
	"log"
	"sync"
	"time"
)

// FrameState tracks whether a person recognized today is still on camera.
type FrameState uint8

const (
	// FirstSeen: on camera since they were first recognized today.
	FirstSeen FrameState = iota
	// Departed: left the frame at least once. Final for the day - someone
	// who comes back keeps the "already present" label, not a fresh arrival.
	Departed
)

// Archiver stores a snapshot of the attendance log, called on day rollover.
type Archiver interface {
	Archive(localPath, name string) error
}

// Tracker owns the per-day attendance state: who has been marked present
// today and whether they are still in frame. Safe for concurrent use by the
// capture loop and the HTTP handlers.
type Tracker struct {
	mu           sync.Mutex
	records      *Log
	archiver     Archiver
	lastDate     string
	presentToday map[string]bool
	frameState   map[string]FrameState
}

func NewTracker(records *Log, archiver Archiver) *Tracker {
	return &Tracker{
		records:      records,
		archiver:     archiver,
		presentToday: map[string]bool{},
		frameState:   map[string]FrameState{},
	}
}

// ResetIfNewDay clears the daily state when the calendar date has advanced
// since the last check and rehydrates presentToday from the log. The previous
// day's log is snapshotted to the archiver first, best effort.
func (t *Tracker) ResetIfNewDay(now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := now.Format(DateFormat)
	if t.lastDate == today {
		return nil
	}
	if t.lastDate != "" {
		log.Printf("New day detected, resetting daily attendance for %s", today)
		if t.archiver != nil {
			if err := t.archiver.Archive(t.records.Path, "attendance-"+t.lastDate+".csv"); err != nil {
				log.Printf("Attendance log archive failed: %v", err)
			}
		}
	}
	t.lastDate = today
	t.frameState = map[string]FrameState{}
	present, err := t.records.PresentOn(today)
	if err != nil {
		t.presentToday = map[string]bool{}
		return err
	}
	t.presentToday = present
	return nil
}

// IsPresent reports whether name was already recorded Present today.
func (t *Tracker) IsPresent(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.presentToday[name]
}

// MarkPresent appends a Present record for name unless one was already
// recorded today, so a redundant call can't duplicate log rows. The first
// detection wins the timestamp. The newly marked person enters the frame
// state as FirstSeen.
func (t *Tracker) MarkPresent(name string, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.presentToday[name] {
		return nil
	}
	if err := t.records.Append(now, name); err != nil {
		return err
	}
	t.presentToday[name] = true
	t.frameState[name] = FirstSeen
	return nil
}

// State returns the in-frame state for a person marked present today. ok is
// false for people rehydrated from the log who were never seen by this
// process - they render as already present.
func (t *Tracker) State(name string) (state FrameState, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state, ok = t.frameState[name]
	return
}

// ObserveFrame moves everyone who was FirstSeen but missing from this frame
// to Departed. There is no way back within the same day.
func (t *Tracker) ObserveFrame(seenThisFrame map[string]bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name, state := range t.frameState {
		if state == FirstSeen && !seenThisFrame[name] {
			t.frameState[name] = Departed
		}
	}
}

// PresentCount returns how many people have been marked present today.
func (t *Tracker) PresentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.presentToday)
}
