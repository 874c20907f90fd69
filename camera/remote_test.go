package camera

import (
	"bytes"
	"testing"
)

func TestRemotePushLatestFrameWins(t *testing.T) {
	r := NewRemote()
	r.Push([]byte("frame-1"))
	r.Push([]byte("frame-2"))
	r.Push([]byte("frame-3"))

	select {
	case got := <-r.frames:
		if !bytes.Equal(got, []byte("frame-3")) {
			t.Errorf("buffered frame = %q, want frame-3", got)
		}
	default:
		t.Fatal("no frame buffered")
	}
}

func TestRemotePushAfterClose(t *testing.T) {
	r := NewRemote()
	r.Close()
	r.Close() // idempotent
	r.Push([]byte("late"))
	select {
	case got := <-r.frames:
		t.Errorf("frame %q buffered after close", got)
	default:
	}
}
