package stream

import (
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Broadcaster fans annotated frames out to every connected viewer. Each
// viewer has a buffer of one frame; a viewer that can't keep up loses stale
// frames instead of blocking the capture loop or the other viewers.
type Broadcaster struct {
	viewers cmap.ConcurrentMap[string, chan []byte]
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{viewers: cmap.New[chan []byte]()}
}

// Subscribe registers a viewer and returns its id and frame channel.
func (b *Broadcaster) Subscribe() (string, <-chan []byte) {
	frames := make(chan []byte, 1)
	id := uuid.NewString()
	b.viewers.Set(id, frames)
	return id, frames
}

func (b *Broadcaster) Unsubscribe(id string) {
	b.viewers.Remove(id)
}

// Publish delivers a frame to all viewers, dropping the previous frame for
// any viewer that hasn't consumed it yet.
func (b *Broadcaster) Publish(frame []byte) {
	for item := range b.viewers.IterBuffered() {
		frames := item.Val
		select {
		case frames <- frame:
		default:
			select {
			case <-frames:
			default:
			}
			select {
			case frames <- frame:
			default:
			}
		}
	}
}

func (b *Broadcaster) ViewerCount() int {
	return b.viewers.Count()
}
