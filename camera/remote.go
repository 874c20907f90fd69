package camera

import (
	"sync"

	"gocv.io/x/gocv"
)

// Remote is a frame source fed by JPEG frames pushed over the network
// (the /camera-socket endpoint) instead of a local device. Only the newest
// undelivered frame is kept - a slow capture loop sees the latest picture,
// not a backlog.
type Remote struct {
	frames    chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func NewRemote() *Remote {
	return &Remote{
		frames: make(chan []byte, 1),
		closed: make(chan struct{}),
	}
}

// Push queues a JPEG frame, replacing any stale one not consumed yet.
func (r *Remote) Push(jpegData []byte) {
	select {
	case <-r.closed:
		return
	default:
	}
	for {
		select {
		case r.frames <- jpegData:
			return
		default:
			select {
			case <-r.frames:
			default:
			}
		}
	}
}

// Read blocks until a decodable frame arrives or the source is closed.
// Frames that fail to decode are dropped.
func (r *Remote) Read(dst *gocv.Mat) bool {
	for {
		select {
		case data := <-r.frames:
			mat, err := gocv.IMDecode(data, gocv.IMReadColor)
			if err != nil {
				continue
			}
			if mat.Empty() {
				mat.Close()
				continue
			}
			mat.CopyTo(dst)
			mat.Close()
			return true
		case <-r.closed:
			return false
		}
	}
}

func (r *Remote) Close() error {
	r.closeOnce.Do(func() { close(r.closed) })
	return nil
}
