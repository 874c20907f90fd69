package capture

import (
	"errors"
	"image"
	"image/color"
	"log"
	"time"

	"attendance-server/attendance"
	"attendance-server/camera"
	"attendance-server/faces"
	"attendance-server/stream"

	"github.com/Kagami/go-face"
	"gocv.io/x/gocv"
)

const labelUnknown = "Not Available"

var (
	colorPresent = color.RGBA{0, 255, 0, 0}   // green - marked present, still in frame
	colorAlready = color.RGBA{255, 165, 0, 0} // orange - present earlier, came back
	colorUnknown = color.RGBA{255, 0, 0, 0}   // red - no match in the gallery
)

// Loop pulls frames from the camera, recognizes faces against the gallery,
// updates the attendance tracker and publishes annotated JPEG frames to the
// broadcaster. One loop per process; it owns the camera for its lifetime.
type Loop struct {
	Source      camera.FrameSource
	Gallery     *faces.Gallery
	Tracker     *attendance.Tracker
	Broadcaster *stream.Broadcaster
	Tolerance   float64
	MaxWidth    int // downscale published frames to this width, 0 = off

	now    func() time.Time
	detect func([]byte) ([]face.Face, error)
}

func NewLoop(source camera.FrameSource, gallery *faces.Gallery, tracker *attendance.Tracker, broadcaster *stream.Broadcaster, tolerance float64, maxWidth int) *Loop {
	return &Loop{
		Source:      source,
		Gallery:     gallery,
		Tracker:     tracker,
		Broadcaster: broadcaster,
		Tolerance:   tolerance,
		MaxWidth:    maxWidth,
		now:         time.Now,
		detect:      faces.Detect,
	}
}

// Run processes frames until the camera stops delivering them or the
// attendance log becomes unwritable. Losing attendance data silently is
// worse than going down, so log write errors end the loop.
func (l *Loop) Run() error {
	defer l.Source.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	for {
		if err := l.Tracker.ResetIfNewDay(l.now()); err != nil {
			return err
		}
		if ok := l.Source.Read(&frame); !ok {
			return errors.New("camera stopped delivering frames")
		}
		if frame.Empty() {
			continue
		}
		if err := l.processFrame(&frame); err != nil {
			return err
		}
	}
}

func (l *Loop) processFrame(frame *gocv.Mat) error {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return err
	}
	detected, err := l.detect(buf.GetBytes())
	buf.Close()
	if err != nil {
		// An undetectable frame is not fatal - stream it unannotated.
		log.Printf("Face detection failed: %v", err)
		detected = nil
	}

	seen := make(map[string]bool, len(detected))
	for _, f := range detected {
		label, clr, name, err := l.labelFace(f.Descriptor)
		if err != nil {
			return err
		}
		if name != "" {
			seen[name] = true
		}
		gocv.Rectangle(frame, f.Rectangle, clr, 2)
		origin := image.Pt(f.Rectangle.Min.X, f.Rectangle.Min.Y-10)
		gocv.PutText(frame, label, origin, gocv.FontHersheySimplex, 0.6, clr, 2)
	}
	l.Tracker.ObserveFrame(seen)

	return l.publish(frame)
}

// labelFace matches one detected face and applies the mark-once-per-day
// policy: the first sighting of the day records attendance, someone still in
// frame keeps the "Present" label, someone who left and came back is
// "Already Present". The returned name is empty for unrecognized faces.
func (l *Loop) labelFace(descriptor face.Descriptor) (string, color.RGBA, string, error) {
	name, ok := l.Gallery.Match(descriptor, l.Tolerance)
	if !ok {
		return labelUnknown, colorUnknown, "", nil
	}
	if !l.Tracker.IsPresent(name) {
		if err := l.Tracker.MarkPresent(name, l.now()); err != nil {
			return "", colorUnknown, name, err
		}
		log.Printf("Marked %s as present", name)
		return "Present: " + name, colorPresent, name, nil
	}
	if state, tracked := l.Tracker.State(name); tracked && state == attendance.FirstSeen {
		return "Present: " + name, colorPresent, name, nil
	}
	return "Already Present: " + name, colorAlready, name, nil
}

func (l *Loop) publish(frame *gocv.Mat) error {
	encoded, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return err
	}
	// The buffer is reused by gocv, the broadcaster needs its own copy.
	data := make([]byte, len(encoded.GetBytes()))
	copy(data, encoded.GetBytes())
	encoded.Close()

	if l.MaxWidth > 0 {
		if scaled, err := downscale(data, l.MaxWidth); err == nil {
			data = scaled
		}
	}
	l.Broadcaster.Publish(data)
	return nil
}
