package camera

import (
	"gocv.io/x/gocv"
)

// FrameSource delivers video frames to the capture loop. A source is opened
// once and owned exclusively by the loop until it stops; Read returning
// false means the source is gone for good.
type FrameSource interface {
	Read(dst *gocv.Mat) bool
	Close() error
}

// Webcam captures frames from a local video device via OpenCV.
type Webcam struct {
	device *gocv.VideoCapture
}

// OpenWebcam opens the capture device ("0", "1", ... or a device path).
func OpenWebcam(device string) (*Webcam, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, err
	}
	return &Webcam{device: capture}, nil
}

func (w *Webcam) Read(dst *gocv.Mat) bool {
	return w.device.Read(dst)
}

func (w *Webcam) Close() error {
	return w.device.Close()
}
