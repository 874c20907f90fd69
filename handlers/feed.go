package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

const frameBoundary = "frame"

// VideoFeed streams annotated frames as a multipart JPEG stream, one part
// per frame, until the client disconnects or the capture loop stops
// publishing.
func (a *API) VideoFeed(c *gin.Context) {
	id, frames := a.Broadcaster.Subscribe()
	defer a.Broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary="+frameBoundary)
	for {
		select {
		case frame := <-frames:
			if err := writeFrame(c.Writer, frame); err != nil {
				return
			}
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeFrame(w io.Writer, frame []byte) error {
	_, err := fmt.Fprintf(w, "--%s\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", frameBoundary, len(frame))
	if err != nil {
		return err
	}
	if _, err = w.Write(frame); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\r\n")
	return err
}
