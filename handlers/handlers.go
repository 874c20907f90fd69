package handlers

import (
	"attendance-server/attendance"
	"attendance-server/camera"
	"attendance-server/faces"
	"attendance-server/stream"
)

type Response struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var (
	// Predefined errors
	NoPasswordResponse     = Response{"No password provided."}
	WrongPasswordResponse  = Response{"Incorrect password."}
	NoRecordsResponse      = MessageResponse{"No attendance records available!"}
	NoRemoteCameraResponse = Response{"remote camera source is not enabled"}
)

// API carries the state the HTTP handlers read. It is injected explicitly
// instead of living in package globals so the endpoints can be exercised
// without a live camera.
type API struct {
	Gallery     *faces.Gallery
	Tracker     *attendance.Tracker
	Broadcaster *stream.Broadcaster
	Records     *attendance.Log
	Password    string
	Camera      *camera.Remote // nil unless the websocket camera source is enabled
}
