package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BIND_ADDRESS      = "0.0.0.0:8080"
	TLS_DOMAINS       = "" // e.g. "attendance.example.com" - autotls is used if set
	DEBUG_MODE        = true
	STUDENTS_DIR      = "students"       // Reference photos, one person per file, filename is the displayed name
	ATTENDANCE_FILE   = "attendance.csv" // Append-only attendance log, source of truth
	DOWNLOAD_PASSWORD = ""               // Required - gates the /download_csv endpoint
	FACE_MODELS_DIR   = "models"         // dlib model files for go-face
	FACE_TOLERANCE    = 0.5              // Euclidean distance between descriptors to consider them the same person
	FACE_DETECT_CNN   = false            // Use Convolutional Neural Network for face detection (as opposed to HOG). Much slower, supposedly more accurate at different angles
	CAMERA_DEVICE     = "0"              // OpenCV capture device, or "ws" for the websocket camera source
	STREAM_MAX_WIDTH  = 0                // Downscale streamed frames to this width (0 = original size)
	MYSQL_DSN         = ""               // MySQL will be used for the descriptor cache if this is set
	SQLITE_FILE       = "attendance.db"  // SQLite will be used if MYSQL_DSN is not configured
	ARCHIVE_DIR       = ""               // Local dir for day-rollover log snapshots (empty = disabled)
	S3_BUCKET         = ""               // S3 bucket for day-rollover log snapshots (takes precedence over ARCHIVE_DIR)
	S3_REGION         = "us-east-1"
	S3_KEY            = ""
	S3_SECRET         = ""
)

func init() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("STUDENTS_DIR", &STUDENTS_DIR)
	readEnvString("ATTENDANCE_FILE", &ATTENDANCE_FILE)
	readEnvString("DOWNLOAD_PASSWORD", &DOWNLOAD_PASSWORD)
	readEnvString("FACE_MODELS_DIR", &FACE_MODELS_DIR)
	readEnvFloat("FACE_TOLERANCE", &FACE_TOLERANCE)
	readEnvBool("FACE_DETECT_CNN", &FACE_DETECT_CNN)
	readEnvString("CAMERA_DEVICE", &CAMERA_DEVICE)
	readEnvInt("STREAM_MAX_WIDTH", &STREAM_MAX_WIDTH)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("ARCHIVE_DIR", &ARCHIVE_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_KEY", &S3_KEY)
	readEnvString("S3_SECRET", &S3_SECRET)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
