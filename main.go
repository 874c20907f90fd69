package main

import (
	"log"
	"strings"
	"time"

	"attendance-server/attendance"
	"attendance-server/camera"
	"attendance-server/capture"
	"attendance-server/config"
	"attendance-server/db"
	"attendance-server/faces"
	"attendance-server/handlers"
	"attendance-server/models"
	"attendance-server/storage"
	"attendance-server/stream"
	"attendance-server/utils"
	"attendance-server/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	if config.DOWNLOAD_PASSWORD == "" {
		log.Fatal("DOWNLOAD_PASSWORD must be configured")
	}
	db.Init()
	models.Init()
	faces.Init(config.FACE_MODELS_DIR)
	defer faces.Close()

	gallery, err := faces.LoadGallery(config.STUDENTS_DIR)
	if err != nil {
		log.Fatalf("Cannot load reference gallery from %s: %v", config.STUDENTS_DIR, err)
	}
	log.Printf("Reference gallery loaded: %d people", gallery.Count())

	records := &attendance.Log{Path: config.ATTENDANCE_FILE}
	if err = records.EnsureExists(); err != nil {
		log.Fatalf("Cannot create attendance log %s: %v", config.ATTENDANCE_FILE, err)
	}
	tracker := attendance.NewTracker(records, newArchiver())
	if err = tracker.ResetIfNewDay(time.Now()); err != nil {
		log.Fatalf("Cannot load today's attendance: %v", err)
	}

	broadcaster := stream.NewBroadcaster()
	api := &handlers.API{
		Gallery:     gallery,
		Tracker:     tracker,
		Broadcaster: broadcaster,
		Records:     records,
		Password:    config.DOWNLOAD_PASSWORD,
	}

	source, err := openFrameSource(api)
	if err != nil {
		log.Fatalf("Camera not accessible: %v", err)
	}
	loop := capture.NewLoop(source, gallery, tracker, broadcaster,
		config.FACE_TOLERANCE, config.STREAM_MAX_WIDTH)
	go func() {
		// An unreadable camera or unwritable log means no attendance is
		// being recorded - better to go down visibly.
		log.Fatalf("Capture loop stopped: %v", loop.Run())
	}()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/video_feed", "/camera-socket"})))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	router.GET("/", web.IndexView(api))
	router.GET("/video_feed", api.VideoFeed)
	router.GET("/download_csv", api.DownloadCSV)
	router.GET("/attendance_stats", api.AttendanceStats)
	router.GET("/extended_attendance", api.ExtendedAttendance)
	router.GET("/camera-socket", api.CameraSocket)

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

// newArchiver picks where day-rollover log snapshots go: S3 when a bucket is
// configured, a local directory otherwise, or nowhere at all.
func newArchiver() attendance.Archiver {
	if config.S3_BUCKET != "" {
		archiver, err := storage.NewS3Archiver(config.S3_BUCKET, config.S3_REGION, config.S3_KEY, config.S3_SECRET)
		if err != nil {
			log.Fatalf("Cannot set up S3 log archive: %v", err)
		}
		return archiver
	}
	if config.ARCHIVE_DIR != "" {
		return &storage.DiskArchiver{Dir: config.ARCHIVE_DIR}
	}
	return nil
}

func openFrameSource(api *handlers.API) (camera.FrameSource, error) {
	if config.CAMERA_DEVICE == "ws" {
		remote := camera.NewRemote()
		api.Camera = remote
		return remote, nil
	}
	return camera.OpenWebcam(config.CAMERA_DEVICE)
}
