package faces

import (
	"attendance-server/config"

	"github.com/Kagami/go-face"
)

var (
	recognizer *face.Recognizer
)

func Init(modelsDir string) {
	var err error
	recognizer, err = face.NewRecognizer(modelsDir)
	if err != nil {
		panic(err)
	}
}

func Close() {
	if recognizer != nil {
		recognizer.Close()
		recognizer = nil
	}
}

// Detect returns all faces found on a JPEG frame, with their bounding
// rectangles and descriptors.
func Detect(jpegData []byte) ([]face.Face, error) {
	if config.FACE_DETECT_CNN {
		return recognizer.RecognizeCNN(jpegData)
	}
	return recognizer.Recognize(jpegData)
}

func detectSingle(jpegData []byte) (*face.Face, error) {
	if config.FACE_DETECT_CNN {
		return recognizer.RecognizeSingleCNN(jpegData)
	}
	return recognizer.RecognizeSingle(jpegData)
}
