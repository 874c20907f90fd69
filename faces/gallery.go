package faces

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"attendance-server/db"
	"attendance-server/models"
	"attendance-server/utils"

	"github.com/Kagami/go-face"
)

// KnownPerson is one enrolled person: the reference photo filename (minus
// extension) and the descriptor computed from that photo.
type KnownPerson struct {
	Name       string
	Descriptor face.Descriptor
}

// Gallery holds all enrolled people. Loaded once at startup, immutable after.
type Gallery struct {
	People []KnownPerson
}

func (g *Gallery) Count() int {
	return len(g.People)
}

// LoadGallery scans dir for .jpg/.png reference photos and computes one
// descriptor per photo. The dir is created if missing. Descriptors are cached
// in the DB keyed by photo mtime, so only new or changed photos hit the
// recognizer. Photos with no detectable face are skipped with a warning.
func LoadGallery(dir string) (*Gallery, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	gallery := &Gallery{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".jpg" && ext != ".png" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		descriptor, ok := cachedDescriptor(name, info.ModTime().Unix())
		if !ok {
			jpegData, err := photoJPEG(path, ext)
			if err != nil {
				return nil, err
			}
			found, err := detectSingle(jpegData)
			if err != nil {
				return nil, err
			}
			if found == nil {
				log.Printf("No face found in %s, skipping", path)
				continue
			}
			descriptor = found.Descriptor
			storeDescriptor(name, path, info.ModTime().Unix(), descriptor)
		}
		gallery.People = append(gallery.People, KnownPerson{Name: name, Descriptor: descriptor})
	}
	return gallery, nil
}

// photoJPEG returns the photo as JPEG bytes; go-face only accepts JPEG, so
// PNG references are re-encoded.
func photoJPEG(path, ext string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if ext == ".jpg" {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const descriptorBytes = 128 * 4

func cachedDescriptor(name string, modTime int64) (face.Descriptor, bool) {
	var descriptor face.Descriptor
	student := models.Student{}
	db.Instance.Where("name = ?", name).First(&student)
	if student.ID == 0 || student.PhotoModTime != modTime || len(student.Descriptor) != descriptorBytes {
		return descriptor, false
	}
	copy(descriptor[:], utils.ByteArrayToFloat32Array(student.Descriptor))
	return descriptor, true
}

func storeDescriptor(name, path string, modTime int64, descriptor face.Descriptor) {
	student := models.Student{}
	db.Instance.Where("name = ?", name).First(&student)
	student.Name = name
	student.PhotoPath = path
	student.PhotoModTime = modTime
	student.Descriptor = utils.Float32ArrayToByteArray(descriptor[:])
	if err := db.Instance.Save(&student).Error; err != nil {
		log.Printf("Cannot cache descriptor for %s: %v", name, err)
	}
}
