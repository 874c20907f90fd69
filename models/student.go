package models

// Student caches the face descriptor computed from a reference photo, so
// restarts don't have to run the recognizer over unchanged photos again.
// The photo file itself stays the source of truth: a changed PhotoModTime
// invalidates the cached descriptor.
type Student struct {
	ID           uint64 `gorm:"primaryKey"`
	CreatedAt    int64
	UpdatedAt    int64
	Name         string `gorm:"type:varchar(300);uniqueIndex"`
	PhotoPath    string `gorm:"type:varchar(500)"`
	PhotoModTime int64
	Descriptor   []byte `gorm:"type:blob"` // 128 little-endian float32s
}
