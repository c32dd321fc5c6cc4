// model.go defines the database schema for persisted snapshots.
// The runtime domain model lives in the annotation package; these records
// exist only at the persistence boundary.
package datastore

import "time"

// Artifact represents one annotated media artifact.
type Artifact struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Duration  float64
	CreatedAt time.Time
	UpdatedAt time.Time

	Classes  []ClassRecord   `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
	Regions  []RegionRecord  `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
	Segments []SegmentRecord `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
}

// ClassRecord stores one palette class of a snapshot.
type ClassRecord struct {
	ID         uint   `gorm:"primaryKey"`
	ArtifactID uint   `gorm:"index;not null"`
	UID        string `gorm:"index;not null"` // stable class id from the palette
	Name       string
	Color      string
}

// RegionRecord stores one region annotation. Geometry is percent space,
// exactly as held at runtime.
type RegionRecord struct {
	ID         uint   `gorm:"primaryKey"`
	ArtifactID uint   `gorm:"index;not null"`
	UID        string `gorm:"index;not null"` // annotation id
	ClassUID   string
	Label      string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Timestamp  *float64 // clock seconds, nil for static media
}

// SegmentRecord stores one temporal segment in seconds.
type SegmentRecord struct {
	ID         uint   `gorm:"primaryKey"`
	ArtifactID uint   `gorm:"index;not null"`
	UID        string `gorm:"index;not null"`
	ClassUID   string
	Label      string
	Start      float64 `gorm:"index"`
	End        float64
}
