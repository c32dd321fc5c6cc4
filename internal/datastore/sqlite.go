package datastore

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/errors"
	"github.com/tphakala/medialabel-go/internal/logging"
)

// SQLiteStore implements Interface for SQLite.
type SQLiteStore struct {
	DataStore
	Settings *conf.Settings
	logger   *slog.Logger
}

// Open sets up the SQLite database connection and migrates the schema.
func (store *SQLiteStore) Open() error {
	store.logger = logging.ForService("datastore")

	path := store.Settings.Output.SQLite.Path
	if path == "" {
		return errors.Newf("sqlite path is not configured").
			Component("datastore").
			Category(errors.CategoryConfiguration).
			Build()
	}
	if path != ":memory:" && !filepath.IsAbs(path) {
		dir, fileName := filepath.Split(path)
		path = filepath.Join(conf.GetBasePath(dir), fileName)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: store.gormLogger()})
	if err != nil {
		return errors.New(fmt.Errorf("failed to open SQLite database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("path", path).
			Build()
	}

	store.DB = db
	return performAutoMigration(db, store.Settings.Debug, "SQLite", path)
}

// Close closes the underlying database connection.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	return sqlDB.Close()
}

// SaveSnapshot stores the snapshot, replacing any previous snapshot for
// the same artifact in a single transaction.
func (store *SQLiteStore) SaveSnapshot(snap *annotation.Snapshot) error {
	if store.DB == nil {
		return errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	record := artifactFromSnapshot(snap)
	err := store.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteArtifactByName(tx, snap.Artifact); err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return errors.New(fmt.Errorf("failed to save snapshot: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("artifact", snap.Artifact).
			Build()
	}

	if store.logger != nil {
		store.logger.Debug("snapshot saved",
			"artifact", snap.Artifact,
			"regions", len(snap.Regions),
			"segments", len(snap.Segments))
	}
	return nil
}

// LoadSnapshot retrieves the stored snapshot for an artifact.
func (store *SQLiteStore) LoadSnapshot(artifact string) (*annotation.Snapshot, error) {
	if store.DB == nil {
		return nil, errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	var record Artifact
	err := store.DB.
		Preload("Classes").
		Preload("Regions").
		Preload("Segments").
		Where("name = ?", artifact).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, errors.New(fmt.Errorf("failed to load snapshot: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("artifact", artifact).
			Build()
	}

	return snapshotFromArtifact(&record), nil
}

// DeleteSnapshot removes the stored snapshot for an artifact. Missing
// snapshots are tolerated.
func (store *SQLiteStore) DeleteSnapshot(artifact string) error {
	if store.DB == nil {
		return errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return store.DB.Transaction(func(tx *gorm.DB) error {
		return deleteArtifactByName(tx, artifact)
	})
}

// ListArtifacts returns the names of all stored artifacts.
func (store *SQLiteStore) ListArtifacts() ([]string, error) {
	if store.DB == nil {
		return nil, errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	var names []string
	if err := store.DB.Model(&Artifact{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, errors.New(fmt.Errorf("failed to list artifacts: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return names, nil
}

// deleteArtifactByName removes an artifact and its dependent records.
// SQLite does not always enforce cascade constraints depending on build
// flags, so dependents are deleted explicitly.
func deleteArtifactByName(tx *gorm.DB, name string) error {
	var existing Artifact
	err := tx.Where("name = ?", name).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := tx.Where("artifact_id = ?", existing.ID).Delete(&ClassRecord{}).Error; err != nil {
		return err
	}
	if err := tx.Where("artifact_id = ?", existing.ID).Delete(&RegionRecord{}).Error; err != nil {
		return err
	}
	if err := tx.Where("artifact_id = ?", existing.ID).Delete(&SegmentRecord{}).Error; err != nil {
		return err
	}
	return tx.Delete(&existing).Error
}

// performAutoMigration migrates the snapshot schema.
func performAutoMigration(db *gorm.DB, debug bool, dbType, connectionInfo string) error {
	if err := db.AutoMigrate(&Artifact{}, &ClassRecord{}, &RegionRecord{}, &SegmentRecord{}); err != nil {
		return errors.New(fmt.Errorf("failed to auto-migrate %s database: %w", dbType, err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	if debug {
		logging.Debug("database migrated", "type", dbType, "connection", connectionInfo)
	}
	return nil
}

// gormLogger returns a GORM logger that stays quiet unless debug is on.
func (store *SQLiteStore) gormLogger() gormlogger.Interface {
	level := gormlogger.Silent
	if store.Settings.Debug {
		level = gormlogger.Warn
	}
	return gormlogger.New(
		slogWriter{logger: store.logger},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// slogWriter adapts slog to GORM's printf-style logger interface.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(fmt.Sprintf(format, args...))
	}
}
