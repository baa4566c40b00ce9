package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// SQLiteStore implements ports.CaseStore using GORM. Rows live in the
// database; photo and audio payloads live as files under the case data
// directory.
type SQLiteStore struct {
	dataDir string
	db      *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CaseStore = (*SQLiteStore)(nil)

// gormLogger wraps the patri logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PATRI_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (or creates) the case database and payload directory
func NewSQLiteStore(dbPath, dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&CaseModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate case schema: %w", err)
	}

	migrator := db.Migrator()
	if !migrator.HasTable(&EvidenceModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS evidence (
				id TEXT PRIMARY KEY,
				case_id TEXT NOT NULL,
				type TEXT NOT NULL CHECK (type IN ('photo','text','audio','location')),
				description TEXT DEFAULT '',
				display_order INTEGER NOT NULL DEFAULT 0,
				file_path TEXT DEFAULT '',
				is_fingerprint INTEGER NOT NULL DEFAULT 0,
				latitude REAL,
				longitude REAL,
				remote_file_id TEXT DEFAULT '',
				temporary INTEGER NOT NULL DEFAULT 0,
				text TEXT DEFAULT '',
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (case_id) REFERENCES cases(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create evidence table: %w", err)
		}
		db.Exec("CREATE INDEX IF NOT EXISTS idx_evidence_case ON evidence(case_id)")
		db.Exec("CREATE INDEX IF NOT EXISTS idx_evidence_order ON evidence(display_order)")
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{dataDir: dataDir, db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateCase implements ports.CaseStore
func (s *SQLiteStore) CreateCase(ctx context.Context, info domain.CaseInfo) error {
	if err := os.MkdirAll(s.evidenceDir(info.ID), 0755); err != nil {
		return fmt.Errorf("failed to create case directory: %w", err)
	}
	model := domainToCaseModel(info)
	return withRetry(func() error {
		return s.db.WithContext(ctx).Create(&model).Error
	})
}

// LoadCase implements ports.CaseStore. Evidence comes back ordered by
// display order, then arrival time for items not yet promoted.
func (s *SQLiteStore) LoadCase(ctx context.Context, caseID string) (*domain.CaseInfo, error) {
	var c CaseModel
	var evidence []EvidenceModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", caseID).First(&c).Error; err != nil {
				return err
			}
			return tx.Where("case_id = ?", caseID).
				Order("display_order ASC, created_at ASC, id ASC").
				Find(&evidence).Error
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("case %s: %w", caseID, domain.ErrCaseNotFound)
		}
		return nil, err
	}

	info := caseModelToDomain(c, evidence)
	return &info, nil
}

// SaveCase implements ports.CaseStore
func (s *SQLiteStore) SaveCase(ctx context.Context, info *domain.CaseInfo) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&CaseModel{}).
			Where("id = ?", info.ID).
			Updates(map[string]any{"summary": info.Summary})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("case %s: %w", info.ID, domain.ErrCaseNotFound)
		}
		return nil
	})
}

// DeleteCase implements ports.CaseStore. Removes the case row, its evidence
// rows, and every payload file under the case directory.
func (s *SQLiteStore) DeleteCase(ctx context.Context, caseID string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("case_id = ?", caseID).Delete(&EvidenceModel{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", caseID).Delete(&CaseModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("case %s: %w", caseID, domain.ErrCaseNotFound)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	if rerr := os.RemoveAll(s.caseDir(caseID)); rerr != nil {
		logging.Logger.Warn("Failed to remove case directory", "case_id", caseID, "error", rerr)
	}
	return nil
}

// AddEvidence implements ports.CaseStore. File-backed evidence is written
// under the case directory as temp_<id>; photos stay temporary until the
// batch they belong to commits.
func (s *SQLiteStore) AddEvidence(ctx context.Context, caseID string, item domain.NewEvidence) (string, error) {
	id := uuid.New().String()

	filePath := ""
	if len(item.Payload) > 0 {
		dir := s.evidenceDir(caseID)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create evidence directory: %w", err)
		}
		filePath = filepath.Join(dir, "temp_"+id+payloadExt(item.Type))
		if err := os.WriteFile(filePath, item.Payload, 0644); err != nil {
			return "", fmt.Errorf("failed to write evidence payload: %w", err)
		}
	}

	model := EvidenceModel{
		CaseID:       caseID,
		FilePath:     filePath,
		ID:           id,
		Latitude:     item.Latitude,
		Longitude:    item.Longitude,
		RemoteFileID: item.RemoteFileID,
		Temporary:    item.Type == domain.EvidencePhoto,
		Text:         item.Text,
		Type:         string(item.Type),
	}

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Create(&model).Error
	})
	if err != nil {
		if filePath != "" {
			os.Remove(filePath)
		}
		return "", err
	}
	return id, nil
}

// UpdateEvidence implements ports.CaseStore. Only the fields set in the
// update are touched.
func (s *SQLiteStore) UpdateEvidence(ctx context.Context, caseID, evidenceID string, update domain.EvidenceUpdate) error {
	fields := map[string]any{}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.IsFingerprint != nil {
		fields["is_fingerprint"] = *update.IsFingerprint
	}
	if update.RemoteFileID != nil {
		fields["remote_file_id"] = *update.RemoteFileID
	}
	if len(fields) == 0 {
		return nil
	}

	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&EvidenceModel{}).
			Where("id = ? AND case_id = ?", evidenceID, caseID).
			Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("evidence %s: %w", evidenceID, domain.ErrEvidenceNotFound)
		}
		return nil
	})
}

// RemoveEvidence implements ports.CaseStore
func (s *SQLiteStore) RemoveEvidence(ctx context.Context, caseID, evidenceID string) error {
	var model EvidenceModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ? AND case_id = ?", evidenceID, caseID).First(&model).Error; err != nil {
				return err
			}
			return tx.Delete(&model).Error
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("evidence %s: %w", evidenceID, domain.ErrEvidenceNotFound)
		}
		return err
	}

	if model.FilePath != "" {
		if rerr := os.Remove(model.FilePath); rerr != nil && !os.IsNotExist(rerr) {
			logging.Logger.Warn("Failed to remove evidence file", "evidence_id", evidenceID, "error", rerr)
		}
	}
	return nil
}

// PromoteTempEvidence implements ports.CaseStore. Each temporary photo gets
// the next display order and its file is renamed to photoNNN.jpg. Already
// promoted items are skipped, so a replayed commit is harmless.
func (s *SQLiteStore) PromoteTempEvidence(ctx context.Context, caseID string, evidenceIDs []string) error {
	type rename struct {
		from string
		to   string
	}
	var renames []rename

	err := withRetry(func() error {
		renames = renames[:0]
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxOrder int
			row := tx.Model(&EvidenceModel{}).
				Where("case_id = ? AND temporary = ?", caseID, false).
				Select("COALESCE(MAX(display_order), 0)").Row()
			if err := row.Scan(&maxOrder); err != nil {
				return err
			}

			for _, id := range evidenceIDs {
				var model EvidenceModel
				if err := tx.Where("id = ? AND case_id = ?", id, caseID).First(&model).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("evidence %s: %w", id, domain.ErrEvidenceNotFound)
					}
					return err
				}
				if !model.Temporary {
					continue
				}

				maxOrder++
				newPath := model.FilePath
				if model.FilePath != "" {
					newPath = filepath.Join(filepath.Dir(model.FilePath), fmt.Sprintf("photo%03d.jpg", maxOrder))
				}
				if err := tx.Model(&EvidenceModel{}).Where("id = ?", id).Updates(map[string]any{
					"display_order": maxOrder,
					"file_path":     newPath,
					"temporary":     false,
				}).Error; err != nil {
					return err
				}
				if model.FilePath != "" && model.FilePath != newPath {
					renames = append(renames, rename{from: model.FilePath, to: newPath})
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	for _, r := range renames {
		if rerr := os.Rename(r.from, r.to); rerr != nil {
			logging.Logger.Error("Failed to rename promoted photo", "from", r.from, "to", r.to, "error", rerr)
		}
	}
	logging.Logger.Info("Evidence promoted", "case_id", caseID, "count", len(renames))
	return nil
}

func (s *SQLiteStore) caseDir(caseID string) string {
	return filepath.Join(s.dataDir, caseID)
}

func (s *SQLiteStore) evidenceDir(caseID string) string {
	return filepath.Join(s.caseDir(caseID), "evidence")
}

func payloadExt(t domain.EvidenceType) string {
	switch t {
	case domain.EvidencePhoto:
		return ".jpg"
	case domain.EvidenceAudio:
		return ".ogg"
	default:
		return ".bin"
	}
}

const maxRetries = 3

// withRetry retries on SQLITE_BUSY and SQLITE_LOCKED with linear backoff
func withRetry(fn func() error) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
