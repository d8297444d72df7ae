package pipeline

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/futurehub/horizon/internal/horizon"
)

const (
	stageProfile = "profile"
	stageSkills  = "skills"
	stageCareer  = "career"
)

// SQLiteStore persists cached stage results across process restarts. Results
// are stored as JSON keyed by (user, stage); a write replaces the previous
// value for that key.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the store database in dataDir. Pass
// ":memory:" as dataDir for an in-memory database (used by tests).
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "horizon.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS stage_results (
		user_id TEXT NOT NULL,
		stage TEXT NOT NULL,
		result_json TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, stage)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating stage_results table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(userID, stage string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT result_json FROM stage_results WHERE user_id = ? AND stage = ?",
		userID, stage,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decoding cached %s result: %w", stage, err)
	}
	return true, nil
}

func (s *SQLiteStore) put(userID, stage string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s result: %w", stage, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO stage_results (user_id, stage, result_json, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, stage) DO UPDATE SET result_json = excluded.result_json, updated_at = excluded.updated_at`,
		userID, stage, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) Profile(userID string) (*horizon.ProfileAnalysis, error) {
	var out horizon.ProfileAnalysis
	ok, err := s.get(userID, stageProfile, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (s *SQLiteStore) PutProfile(userID string, analysis *horizon.ProfileAnalysis) error {
	return s.put(userID, stageProfile, analysis)
}

func (s *SQLiteStore) Skills(userID string) (*horizon.SkillAnalysis, error) {
	var out horizon.SkillAnalysis
	ok, err := s.get(userID, stageSkills, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (s *SQLiteStore) PutSkills(userID string, analysis *horizon.SkillAnalysis) error {
	return s.put(userID, stageSkills, analysis)
}

func (s *SQLiteStore) Career(userID string) (*horizon.CareerAnalysis, error) {
	var out horizon.CareerAnalysis
	ok, err := s.get(userID, stageCareer, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (s *SQLiteStore) PutCareer(userID string, analysis *horizon.CareerAnalysis) error {
	return s.put(userID, stageCareer, analysis)
}

func (s *SQLiteStore) Reset(userID string) error {
	_, err := s.db.Exec("DELETE FROM stage_results WHERE user_id = ?", userID)
	return err
}
