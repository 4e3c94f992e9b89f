// Package analytics persists one record per chatbot turn to a local
// sqlite database and serves the aggregate views the stats surface
// reads.
package analytics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"dynamichat/internal/logging"
)

// Record is one chatbot turn as stored for analytics.
type Record struct {
	ID             string
	Timestamp      time.Time
	UserText       string
	BotText        string
	Intent         string
	IntentConf     float64
	Entities       map[string][]string
	Polarity       string
	PolarityConf   float64
	Emotion        string
	EmotionConf    float64
	ResponseTimeMs float64
}

// Store manages the analytics database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates or opens the analytics store at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite handles one writer at a time.
	db.SetMaxOpenConns(1)

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Analytics("Analytics store ready at %s", dbPath)
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		user_text TEXT NOT NULL,
		bot_text TEXT NOT NULL,
		intent TEXT NOT NULL,
		intent_conf REAL NOT NULL,
		entities_json TEXT,
		sentiment_polarity TEXT NOT NULL,
		sentiment_conf REAL NOT NULL,
		emotion TEXT NOT NULL,
		emotion_conf REAL NOT NULL,
		response_time_ms REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_timestamp ON interactions(timestamp);
	CREATE INDEX IF NOT EXISTS idx_interactions_intent ON interactions(intent);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one turn. A missing ID or timestamp is filled in, and
// the response time is rounded to one decimal place.
func (s *Store) Record(rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	rec.ResponseTimeMs = math.Round(rec.ResponseTimeMs*10) / 10

	var entitiesJSON []byte
	if len(rec.Entities) > 0 {
		var err error
		entitiesJSON, err = json.Marshal(rec.Entities)
		if err != nil {
			return fmt.Errorf("failed to marshal entities: %w", err)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO interactions (
			id, timestamp, user_text, bot_text, intent, intent_conf,
			entities_json, sentiment_polarity, sentiment_conf,
			emotion, emotion_conf, response_time_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Timestamp, rec.UserText, rec.BotText, rec.Intent, rec.IntentConf,
		nullableString(entitiesJSON), rec.Polarity, rec.PolarityConf,
		rec.Emotion, rec.EmotionConf, rec.ResponseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Recent returns the latest n records, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, user_text, bot_text, intent, intent_conf,
		       entities_json, sentiment_polarity, sentiment_conf,
		       emotion, emotion_conf, response_time_ms
		FROM interactions ORDER BY timestamp DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var entitiesJSON sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.Timestamp, &rec.UserText, &rec.BotText,
			&rec.Intent, &rec.IntentConf, &entitiesJSON,
			&rec.Polarity, &rec.PolarityConf,
			&rec.Emotion, &rec.EmotionConf, &rec.ResponseTimeMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if entitiesJSON.Valid && entitiesJSON.String != "" {
			if err := json.Unmarshal([]byte(entitiesJSON.String), &rec.Entities); err != nil {
				logging.AnalyticsWarn("Skipping malformed entities for record %s: %v", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// IntentCounts returns how many turns carried each intent.
func (s *Store) IntentCounts() (map[string]int, error) {
	return s.countBy("intent")
}

// PolarityCounts returns how many turns carried each polarity.
func (s *Store) PolarityCounts() (map[string]int, error) {
	return s.countBy("sentiment_polarity")
}

// EmotionCounts returns how many turns carried each emotion.
func (s *Store) EmotionCounts() (map[string]int, error) {
	return s.countBy("emotion")
}

func (s *Store) countBy(column string) (map[string]int, error) {
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM interactions GROUP BY %s", column, column))
	if err != nil {
		return nil, fmt.Errorf("failed to query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

// AvgResponseTime returns the mean response time in milliseconds, zero
// when no turns are recorded.
func (s *Store) AvgResponseTime() (float64, error) {
	var avg sql.NullFloat64
	if err := s.db.QueryRow("SELECT AVG(response_time_ms) FROM interactions").Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to query average: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// TotalInteractions returns the number of recorded turns.
func (s *Store) TotalInteractions() (int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM interactions").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to query total: %w", err)
	}
	return total, nil
}

// EntitySummary returns, per entity type, the number of turns in which
// that type was detected at least once.
func (s *Store) EntitySummary() (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT entities_json FROM interactions WHERE entities_json IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan entities: %w", err)
		}
		var entities map[string][]string
		if err := json.Unmarshal([]byte(raw), &entities); err != nil {
			continue
		}
		for entityType := range entities {
			counts[entityType]++
		}
	}
	return counts, rows.Err()
}

// Clear removes all recorded turns.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM interactions"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	logging.Analytics("Analytics records cleared")
	return nil
}

func nullableString(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
