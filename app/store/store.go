package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record path addresses nothing.
var ErrNotFound = errors.New("record not found")

// Store is the hierarchical record store: slash-path addressed JSON
// records in PostgreSQL with live subscriptions. Mutations notify the
// hub after commit; the aggregation layer only ever sees full
// snapshots.
type Store struct {
	db  *sql.DB
	hub *Hub
}

func New(db *sql.DB) *Store {
	s := &Store{db: db}
	s.hub = NewHub(s.loadSnapshot)
	return s
}

// Init creates the records table.
func (s *Store) Init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS records (
			path TEXT NOT NULL,
			key TEXT NOT NULL,
			value JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (path, key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_path ON records (path text_pattern_ops)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("initializing records table: %w", err)
		}
	}
	return nil
}

// Append stores value under a generated key at the collection path and
// returns the key.
func (s *Store) Append(path string, value interface{}) (string, error) {
	if !ValidPath(path) {
		return "", fmt.Errorf("invalid path %q", path)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshaling record: %w", err)
	}

	key := uuid.New().String()
	_, err = s.db.Exec(`INSERT INTO records (path, key, value) VALUES ($1, $2, $3)`, path, key, data)
	if err != nil {
		return "", err
	}

	s.hub.Notify(path)
	return key, nil
}

// Update merges partial into the record at recordPath. Only top-level
// fields are replaced, matching the shallow-merge contract of the
// upstream store.
func (s *Store) Update(recordPath string, partial map[string]interface{}) error {
	if !ValidPath(recordPath) {
		return fmt.Errorf("invalid path %q", recordPath)
	}
	parent, key := Split(recordPath)
	data, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("marshaling partial record: %w", err)
	}

	result, err := s.db.Exec(
		`UPDATE records SET value = value || $3::jsonb WHERE path = $1 AND key = $2`,
		parent, key, data,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hub.Notify(recordPath)
	return nil
}

// Remove deletes the record at path along with everything beneath it.
func (s *Store) Remove(path string) error {
	if !ValidPath(path) {
		return fmt.Errorf("invalid path %q", path)
	}
	parent, key := Split(path)
	_, err := s.db.Exec(
		`DELETE FROM records WHERE (path = $1 AND key = $2) OR path = $3 OR path LIKE $4`,
		parent, key, path, path+"/%",
	)
	if err != nil {
		return err
	}

	s.hub.Notify(path)
	return nil
}

// Get returns the single record at recordPath.
func (s *Store) Get(recordPath string) (json.RawMessage, error) {
	parent, key := Split(recordPath)
	var value json.RawMessage
	err := s.db.QueryRow(`SELECT value FROM records WHERE path = $1 AND key = $2`, parent, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Collection returns the direct child records of a collection path,
// keyed by record key. Missing collections yield an empty map.
func (s *Store) Collection(path string) (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT key, value FROM records WHERE path = $1`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := map[string]json.RawMessage{}
	for rows.Next() {
		var key string
		var value json.RawMessage
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		records[key] = value
	}
	return records, rows.Err()
}

// Tree returns every record at or beneath path, keyed by the path
// remainder relative to path (key only for direct children).
func (s *Store) Tree(path string) (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(
		`SELECT path, key, value FROM records WHERE path = $1 OR path LIKE $2`,
		path, path+"/%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := map[string]json.RawMessage{}
	for rows.Next() {
		var rowPath, key string
		var value json.RawMessage
		if err := rows.Scan(&rowPath, &key, &value); err != nil {
			return nil, err
		}
		rel := strings.TrimPrefix(rowPath+"/"+key, path+"/")
		records[rel] = value
	}
	return records, rows.Err()
}

// Subscribe delivers the current snapshot of path immediately and again
// after every mutation on the same branch. The returned release
// function must be called on teardown.
func (s *Store) Subscribe(path string, fn func(Snapshot)) (func(), error) {
	if !ValidPath(path) {
		return nil, fmt.Errorf("invalid path %q", path)
	}
	return s.hub.Subscribe(path, fn)
}

func (s *Store) loadSnapshot(path string) (Snapshot, error) {
	records, err := s.Tree(path)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Exists: len(records) > 0, Records: records}, nil
}
