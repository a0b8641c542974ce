// Package blob stores small binary objects (club logos) in an embedded
// bbolt database. Uploads run through a bounded retry because they
// happen exactly once per tenant, at onboarding, where a transient
// failure would otherwise strand the club without a logo.
package blob

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketObjects = "objects"
	bucketMeta    = "meta"

	uploadAttempts = 3
	uploadDelay    = 1 * time.Second
)

type objectMeta struct {
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	UploadedAt  int64  `json:"uploaded_at"`
}

type Store struct {
	db *bolt.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating blob directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening blob database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketObjects)); err != nil {
			return fmt.Errorf("creating objects bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketMeta)); err != nil {
			return fmt.Errorf("creating meta bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores data under key, replacing any previous object.
func (s *Store) Put(key string, data []byte, contentType string) error {
	meta, err := json.Marshal(objectMeta{
		ContentType: contentType,
		Size:        len(data),
		UploadedAt:  time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("marshaling object meta: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketObjects)).Put([]byte(key), data); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketMeta)).Put([]byte(key), meta)
	})
}

// PutWithRetry uploads with up to 3 attempts, one second apart.
func (s *Store) PutWithRetry(key string, data []byte, contentType string) error {
	var err error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		if err = s.Put(key, data, contentType); err == nil {
			return nil
		}
		log.Printf("Blob upload attempt %d/%d for %s failed: %v", attempt, uploadAttempts, key, err)
		if attempt < uploadAttempts {
			time.Sleep(uploadDelay)
		}
	}
	return err
}

// Get returns the object bytes and content type for key, or nil bytes
// when no object exists.
func (s *Store) Get(key string) ([]byte, string, error) {
	var data []byte
	var contentType string

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketObjects)).Get([]byte(key))
		if raw == nil {
			return nil
		}
		data = make([]byte, len(raw))
		copy(data, raw)

		if rawMeta := tx.Bucket([]byte(bucketMeta)).Get([]byte(key)); rawMeta != nil {
			var meta objectMeta
			if err := json.Unmarshal(rawMeta, &meta); err != nil {
				return err
			}
			contentType = meta.ContentType
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}
