package blob

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "blobs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundtrip(t *testing.T) {
	s := openTestStore(t)

	logo := []byte{0x89, 'P', 'N', 'G'}
	if err := s.Put("u1", logo, "image/png"); err != nil {
		t.Fatal(err)
	}

	data, contentType, err := s.Get("u1")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, logo) {
		t.Errorf("got %v, want %v", data, logo)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q", contentType)
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("u1", []byte("old"), "image/png"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("u1", []byte("new"), "image/jpeg"); err != nil {
		t.Fatal(err)
	}

	data, contentType, err := s.Get("u1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" || contentType != "image/jpeg" {
		t.Errorf("got (%q, %q), want replacement object", data, contentType)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	data, contentType, err := s.Get("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil || contentType != "" {
		t.Errorf("missing key must return nil bytes, got (%v, %q)", data, contentType)
	}
}

func TestPutWithRetrySucceedsFirstAttempt(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutWithRetry("u1", []byte("logo"), "image/png"); err != nil {
		t.Fatal(err)
	}
	data, _, err := s.Get("u1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "logo" {
		t.Errorf("got %q", data)
	}
}
