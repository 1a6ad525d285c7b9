// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoangtm/legalchat-tui/internal/util"
)

// FileStore is a KV that keeps one file per key under a base directory.
// Writes go through an atomic rename so a crash mid-save never corrupts the
// session collection.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a file-backed store rooted at baseDir, creating the
// directory if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Load implements KV.
func (s *FileStore) Load(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Save implements KV.
func (s *FileStore) Save(key, value string) error {
	return util.WriteFileAtomic(s.path(key), []byte(value), 0600)
}

// Delete implements KV.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close implements KV.
func (s *FileStore) Close() error { return nil }

// path maps a key to a file name. Keys are fixed program constants, but the
// mapping still refuses path separators so a bad key can never escape the
// base directory.
func (s *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.baseDir, safe+".dat")
}
