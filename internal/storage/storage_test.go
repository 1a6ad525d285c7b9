// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"
)

// backends returns each KV implementation backed by a fresh temp location.
func backends(t *testing.T) map[string]KV {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	return map[string]KV{
		"memory": NewMemStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestKV_LoadAbsent(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()
			_, ok, err := kv.Load(KeySavedChats)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if ok {
				t.Error("Load of unwritten key should report absent")
			}
		})
	}
}

func TestKV_SaveLoadOverwrite(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			if err := kv.Save(KeyMaxTokens, "256"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			v, ok, err := kv.Load(KeyMaxTokens)
			if err != nil || !ok {
				t.Fatalf("Load = (%q, %v, %v)", v, ok, err)
			}
			if v != "256" {
				t.Errorf("value = %q, want %q", v, "256")
			}

			if err := kv.Save(KeyMaxTokens, "512"); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}
			v, _, _ = kv.Load(KeyMaxTokens)
			if v != "512" {
				t.Errorf("value after overwrite = %q, want %q", v, "512")
			}
		})
	}
}

func TestKV_UnicodePayload(t *testing.T) {
	payload := `[["Vượt đèn đỏ?","Phạt tiền.\nTổng thời gian: 3s"]]`
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()
			if err := kv.Save(KeySavedChats, payload); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			v, _, _ := kv.Load(KeySavedChats)
			if v != payload {
				t.Errorf("value = %q, want %q", v, payload)
			}
		})
	}
}

func TestKV_Delete(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()
			kv.Save(KeyDarkMode, "true")
			if err := kv.Delete(KeyDarkMode); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, ok, _ := kv.Load(KeyDarkMode); ok {
				t.Error("key should be absent after Delete")
			}
			// Deleting an absent key is not an error.
			if err := kv.Delete(KeyDarkMode); err != nil {
				t.Errorf("Delete of absent key failed: %v", err)
			}
		})
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := kv.Save(KeySavedChats, "[]"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	kv.Close()

	kv, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv.Close()
	v, ok, err := kv.Load(KeySavedChats)
	if err != nil || !ok || v != "[]" {
		t.Errorf("Load after reopen = (%q, %v, %v)", v, ok, err)
	}
}
