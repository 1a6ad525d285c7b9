// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtm/legalchat-tui/internal/storage"
)

func TestMaxTokens_Default(t *testing.T) {
	s, kv := newTestStore(t)

	assert.Equal(t, DefaultMaxTokens, s.MaxTokens())

	// The default is written back so the stored state is valid.
	raw, ok, _ := kv.Load(storage.KeyMaxTokens)
	require.True(t, ok)
	assert.Equal(t, "256", raw)
}

func TestMaxTokens_InvalidResets(t *testing.T) {
	s, kv := newTestStore(t)

	for _, raw := range []string{"999", "abc", "-64", ""} {
		kv.Save(storage.KeyMaxTokens, raw)
		assert.Equal(t, DefaultMaxTokens, s.MaxTokens(), "stored %q", raw)
		got, _, _ := kv.Load(storage.KeyMaxTokens)
		assert.Equal(t, "256", got, "stored %q must be replaced with the default", raw)
	}
}

func TestSetMaxTokens(t *testing.T) {
	s, _ := newTestStore(t)

	for _, opt := range MaxTokenOptions {
		v, err := s.SetMaxTokens(opt)
		require.NoError(t, err)
		assert.Equal(t, opt, v)
		assert.Equal(t, opt, s.MaxTokens())
	}

	v, err := s.SetMaxTokens(999)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTokens, v)
	assert.Equal(t, DefaultMaxTokens, s.MaxTokens())
}

func TestDarkMode(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.DarkMode())
	require.NoError(t, s.SetDarkMode(true))
	assert.True(t, s.DarkMode())
	require.NoError(t, s.SetDarkMode(false))
	assert.False(t, s.DarkMode())
}

func TestBackground(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.Background()
	assert.False(t, ok)

	require.NoError(t, s.SetBackground("data:image/png;base64,AAAA"))
	v, ok := s.Background()
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", v)

	require.NoError(t, s.SetBackground(""))
	_, ok = s.Background()
	assert.False(t, ok)
}
