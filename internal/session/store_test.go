// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtm/legalchat-tui/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemStore()
	s := NewStore(kv)
	s.Hydrate()
	return s, kv
}

// saveOne runs one complete question/answer cycle and persists it.
func saveOne(t *testing.T, s *Store, question, answer string) {
	t.Helper()
	require.True(t, s.AppendUserTurn(question))
	s.SetLastAnswer(answer)
	require.NoError(t, s.PersistCurrent())
}

// =============================================================================
// CURRENT TRANSCRIPT
// =============================================================================

func TestAppendUserTurn(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.AppendUserTurn("Vượt đèn đỏ phạt bao nhiêu?"))
	tr := s.Current()
	require.Len(t, tr, 1)
	assert.Equal(t, "Vượt đèn đỏ phạt bao nhiêu?", tr[0].Question)
	assert.Empty(t, tr[0].Answer)
}

func TestAppendUserTurn_BlankIgnored(t *testing.T) {
	s, _ := newTestStore(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		assert.False(t, s.AppendUserTurn(text), "text %q should be ignored", text)
	}
	assert.True(t, s.CurrentIsEmpty())
}

func TestSetLastAnswer_ReplacesNotAppends(t *testing.T) {
	s, _ := newTestStore(t)
	s.AppendUserTurn("A?")

	s.SetLastAnswer("Ph")
	s.SetLastAnswer("Phần 1.")
	s.SetLastAnswer("Phần 1. Tổng thời gian: 3s")

	assert.Equal(t, "Phần 1. Tổng thời gian: 3s", s.Current().Last().Answer)
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestPersistCurrent_EmptyNoop(t *testing.T) {
	s, kv := newTestStore(t)

	require.NoError(t, s.PersistCurrent())
	assert.Zero(t, s.Len())
	_, ok, _ := kv.Load(storage.KeySavedChats)
	assert.False(t, ok, "empty transcript must not write storage")
}

func TestPersistCurrent_IdempotentByID(t *testing.T) {
	s, _ := newTestStore(t)

	s.AppendUserTurn("A?")
	require.NoError(t, s.PersistCurrent())
	require.Equal(t, 1, s.Len())
	id := s.ActiveID()
	require.NotEmpty(t, id)

	s.SetLastAnswer("B.")
	require.NoError(t, s.PersistCurrent())

	assert.Equal(t, 1, s.Len(), "second persist must update, not duplicate")
	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "B.", sess.History.Last().Answer)
}

func TestPersistCurrent_TitleDerivation(t *testing.T) {
	s, _ := newTestStore(t)

	saveOne(t, s, "A?", "B.")
	assert.Equal(t, "A?", s.Sessions()[0].Title)

	require.NoError(t, s.StartNew())
	long := strings.Repeat("x", 60)
	saveOne(t, s, long, "ans")
	assert.Equal(t, strings.Repeat("x", 50)+"...", s.Sessions()[0].Title)
}

func TestPersistCurrent_EvictionAtCap(t *testing.T) {
	s, _ := newTestStore(t)

	var firstID string
	for i := 0; i < MaxSessions; i++ {
		saveOne(t, s, fmt.Sprintf("question %d", i), "answer")
		if i == 0 {
			firstID = s.ActiveID()
		}
		require.NoError(t, s.StartNew())
	}
	require.Equal(t, MaxSessions, s.Len())

	// The 21st distinct save evicts exactly the oldest entry.
	saveOne(t, s, "question 20", "answer")
	assert.Equal(t, MaxSessions, s.Len())
	_, ok := s.Get(firstID)
	assert.False(t, ok, "oldest session should be evicted")
	assert.Equal(t, "question 20", s.Sessions()[0].Title)
}

func TestPersistCurrent_Ordering(t *testing.T) {
	s, _ := newTestStore(t)

	saveOne(t, s, "first", "a")
	idFirst := s.ActiveID()
	require.NoError(t, s.StartNew())
	saveOne(t, s, "second", "a")

	// New sessions land at the front.
	sessions := s.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "second", sessions[0].Title)

	// Updating an existing session keeps its position.
	require.True(t, s.LoadSession(idFirst))
	s.AppendUserTurn("more")
	s.SetLastAnswer("a")
	require.NoError(t, s.PersistCurrent())

	sessions = s.Sessions()
	assert.Equal(t, "second", sessions[0].Title)
	assert.Equal(t, idFirst, sessions[1].ID)
	assert.Len(t, sessions[1].History, 2)
}

func TestHydrate_RoundTrip(t *testing.T) {
	s, kv := newTestStore(t)

	saveOne(t, s, "A?", "B.\nTổng thời gian: 3s")
	require.NoError(t, s.StartNew())
	saveOne(t, s, "C?", "D.")

	fresh := NewStore(kv)
	fresh.Hydrate()

	want := s.Sessions()
	got := fresh.Sessions()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].History, got[i].History)
	}
}

func TestHydrate_CorruptStorage(t *testing.T) {
	kv := storage.NewMemStore()
	kv.Save(storage.KeySavedChats, "{not json")

	s := NewStore(kv)
	s.Hydrate() // must not panic or error
	assert.Zero(t, s.Len())
}

// =============================================================================
// SESSION SWITCHING
// =============================================================================

func TestStartNew_AutoSaves(t *testing.T) {
	s, _ := newTestStore(t)

	s.AppendUserTurn("A?")
	s.SetLastAnswer("B.")
	require.NoError(t, s.StartNew())

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.CurrentIsEmpty())
	assert.Empty(t, s.ActiveID())
}

func TestLoadSession_DefensiveCopy(t *testing.T) {
	s, _ := newTestStore(t)

	saveOne(t, s, "A?", "B.")
	id := s.ActiveID()
	require.NoError(t, s.StartNew())

	require.True(t, s.LoadSession(id))
	s.SetLastAnswer("mutated without persisting")

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "B.", sess.History.Last().Answer,
		"stored history must not change until PersistCurrent")
}

func TestLoadSession_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	saveOne(t, s, "A?", "B.")

	assert.False(t, s.LoadSession("no-such-id"))
	assert.Equal(t, 1, s.Len())
}

// =============================================================================
// COLLECTION MUTATION
// =============================================================================

func TestRenameSession(t *testing.T) {
	s, _ := newTestStore(t)
	saveOne(t, s, "A?", "B.")
	id := s.ActiveID()

	require.NoError(t, s.RenameSession(id, "Mức phạt đèn đỏ"))
	sess, _ := s.Get(id)
	assert.Equal(t, "Mức phạt đèn đỏ", sess.Title)

	// Blank titles and unknown IDs change nothing.
	require.NoError(t, s.RenameSession(id, "   "))
	sess, _ = s.Get(id)
	assert.Equal(t, "Mức phạt đèn đỏ", sess.Title)

	require.NoError(t, s.RenameSession("no-such-id", "x"))
	assert.Equal(t, 1, s.Len())
}

func TestDeleteSession(t *testing.T) {
	s, _ := newTestStore(t)
	saveOne(t, s, "A?", "B.")
	id := s.ActiveID()
	require.NoError(t, s.StartNew())
	saveOne(t, s, "C?", "D.")

	require.NoError(t, s.DeleteSession(id))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(id)
	assert.False(t, ok)

	// Unknown ID is a silent no-op.
	require.NoError(t, s.DeleteSession("no-such-id"))
	assert.Equal(t, 1, s.Len())
}

func TestDeleteSession_ActiveResets(t *testing.T) {
	s, _ := newTestStore(t)
	saveOne(t, s, "A?", "B.")
	id := s.ActiveID()

	require.NoError(t, s.DeleteSession(id))
	assert.True(t, s.CurrentIsEmpty(), "deleting the active session resets the transcript")
	assert.Empty(t, s.ActiveID())
	assert.Zero(t, s.Len(), "deleted session must not be re-persisted")
}

func TestClearAll(t *testing.T) {
	s, kv := newTestStore(t)
	saveOne(t, s, "A?", "B.")
	require.NoError(t, s.StartNew())
	saveOne(t, s, "C?", "D.")

	require.NoError(t, s.ClearAll())
	assert.Zero(t, s.Len())
	assert.True(t, s.CurrentIsEmpty())

	raw, ok, _ := kv.Load(storage.KeySavedChats)
	require.True(t, ok)
	assert.Equal(t, "[]", raw) // empty collection persisted
}

// =============================================================================
// RATINGS
// =============================================================================

func TestRateLast(t *testing.T) {
	s, kv := newTestStore(t)
	s.AppendUserTurn("A?")
	s.SetLastAnswer("B.")

	require.NoError(t, s.RateLast(5))
	sessions := s.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, 5, sessions[0].Ratings[0])

	// Ratings survive a reload.
	fresh := NewStore(kv)
	fresh.Hydrate()
	assert.Equal(t, 5, fresh.Sessions()[0].Ratings[0])

	// Out-of-range ratings are ignored.
	require.NoError(t, s.RateLast(0))
	require.NoError(t, s.RateLast(6))
	assert.Equal(t, 5, s.Sessions()[0].Ratings[0])
}
