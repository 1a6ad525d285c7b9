// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoangtm/legalchat-tui/internal/model"
	"github.com/hoangtm/legalchat-tui/internal/storage"
	"github.com/hoangtm/legalchat-tui/internal/util"
)

// MaxSessions bounds the saved-session collection. The oldest entry is
// evicted when a new session would push the count past this.
const MaxSessions = 20

// TitleRunes is how many characters of the first question become the
// session title before an ellipsis is appended.
const TitleRunes = 50

// =============================================================================
// SESSION
// =============================================================================

// Session is a persisted, titled conversation. The JSON field names match
// what the original web client wrote to localStorage, so existing saved
// chats hydrate unchanged; Ratings is the one addition and is omitted when
// empty.
type Session struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Timestamp time.Time        `json:"timestamp"`
	History   model.Transcript `json:"history"`
	Ratings   map[int]int      `json:"ratings,omitempty"`
}

// =============================================================================
// STORE
// =============================================================================

// Store holds the session collection plus the single current transcript and
// its active-session pointer. All fields persist through the injected KV.
type Store struct {
	mu sync.Mutex
	kv storage.KV

	sessions []*Session

	current   model.Transcript
	currentID string // active session ID, "" when the transcript is unsaved
	ratings   map[int]int
}

// NewStore creates a Store persisting through kv. Call Hydrate before use.
func NewStore(kv storage.KV) *Store {
	return &Store{
		kv:      kv,
		ratings: make(map[int]int),
	}
}

// Hydrate loads the session collection from storage. Absent or corrupt data
// means a fresh start — it never returns an error and never throws away a
// readable collection.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	raw, ok, err := s.kv.Load(storage.KeySavedChats)
	if err != nil || !ok {
		return
	}
	var sessions []*Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return
	}
	s.sessions = sessions
}

// =============================================================================
// CURRENT TRANSCRIPT
// =============================================================================

// AppendUserTurn adds a new pending turn for text. Text that is empty after
// trimming is ignored; the return value reports whether a turn was added.
func (s *Store) AppendUserTurn(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AppendQuestion(text)
	return true
}

// SetLastAnswer overwrites the answer of the current transcript's last turn
// with the full accumulated text so far. Called once per received chunk
// during streaming.
func (s *Store) SetLastAnswer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.SetLastAnswer(text)
}

// Current returns a copy of the current transcript.
func (s *Store) Current() model.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// CurrentIsEmpty reports whether the current transcript has no turns.
func (s *Store) CurrentIsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.IsEmpty()
}

// ActiveID returns the active session ID, or "" for an unsaved transcript.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// RateLast records a 1-5 star rating for the current transcript's last turn
// and persists it. Out-of-range ratings and empty transcripts are ignored.
func (s *Store) RateLast(stars int) error {
	if stars < 1 || stars > 5 {
		return nil
	}
	s.mu.Lock()
	if s.current.IsEmpty() {
		s.mu.Unlock()
		return nil
	}
	s.ratings[len(s.current)-1] = stars
	s.mu.Unlock()
	return s.PersistCurrent()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// PersistCurrent saves the current transcript into the collection. With an
// active session it updates that entry in place, keeping its position; for a
// fresh transcript it mints an ID, prepends the new session, and evicts the
// tail past MaxSessions. An empty transcript is a no-op. Idempotent by ID:
// calling it twice updates, never duplicates.
func (s *Store) PersistCurrent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistCurrentLocked()
}

func (s *Store) persistCurrentLocked() error {
	if s.current.IsEmpty() {
		return nil
	}

	sess := &Session{
		ID:        s.currentID,
		Title:     util.TruncateRunes(s.current[0].Question, TitleRunes),
		Timestamp: time.Now(),
		History:   s.current.Clone(),
	}
	if len(s.ratings) > 0 {
		sess.Ratings = make(map[int]int, len(s.ratings))
		for k, v := range s.ratings {
			sess.Ratings[k] = v
		}
	}

	if s.currentID != "" {
		if i := s.indexLocked(s.currentID); i >= 0 {
			// In-place update, keeping the entry's position. The title is
			// re-derived from the first question on every save, so a manual
			// rename survives only until the session is saved again.
			s.sessions[i] = sess
			return s.persistLocked()
		}
		// Pointer refers to an entry that is gone (evicted or deleted by
		// another path). Re-insert under the same ID rather than lose the
		// transcript.
	} else {
		sess.ID = uuid.NewString()
		s.currentID = sess.ID
	}

	s.sessions = append([]*Session{sess}, s.sessions...)
	if len(s.sessions) > MaxSessions {
		s.sessions = s.sessions[:MaxSessions]
	}
	return s.persistLocked()
}

// persistLocked writes the whole collection back through the adapter. The
// KV has no partial-update capability, so every mutation rewrites the list.
func (s *Store) persistLocked() error {
	sessions := s.sessions
	if sessions == nil {
		sessions = []*Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return s.kv.Save(storage.KeySavedChats, string(data))
}

// =============================================================================
// SESSION SWITCHING
// =============================================================================

// StartNew saves the current transcript if it has any turns, then resets to
// an empty unsaved transcript.
func (s *Store) StartNew() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if !s.current.IsEmpty() {
		err = s.persistCurrentLocked()
	}
	s.resetLocked()
	return err
}

// resetLocked clears the current transcript and the active pointer.
func (s *Store) resetLocked() {
	s.current = nil
	s.currentID = ""
	s.ratings = make(map[int]int)
}

// LoadSession replaces the current transcript with a copy of the stored
// session's history and marks it active. An unknown ID is a silent no-op;
// the return value reports whether the session was found.
func (s *Store) LoadSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	sess := s.sessions[i]
	s.current = sess.History.Clone()
	s.currentID = sess.ID
	s.ratings = make(map[int]int, len(sess.Ratings))
	for k, v := range sess.Ratings {
		s.ratings[k] = v
	}
	return true
}

// =============================================================================
// COLLECTION MUTATION
// =============================================================================

// RenameSession sets a new title on the session with the given ID and
// persists. Empty titles after trimming and unknown IDs are silent no-ops.
func (s *Store) RenameSession(id, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	s.sessions[i].Title = newTitle
	return s.persistLocked()
}

// DeleteSession removes the session with the given ID and persists. If the
// deleted session was active, the current transcript resets without
// re-saving the just-deleted content. Unknown IDs are silent no-ops.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
	if s.currentID == id {
		s.resetLocked()
	}
	return s.persistLocked()
}

// ClearAll empties the collection, persists the empty list, and resets the
// current transcript.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	s.resetLocked()
	return s.persistLocked()
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Sessions returns a snapshot of the collection, most recently saved first.
func (s *Store) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = *sess
		out[i].History = sess.History.Clone()
	}
	return out
}

// Get returns a copy of one session by ID.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Session{}, false
	}
	sess := *s.sessions[i]
	sess.History = s.sessions[i].History.Clone()
	return sess, true
}

// Len returns the number of saved sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) indexLocked(id string) int {
	for i, sess := range s.sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}
