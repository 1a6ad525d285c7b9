// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// TURN
// =============================================================================

// Turn is one question/answer pair in a conversation. Answer is empty while
// the reply is still streaming or when the request failed.
type Turn struct {
	Question string
	Answer   string
}

// Answered reports whether the turn has received a (possibly partial) answer.
func (t Turn) Answered() bool {
	return t.Answer != ""
}

// MarshalJSON encodes the turn as a ["question", "answer"] pair. This is the
// wire shape the backend expects for chat_history and the shape persisted
// sessions have always used, so it must not change.
func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Question, t.Answer})
}

// UnmarshalJSON accepts a JSON string array. Arrays shorter than two
// elements hydrate with the missing parts empty rather than failing, so a
// half-written turn in storage does not poison the whole collection.
func (t *Turn) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("turn must be a string pair: %w", err)
	}
	t.Question = ""
	t.Answer = ""
	if len(pair) > 0 {
		t.Question = pair[0]
	}
	if len(pair) > 1 {
		t.Answer = pair[1]
	}
	return nil
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered list of turns for one conversation. It marshals
// as [["q","a"], ...].
type Transcript []Turn

// AppendQuestion adds a new pending turn for question. The previous turn, if
// any, keeps whatever answer it has; callers are expected to finish (or
// fail) one turn before starting the next.
func (tr *Transcript) AppendQuestion(question string) {
	*tr = append(*tr, Turn{Question: question})
}

// SetLastAnswer replaces the answer of the final turn. Called repeatedly
// during streaming with the full accumulated text so far — it overwrites,
// it never appends. No-op on an empty transcript.
func (tr Transcript) SetLastAnswer(answer string) {
	if len(tr) == 0 {
		return
	}
	tr[len(tr)-1].Answer = answer
}

// Last returns a pointer to the final turn, or nil when empty.
func (tr Transcript) Last() *Turn {
	if len(tr) == 0 {
		return nil
	}
	return &tr[len(tr)-1]
}

// IsEmpty reports whether the transcript has no turns.
func (tr Transcript) IsEmpty() bool {
	return len(tr) == 0
}

// Clone returns an independent copy. Loading a stored session hands out a
// clone so in-progress edits never mutate the persisted collection.
func (tr Transcript) Clone() Transcript {
	if tr == nil {
		return nil
	}
	out := make(Transcript, len(tr))
	copy(out, tr)
	return out
}

// Pairs converts the transcript to the [][2]string form used in the /chat
// request payload.
func (tr Transcript) Pairs() [][2]string {
	out := make([][2]string, len(tr))
	for i, t := range tr {
		out[i] = [2]string{t.Question, t.Answer}
	}
	return out
}
