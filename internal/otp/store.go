package otp

import (
	"sync"
	"time"
)

// Store keeps pending one-time passcodes in memory until they are verified
// or expire. Codes are per-mobile; issuing a new code replaces the old one.
type Store struct {
	ttl     time.Duration
	entries sync.Map // map[string]pendingCode
}

type pendingCode struct {
	code string
	at   time.Time
}

// NewStore constructs a pending-code store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{ttl: ttl}
}

// Put records the latest code issued to a mobile number.
func (s *Store) Put(mobile, code string) {
	s.entries.Store(mobile, pendingCode{code: code, at: time.Now()})
}

// Verify checks the submitted code against the pending one. A successful
// verification consumes the code; expired codes are dropped.
func (s *Store) Verify(mobile, code string) bool {
	value, ok := s.entries.Load(mobile)
	if !ok {
		return false
	}
	pending := value.(pendingCode)
	if time.Since(pending.at) > s.ttl {
		s.entries.Delete(mobile)
		return false
	}
	if pending.code != code {
		return false
	}
	s.entries.Delete(mobile)
	return true
}

// Len counts pending codes, expired entries included.
func (s *Store) Len() int {
	count := 0
	s.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
