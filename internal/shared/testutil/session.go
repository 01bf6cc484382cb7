package testutil

import (
	sharedSession "github.com/anstar94/member-api-server/internal/shared/session"
)

// FakeSession is an in-memory session for service-level tests.
// Like the cookie store, writes stay pending until Save succeeds.
type FakeSession struct {
	values   map[interface{}]interface{}
	pending  map[interface{}]interface{}
	SaveErr  error
	SaveHits int
}

func NewFakeSession() *FakeSession {
	return &FakeSession{
		values:  make(map[interface{}]interface{}),
		pending: make(map[interface{}]interface{}),
	}
}

func (s *FakeSession) Get(key interface{}) interface{} {
	return s.values[key]
}

func (s *FakeSession) Set(key interface{}, val interface{}) {
	s.pending[key] = val
}

func (s *FakeSession) Save() error {
	if s.SaveErr != nil {
		return s.SaveErr
	}

	for k, v := range s.pending {
		s.values[k] = v
	}
	s.pending = make(map[interface{}]interface{})
	s.SaveHits++
	return nil
}

// Ensure FakeSession implements the session contract
var _ sharedSession.Session = (*FakeSession)(nil)
