package memory

import (
	"chartly-be/internal/dataset"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository maps opaque session identifiers to uploaded frames.
// Sessions never expire and are never deleted: a frame lives for the process
// lifetime once created. Frames are immutable, so concurrent reads are safe.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Save stores the frame under a fresh unique identifier and returns it.
// Identifiers are never reused.
func (r *SessionRepository) Save(frame *dataset.Frame) string {
	id := uuid.NewString()
	r.cache.Set(id, frame, cache.NoExpiration)
	return id
}

// Get returns the frame for the given identifier, or false when unknown.
func (r *SessionRepository) Get(sessionID string) (*dataset.Frame, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dataset.Frame), true
	}
	return nil, false
}
