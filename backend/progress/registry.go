package progress

import (
	"sync"

	"mlacademy/backend/storage"
)

// Registry hands out one shared Tracker per profile, so all requests for a
// profile serialize their read-modify-write cycles on the same mutex.
type Registry struct {
	mu       sync.Mutex
	store    storage.Store
	trackers map[string]*Tracker
}

func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store, trackers: make(map[string]*Tracker)}
}

// ForProfile returns the profile's tracker, creating and initializing it on
// first use.
func (r *Registry) ForProfile(profile string) *Tracker {
	if profile == "" {
		profile = "default"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tracker, ok := r.trackers[profile]
	if !ok {
		tracker = NewTracker(storage.Namespaced(r.store, profile))
		tracker.Initialize()
		r.trackers[profile] = tracker
	}
	return tracker
}
