package docstore

import (
	store "smart-timetable/pkg/docstore"
	"smart-timetable/pkg/log"
)

// Collection names, one per entity. The "routine" collection is part of the
// declared schema but nothing reads or writes it.
const (
	collectionTask      = "task"
	collectionTimeBlock = "timeblock"
	collectionRoutine   = "routine"
)

// implRepository implements repository.Repository over the generic document
// store.
type implRepository struct {
	store *store.Store
	l     log.Logger
}

// New creates a document-store-backed planner repository. A nil store is a
// valid handle: every operation then fails with docstore.ErrUnavailable.
func New(s *store.Store, l log.Logger) *implRepository {
	return &implRepository{
		store: s,
		l:     l,
	}
}
