package outlet

// Store holds the loaded record list. It is populated once at startup and
// read-only thereafter, so it is safe to share across views without locking.
type Store struct {
	records  []Record
	byOutlet map[string]int // outlet id -> index into records
}

// NewStore creates a store from the given records, preserving their order.
// If the same outlet id appears twice, the first occurrence wins.
func NewStore(records []Record) *Store {
	s := &Store{
		records:  records,
		byOutlet: make(map[string]int, len(records)),
	}
	for i, r := range records {
		if _, dup := s.byOutlet[r.Outlet]; !dup {
			s.byOutlet[r.Outlet] = i
		}
	}
	return s
}

// Records returns all records in load order.
// The returned slice is shared; callers must not modify it.
func (s *Store) Records() []Record {
	return s.records
}

// Lookup returns the record for the given outlet id.
func (s *Store) Lookup(outlet string) (Record, bool) {
	i, ok := s.byOutlet[outlet]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// OwnerOf returns the owner of the given outlet id.
func (s *Store) OwnerOf(outlet string) (string, bool) {
	r, ok := s.Lookup(outlet)
	if !ok {
		return "", false
	}
	return r.Owner, true
}

// Len returns the number of records in the store.
func (s *Store) Len() int { return len(s.records) }
