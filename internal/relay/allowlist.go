package relay

// AllowList is the static set of sender ids permitted to forward media.
// An empty AllowList denies everyone.
type AllowList struct {
	ids map[int64]struct{}
}

// NewAllowList creates an AllowList with O(1) lookups.
func NewAllowList(ids []int64) AllowList {
	a := AllowList{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		a.ids[id] = struct{}{}
	}
	return a
}

// Contains reports whether senderID is on the list.
func (a AllowList) Contains(senderID int64) bool {
	_, ok := a.ids[senderID]
	return ok
}

// Len returns the number of distinct ids.
func (a AllowList) Len() int {
	return len(a.ids)
}
