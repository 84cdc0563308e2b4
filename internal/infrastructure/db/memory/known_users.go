package memory

import "context"

// DefaultKnownUserIDs stands in for the users that "exist".
var DefaultKnownUserIDs = []int{1, 2, 3, 4, 5}

// KnownUsers is an immutable in-process set of user ids.
type KnownUsers struct {
	ids map[int]struct{}
}

// NewKnownUsers copies ids into a new set.
func NewKnownUsers(ids []int) *KnownUsers {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &KnownUsers{ids: set}
}

func (k *KnownUsers) Exists(_ context.Context, userID int) (bool, error) {
	_, ok := k.ids[userID]
	return ok, nil
}

func (k *KnownUsers) Len() int {
	return len(k.ids)
}
