// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Collection names a keyed record table of the local store.
type Collection struct {
	name string
	key  string
}

// The collections of the local store. The set is fixed by the client
// migrations.
var (
	RestaurantsCollection     = Collection{name: "restaurants", key: "id"}
	ReviewsCollection         = Collection{name: "reviews", key: "restaurant_id"}
	PendingRequestsCollection = Collection{name: "pending_requests", key: "id"}
)

func (c Collection) String() string {
	return c.name
}

// Record is one stored value: its key and JSON payload.
type Record struct {
	Key     int64
	Payload []byte
}
