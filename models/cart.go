package models

import "time"

// CartLine is one product entry in the cart. The JSON tags match the blob the
// web client persisted, so previously saved carts keep decoding.
type CartLine struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precio"`
	ImageRef  string  `json:"imagen"`
	Quantity  int     `json:"quantity"`
}

// CartSnapshot is the persisted cart blob (schema version 1). Version 0 blobs
// carried only the items; storage backfills the owner and the timestamp.
type CartSnapshot struct {
	Lines       []CartLine `json:"items"`
	OwnerUserID int64      `json:"user_id"`
	LastUpdated time.Time  `json:"last_updated"`
}
