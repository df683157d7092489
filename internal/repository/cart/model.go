package repository

import "time"

const keyPrefix = "cart-"

// Key is the storage key of a user's cart.
func Key(userID string) string { return keyPrefix + userID }

type LineEntity struct {
	PartID   string `json:"partId" bson:"part_id"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

type CartEntity struct {
	UserID    string       `bson:"user_id"`
	Items     []LineEntity `bson:"items"`
	UpdatedAt time.Time    `bson:"updated_at"`
}
