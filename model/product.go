package model

import "time"

// Product holds every image a user uploaded for one category. There is one
// document per (user, category) pair; uploads append to Images.
type Product struct {
	ProductID string    `firestore:"productid,omitempty" json:"id"`
	UserID    string    `firestore:"userid,omitempty" json:"userId,omitempty"`
	Category  string    `firestore:"category,omitempty" json:"category"`
	Images    []string  `firestore:"images" json:"images"`
	CreatedAt time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
