package model

import "time"

type Project struct {
	ProjectID       string    `firestore:"projectid,omitempty" json:"id"`
	UserID          string    `firestore:"userid,omitempty" json:"userId,omitempty"`
	Title           string    `firestore:"title,omitempty" json:"title"`
	Description     string    `firestore:"description,omitempty" json:"description"`
	TechnologyStack []string  `firestore:"technologystack" json:"technologyStack"`
	Repo            string    `firestore:"repo" json:"repo"`
	LiveURL         string    `firestore:"liveurl" json:"liveUrl"`
	Features        []string  `firestore:"features" json:"features"`
	ImageURL        string    `firestore:"imageurl" json:"imageUrl"`
	IsPinned        bool      `firestore:"ispinned" json:"isPinned"`
	CreatedAt       time.Time `firestore:"createdat,omitempty" json:"createdAt"`
}
