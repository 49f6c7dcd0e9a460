package model

import "time"

// Timeline is a bilingual (English/Chinese) changelog entry shown on the
// public history page.
type Timeline struct {
	EventID       string    `firestore:"eventid,omitempty" json:"id"`
	EventDate     time.Time `firestore:"eventdate" json:"eventDate"`
	EnTitle       string    `firestore:"entitle" json:"entitle"`
	ZnTitle       string    `firestore:"zntitle" json:"zntitle"`
	EnDescription string    `firestore:"endescription" json:"endescription"`
	ZnDescription string    `firestore:"zndescription" json:"zndescription"`
	CreatedAt     time.Time `firestore:"createdat,omitempty" json:"createdAt"`
}
