package dto

type CreateTimelineRequest struct {
	EventDate     string `json:"eventDate" binding:"required"`
	EnTitle       string `json:"entitle" binding:"required"`
	ZnTitle       string `json:"zntitle" binding:"required"`
	EnDescription string `json:"endescription" binding:"required"`
	ZnDescription string `json:"zndescription" binding:"required"`
}
