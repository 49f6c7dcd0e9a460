package dto

type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	TechnologyStack []string `json:"technologyStack"`
	Repo            string   `json:"repo"`
	LiveURL         string   `json:"liveUrl"`
	Features        []string `json:"features"`
	ImageURL        string   `json:"imageUrl"`
	IsPinned        bool     `json:"isPinned"`
}

// UpdateProjectRequest uses pointers so absent fields are left untouched.
type UpdateProjectRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	TechnologyStack *[]string `json:"technologyStack"`
	Repo            *string   `json:"repo"`
	LiveURL         *string   `json:"liveUrl"`
	Features        *[]string `json:"features"`
	ImageURL        *string   `json:"imageUrl"`
}
