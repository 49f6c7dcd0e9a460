package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Inquiry string `json:"inquiry"`
}
