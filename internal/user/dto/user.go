package dto

// UpdateRequest carries a partial profile edit. Empty fields keep their
// stored values.
type UpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Avatar   string `json:"avatar"`
}
