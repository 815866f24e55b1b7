package response

// StudentResponse represents a student account without credential fields
type StudentResponse struct {
	ID             uint   `json:"id" example:"1"`
	Name           string `json:"name" example:"John Doe"`
	Email          string `json:"email" example:"john.doe@example.com"`
	Role           string `json:"role" example:"student"`
	AssignedRoomID *uint  `json:"assigned_room_id"`
}

// CreateStudentResponse is returned by the student onboarding endpoint.
// EmailSent reports whether the credential email was delivered; account
// creation succeeds either way.
type CreateStudentResponse struct {
	Student   StudentResponse `json:"student"`
	EmailSent bool            `json:"email_sent"`
}

// LoginResponse is returned by the login endpoint
type LoginResponse struct {
	Token string          `json:"token"`
	User  StudentResponse `json:"user"`
}
