package form

// LoginPayload is the JSON body posted to the login endpoint.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupPayload is the JSON body posted to the signup endpoint.
// The confirmation value never leaves the page.
type SignupPayload struct {
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// APIResponse is the backend reply for both endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
