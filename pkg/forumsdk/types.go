package forumsdk

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Code is the machine readable error code (e.g. "ATHR-001")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// StatusResponse is returned by most mutating endpoints: the external id of
// the affected entity and a status line.
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ============================================================================
// Users
// ============================================================================

// SignupUserRequest registers a new user. The role is always nonadmin.
type SignupUserRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Password      string `json:"password"`
	Country       string `json:"country,omitempty"`
	AboutMe       string `json:"aboutMe,omitempty"`
	DOB           string `json:"dob,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// SigninResponse is the body of a successful signin. The same token is also
// sent in the access-token header.
type SigninResponse struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// SignoutResponse carries the external id of the user that signed out.
type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UserDetailsResponse is a user's public profile.
type UserDetailsResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

// ============================================================================
// Questions & answers
// ============================================================================

type QuestionRequest struct {
	Content string `json:"content"`
}

type QuestionEditRequest struct {
	Content string `json:"content"`
}

type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerEditRequest struct {
	Content string `json:"content"`
}

type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"question_content"`
	AnswerContent   string `json:"answer_content"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
