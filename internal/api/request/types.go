package request

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SigninRequest is the request body for signing in
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for a partial profile update
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
}

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	Name      string `json:"name,omitempty"`
	MaxRounds int    `json:"max_rounds"`
}

// SetReadyRequest is the request body for toggling readiness
type SetReadyRequest struct {
	Ready bool `json:"ready"`
}

// SubmitAnswersRequest is the request body for submitting round answers
type SubmitAnswersRequest struct {
	Names   string `json:"names"`
	Animals string `json:"animals"`
	Places  string `json:"places"`
	Things  string `json:"things"`
}

// AddVocabWordRequest is the request body for saving a vocabulary word
type AddVocabWordRequest struct {
	Word       string `json:"word"`
	Definition string `json:"definition,omitempty"`
	Example    string `json:"example,omitempty"`
	Difficulty string `json:"difficulty"`
}

// UpdateVocabWordRequest is the request body for a partial vocab update
type UpdateVocabWordRequest struct {
	Mastered *bool `json:"mastered,omitempty"`
}

// SendFriendRequestRequest is the request body for sending a friend request
type SendFriendRequestRequest struct {
	ToUserID string `json:"to_user_id"`
}
