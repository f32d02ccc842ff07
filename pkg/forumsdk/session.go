package forumsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session performs requests on behalf of a signed in user.
type Session struct {
	client      *SDKClient
	userID      string
	accessToken string
}

// UserID is the external id of the signed in user.
func (s *Session) UserID() string { return s.userID }

// AccessToken returns the raw token sent with every request.
func (s *Session) AccessToken() string { return s.accessToken }

// Signout ends the session server side.
func (s *Session) Signout(ctx context.Context) (*SignoutResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/user/signout", nil)
	if err != nil {
		return nil, err
	}

	var out SignoutResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserProfile fetches the profile of the user with external id userID.
func (s *Session) GetUserProfile(ctx context.Context, userID string) (*UserDetailsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/userprofile/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var out UserDetailsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateQuestion(ctx context.Context, content string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodPost, "/v1/question/create", QuestionRequest{Content: content}, http.StatusCreated)
}

func (s *Session) EditQuestion(ctx context.Context, questionID, content string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodPut, "/v1/question/edit/"+url.PathEscape(questionID),
		QuestionEditRequest{Content: content}, http.StatusOK)
}

func (s *Session) DeleteQuestion(ctx context.Context, questionID string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodDelete, "/v1/question/delete/"+url.PathEscape(questionID), nil, http.StatusOK)
}

func (s *Session) ListQuestions(ctx context.Context) ([]QuestionDetailsResponse, error) {
	return s.questions(ctx, "/v1/question/all")
}

func (s *Session) ListQuestionsByUser(ctx context.Context, userID string) ([]QuestionDetailsResponse, error) {
	return s.questions(ctx, "/v1/question/all/"+url.PathEscape(userID))
}

func (s *Session) CreateAnswer(ctx context.Context, questionID, answer string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodPost, "/v1/question/"+url.PathEscape(questionID)+"/answer/create",
		AnswerRequest{Answer: answer}, http.StatusCreated)
}

func (s *Session) EditAnswer(ctx context.Context, answerID, content string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodPut, "/v1/answer/edit/"+url.PathEscape(answerID),
		AnswerEditRequest{Content: content}, http.StatusOK)
}

func (s *Session) DeleteAnswer(ctx context.Context, answerID string) (*StatusResponse, error) {
	return s.status(ctx, http.MethodDelete, "/v1/answer/delete/"+url.PathEscape(answerID), nil, http.StatusOK)
}

func (s *Session) ListAnswers(ctx context.Context, questionID string) ([]AnswerDetailsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/answer/all/"+url.PathEscape(questionID), nil)
	if err != nil {
		return nil, err
	}

	var out []AnswerDetailsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) status(ctx context.Context, method, path string, body any, expected int) (*StatusResponse, error) {
	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) questions(ctx context.Context, path string) ([]QuestionDetailsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out []QuestionDetailsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
