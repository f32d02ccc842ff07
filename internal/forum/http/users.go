package http

import (
	"net/http"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/pkg/forumsdk"
	"github.com/aussiebroadwan/forum/pkg/httpx"
)

type UserHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// HandleSignup godoc
//
//	@Summary		Register a user
//	@Description	Creates a nonadmin user. The username is checked before the email, so a request clashing on both reports SGR-001.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forumsdk.SignupUserRequest	true	"New user"
//	@Success		201		{object}	forumsdk.StatusResponse		"id, status"
//	@Failure		400		{object}	forumsdk.ErrorResponse		"REQ-001"
//	@Failure		409		{object}	forumsdk.ErrorResponse		"SGR-001 username taken, SGR-002 email taken"
//	@Failure		500		{object}	forumsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/user/signup [post].
func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.SignupUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Signup(r.Context(), service.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.UserName,
		Email:         req.EmailAddress,
		Password:      req.Password,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, forumsdk.StatusResponse{
		ID:     user.UUID,
		Status: forumsdk.StatusUserRegistered,
	})
}

// HandleSignin godoc
//
//	@Summary		Sign in
//	@Description	Checks basic credentials and opens a new session. The token is returned in the access-token header and the body.
//	@Tags			Users
//	@Security		BasicAuth
//	@Produce		json
//	@Success		200	{object}	forumsdk.SigninResponse	"id, message, access_token, expires_at"
//	@Header			200	{string}	access-token			"Session token"
//	@Failure		400	{object}	forumsdk.ErrorResponse	"REQ-001 missing basic credentials"
//	@Failure		401	{object}	forumsdk.ErrorResponse	"ATH-001 unknown username, ATH-002 wrong password"
//	@Failure		500	{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/user/signin [post].
func (h *UserHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, r, service.InvalidRequest("Use basic authentication (username:password)"))
		return
	}

	sess, err := h.UserService.SignIn(r.Context(), username, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(forumsdk.HeaderAccessToken, sess.Token)
	httpx.WriteJSON(w, http.StatusOK, forumsdk.SigninResponse{
		ID:          sess.User.UUID,
		Message:     forumsdk.StatusSignedIn,
		AccessToken: sess.Token,
		ExpiresAt:   sess.ExpiresAt.Unix(),
	})
}

// HandleSignout godoc
//
//	@Summary		Sign out
//	@Description	Ends the session behind the presented token. Signing out twice reports SGR-001.
//	@Tags			Users
//	@Security		SessionToken
//	@Produce		json
//	@Success		200	{object}	forumsdk.SignoutResponse	"id, message"
//	@Failure		401	{object}	forumsdk.ErrorResponse		"SGR-001"
//	@Failure		500	{object}	forumsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/user/signout [post].
func (h *UserHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	userID, err := h.SessionService.SignOut(r.Context(), sessionToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.SignoutResponse{
		ID:      userID,
		Message: forumsdk.StatusSignedOut,
	})
}

// HandleProfile godoc
//
//	@Summary		Get a user's profile
//	@Tags			Users
//	@Security		SessionToken
//	@Produce		json
//	@Param			userId	path		string						true	"User id"
//	@Success		200		{object}	forumsdk.UserDetailsResponse
//	@Failure		401		{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure		404		{object}	forumsdk.ErrorResponse	"USR-001"
//	@Failure		500		{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/userprofile/{userId} [get].
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUserProfile(r.Context(), sessionToken(r), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userDetails(user))
}

func userDetails(u domain.User) forumsdk.UserDetailsResponse {
	return forumsdk.UserDetailsResponse{
		ID:            u.UUID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		UserName:      u.Username,
		EmailAddress:  u.Email,
		Country:       u.Country,
		AboutMe:       u.AboutMe,
		DOB:           u.DOB,
		ContactNumber: u.ContactNumber,
	}
}
