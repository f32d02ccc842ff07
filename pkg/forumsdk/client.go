package forumsdk

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the forum service. It provides access to the
// public endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new forum service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new user.
func (c *SDKClient) Signup(ctx context.Context, req SignupUserRequest) (*StatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/user/signup", req, nil)
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signin authenticates with HTTP basic credentials and returns a Session.
func (c *SDKClient) Signin(ctx context.Context, username, password string) (*Session, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/user/signin", nil, map[string]string{
		HeaderAuthorization: "Basic " + basic,
	})
	if err != nil {
		return nil, err
	}

	var out SigninResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return c.NewSession(out.ID, out.AccessToken), nil
}

// NewSession wraps an access token obtained elsewhere.
func (c *SDKClient) NewSession(userID, accessToken string) *Session {
	return &Session{client: c, userID: userID, accessToken: accessToken}
}

// GetLiveness calls /livez.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness calls /readyz.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
