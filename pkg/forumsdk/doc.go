/*
Package forumsdk provides the wire types and a small client for the forum
service.

# SDKClient vs Session

SDKClient covers the public endpoints (signup, signin, health). Signing in
returns a Session that carries the access token and exposes the endpoints
that need one:

	client := forumsdk.NewSDKClient("http://localhost:8080")

	_, err := client.Signup(ctx, forumsdk.SignupUserRequest{...})

	session, err := client.Signin(ctx, "alice", "secret")
	q, err := session.CreateQuestion(ctx, "What is a goroutine?")
	_, err = session.Signout(ctx)

# Errors

Failed requests return *APIError carrying the service's error code (for
example "ATHR-003") and message verbatim, plus the HTTP status.
*/
package forumsdk
