//go:build integration

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// RegisterAdmin creates an admin account and returns its session token.
func (env *TestEnv) RegisterAdmin(username, password string) string {
	env.t.Helper()
	resp := env.POST("/auth", map[string]string{
		"action":   "register",
		"username": username,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		env.t.Fatalf("RegisterAdmin: expected 201, got %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("RegisterAdmin: decode: %v", err)
	}
	return result.Token
}

// GET performs a GET request.
func (env *TestEnv) GET(path string) *http.Response {
	env.t.Helper()
	resp, err := http.Get(env.Server.URL + path)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST performs a POST request with a JSON body.
func (env *TestEnv) POST(path string, body interface{}) *http.Response {
	env.t.Helper()
	return env.do(http.MethodPost, path, body)
}

// PUT performs a PUT request with a JSON body.
func (env *TestEnv) PUT(path string, body interface{}) *http.Response {
	env.t.Helper()
	return env.do(http.MethodPut, path, body)
}

// DELETE performs a DELETE request with a JSON body.
func (env *TestEnv) DELETE(path string, body interface{}) *http.Response {
	env.t.Helper()
	return env.do(http.MethodDelete, path, body)
}

// OPTIONS performs a preflight request.
func (env *TestEnv) OPTIONS(path string) *http.Response {
	env.t.Helper()
	return env.do(http.MethodOptions, path, nil)
}

func (env *TestEnv) do(method, path string, body interface{}) *http.Response {
	env.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			env.t.Fatalf("%s %s: encode: %v", method, path, err)
		}
	}
	req, err := http.NewRequest(method, env.Server.URL+path, &buf)
	if err != nil {
		env.t.Fatalf("%s %s: new request: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// DecodeBody decodes a JSON response body into dst and closes the body.
func (env *TestEnv) DecodeBody(resp *http.Response, dst interface{}) {
	env.t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		env.t.Fatalf("decode response: %v", err)
	}
}
