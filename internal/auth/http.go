package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// HTTPProvider signs in against an external identity provider that accepts a form POST.
// 200 means the credentials are valid, 401 and 403 mean they are not.
type HTTPProvider struct {
	client   *http.Client
	loginURL string
	baseURL  string
}

func NewHTTPProvider(client *http.Client, loginURL, baseURL string) *HTTPProvider {
	return &HTTPProvider{client: client, loginURL: loginURL, baseURL: baseURL}
}

// SignIn performs a login request to the configured loginURL using the provided email and password.
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) error {
	// Data for login
	data := url.Values{}
	data.Set("action", "login")
	data.Set("email", email)
	data.Set("password", password)

	// Create a POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.loginURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create new request %s: %w", p.loginURL, err)
	}

	// Headers
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", models.UserAgent)
	if p.baseURL != "" {
		req.Header.Set("Referer", p.baseURL)
	}

	// Execute request
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to request %s: %w", ErrLogin, p.loginURL, err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("%w, status code: %d", ErrLogin, resp.StatusCode)
	}
}
