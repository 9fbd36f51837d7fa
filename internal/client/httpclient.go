package client

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const maxRedirects = 5

var errTooManyRedirects = errors.New("stopped after too many redirects")

// CreateHTTPClient initializes the client used to talk to the external identity provider.
// Session cookies set by the provider are kept in an in-memory jar.
func CreateHTTPClient(log *slog.Logger, timeout time.Duration) *http.Client {
	jar := NewCookieJar(log)

	return &http.Client{
		Jar:     jar,
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errTooManyRedirects
			}
			log.Debug("Redirected to URL", "URL", req.URL)

			return nil
		},
	}
}
