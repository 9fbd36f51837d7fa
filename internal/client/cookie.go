package client

import (
	"log/slog"
	"net/http"
	"net/url"
	"sync"
)

// CookieJar implements http.CookieJar for storing cookies in memory, per host.
// Cookies with the same name replace each other, a negative MaxAge deletes one.
type CookieJar struct {
	log *slog.Logger
	mu  sync.Mutex
	jar map[string]map[string]*http.Cookie
}

// NewCookieJar initializes an in-memory cookie jar.
func NewCookieJar(log *slog.Logger) *CookieJar {
	return &CookieJar{
		jar: make(map[string]map[string]*http.Cookie),
		log: log,
	}
}

// SetCookies stores cookies for a given URL.
func (c *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	c.mu.Lock()
	defer c.mu.Unlock()

	host := c.jar[u.Host]
	if host == nil {
		host = make(map[string]*http.Cookie, len(cookies))
		c.jar[u.Host] = host
	}

	for _, cookie := range cookies {
		if cookie.MaxAge < 0 {
			delete(host, cookie.Name)
			continue
		}
		host[cookie.Name] = cookie
	}
	c.log.Debug("Set cookies", "host", u.Host, "count", len(host))
}

// Cookies retrieves cookies for a given URL.
func (c *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	c.mu.Lock()
	defer c.mu.Unlock()

	host := c.jar[u.Host]
	if len(host) == 0 {
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(host))
	for _, cookie := range host {
		cookies = append(cookies, cookie)
	}

	return cookies
}

// Clear forgets every stored cookie.
func (c *CookieJar) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.jar)
}
