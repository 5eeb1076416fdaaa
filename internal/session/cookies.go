package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Ramsha-Haris/table/internal/platform"
)

// CookieFile persists the backend's session cookies between runs so the
// credential cookie is sent automatically, as a browser would.
type CookieFile struct {
	path string
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewCookieFile returns cookie persistence in the given tab directory.
func NewCookieFile(tabDir string) *CookieFile {
	return &CookieFile{path: filepath.Join(tabDir, cookiesFile)}
}

// Restore loads saved cookies for base into jar. A missing file is not an error.
func (f *CookieFile) Restore(jar http.CookieJar, base *url.URL) error {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading cookies: %w", err)
	}

	var saved map[string][]storedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("parsing cookies: %w", err)
	}

	var cookies []*http.Cookie
	for _, c := range saved[base.Host] {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	if len(cookies) > 0 {
		jar.SetCookies(base, cookies)
	}
	return nil
}

// Persist writes the jar's cookies for base, replacing that host's entry.
func (f *CookieFile) Persist(jar http.CookieJar, base *url.URL) error {
	saved := map[string][]storedCookie{}
	if data, err := os.ReadFile(f.path); err == nil {
		_ = json.Unmarshal(data, &saved)
	}

	var list []storedCookie
	for _, c := range jar.Cookies(base) {
		list = append(list, storedCookie{Name: c.Name, Value: c.Value})
	}
	if len(list) == 0 {
		delete(saved, base.Host)
	} else {
		saved[base.Host] = list
	}

	if len(saved) == 0 {
		return platform.RemoveIfExists(f.path)
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encoding cookies: %w", err)
	}
	return platform.WriteFileSecure(f.path, data)
}

// Clear removes every saved cookie.
func (f *CookieFile) Clear() error {
	return platform.RemoveIfExists(f.path)
}
