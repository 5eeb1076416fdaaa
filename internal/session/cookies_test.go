package session

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"
)

func TestCookieFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	base, _ := url.Parse("http://localhost:3000")

	jar, _ := cookiejar.New(nil)
	jar.SetCookies(base, []*http.Cookie{{Name: "token", Value: "abc", Path: "/"}})

	f := NewCookieFile(dir)
	if err := f.Persist(jar, base); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	fresh, _ := cookiejar.New(nil)
	if err := f.Restore(fresh, base); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	got := fresh.Cookies(base)
	if len(got) != 1 || got[0].Name != "token" || got[0].Value != "abc" {
		t.Errorf("restored cookies = %v", got)
	}

	// Other hosts do not receive them.
	other, _ := url.Parse("http://api.example.test")
	otherJar, _ := cookiejar.New(nil)
	f.Restore(otherJar, other)
	if len(otherJar.Cookies(other)) != 0 {
		t.Error("cookies leaked to another host")
	}
}

func TestCookieFileClear(t *testing.T) {
	dir := t.TempDir()
	base, _ := url.Parse("http://localhost:3000")
	jar, _ := cookiejar.New(nil)
	jar.SetCookies(base, []*http.Cookie{{Name: "token", Value: "abc", Path: "/"}})

	f := NewCookieFile(dir)
	f.Persist(jar, base)
	if err := f.Clear(); err != nil {
		t.Fatal(err)
	}

	fresh, _ := cookiejar.New(nil)
	if err := f.Restore(fresh, base); err != nil {
		t.Fatal(err)
	}
	if len(fresh.Cookies(base)) != 0 {
		t.Error("cookies should be gone after Clear")
	}
}
