//go:build integration

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Ramsha-Haris/table/internal/api"
	"github.com/Ramsha-Haris/table/internal/logging"
	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/session"
)

// fakeBackend is a stateful stand-in for the booking server. Deleted
// bookings keep their record with the Deleted status and drop out of lists.
type fakeBackend struct {
	mu       sync.Mutex
	srv      *httptest.Server
	users    map[string]fakeAccount
	sessions map[string]model.User
	bookings []map[string]any
	tables   []model.Table
	nextID   int
}

type fakeAccount struct {
	user     model.User
	password string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		users:    map[string]fakeAccount{},
		sessions: map[string]model.User{},
		tables: []model.Table{
			{ID: "t1", Code: 1, Capacity: 2, Location: "Window", Branch: model.BranchLahore},
			{ID: "t2", Code: 2, Capacity: 4, Location: "Hall", Branch: model.BranchLahore},
			{ID: "t3", Code: 3, Capacity: 6, Location: "Terrace", Branch: model.BranchIslamabad},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", b.locked(b.signup))
	mux.HandleFunc("POST /api/auth/login", b.locked(b.login))
	mux.HandleFunc("POST /api/auth/logout", b.locked(b.logout))
	mux.HandleFunc("GET /api/store/get-all-bookings", b.authed(b.listBookings))
	mux.HandleFunc("GET /api/store/TableBookingForm/{id}", b.authed(b.getBooking))
	mux.HandleFunc("POST /api/store/create-booking", b.authed(b.saveBooking))
	mux.HandleFunc("POST /api/store/TableBookingForm", b.authed(b.saveBooking))
	mux.HandleFunc("PATCH /api/store/delete-reservation/{id}", b.authed(b.deleteBooking))
	mux.HandleFunc("GET /api/store/check-table-availability", b.authed(b.availability))
	mux.HandleFunc("GET /api/store/firstname-suggestions", b.authed(b.suggestions))
	mux.HandleFunc("GET /api/host/book-table-data", b.authed(b.listTables))
	mux.HandleFunc("GET /api/host/host-table-list", b.authed(b.listTables))
	mux.HandleFunc("POST /api/host/add-table", b.authed(b.addTable))
	mux.HandleFunc("DELETE /api/host/delete-table/{id}", b.authed(b.deleteTable))

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) locked(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		h(w, r)
	}
}

func (b *fakeBackend) authed(h http.HandlerFunc) http.HandlerFunc {
	return b.locked(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("token")
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
			return
		}
		if _, ok := b.sessions[c.Value]; !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Session expired"})
			return
		}
		h(w, r)
	})
}

func (b *fakeBackend) signup(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if _, taken := b.users[req.Email]; taken {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []map[string]string{{"msg": "Email already registered"}}})
		return
	}
	b.nextID++
	b.users[req.Email] = fakeAccount{
		user:     model.User{ID: fmt.Sprintf("u%d", b.nextID), FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Role: req.UserType},
		password: req.Password,
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Account created"})
}

func (b *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	_ = json.NewDecoder(r.Body).Decode(&creds)
	acct, ok := b.users[creds.Email]
	if !ok || acct.password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		return
	}
	b.nextID++
	token := fmt.Sprintf("tok%d", b.nextID)
	b.sessions[token] = acct.user
	http.SetCookie(w, &http.Cookie{Name: "token", Value: token, Path: "/"})
	redirect := "/store/bookings"
	if acct.user.Role == model.RoleHost {
		redirect = "/host/host-table-list"
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": acct.user, "redirectTo": redirect})
}

func (b *fakeBackend) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("token"); err == nil {
		delete(b.sessions, c.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
}

func (b *fakeBackend) live() []map[string]any {
	var out []map[string]any
	for _, bk := range b.bookings {
		if bk["bookingStatus"] != model.StatusDeleted {
			out = append(out, bk)
		}
	}
	return out
}

func (b *fakeBackend) find(id string) map[string]any {
	for _, bk := range b.bookings {
		if bk["_id"] == id {
			return bk
		}
	}
	return nil
}

func (b *fakeBackend) listBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"bookings": b.live()})
}

func (b *fakeBackend) getBooking(w http.ResponseWriter, r *http.Request) {
	bk := b.find(r.PathValue("id"))
	if bk == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": bk})
}

func (b *fakeBackend) saveBooking(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad body"})
		return
	}
	id, _ := body["id"].(string)
	delete(body, "id")
	if id == "" {
		b.nextID++
		body["_id"] = fmt.Sprintf("bk%d", b.nextID)
		b.bookings = append(b.bookings, body)
		writeJSON(w, http.StatusCreated, map[string]any{"booking": body})
		return
	}
	for i, bk := range b.bookings {
		if bk["_id"] == id {
			body["_id"] = id
			body["createdBy"] = bk["createdBy"]
			b.bookings[i] = body
			writeJSON(w, http.StatusOK, map[string]any{"booking": body})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
}

func (b *fakeBackend) deleteBooking(w http.ResponseWriter, r *http.Request) {
	bk := b.find(r.PathValue("id"))
	if bk == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
		return
	}
	bk["bookingStatus"] = model.StatusDeleted
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking deleted"})
}

func (b *fakeBackend) availability(w http.ResponseWriter, r *http.Request) {
	date, slot := r.URL.Query().Get("date"), r.URL.Query().Get("timeSlot")
	booked := []string{}
	for _, bk := range b.live() {
		if bk["date"] != date || bk["timeSlot"] != slot {
			continue
		}
		codes, _ := bk["tableName"].([]any)
		for _, c := range codes {
			booked = append(booked, fmt.Sprint(c))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookedTableCodes": booked})
}

func (b *fakeBackend) suggestions(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	out := []map[string]any{}
	for _, bk := range b.live() {
		name, _ := bk["firstName"].(string)
		if q != "" && strings.HasPrefix(strings.ToLower(name), q) {
			out = append(out, map[string]any{
				"firstName":  name,
				"secondName": bk["lastName"],
				"contact":    bk["guestContactDetails"],
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *fakeBackend) listTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tables": b.tables})
}

func (b *fakeBackend) addTable(w http.ResponseWriter, r *http.Request) {
	var in model.TableInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	b.nextID++
	b.tables = append(b.tables, in.Table(fmt.Sprintf("t%d", 100+b.nextID)))
	writeJSON(w, http.StatusCreated, map[string]any{"tables": b.tables})
}

func (b *fakeBackend) deleteTable(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	kept := b.tables[:0:0]
	for _, t := range b.tables {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	b.tables = kept
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// tab is one terminal's client: its own cookie jar and session files.
type tab struct {
	client  *api.Client
	jar     http.CookieJar
	cookies *session.CookieFile
	store   *session.Store
	dir     string
}

// openTab builds a client for the named tab under home, restoring any
// cookies and session a previous process left behind.
func openTab(t *testing.T, b *fakeBackend, home, name string) *tab {
	t.Helper()
	dir, err := session.TabDir(home, name)
	if err != nil {
		t.Fatalf("TabDir: %v", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	log := logging.Discard()
	client, err := api.New(b.srv.URL, api.WithHTTPClient(&http.Client{Jar: jar}), api.WithLogger(log))
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	cookies := session.NewCookieFile(dir)
	if err := cookies.Restore(jar, client.BaseURL()); err != nil {
		t.Fatalf("Restore cookies: %v", err)
	}
	return &tab{
		client:  client,
		jar:     jar,
		cookies: cookies,
		store:   session.New(session.NewFileStorage(dir), client, log),
		dir:     dir,
	}
}

// close persists cookies the way a finishing command does.
func (tb *tab) close(t *testing.T) {
	t.Helper()
	if err := tb.cookies.Persist(tb.jar, tb.client.BaseURL()); err != nil {
		t.Fatalf("Persist cookies: %v", err)
	}
}
