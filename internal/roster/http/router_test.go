package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/internal/roster/store/drivers/sqlite"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "school-http-test-pepper"))
	os.Exit(m.Run())
}

type testServer struct {
	*httptest.Server
	store store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	cookie := httpx.NewSessionCookie("school_session", "test-secret", time.Hour)

	router := NewRouter(cookie, "test", st, slog.Default())
	router.AuthService = &service.AuthService{Store: st}
	router.SessionService = &service.SessionService{Store: st, TTL: time.Hour}
	router.StudentService = &service.StudentService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

// newClient returns an HTTP client with a cookie jar so the session cookie
// set at login is carried on subsequent requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func (ts *testServer) do(t *testing.T, c *http.Client, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func (ts *testServer) register(t *testing.T, c *http.Client, name, email, password, role string) {
	t.Helper()

	resp, _ := ts.do(t, c, http.MethodPost, "/api/register", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("creates user and session", func(t *testing.T) {
		client := newClient(t)

		resp, raw := ts.do(t, client, http.MethodPost, "/api/register", RegisterRequest{
			Name: "Alice", Email: "alice@example.com", Password: "pw", Role: "teacher",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body RegisterResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.True(t, body.OK)
		require.Equal(t, "Alice", body.User.Name)
		require.Equal(t, "teacher", body.User.Role)
		require.NotEmpty(t, body.User.ID)

		// The session cookie from registration authenticates follow-up calls.
		resp, _ = ts.do(t, client, http.MethodGet, "/api/students", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, raw := ts.do(t, newClient(t), http.MethodPost, "/api/register", RegisterRequest{
			Name: "No Email", Password: "pw", Role: "student",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		requireErrorBody(t, raw, "Missing fields")
	})

	t.Run("invalid role", func(t *testing.T) {
		resp, _ := ts.do(t, newClient(t), http.MethodPost, "/api/register", RegisterRequest{
			Name: "X", Email: "x@example.com", Password: "pw", Role: "principal",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		client := newClient(t)
		ts.register(t, client, "First", "dup@example.com", "pw", "student")

		resp, raw := ts.do(t, newClient(t), http.MethodPost, "/api/register", RegisterRequest{
			Name: "Second", Email: "dup@example.com", Password: "pw", Role: "student",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		requireErrorBody(t, raw, "Email already registered")
	})
}

func TestLoginLogoutEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.register(t, newClient(t), "Alice", "alice@example.com", "pw", "teacher")

	t.Run("valid credentials", func(t *testing.T) {
		client := newClient(t)

		resp, raw := ts.do(t, client, http.MethodPost, "/api/login", LoginRequest{
			Email: "alice@example.com", Password: "pw",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body LoginResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.True(t, body.OK)
		require.Equal(t, "alice@example.com", body.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, raw := ts.do(t, newClient(t), http.MethodPost, "/api/login", LoginRequest{
			Email: "alice@example.com", Password: "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		requireErrorBody(t, raw, "Invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, _ := ts.do(t, newClient(t), http.MethodPost, "/api/login", LoginRequest{
			Email: "ghost@example.com", Password: "pw",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed body is a validation error, not a credential failure", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/login", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		requireErrorBody(t, raw, "Missing fields")
	})

	t.Run("logout ends the session", func(t *testing.T) {
		client := newClient(t)
		resp, _ := ts.do(t, client, http.MethodPost, "/api/login", LoginRequest{
			Email: "alice@example.com", Password: "pw",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ts.do(t, client, http.MethodPost, "/api/logout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ts.do(t, client, http.MethodGet, "/api/students", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		resp, _ := ts.do(t, newClient(t), http.MethodPost, "/api/logout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("anonymous gets null user", func(t *testing.T) {
		resp, raw := ts.do(t, newClient(t), http.MethodGet, "/api/me", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body MeResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Nil(t, body.User)
	})

	t.Run("authenticated gets the snapshot", func(t *testing.T) {
		client := newClient(t)
		ts.register(t, client, "Bob", "bob@example.com", "pw", "student")

		resp, raw := ts.do(t, client, http.MethodGet, "/api/me", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body MeResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.NotNil(t, body.User)
		require.Equal(t, "Bob", body.User.Name)
		require.Equal(t, "student", body.User.Role)
	})
}

func TestSessionCookieRollsOnAuthenticatedRequests(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	client := newClient(t)
	ts.register(t, client, "Alice", "alice@example.com", "pw", "teacher")

	// Every request through the session gate restamps the cookie so the
	// browser-side deadline follows the server-side rolling expiry.
	resp, _ := ts.do(t, client, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Values("Set-Cookie"))

	resp, _ = ts.do(t, client, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Values("Set-Cookie"))

	// Anonymous requests have no session to roll.
	resp, _ = ts.do(t, newClient(t), http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, resp.Header.Values("Set-Cookie"))
}

func requireErrorBody(t *testing.T, raw []byte, want string) {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, want, body.Error)
}
