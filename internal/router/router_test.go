package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/django-nerd/ulin/internal/handler"
	"github.com/django-nerd/ulin/internal/middleware"
	"github.com/django-nerd/ulin/internal/repository/sqlite"
	"github.com/django-nerd/ulin/internal/service"
	"github.com/django-nerd/ulin/internal/service/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestServer(t *testing.T, store ports.DocumentStore) http.Handler {
	t.Helper()
	log := newTestLogger(t)

	h := handler.NewHandler(
		service.NewListingService(store, log),
		service.NewBookingService(store, nil, log),
		service.NewStatusService(store, log),
		handler.Options{},
	)

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	return InitRouter("test", h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORS([]string{"*"}, false),
		metrics.Middleware(),
	)
}

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ulin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Regexp(t, hexID, resp["id"])
	return resp["id"]
}

func listOf(t *testing.T, r http.Handler, path string) []map[string]any {
	t.Helper()
	w := do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRouter_Root(t *testing.T) {
	r := newTestServer(t, nil)

	w := do(t, r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Ulin Backend Ready"}`, w.Body.String())
}

func TestRouter_HomestayRoundTrip(t *testing.T) {
	r := newTestServer(t, newSQLiteStore(t))

	id := createdID(t, do(t, r, http.MethodPost, "/homestays",
		`{"name":"Bay View","location":"Goa","price_per_night":50,"max_guests":2}`))

	w := do(t, r, http.MethodGet, "/homestays", "")
	require.Equal(t, http.StatusOK, w.Code)

	want := `[{"id":"` + id + `","name":"Bay View","location":"Goa","description":null,` +
		`"price_per_night":50.0,"max_guests":2,"amenities":[],"images":[],"rating":0.0}]`
	assert.JSONEq(t, want, w.Body.String())
}

func TestRouter_IdenticalPostsCreateDistinctRecords(t *testing.T) {
	r := newTestServer(t, newSQLiteStore(t))
	body := `{"title":"Trek","location":"Leh","price":300,"duration_days":5,"highlights":["pass"]}`

	a := createdID(t, do(t, r, http.MethodPost, "/packages", body))
	b := createdID(t, do(t, r, http.MethodPost, "/packages", body))
	assert.NotEqual(t, a, b)

	packages := listOf(t, r, "/packages")
	require.Len(t, packages, 2)
	for _, p := range packages {
		assert.NotContains(t, p, "_id")
		assert.Equal(t, []any{"pass"}, p["highlights"])
	}
}

func TestRouter_InvalidPayloadIsNotPersisted(t *testing.T) {
	r := newTestServer(t, newSQLiteStore(t))

	w := do(t, r, http.MethodPost, "/homestays", `{"name":"Bay View","location":"Goa","max_guests":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/homestays", `{"name":"Bay View","location":"Goa","price_per_night":50,"max_guests":2,"rating":5.1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Empty(t, listOf(t, r, "/homestays"))
}

func TestRouter_BoundaryValuesAccepted(t *testing.T) {
	r := newTestServer(t, newSQLiteStore(t))

	createdID(t, do(t, r, http.MethodPost, "/homestays",
		`{"name":"Free","location":"Goa","price_per_night":0,"max_guests":1,"rating":0}`))
	createdID(t, do(t, r, http.MethodPost, "/homestays",
		`{"name":"Top","location":"Goa","price_per_night":10,"max_guests":1,"rating":5}`))
	createdID(t, do(t, r, http.MethodPost, "/bookings",
		`{"type":"homestay","item_id":"anything","customer_name":"Asha","customer_email":"a@x.in","guests":1}`))

	assert.Len(t, listOf(t, r, "/homestays"), 2)
}

func TestRouter_BookingDoesNotTouchListing(t *testing.T) {
	r := newTestServer(t, newSQLiteStore(t))

	hid := createdID(t, do(t, r, http.MethodPost, "/homestays",
		`{"name":"Bay View","location":"Goa","price_per_night":50,"max_guests":2}`))
	createdID(t, do(t, r, http.MethodPost, "/bookings",
		`{"type":"homestay","item_id":"`+hid+`","customer_name":"Asha","customer_email":"a@x.in","guests":2}`))

	homestays := listOf(t, r, "/homestays")
	require.Len(t, homestays, 1)
	assert.Equal(t, 2.0, homestays[0]["max_guests"])
}

func TestRouter_Status(t *testing.T) {
	store := newSQLiteStore(t)
	r := newTestServer(t, store)

	createdID(t, do(t, r, http.MethodPost, "/packages",
		`{"title":"Trek","location":"Leh","price":300,"duration_days":5}`))

	w := do(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"backend":"✅ Running","database":"✅ Connected","collections":["package"]}`, w.Body.String())

	require.NoError(t, store.Close())

	w = do(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Regexp(t, `^⚠️ Error: `, resp["database"])
	assert.NotContains(t, resp, "collections")

	w = do(t, r, http.MethodGet, "/packages", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
}

func TestRouter_NotConfigured(t *testing.T) {
	r := newTestServer(t, nil)

	w := do(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"backend":"✅ Running","database":"❌ Not Configured"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/bookings", `{"type":"package","item_id":"p","customer_name":"A","customer_email":"a@x.in"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestServer(t, nil)

	do(t, r, http.MethodGet, "/", "")
	w := do(t, r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/",status="200"} 1`)
}
