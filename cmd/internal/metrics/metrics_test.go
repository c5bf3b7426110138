package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	Register()

	e := echo.New()
	e.Use(Middleware())
	e.DELETE("/api/bookings/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodDelete, "/api/bookings/:id", "200"))
	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodDelete, "/api/bookings/:id", "200"))

	if after-before != 2 {
		t.Errorf("counter moved by %v, want 2", after-before)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "catering_http_requests_total") {
		t.Error("metrics endpoint does not expose request counter")
	}
}

func TestBookingCounters(t *testing.T) {
	Register()

	before := testutil.ToFloat64(bookingCreated.WithLabelValues("catering"))
	IncBookingCreated("catering")
	if got := testutil.ToFloat64(bookingCreated.WithLabelValues("catering")); got-before != 1 {
		t.Errorf("booking_created_total moved by %v", got-before)
	}

	before = testutil.ToFloat64(bookingDeleted)
	IncBookingDeleted()
	if got := testutil.ToFloat64(bookingDeleted); got-before != 1 {
		t.Errorf("booking_deleted_total moved by %v", got-before)
	}
}
