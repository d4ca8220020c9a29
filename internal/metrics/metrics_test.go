package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/bookings/", "200", 0.1)
	RecordHTTPRequest("POST", "/bookings/", "200", 0.2)
	RecordHTTPRequest("POST", "/bookings/", "400", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings/", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings/", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("created")
	RecordBooking("no_slots")
	RecordBooking("created")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("no_slots")))
}

func TestRecordAuthOutcomes(t *testing.T) {
	SignupsTotal.Reset()
	LoginsTotal.Reset()

	RecordSignup("created")
	RecordSignup("duplicate")
	RecordLogin("invalid_credentials")

	assert.Equal(t, float64(1), testutil.ToFloat64(SignupsTotal.WithLabelValues("duplicate")))
	assert.Equal(t, float64(1), testutil.ToFloat64(LoginsTotal.WithLabelValues("invalid_credentials")))
}

func TestRecordClassCreated(t *testing.T) {
	before := testutil.ToFloat64(ClassesCreatedTotal)

	RecordClassCreated()

	assert.Equal(t, before+1, testutil.ToFloat64(ClassesCreatedTotal))
}

func TestRecordRateLimited(t *testing.T) {
	RateLimitedTotal.Reset()

	RecordRateLimited("memory")

	assert.Equal(t, float64(1), testutil.ToFloat64(RateLimitedTotal.WithLabelValues("memory")))
}
