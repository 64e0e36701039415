package discogs

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// ErrThrottled is wrapped by the TransportError returned when a request
// could not obtain a rate limit token before its deadline.
var ErrThrottled = errors.New("discogs: rate limit wait failed")

// throttle is an http.RoundTripper, using the time/rate token
// bucket limiter to restrict outbound calls.
type throttle struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

// newThrottle returns a RoundTripper allowing rps requests per second
// with a burst of one.
func newThrottle(rps float64, next http.RoundTripper) *throttle {
	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		next:    next,
	}
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	// Wait may return right at the deadline.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(r)
}
