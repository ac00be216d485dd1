// Library for establishing SOAP connections to the ELMdb service.
// Provides Dialer interface with an HTTP implementation.
package dialer

import (
	"io"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"

	"github.com/bioinfo/elmdb/elmapi/soap"
)

// Interface for initializing a SOAP caller for a client
type Dialer interface {
	Dial(endpoint string) (soap.Caller, error)
}

// HTTPDialerConfig configures the HTTP transport of the callers a Dialer creates.
type HTTPDialerConfig struct {
	Timeout time.Duration // per request; 0 means no timeout
	Retries int           // additional attempts after a failed one; 0 means a single attempt
	Trace   io.Writer     // receives the SOAP payloads when non-nil
}

type httpDialer struct {
	config HTTPDialerConfig
}

// Create instance of a Dialer that posts to the endpoint over HTTP.
func NewHTTPDialer(config HTTPDialerConfig) Dialer {
	return &httpDialer{config: config}
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return errors.Errorf("invalid endpoint %q: no host", endpoint)
	}
	return nil
}

func (d *httpDialer) Dial(endpoint string) (soap.Caller, error) {
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}
	log.Info("Dialing ", endpoint)

	var opts []soap.CallerOption
	if d.config.Trace != nil {
		opts = append(opts, soap.WithTrace(d.config.Trace))
	}
	return soap.NewHTTPCaller(endpoint, MakePesterClient(d.config.Timeout, d.config.Retries), opts...), nil
}

// MakePesterClient creates the HTTP client used for SOAP calls.
// With retries > 0 failed attempts are retried with exponential backoff.
func MakePesterClient(timeout time.Duration, retries int) *pester.Client {
	client := pester.New()
	client.Timeout = timeout
	if retries < 0 {
		retries = 0
	}
	client.MaxRetries = retries + 1 // 0 and 1 both mean 1 try total
	client.Backoff = ExponentialBackoff()
	client.LogHook = attemptLogHook(client.MaxRetries)
	return client
}

// attemptLogHook warns about failed attempts that will be retried. The last
// attempt is only logged at debug, its error is returned to the caller.
func attemptLogHook(attempts int) pester.LogHook {
	return func(e pester.ErrEntry) {
		if e.Attempt < attempts {
			log.Warnf("Retrying after failed attempt %d of %d: %+v", e.Attempt, attempts, e)
		} else {
			log.Debugf("Final attempt %d failed: %+v", e.Attempt, e)
		}
	}
}

// ExponentialBackoff adapts an exponential backoff.BackOff to pester's strategy signature.
// The first retry waits the initial interval; once the backoff gives up, retries are immediate.
func ExponentialBackoff() pester.BackoffStrategy {
	b := backoff.NewExponentialBackOff()
	return func(retry int) time.Duration {
		if retry <= 1 {
			b.Reset()
		}
		d := b.NextBackOff()
		if d == backoff.Stop {
			return 0
		}
		return d
	}
}
