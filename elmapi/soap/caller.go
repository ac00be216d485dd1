package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const RequestIdHeader = "X-Request-Id"

// Caller performs one SOAP RPC call, decoding the response element into result.
// Faults returned by the service are reported as *Fault errors.
type Caller interface {
	Call(ctx context.Context, req *Request, result interface{}) error
}

// Client sends HTTP requests. *http.Client and *pester.Client both qualify.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPCaller posts SOAP envelopes to a single endpoint.
type HTTPCaller struct {
	endpoint string
	client   Client
	trace    io.Writer
}

type CallerOption func(*HTTPCaller)

// WithTrace writes the outbound and inbound payloads of every call to w.
func WithTrace(w io.Writer) CallerOption {
	return func(c *HTTPCaller) {
		c.trace = w
	}
}

func NewHTTPCaller(endpoint string, client Client, opts ...CallerOption) *HTTPCaller {
	c := &HTTPCaller{endpoint: endpoint, client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPCaller) Call(ctx context.Context, req *Request, result interface{}) error {
	payload, err := Encode(req)
	if err != nil {
		return err
	}
	c.dump("Outgoing SOAP", payload)

	httpReq, err := http.NewRequest("POST", c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "creating request for %s", req.Method)
	}
	httpReq = httpReq.WithContext(ctx)
	httpReq.ContentLength = int64(len(payload))
	httpReq.Header.Set("Content-Type", `text/xml; charset="UTF-8"`)
	httpReq.Header.Set("SOAPAction", `""`)
	id, err := uuid.NewV4()
	if err == nil {
		httpReq.Header.Set(RequestIdHeader, id.String())
	}

	logger := log.WithFields(log.Fields{"method": req.Method, "endpoint": c.endpoint, "request_id": httpReq.Header.Get(RequestIdHeader)})
	logger.Debug("Calling")
	resp, err := c.client.Do(httpReq)
	if err != nil {
		logger.Debugf("Call failed: %v", err)
		return errors.Wrapf(err, "calling %s at %s", req.Method, c.endpoint)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s response", req.Method)
	}
	c.dump("Incoming SOAP", data)
	logger.WithField("status", resp.StatusCode).Debugf("Received %d bytes", len(data))

	fault, err := Decode(bytes.NewReader(data), result)
	switch {
	case fault != nil:
		return fault
	case resp.StatusCode/100 != 2:
		return errors.Errorf("calling %s at %s: HTTP %s", req.Method, c.endpoint, resp.Status)
	case err != nil:
		return errors.Wrapf(err, "decoding %s response", req.Method)
	}
	return nil
}

func (c *HTTPCaller) dump(title string, payload []byte) {
	if c.trace == nil {
		return
	}
	fmt.Fprintf(c.trace, "*** %s %s\n", title, strings.Repeat("*", 70-len(title)))
	c.trace.Write(payload)
	if len(payload) > 0 && payload[len(payload)-1] != '\n' {
		fmt.Fprintln(c.trace)
	}
	fmt.Fprintln(c.trace, strings.Repeat("*", 75))
}
