package client

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/luci/go-render/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bioinfo/elmdb/common/dialer"
	"github.com/bioinfo/elmdb/common/stats"
	"github.com/bioinfo/elmdb/elmapi"
	"github.com/bioinfo/elmdb/elmapi/soap"
)

// A struct that supports establishing and maintaining a
// caller for making requests to the ELM database service.
// This client can only serve one request at a time.
type ElmdbClient struct {
	endpoint  string
	namespace string
	dialer    dialer.Dialer
	caller    soap.Caller
	stat      stats.StatsReceiver
}

// Parameters to configure an ElmdbClient
type ElmdbClientConfig struct {
	Endpoint  string              // endpoint URL of the service
	Namespace string              // namespace of the RPC elements, elmapi.DefaultNamespace if empty
	Dialer    dialer.Dialer       // dialer to use to reach the endpoint
	Stats     stats.StatsReceiver // receives call metrics, may be nil
}

// Creates an ElmdbClient. The endpoint is only dialed when the first call is made.
func NewElmdbClient(config ElmdbClientConfig) *ElmdbClient {
	ns := config.Namespace
	if ns == "" {
		ns = elmapi.DefaultNamespace
	}
	stat := config.Stats
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &ElmdbClient{
		endpoint:  config.Endpoint,
		namespace: ns,
		dialer:    config.Dialer,
		stat:      stat.Scope("elmdb"),
	}
}

var _ Service = (*ElmdbClient)(nil)

func (c *ElmdbClient) GetELMByIdentifier(ctx context.Context, identifier string) ([]elmapi.ELM, error) {
	return c.elms(ctx, elmapi.GetELMByIdentifier, identifier)
}

func (c *ElmdbClient) GetELM(ctx context.Context, accession string) ([]elmapi.ELM, error) {
	return c.elms(ctx, elmapi.GetELM, accession)
}

func (c *ElmdbClient) GetELMsByTextSearch(ctx context.Context, query string) ([]elmapi.ELM, error) {
	return c.elms(ctx, elmapi.GetELMsByTextSearch, query)
}

func (c *ElmdbClient) GetAllELMs(ctx context.Context) ([]elmapi.ELM, error) {
	return c.elms(ctx, elmapi.GetAllELMs, "")
}

func (c *ElmdbClient) GetELMInstance(ctx context.Context, accession string) ([]elmapi.Instance, error) {
	return c.instances(ctx, elmapi.GetELMInstance, accession)
}

func (c *ElmdbClient) GetAllELMInstances(ctx context.Context) ([]elmapi.Instance, error) {
	return c.instances(ctx, elmapi.GetAllELMInstances, "")
}

func (c *ElmdbClient) GetFunctionalSite(ctx context.Context, accession string) ([]elmapi.FunctionalSite, error) {
	return c.functionalSites(ctx, elmapi.GetFunctionalSite, accession)
}

func (c *ElmdbClient) GetFunctionalSitesByTextSearch(ctx context.Context, query string) ([]elmapi.FunctionalSite, error) {
	return c.functionalSites(ctx, elmapi.GetFunctionalSitesByTextSearch, query)
}

func (c *ElmdbClient) GetAllFunctionalSites(ctx context.Context) ([]elmapi.FunctionalSite, error) {
	return c.functionalSites(ctx, elmapi.GetAllFunctionalSites, "")
}

// Close drops the caller; the next request dials again.
func (c *ElmdbClient) Close() error {
	c.caller = nil
	return nil
}

func (c *ElmdbClient) elms(ctx context.Context, op elmapi.Operation, value string) ([]elmapi.ELM, error) {
	var l elmList
	err := c.call(ctx, op, value, &l)
	c.received(l.records, len(l.records), err)
	return l.records, err
}

func (c *ElmdbClient) instances(ctx context.Context, op elmapi.Operation, value string) ([]elmapi.Instance, error) {
	var l instanceList
	err := c.call(ctx, op, value, &l)
	c.received(l.records, len(l.records), err)
	return l.records, err
}

func (c *ElmdbClient) functionalSites(ctx context.Context, op elmapi.Operation, value string) ([]elmapi.FunctionalSite, error) {
	var l functionalSiteList
	err := c.call(ctx, op, value, &l)
	c.received(l.records, len(l.records), err)
	return l.records, err
}

// received counts the records of a response and dumps them at debug level.
func (c *ElmdbClient) received(records interface{}, n int, err error) {
	if err == nil && log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("Decoded %d records:\n%s", n, spew.Sdump(records))
	}
	switch {
	case err != nil:
	case n == 0:
		c.stat.Counter(stats.ElmdbEmptyResponseCounter).Inc(1)
	default:
		c.stat.Counter(stats.ElmdbRecordCounter).Inc(int64(n))
	}
}

// call issues op, decoding its response into result.
func (c *ElmdbClient) call(ctx context.Context, op elmapi.Operation, value string, result interface{}) error {
	if err := c.checkForClient(); err != nil {
		return err
	}

	var params []soap.Param
	if op.TakesParam() {
		params = append(params, soap.Param{Name: op.Param, Value: value})
	}
	req := soap.NewRequest(c.namespace, op.Method, params...)
	log.Debugf("Request: %s", render.Render(req))

	c.stat.Counter(stats.ElmdbCallCounter).Inc(1)
	c.stat.Scope(op.Method).Counter(stats.ElmdbCallCounter).Inc(1)
	defer c.stat.Latency(stats.ElmdbCallLatency_ms).Time().Stop()

	log.WithFields(log.Fields{"method": op.Method, "param": op.Param}).Info("Calling ELMdb")
	err := c.caller.Call(ctx, req, result)
	if err != nil {
		if _, ok := err.(*soap.Fault); ok {
			c.stat.Counter(stats.ElmdbFaultCounter).Inc(1)
		} else {
			c.stat.Counter(stats.ElmdbErrorCounter).Inc(1)
		}
	}
	return err
}

func (c *ElmdbClient) checkForClient() (err error) {
	if c.caller == nil {
		c.caller, err = createCaller(c.endpoint, c.dialer)
		if err != nil {
			return err
		}
	}
	return nil
}

// helper method to create a soap.Caller
func createCaller(endpoint string, d dialer.Dialer) (soap.Caller, error) {
	if d == nil {
		return nil, errors.Errorf("Error dialing %s: no dialer", endpoint)
	}
	caller, err := d.Dial(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "Error dialing to set up client connection")
	}
	return caller, nil
}
