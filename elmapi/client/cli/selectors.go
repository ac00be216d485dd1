package cli

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	commoncli "github.com/bioinfo/elmdb/common/client"
	elmerrors "github.com/bioinfo/elmdb/common/errors"
	"github.com/bioinfo/elmdb/elmapi"
	"github.com/bioinfo/elmdb/elmapi/client"
	"github.com/bioinfo/elmdb/elmapi/render"
	"github.com/bioinfo/elmdb/elmapi/soap"
)

// Value of a selector that stands for standard input
const StdinValue = "-"

// selectorCmd runs one remote operation when its flag is set.
type selectorCmd struct {
	op    elmapi.Operation
	short string
	long  string
	usage string

	value string
	all   bool

	show showFunc
}

// showFunc calls op and prints what it returns.
type showFunc func(ctx context.Context, s client.Service, p *render.Printer, op elmapi.Operation, value string) error

func (c *selectorCmd) RegisterFlags(flags *pflag.FlagSet) string {
	if c.op.TakesParam() {
		flags.StringVarP(&c.value, c.long, c.short, "", c.usage)
	} else {
		flags.BoolVarP(&c.all, c.long, c.short, false, c.usage)
	}
	return c.long
}

func (c *selectorCmd) Selected() bool {
	return c.all || c.value != ""
}

func (c *selectorCmd) Run(cl *commoncli.SimpleClient, cmd *cobra.Command) error {
	value := c.value
	if value == StdinValue {
		var err error
		if value, err = readStdin(cl.In); err != nil {
			return elmerrors.NewError(err, elmerrors.InputFailureExitCode)
		}
	}

	log.WithFields(log.Fields{"operation": c.op, "records": c.op.Kind, "param": c.op.Param, "value": value}).Info("Running selector")
	err := c.show(cmd.Context(), cl.ElmdbClient, render.NewPrinter(cl.Out, cl.Verbose), c.op, value)
	if err == nil {
		return nil
	}
	var werr *writeError
	if errors.As(err, &werr) {
		return elmerrors.NewError(werr.err, elmerrors.GenericFailureExitCode)
	}
	reportCallError(cl.Out, err)
	return nil
}

// readStdin returns all of in, less exactly one trailing newline.
func readStdin(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Warn("Reading the value from standard input, end it with Ctrl-D")
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "reading standard input")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// reportCallError prints the failure of a remote call the way the user sees it:
// the message of every known fault marker, or the error itself.
func reportCallError(out io.Writer, err error) {
	log.Debugf("Call failed: %+v", err)
	var fault *soap.Fault
	if errors.As(err, &fault) {
		known := false
		for _, m := range elmapi.FaultMarkers {
			if fault.HasDetail(string(m)) {
				fmt.Fprintln(out, m.Message())
				known = true
			}
		}
		if known {
			return
		}
	}
	fmt.Fprintln(out, "Exception:", err)
}

// writeError marks failures to print, as opposed to failures of the call.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }

func printed(err error) error {
	if err == nil {
		return nil
	}
	return &writeError{err}
}

// selectorFlags maps each remote method to the flag selecting it.
var selectorFlags = map[string]struct{ short, long, usage string }{
	elmapi.GetELMByIdentifier.Method:             {"e", "elm", "Retrieve the ELM with the given identifier"},
	elmapi.GetELM.Method:                         {"b", "elm_by_accession", "Retrieve the ELM with the given accession"},
	elmapi.GetELMsByTextSearch.Method:            {"s", "elm_search", "Retrieve the ELMs matching a text search"},
	elmapi.GetAllELMs.Method:                     {"a", "all_elms", "Retrieve all ELMs"},
	elmapi.GetELMInstance.Method:                 {"i", "instance", "Retrieve the ELM instance with the given accession"},
	elmapi.GetAllELMInstances.Method:             {"l", "all_instances", "Retrieve all ELM instances"},
	elmapi.GetFunctionalSite.Method:              {"f", "functional_site", "Retrieve the functional site with the given accession"},
	elmapi.GetFunctionalSitesByTextSearch.Method: {"n", "functional_site_search", "Retrieve the functional sites matching a text search"},
	elmapi.GetAllFunctionalSites.Method:          {"o", "all_functional_sites", "Retrieve all functional sites"},
}

// newSelectors returns one selector per remote operation, in the order of elmapi.Operations.
func newSelectors() []*selectorCmd {
	var selectors []*selectorCmd
	for _, op := range elmapi.Operations {
		f, ok := selectorFlags[op.Method]
		if !ok {
			panic("no flag selects " + op.Method)
		}
		c := &selectorCmd{op: op, short: f.short, long: f.long, usage: f.usage}
		switch op.Kind {
		case elmapi.ELMRecord:
			c.show = showELMs
		case elmapi.InstanceRecord:
			c.show = showInstances
		case elmapi.FunctionalSiteRecord:
			c.show = showFunctionalSites
		default:
			panic("no printer for " + op.Kind.String() + " records")
		}
		selectors = append(selectors, c)
	}
	return selectors
}

func showELMs(ctx context.Context, s client.Service, p *render.Printer, op elmapi.Operation, v string) error {
	var elms []elmapi.ELM
	var err error
	switch op {
	case elmapi.GetELMByIdentifier:
		elms, err = s.GetELMByIdentifier(ctx, v)
	case elmapi.GetELM:
		elms, err = s.GetELM(ctx, v)
	case elmapi.GetELMsByTextSearch:
		elms, err = s.GetELMsByTextSearch(ctx, v)
	case elmapi.GetAllELMs:
		elms, err = s.GetAllELMs(ctx)
	default:
		return errors.Errorf("%s does not return %s records", op, elmapi.ELMRecord)
	}
	if err != nil {
		return err
	}
	if !op.List {
		if len(elms) == 0 {
			return nil
		}
		return printed(p.PrintELM(elms[0]))
	}
	return printed(p.PrintELMs(elms))
}

func showInstances(ctx context.Context, s client.Service, p *render.Printer, op elmapi.Operation, v string) error {
	var insts []elmapi.Instance
	var err error
	switch op {
	case elmapi.GetELMInstance:
		insts, err = s.GetELMInstance(ctx, v)
	case elmapi.GetAllELMInstances:
		insts, err = s.GetAllELMInstances(ctx)
	default:
		return errors.Errorf("%s does not return %s records", op, elmapi.InstanceRecord)
	}
	if err != nil {
		return err
	}
	if !op.List {
		if len(insts) == 0 {
			return nil
		}
		return printed(p.PrintInstance(insts[0]))
	}
	return printed(p.PrintInstances(insts))
}

func showFunctionalSites(ctx context.Context, s client.Service, p *render.Printer, op elmapi.Operation, v string) error {
	var sites []elmapi.FunctionalSite
	var err error
	switch op {
	case elmapi.GetFunctionalSite:
		sites, err = s.GetFunctionalSite(ctx, v)
	case elmapi.GetFunctionalSitesByTextSearch:
		sites, err = s.GetFunctionalSitesByTextSearch(ctx, v)
	case elmapi.GetAllFunctionalSites:
		sites, err = s.GetAllFunctionalSites(ctx)
	default:
		return errors.Errorf("%s does not return %s records", op, elmapi.FunctionalSiteRecord)
	}
	if err != nil {
		return err
	}
	if !op.List {
		if len(sites) == 0 {
			return nil
		}
		return printed(p.PrintFunctionalSite(sites[0]))
	}
	return printed(p.PrintFunctionalSites(sites))
}
