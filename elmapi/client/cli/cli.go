package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	commoncli "github.com/bioinfo/elmdb/common/client"
	"github.com/bioinfo/elmdb/common/dialer"
	elmerrors "github.com/bioinfo/elmdb/common/errors"
	"github.com/bioinfo/elmdb/common/stats"
	"github.com/bioinfo/elmdb/config/elmconfig"
	"github.com/bioinfo/elmdb/elmapi"
	"github.com/bioinfo/elmdb/elmapi/client"
)

// ElmdbCLIClient includes fields required for CLI client handling
type ElmdbCLIClient struct {
	commoncli.SimpleClient
	selectors []commoncli.Selector
	config    *elmconfig.Config
}

func (c *ElmdbCLIClient) Exec() error {
	err := c.RootCmd.Execute()
	var ece *elmerrors.ExitCodeError
	if err != nil && !errors.As(err, &ece) {
		// Errors without a code come from cobra's own argument and flag group checks.
		err = elmerrors.NewError(err, elmerrors.UsageExitCode)
	}
	return err
}

// NewSimpleCLIClient creates the elmdb command reading from stdin and printing to stdout.
func NewSimpleCLIClient() (commoncli.CLIClient, error) {
	return newCLIClient(nil, os.Stdin, os.Stdout, os.Stderr), nil
}

// newCLIClient creates the command; svc, when not nil, replaces the service the endpoint resolves to.
func newCLIClient(svc client.Service, in io.Reader, out, errOut io.Writer) *ElmdbCLIClient {
	c := &ElmdbCLIClient{}
	c.ElmdbClient = svc
	c.In, c.Out, c.Err = in, out, errOut

	c.RootCmd = &cobra.Command{
		Use:   "elmdb [options] (use - as argument to read from stdin)",
		Short: "elmdb is a command-line client to the ELM database",
		Long: "elmdb retrieves ELMs, ELM instances and functional sites from the ELM database web service.\n" +
			"Exactly one of the retrieval flags selects what to fetch; -v prints every field of each record.",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.Init,
		RunE:               c.Run,
		PersistentPostRunE: c.Close,
	}
	c.RootCmd.SetIn(in)
	c.RootCmd.SetOut(out)
	c.RootCmd.SetErr(errOut)
	c.RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return elmerrors.NewError(err, elmerrors.UsageExitCode)
	})

	pflags := c.RootCmd.PersistentFlags()
	pflags.StringVar(&c.ConfigFile, "config", "", "Config file. If unset, uses $HOME/.config/elmdb/elmdb.yaml when present")
	pflags.StringVar(&c.Endpoint, "endpoint", "", "ELMdb service URL. If unset, uses $"+elmapi.EndpointEnvVar+
		", the config file, the first line of $HOME/.elmdbaddr$"+elmapi.AddrFileIdEnvVar+", or "+elmapi.DefaultEndpoint)
	pflags.StringVar(&c.LogLevel, "log_level", elmconfig.DefaultLogLevel, "Log everything at this level and above (error|warn|info|debug)")
	pflags.DurationVar(&c.Timeout, "timeout", elmapi.DefaultClientTimeout, "Timeout of the remote call")

	flags := c.RootCmd.Flags()
	var names []string
	for _, s := range newSelectors() {
		names = append(names, s.RegisterFlags(flags))
		c.selectors = append(c.selectors, s)
	}
	c.RootCmd.MarkFlagsMutuallyExclusive(names...)
	flags.BoolVarP(&c.Verbose, "verbose", "v", false, "Print every field of each record")
	flags.BoolVarP(&c.Debug, "debug", "d", false, "Trace the SOAP messages and log at debug level")

	return c
}

// Can only be called from cobra command run or hook
func (c *ElmdbCLIClient) Init(cmd *cobra.Command, args []string) error {
	log.SetOutput(c.Err)

	config, err := elmconfig.Load(c.ConfigFile)
	if err != nil {
		if c.selected() {
			return elmerrors.NewError(err, elmerrors.ConfigFailureExitCode)
		}
		// Only the help is printed, which needs no config.
		log.Warnf("Ignoring config: %v", err)
		config = elmconfig.Default()
	}
	c.config = config

	if !cmd.Flags().Changed("log_level") {
		c.LogLevel = config.LogLevel
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return elmerrors.NewError(err, elmerrors.UsageExitCode)
	}
	if c.Debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	if config.Source != "" {
		log.Infof("Loaded config from %s", config.Source)
	}

	if !cmd.Flags().Changed("timeout") {
		c.Timeout = config.Timeout
	}

	if !c.selected() || c.ElmdbClient != nil {
		return nil
	}

	c.Endpoint, err = c.resolveEndpoint()
	if err != nil {
		return elmerrors.NewError(err, elmerrors.ConfigFailureExitCode)
	}

	if c.Dial == nil {
		dc := dialer.HTTPDialerConfig{Timeout: c.Timeout, Retries: config.Retries}
		if c.Debug {
			dc.Trace = config.TraceWriter(c.Err)
		}
		c.Dial = dialer.NewHTTPDialer(dc)
	}
	if c.Stats == nil {
		c.Stats = stats.NilStatsReceiver()
		if c.Debug {
			c.Stats = stats.DefaultStatsReceiver()
		}
	}
	c.ElmdbClient = client.NewElmdbClient(client.ElmdbClientConfig{
		Endpoint:  c.Endpoint,
		Namespace: config.Namespace,
		Dialer:    c.Dial,
		Stats:     c.Stats,
	})
	return nil
}

// resolveEndpoint picks the endpoint: flag, environment, config file, address file, then the default.
func (c *ElmdbCLIClient) resolveEndpoint() (string, error) {
	r := dialer.NewCompositeResolver(
		dialer.NewConstantResolver(c.Endpoint),
		dialer.NewEnvResolver(elmapi.EndpointEnvVar),
		dialer.NewConstantResolver(c.config.Endpoint),
		elmapi.NewAddrFileResolver(),
		dialer.NewConstantResolver(elmapi.DefaultEndpoint),
	)
	endpoint, err := r.Resolve()
	if err != nil {
		return "", err
	}
	if err := dialer.ValidateEndpoint(endpoint); err != nil {
		return "", err
	}
	log.Infof("Using endpoint %s", endpoint)
	return endpoint, nil
}

func (c *ElmdbCLIClient) selected() bool {
	for _, s := range c.selectors {
		if s.Selected() {
			return true
		}
	}
	return false
}

// Run issues the call of the selected operation, or prints the help when none is selected.
func (c *ElmdbCLIClient) Run(cmd *cobra.Command, args []string) error {
	for _, s := range c.selectors {
		if s.Selected() {
			return s.Run(&c.SimpleClient, cmd)
		}
	}
	return cmd.Help()
}

// Needs cobra parameters for use from rootCmd
func (c *ElmdbCLIClient) Close(cmd *cobra.Command, args []string) error {
	if c.Stats != nil && c.Debug {
		log.Debugf("Call stats: %s", c.Stats.Render(true))
	}
	if c.ElmdbClient != nil {
		return c.ElmdbClient.Close()
	}
	return nil
}
