package client

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bioinfo/elmdb/common/dialer"
	"github.com/bioinfo/elmdb/common/stats"
	"github.com/bioinfo/elmdb/elmapi/client"
)

// Client interface that includes CLI handling
type CLIClient interface {
	Exec() error
}

// SimpleClient includes base fields required for implementing client
type SimpleClient struct {
	RootCmd     *cobra.Command
	Endpoint    string
	ConfigFile  string
	LogLevel    string
	Timeout     time.Duration
	Verbose     bool
	Debug       bool
	Dial        dialer.Dialer
	Stats       stats.StatsReceiver
	ElmdbClient client.Service

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Selector is a flag choosing the single remote operation an invocation runs
type Selector interface {
	// Registers the selector's flag and returns its name
	RegisterFlags(flags *pflag.FlagSet) string
	Selected() bool
	Run(cl *SimpleClient, cmd *cobra.Command) error
}
