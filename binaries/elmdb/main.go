package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bioinfo/elmdb/common/errors"
	"github.com/bioinfo/elmdb/common/log/hooks"
	"github.com/bioinfo/elmdb/elmapi/client/cli"
)

// CLI binary to talk to the ELM database
//	Selectors: (exactly one, see "-h" for all options)
//		-e/--elm [identifier]
//		-b/--elm_by_accession [accession]
//		-s/--elm_search [text]
//		-a/--all_elms
//		-i/--instance [accession]
//		-l/--all_instances
//		-f/--functional_site [accession]
//		-n/--functional_site_search [text]
//		-o/--all_functional_sites
//	A selector value of "-" is read from standard input.
//	Modifiers:
//		-v [print every field of each record]
//		-d [trace SOAP messages to stderr, log at debug level]
//	Global flags:
//		--config [config file, default $HOME/.config/elmdb/elmdb.yaml]
//		--endpoint [ELMdb service URL]
// 		--log_level [<error|warn|info|debug> level and above should be logged]
//		--timeout [duration of the remote call]

func main() {
	log.AddHook(hooks.NewContextHook())

	cl, err := cli.NewSimpleCLIClient()
	if err != nil {
		log.Fatal("Failed to create new elmdb CLI client: ", err)
	}

	err = cl.Exec()
	if err != nil {
		fmt.Fprintln(os.Stderr, "elmdb:", err)
		os.Exit(int(errors.GetExitCode(err)))
	}
}
