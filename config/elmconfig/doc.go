/*
Elmconfig reads the optional elmdb configuration file.

The file is YAML, looked up at $HOME/.config/elmdb/elmdb.yaml unless a path is
given explicitly. Every key is optional:

	endpoint: http://localhost:8080/services/ELMdb
	namespace: http://elm.eu.org/ELMdb
	timeout: 30s
	retries: 2
	log_level: info
	trace:
	  file: ~/.cache/elmdb/trace.log
	  max_size_mb: 10
	  max_backups: 3

Command line flags override the values read here.
*/
package elmconfig
