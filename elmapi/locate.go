package elmapi

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
)

// Where is the ELM database service?
// A user who talks to a mirror can store its endpoint URL (first line) in ~/.elmdbaddr.
// The user may set ELMDB_ID=<ArbitraryId> to refer to an endpoint file other than the default.
//  This is useful, for example, when switching between a local test deployment and production.

// Get the path of the file containing the endpoint for elmdb to use
func GetElmdbAddrPath() string {
	optionalId := os.Getenv(AddrFileIdEnvVar)
	return path.Join(os.Getenv("HOME"), ".elmdbaddr"+optionalId)
}

// Get the endpoint stored in the address file. A missing file is not an error.
func GetElmdbAddr() (string, error) {
	data, err := ioutil.ReadFile(GetElmdbAddrPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	lines := strings.SplitN(string(data), "\n", 2)
	return strings.TrimSpace(lines[0]), nil
}

// Set the endpoint stored in the address file
func SetElmdbAddr(endpoint string) error {
	return ioutil.WriteFile(GetElmdbAddrPath(), []byte(endpoint+"\n"), 0644)
}

// AddrFileResolver resolves the endpoint from the address file
type AddrFileResolver struct{}

// NewAddrFileResolver creates a new AddrFileResolver
func NewAddrFileResolver() *AddrFileResolver {
	return &AddrFileResolver{}
}

// Resolve returns the first line of the address file, or "" if there is none
func (r *AddrFileResolver) Resolve() (string, error) {
	return GetElmdbAddr()
}
