package elmapi

import "time"

// Where the ELM database web service lives unless told otherwise.
const DefaultEndpoint string = "http://api.bioinfo.no/services/ELMdb"
const DefaultNamespace string = "http://elm.eu.org/ELMdb"

const DefaultClientTimeout = time.Minute

// Environment overrides. ELMDB_ID selects an alternate address file, see GetElmdbAddrPath.
const EndpointEnvVar = "ELMDB_ENDPOINT"
const AddrFileIdEnvVar = "ELMDB_ID"
