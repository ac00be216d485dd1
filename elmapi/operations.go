package elmapi

// RecordKind names the kind of record an operation returns.
type RecordKind int

const (
	ELMRecord RecordKind = iota
	InstanceRecord
	FunctionalSiteRecord
)

func (k RecordKind) String() string {
	switch k {
	case ELMRecord:
		return "ELM"
	case InstanceRecord:
		return "ELM instance"
	case FunctionalSiteRecord:
		return "functional site"
	default:
		return "unknown"
	}
}

// Operation describes one remote procedure of the ELMdb service.
// Param is the name of the single string parameter, or "" for operations without one.
// List operations render through the list formatters; the others through the single-record ones.
type Operation struct {
	Method string
	Param  string
	Kind   RecordKind
	List   bool
}

func (o Operation) String() string {
	return o.Method
}

// TakesParam reports whether the operation is called with a value.
func (o Operation) TakesParam() bool {
	return o.Param != ""
}

// Parameter names expected by the service.
const (
	ELMIdentifierParam           = "ELMIdentifier"
	ELMAccessionParam            = "ELMAccession"
	QueryTextParam               = "QueryText"
	ELMInstanceAccessionParam    = "ELMInstanceAccession"
	FunctionalSiteAccessionParam = "FunctionalSiteAccession"
)

var (
	GetELMByIdentifier             = Operation{"getELMByIdentifier", ELMIdentifierParam, ELMRecord, false}
	GetELM                         = Operation{"getELM", ELMAccessionParam, ELMRecord, false}
	GetELMsByTextSearch            = Operation{"getELMsByTextSearch", QueryTextParam, ELMRecord, true}
	GetAllELMs                     = Operation{"getAllELMs", "", ELMRecord, true}
	GetELMInstance                 = Operation{"getELMInstance", ELMInstanceAccessionParam, InstanceRecord, false}
	GetAllELMInstances             = Operation{"getAllELMInstances", "", InstanceRecord, true}
	GetFunctionalSite              = Operation{"getFunctionalSite", FunctionalSiteAccessionParam, FunctionalSiteRecord, false}
	GetFunctionalSitesByTextSearch = Operation{"getFunctionalSitesByTextSearch", QueryTextParam, FunctionalSiteRecord, true}
	GetAllFunctionalSites          = Operation{"getAllFunctionalSites", "", FunctionalSiteRecord, true}
)

// Operations lists every remote operation in the order the CLI documents them.
var Operations = []Operation{
	GetELMByIdentifier,
	GetELM,
	GetELMsByTextSearch,
	GetAllELMs,
	GetELMInstance,
	GetAllELMInstances,
	GetFunctionalSite,
	GetFunctionalSitesByTextSearch,
	GetAllFunctionalSites,
}
