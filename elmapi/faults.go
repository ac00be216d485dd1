package elmapi

// FaultMarker names the detail element the service puts in a fault
// when a lookup did not match anything.
type FaultMarker string

const (
	ELMAccessionFault            FaultMarker = "ELMAccessionFault"
	ELMIdentifierFault           FaultMarker = "ELMIdentifierFault"
	ELMInstanceAccessionFault    FaultMarker = "ELMInstanceAccessionFault"
	FunctionalSiteAccessionFault FaultMarker = "FunctionalSiteAccessionFault"
)

// FaultMarkers in the order they are reported.
var FaultMarkers = []FaultMarker{
	ELMAccessionFault,
	ELMIdentifierFault,
	ELMInstanceAccessionFault,
	FunctionalSiteAccessionFault,
}

// Message is the text shown to the user for the marker.
func (m FaultMarker) Message() string {
	switch m {
	case ELMAccessionFault:
		return "No such ELM accession"
	case ELMIdentifierFault:
		return "No such ELM identifier"
	case ELMInstanceAccessionFault:
		return "No such ELM instance accession"
	case FunctionalSiteAccessionFault:
		return "No such functional site accession"
	}
	return "Unknown fault " + string(m)
}
