package soap

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Fault is a SOAP 1.1 fault returned by the remote service.
type Fault struct {
	Code   string      `xml:"faultcode"`
	String string      `xml:"faultstring"`
	Actor  string      `xml:"faultactor"`
	Detail FaultDetail `xml:"detail"`
}

// FaultDetail holds the application specific elements of a fault.
type FaultDetail struct {
	Entries []DetailEntry `xml:",any"`
}

// DetailEntry is one child of a fault's detail element.
type DetailEntry struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("SOAP fault %s: %s", f.Code, strings.TrimSpace(f.String))
	if names := f.DetailNames(); len(names) > 0 {
		msg += " (" + strings.Join(names, ", ") + ")"
	}
	return msg
}

// DetailNames returns the local names of the detail entries, in document order.
func (f *Fault) DetailNames() []string {
	names := make([]string, 0, len(f.Detail.Entries))
	for _, e := range f.Detail.Entries {
		names = append(names, e.XMLName.Local)
	}
	return names
}

// HasDetail reports whether the fault's detail carries an element with the given local name.
func (f *Fault) HasDetail(name string) bool {
	for _, e := range f.Detail.Entries {
		if e.XMLName.Local == name {
			return true
		}
	}
	return false
}
