package elmapi

import "strings"

// Records as decoded from the service's responses.
// Repeated groups are always slices: an absent group is empty, a lone value has length one.

// DatabaseReference points at an entry in an external database.
type DatabaseReference struct {
	Database  string `xml:"Database"`
	Accession string `xml:"Accession"`
}

func (r DatabaseReference) String() string {
	return r.Database + " " + r.Accession
}

// TaxonomyReference is an included or excluded taxonomy node.
type TaxonomyReference struct {
	Accession string `xml:"Accession"`
}

// Flag is a boolean carried as text. Only "true" is true.
type Flag bool

func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.TrimSpace(string(text)) == "true")
	return nil
}

// GOTerm is a Gene Ontology annotation.
type GOTerm struct {
	Accession    DatabaseReference `xml:"Accession"`
	Ontology     string            `xml:"Ontology"`
	ForFiltering Flag              `xml:"ForFiltering"`
}

// ELM is a Eukaryotic Linear Motif class.
type ELM struct {
	Accession    string `xml:"Accession,attr"`
	CreationDate string `xml:"CreationDate,attr"`
	ChangeDate   string `xml:"ChangeDate,attr"`

	Identifier      string `xml:"Identifier"`
	Regex           string `xml:"Regex"`
	FunctionalSite  string `xml:"FunctionalSite"`
	LongDescription string `xml:"LongDescription"`

	LiteratureReferences []DatabaseReference `xml:"LiteratureReference"`
	IncludeTaxonomy      []TaxonomyReference `xml:"IncludeTaxonomy"`
	ExcludeTaxonomy      []TaxonomyReference `xml:"ExcludeTaxonomy"`
	Instances            []string            `xml:"Instance"`
	GOTerms              []GOTerm            `xml:"GOterm"`
}

// Evidence supports an ELM instance.
type Evidence struct {
	Class       string `xml:"Class"`
	Method      string `xml:"Method"`
	Logic       string `xml:"Logic"`
	Reliability string `xml:"Reliability"`
}

// Instance is an occurrence of an ELM in a sequence.
type Instance struct {
	Accession    string `xml:"Accession,attr"`
	CreationDate string `xml:"CreationDate,attr"`
	ChangeDate   string `xml:"ChangeDate,attr"`

	ELM               string            `xml:"ELM"`
	SequenceReference DatabaseReference `xml:"SequenceReference"`
	Start             int               `xml:"Start"`
	End               int               `xml:"End"`

	InstanceLogic *string    `xml:"InstanceLogic"`
	Evidence      []Evidence `xml:"Evidence"`
}

// FunctionalSite is the biological feature one or more ELMs represent.
type FunctionalSite struct {
	Accession    string `xml:"Accession,attr"`
	CreationDate string `xml:"CreationDate,attr"`
	ChangeDate   string `xml:"ChangeDate,attr"`

	Name             string `xml:"Name"`
	DescriptiveTitle string `xml:"DescriptiveTitle"`
	ShortDescription string `xml:"ShortDescription"`

	ELMs     []string `xml:"ELM"`
	Synonyms []string `xml:"Synonym"`
	URLs     []string `xml:"URL"`
	GOTerms  []GOTerm `xml:"GOterm"`
}
