package render

import (
	"fmt"
	"strings"

	"github.com/bioinfo/elmdb/elmapi"
)

const elmHeader = "Accession     Functional site     Identifier               Regex"

var elmDivider = strings.Repeat("-", 82)

func (p *Printer) PrintELM(elm elmapi.ELM) error {
	o := &output{w: p.W}
	printELM(o, elm, p.Verbose)
	return o.err
}

func (p *Printer) PrintELMs(elms []elmapi.ELM) error {
	return p.printList(len(elms),
		func(o *output, i int) { printELM(o, elms[i], p.Verbose) },
		table{elmHeader, elmDivider, func(i int) string { return elmRow(elms[i]) }})
}

func elmRow(elm elmapi.ELM) string {
	return fmt.Sprintf("%-14s%-20s%-25s%s", elm.Accession, elm.FunctionalSite, elm.Identifier, elm.Regex)
}

func printELM(o *output, elm elmapi.ELM, verbose bool) {
	o.println("Identifier: " + elm.Identifier)
	o.println("Accession: " + elm.Accession)
	o.println("Regex: " + elm.Regex)
	o.println("Functional site: " + elm.FunctionalSite)
	o.println("Description: " + elm.LongDescription)
	o.println("Creation date: " + elm.CreationDate)
	o.println("Change date: " + elm.ChangeDate)
	if !verbose {
		return
	}

	switch len(elm.LiteratureReferences) {
	case 0:
		o.println("No LiteratureReferences")
	case 1:
		o.println("LiteratureReference:")
	default:
		o.println("LiteratureReferences:")
	}
	for _, ref := range elm.LiteratureReferences {
		o.printf("%s accession: %s\n", ref.Database, ref.Accession)
	}

	printTaxonomy(o, "Include taxonomy", elm.IncludeTaxonomy)
	printTaxonomy(o, "Exclude taxonomy", elm.ExcludeTaxonomy)

	switch len(elm.Instances) {
	case 0:
		o.println("No instances")
	case 1:
		o.println(elm.Instances[0])
	default:
		o.println("Instances:")
		o.println(strings.Join(elm.Instances, " "))
	}

	printGOTerms(o, elm.GOTerms)
}

func printTaxonomy(o *output, label string, taxa []elmapi.TaxonomyReference) {
	if len(taxa) == 0 {
		o.println("No " + strings.ToLower(label))
		return
	}
	for _, t := range taxa {
		o.println(label + ": " + t.Accession)
	}
}
