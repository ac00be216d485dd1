package render

import (
	"fmt"
	"strings"

	"github.com/bioinfo/elmdb/elmapi"
)

const functionalSiteHeader = "Accession     Name"

var functionalSiteDivider = strings.Repeat("-", 63)

func (p *Printer) PrintFunctionalSite(site elmapi.FunctionalSite) error {
	o := &output{w: p.W}
	printFunctionalSite(o, site, p.Verbose)
	return o.err
}

func (p *Printer) PrintFunctionalSites(sites []elmapi.FunctionalSite) error {
	return p.printList(len(sites),
		func(o *output, i int) { printFunctionalSite(o, sites[i], p.Verbose) },
		table{functionalSiteHeader, functionalSiteDivider, func(i int) string { return functionalSiteRow(sites[i]) }})
}

func functionalSiteRow(site elmapi.FunctionalSite) string {
	return fmt.Sprintf("%-14s%-47s", site.Accession, site.Name)
}

func printFunctionalSite(o *output, site elmapi.FunctionalSite, verbose bool) {
	o.println("Name: " + site.Name)
	o.println("Accession: " + site.Accession)
	o.println("Title: " + site.DescriptiveTitle)
	o.println("Description: " + site.ShortDescription)
	o.println("Creation date: " + site.CreationDate)
	o.println("Change date: " + site.ChangeDate)
	if !verbose {
		return
	}

	switch len(site.ELMs) {
	case 0:
		o.println("No ELMs representing this Functional Site")
	case 1:
		o.println("ELM representing this Functional Site: " + site.ELMs[0])
	default:
		o.println("ELMs representing this Functional Site:")
		o.println(strings.Join(site.ELMs, ", "))
	}

	switch len(site.Synonyms) {
	case 0:
		o.println("No synonyms")
	case 1:
		o.println("Synonym: " + site.Synonyms[0])
	default:
		o.println("Synonyms:")
		o.println(strings.Join(site.Synonyms, ", "))
	}

	switch len(site.URLs) {
	case 0:
		o.println("No URLs")
	case 1:
		o.println("URL Describing this Functional Site:")
	default:
		o.println("URLs Describing this Functional Site:")
	}
	for _, u := range site.URLs {
		o.println(u)
	}

	printGOTerms(o, site.GOTerms)
}
