package render

import (
	"github.com/bioinfo/elmdb/elmapi"
)

func printGOTerms(o *output, terms []elmapi.GOTerm) {
	switch len(terms) {
	case 0:
		o.println("No GO term annotations.")
	case 1:
		o.println("Annotated with GO term:" + goTerm(terms[0]))
	default:
		o.println("Annotated with GO terms:")
		for _, g := range terms {
			o.println(goTerm(g))
		}
	}
}

func goTerm(g elmapi.GOTerm) string {
	s := g.Accession.Accession + " " + g.Ontology
	if !g.ForFiltering {
		s += " (not for filtering)"
	}
	return s
}
