package render

import (
	"github.com/bioinfo/elmdb/elmapi"
)

func strPtr(s string) *string { return &s }

func goTermRef(acc, ontology string, forFiltering bool) elmapi.GOTerm {
	return elmapi.GOTerm{
		Accession:    elmapi.DatabaseReference{Database: "GO", Accession: acc},
		Ontology:     ontology,
		ForFiltering: elmapi.Flag(forFiltering),
	}
}

// The record with no optional group at all.
var minimalELM = elmapi.ELM{
	Identifier:      "LIG_SH2",
	Accession:       "ELME000321",
	Regex:           "...",
	FunctionalSite:  "LIG_SH2_1",
	LongDescription: "...",
	CreationDate:    "2003-01-01",
	ChangeDate:      "2010-01-01",
}

// Every optional group holds a single value.
var singularELM = elmapi.ELM{
	Identifier:           "LIG_14-3-3_1",
	Accession:            "ELME000002",
	Regex:                "R[^DE]{0,2}[^DEPG]([ST])(([FWYLMV].)|([^PRIKGN]P)|([^PRIKGN].{2,4}[VILMFWYP]))",
	FunctionalSite:       "14-3-3 ligand",
	LongDescription:      "Longest phosphorylated 14-3-3 binding motif.",
	CreationDate:         "2003-01-01",
	ChangeDate:           "2009-02-11",
	LiteratureReferences: []elmapi.DatabaseReference{{Database: "PubMed", Accession: "10799553"}},
	IncludeTaxonomy:      []elmapi.TaxonomyReference{{Accession: "9606"}},
	Instances:            []string{"LIG_14-3-3_1_1"},
	GOTerms:              []elmapi.GOTerm{goTermRef("GO:0005515", "function", false)},
}

// Every optional group holds several values.
var fullELM = elmapi.ELM{
	Identifier:      "LIG_SH2_STAT5",
	Accession:       "ELME000163",
	Regex:           "(Y)[VLTFIC]..",
	FunctionalSite:  "SH2 ligand",
	LongDescription: "STAT5 Src Homology 2 (SH2) domain binding motif.",
	CreationDate:    "2004-05-13",
	ChangeDate:      "2010-01-01",
	LiteratureReferences: []elmapi.DatabaseReference{
		{Database: "PubMed", Accession: "10799553"},
		{Database: "PubMed", Accession: "12345678"},
	},
	IncludeTaxonomy: []elmapi.TaxonomyReference{{Accession: "9606"}, {Accession: "10090"}},
	ExcludeTaxonomy: []elmapi.TaxonomyReference{{Accession: "4751"}},
	Instances:       []string{"LIG_SH2_STAT5_1", "LIG_SH2_STAT5_2", "LIG_SH2_STAT5_3"},
	GOTerms: []elmapi.GOTerm{
		goTermRef("GO:0005515", "function", true),
		goTermRef("GO:0007165", "process", false),
	},
}

var evidencedInstance = elmapi.Instance{
	Accession:         "ELMI000001",
	ELM:               "LIG_SH2_STAT5",
	SequenceReference: elmapi.DatabaseReference{Database: "UniProt", Accession: "P40763"},
	Start:             705,
	End:               708,
	CreationDate:      "2004-03-02",
	ChangeDate:        "2009-11-20",
	InstanceLogic:     strPtr("true positive"),
	Evidence: []elmapi.Evidence{
		{Class: "in vitro", Method: "mutagenesis", Logic: "true", Reliability: "high"},
		{Class: "in vivo", Method: "co-immunoprecipitation", Logic: "true", Reliability: "medium"},
	},
}

var bareInstance = elmapi.Instance{
	Accession:         "ELMI000002",
	ELM:               "LIG_14-3-3_1",
	SequenceReference: elmapi.DatabaseReference{Database: "UniProt", Accession: "Q13541"},
	Start:             36,
	End:               41,
	CreationDate:      "2004-03-02",
	ChangeDate:        "2004-03-02",
}

var sh2Site = elmapi.FunctionalSite{
	Accession:        "ELMF000001",
	Name:             "SH2 ligand",
	DescriptiveTitle: "Src Homology 2 domain binding motif",
	ShortDescription: "Phosphotyrosine motifs bound by SH2 domains.",
	CreationDate:     "2003-01-01",
	ChangeDate:       "2008-05-15",
	ELMs:             []string{"LIG_SH2_GRB2", "LIG_SH2_STAT5"},
	Synonyms:         []string{"pY ligand"},
	URLs:             []string{"http://elm.eu.org/elms/LIG_SH2_GRB2"},
}

var ligandSite = elmapi.FunctionalSite{
	Accession:        "ELMF000002",
	Name:             "14-3-3 ligand",
	DescriptiveTitle: "14-3-3 binding phosphopeptide",
	ShortDescription: "Motifs bound by 14-3-3 proteins.",
	CreationDate:     "2003-01-01",
	ChangeDate:       "2009-02-11",
	ELMs:             []string{"LIG_14-3-3_1"},
	Synonyms:         []string{"14-3-3 motif", "phosphoserine ligand"},
	URLs:             []string{"http://elm.eu.org/elms/LIG_14-3-3_1", "http://www.ebi.ac.uk/interpro/IPR000308"},
	GOTerms:          []elmapi.GOTerm{goTermRef("GO:0005515", "function", true)},
}

var bareSite = elmapi.FunctionalSite{
	Accession:        "ELMF000003",
	Name:             "Cyclin box",
	DescriptiveTitle: "Cyclin docking site",
	ShortDescription: "Binds the hydrophobic patch of cyclins.",
	CreationDate:     "2003-01-01",
	ChangeDate:       "2003-01-01",
}
