package render

import (
	"fmt"
	"strings"

	"github.com/bioinfo/elmdb/elmapi"
)

const instanceHeader = "Accession     ELM           Sequence reference  #Evidence"

var instanceDivider = strings.Repeat("-", 57)

func (p *Printer) PrintInstance(inst elmapi.Instance) error {
	o := &output{w: p.W}
	printInstance(o, inst, p.Verbose)
	return o.err
}

func (p *Printer) PrintInstances(insts []elmapi.Instance) error {
	return p.printList(len(insts),
		func(o *output, i int) { printInstance(o, insts[i], p.Verbose) },
		table{instanceHeader, instanceDivider, func(i int) string { return instanceRow(insts[i]) }})
}

func instanceRow(inst elmapi.Instance) string {
	return fmt.Sprintf("%-14s%-14s%-20s%d", inst.Accession, inst.ELM, inst.SequenceReference, len(inst.Evidence))
}

func printInstance(o *output, inst elmapi.Instance, verbose bool) {
	o.println("Accession: " + inst.Accession)
	o.println("ELM: " + inst.ELM)
	o.println("Sequence reference: " + inst.SequenceReference.String())
	o.printf("Start: %d\n", inst.Start)
	o.printf("End: %d\n", inst.End)
	o.println("Creation date: " + inst.CreationDate)
	o.println("Change date: " + inst.ChangeDate)
	if !verbose {
		return
	}

	if inst.InstanceLogic != nil {
		o.println("Evidence logic: " + *inst.InstanceLogic)
	}
	if len(inst.Evidence) == 0 {
		o.println("Instance have no evidence.")
	}
	for _, ev := range inst.Evidence {
		o.println("Evidence:")
		o.println("Class: " + ev.Class)
		o.println("Method: " + ev.Method)
		o.println("Logic: " + ev.Logic)
		o.println("Reliability: " + ev.Reliability)
	}
}
