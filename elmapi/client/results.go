package client

import (
	"encoding/xml"

	"github.com/bioinfo/elmdb/elmapi"
)

// Response elements hold their records either directly or inside a wrapping
// element, such as a SOAP array or a return value, or are the record themselves.
// Any element carrying an Accession attribute is a record; any other element is
// searched for records.

type elmList struct {
	records []elmapi.ELM
}

func (l *elmList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeRecords(d, start, func(d *xml.Decoder, rec xml.StartElement) error {
		var elm elmapi.ELM
		if err := d.DecodeElement(&elm, &rec); err != nil {
			return err
		}
		l.records = append(l.records, elm)
		return nil
	})
}

type instanceList struct {
	records []elmapi.Instance
}

func (l *instanceList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeRecords(d, start, func(d *xml.Decoder, rec xml.StartElement) error {
		var inst elmapi.Instance
		if err := d.DecodeElement(&inst, &rec); err != nil {
			return err
		}
		l.records = append(l.records, inst)
		return nil
	})
}

type functionalSiteList struct {
	records []elmapi.FunctionalSite
}

func (l *functionalSiteList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeRecords(d, start, func(d *xml.Decoder, rec xml.StartElement) error {
		var site elmapi.FunctionalSite
		if err := d.DecodeElement(&site, &rec); err != nil {
			return err
		}
		l.records = append(l.records, site)
		return nil
	})
}

// decodeRecords hands start to decode when it is a record. Otherwise it reads up to
// the end of start, handing every record element found to decode.
func decodeRecords(d *xml.Decoder, start xml.StartElement, decode func(*xml.Decoder, xml.StartElement) error) error {
	if isRecord(start) {
		return decode(d, start)
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := decodeRecords(d, t, decode); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func isRecord(e xml.StartElement) bool {
	for _, a := range e.Attr {
		if a.Name.Local == "Accession" {
			return true
		}
	}
	return false
}
