package soap

import (
	"bytes"
	"strings"
	"testing"
)

type echoResult struct {
	Items []string `xml:"Item"`
}

func TestEncodeRequest(t *testing.T) {
	req := NewRequest("http://elm.eu.org/ELMdb", "getELM", Param{"ELMAccession", "ELME000321"})
	data, err := Encode(req)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/"`,
		`<SOAP-ENV:Body>`,
		`<ns1:getELM xmlns:ns1="http://elm.eu.org/ELMdb">`,
		`<ELMAccession>ELME000321</ELMAccession>`,
		`</ns1:getELM>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded request missing %q:\n%s", want, s)
		}
	}
}

func TestEncodeEscapesValues(t *testing.T) {
	req := NewRequest("urn:x", "getELMsByTextSearch", Param{"QueryText", "a<b & c"})
	data, err := Encode(req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<QueryText>a&lt;b &amp; c</QueryText>") {
		t.Fatalf("value not escaped: %s", data)
	}
}

func TestEncodeWithoutParams(t *testing.T) {
	data, err := Encode(NewRequest("urn:x", "getAllELMs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<ns1:getAllELMs xmlns:ns1="urn:x"></ns1:getAllELMs>`) {
		t.Fatalf("unexpected call element: %s", data)
	}
}

func TestEncodeNoMethod(t *testing.T) {
	if _, err := Encode(&Request{}); err == nil {
		t.Fatal("expected error for request without method")
	}
}

func TestEncodeRoundTripsThroughDecoder(t *testing.T) {
	data, err := Encode(NewRequest("urn:x", "getELM", Param{"ELMAccession", "ELME000001"}))
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Accession string `xml:"ELMAccession"`
	}
	fault, err := Decode(bytes.NewReader(data), &got)
	if err != nil || fault != nil {
		t.Fatalf("decode: %v %v", fault, err)
	}
	if got.Accession != "ELME000001" {
		t.Fatalf("got %q", got.Accession)
	}
}

const resultEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
 <soapenv:Header/>
 <soapenv:Body>
  <ns1:echoResponse xmlns:ns1="urn:x">
   <Item>one</Item>
   <Item>two</Item>
  </ns1:echoResponse>
  <trailer>ignored</trailer>
 </soapenv:Body>
</soapenv:Envelope>`

func TestDecodeResult(t *testing.T) {
	var res echoResult
	fault, err := Decode(strings.NewReader(resultEnvelope), &res)
	if err != nil {
		t.Fatal(err)
	}
	if fault != nil {
		t.Fatalf("unexpected fault %v", fault)
	}
	if len(res.Items) != 2 || res.Items[0] != "one" || res.Items[1] != "two" {
		t.Fatalf("got %v", res.Items)
	}
}

func TestDecodeNilResult(t *testing.T) {
	fault, err := Decode(strings.NewReader(resultEnvelope), nil)
	if err != nil || fault != nil {
		t.Fatalf("expected clean decode, got %v %v", fault, err)
	}
}

const faultEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
 <soapenv:Body>
  <soapenv:Fault>
   <faultcode>soapenv:Server</faultcode>
   <faultstring>No ELM with accession ELME999999</faultstring>
   <detail>
    <ns2:ELMAccessionFault xmlns:ns2="http://elm.eu.org/ELMdb">ELME999999</ns2:ELMAccessionFault>
   </detail>
  </soapenv:Fault>
 </soapenv:Body>
</soapenv:Envelope>`

func TestDecodeFault(t *testing.T) {
	var res echoResult
	fault, err := Decode(strings.NewReader(faultEnvelope), &res)
	if err != nil {
		t.Fatal(err)
	}
	if fault == nil {
		t.Fatal("expected fault")
	}
	if fault.Code != "soapenv:Server" {
		t.Errorf("code: %q", fault.Code)
	}
	if !fault.HasDetail("ELMAccessionFault") {
		t.Errorf("detail markers: %v", fault.DetailNames())
	}
	if fault.HasDetail("ELMIdentifierFault") {
		t.Errorf("unexpected marker in %v", fault.DetailNames())
	}
	if fault.Detail.Entries[0].Text != "ELME999999" {
		t.Errorf("detail text: %q", fault.Detail.Entries[0].Text)
	}
	want := "SOAP fault soapenv:Server: No ELM with accession ELME999999 (ELMAccessionFault)"
	if fault.Error() != want {
		t.Errorf("got %q, want %q", fault.Error(), want)
	}
	if len(res.Items) != 0 {
		t.Errorf("fault should not fill result: %v", res.Items)
	}
}

func TestDecodeLatin1(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<Envelope><Body><r><Item>caf` + "\xe9" + `</Item></r></Body></Envelope>`)
	var res echoResult
	if _, err := Decode(bytes.NewReader(doc), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 1 || res.Items[0] != "café" {
		t.Fatalf("got %q", res.Items)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("<html>oops"), nil); err == nil {
		t.Fatal("expected error decoding garbage")
	}
}

func TestFaultWithoutDetail(t *testing.T) {
	f := &Fault{Code: "Client", String: " bad request "}
	if f.Error() != "SOAP fault Client: bad request" {
		t.Fatalf("got %q", f.Error())
	}
	if f.HasDetail("anything") {
		t.Fatal("no detail expected")
	}
}

const multiRefEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
 <soapenv:Body>
  <multiRef id="id1"><Item>two</Item></multiRef>
  <ns1:echoResponse xmlns:ns1="urn:x">
   <echoReturn href="#id0"/>
  </ns1:echoResponse>
  <multiRef id="id0"><Item>one</Item><Nested href="#id1"/></multiRef>
 </soapenv:Body>
</soapenv:Envelope>`

type referencedResult struct {
	Return struct {
		Items  []string `xml:"Item"`
		Nested struct {
			Items []string `xml:"Item"`
		} `xml:"Nested"`
	} `xml:"echoReturn"`
}

func TestDecodeResolvesReferences(t *testing.T) {
	var res referencedResult
	fault, err := Decode(strings.NewReader(multiRefEnvelope), &res)
	if err != nil || fault != nil {
		t.Fatalf("decode: %v %v", fault, err)
	}
	if len(res.Return.Items) != 1 || res.Return.Items[0] != "one" {
		t.Errorf("return items: %v", res.Return.Items)
	}
	if len(res.Return.Nested.Items) != 1 || res.Return.Nested.Items[0] != "two" {
		t.Errorf("nested items: %v", res.Return.Nested.Items)
	}
}

func TestDecodeBadReferences(t *testing.T) {
	tests := map[string]string{
		"unresolved reference":  `<r><a href="#missing"/></r>`,
		"unsupported reference": `<r><a href="http://elsewhere/x"/></r>`,
		"circular reference":    `<r><a href="#id0"/></r><multiRef id="id0"><b href="#id0"/></multiRef>`,
	}
	for want, body := range tests {
		doc := `<Envelope><Body>` + body + `</Body></Envelope>`
		var res referencedResult
		_, err := Decode(strings.NewReader(doc), &res)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q error, got %v", want, err)
		}
	}
}
