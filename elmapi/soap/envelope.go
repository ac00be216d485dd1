package soap

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
const SchemaInstanceNamespace = "http://www.w3.org/1999/XMLSchema-instance"
const SchemaNamespace = "http://www.w3.org/1999/XMLSchema"

// Param is one named, untyped argument of an RPC call.
type Param struct {
	Name  string
	Value string
}

// Request is an RPC call of Method in Namespace.
type Request struct {
	Namespace string
	Method    string
	Params    []Param
}

// NewRequest creates a Request for method in namespace.
func NewRequest(namespace, method string, params ...Param) *Request {
	return &Request{Namespace: namespace, Method: method, Params: params}
}

type envelope struct {
	XMLName xml.Name `xml:"SOAP-ENV:Envelope"`
	EnvNS   string   `xml:"xmlns:SOAP-ENV,attr"`
	XsiNS   string   `xml:"xmlns:xsi,attr"`
	XsdNS   string   `xml:"xmlns:xsd,attr"`
	Body    body     `xml:"SOAP-ENV:Body"`
}

type body struct {
	Call call
}

type call struct {
	XMLName xml.Name
	NS      string `xml:"xmlns:ns1,attr"`
	Params  []param
}

type param struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Encode renders req as a SOAP envelope, including the XML declaration.
func Encode(req *Request) ([]byte, error) {
	if req.Method == "" {
		return nil, errors.New("soap: request has no method")
	}
	c := call{
		XMLName: xml.Name{Local: "ns1:" + req.Method},
		NS:      req.Namespace,
	}
	for _, p := range req.Params {
		c.Params = append(c.Params, param{XMLName: xml.Name{Local: p.Name}, Value: p.Value})
	}
	env := envelope{
		EnvNS: EnvelopeNamespace,
		XsiNS: SchemaInstanceNamespace,
		XsdNS: SchemaNamespace,
		Body:  body{Call: c},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, errors.Wrapf(err, "soap: encoding %s", req.Method)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

// responseBody picks the Fault, if any, and decodes the first other entry into result.
// Entries carrying an id are multi-reference values: elements elsewhere in the body
// point at them with href="#id" and take their attributes and content.
type responseBody struct {
	result interface{}
	fault  *Fault
}

func (b *responseBody) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var entries []*element
	refs := map[string]*element{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Fault" {
				b.fault = &Fault{}
				if err := d.DecodeElement(b.fault, &t); err != nil {
					return err
				}
				continue
			}
			if b.result == nil {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			e, err := readElement(d, t)
			if err != nil {
				return err
			}
			if id, ok := e.attr("id"); ok {
				refs[id] = e
			}
			entries = append(entries, e)
		case xml.EndElement:
			if b.fault != nil {
				return nil
			}
			return b.decodeResult(entries, refs)
		}
	}
}

func (b *responseBody) decodeResult(entries []*element, refs map[string]*element) error {
	if len(entries) == 0 {
		return nil
	}
	result := entries[0]
	for _, e := range entries {
		if _, ok := e.attr("id"); !ok {
			result = e
			break
		}
	}
	tokens, err := result.tokens(refs, map[string]bool{}, nil)
	if err != nil {
		return err
	}
	list := tokenList(tokens)
	return xml.NewTokenDecoder(&list).Decode(b.result)
}

// element is a body entry held in memory until the references in it can be resolved.
type element struct {
	start xml.StartElement
	nodes []node
}

// node is either character data or a child element.
type node struct {
	text  xml.CharData
	child *element
}

func readElement(d *xml.Decoder, start xml.StartElement) (*element, error) {
	e := &element{start: start.Copy()}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readElement(d, t)
			if err != nil {
				return nil, err
			}
			e.nodes = append(e.nodes, node{child: child})
		case xml.CharData:
			e.nodes = append(e.nodes, node{text: t.Copy()})
		case xml.EndElement:
			return e, nil
		}
	}
}

func (e *element) attr(local string) (string, bool) {
	for _, a := range e.start.Attr {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// tokens appends the token stream of e to out. An element with href="#id" keeps its
// name but takes the attributes and content of the entry with that id.
func (e *element) tokens(refs map[string]*element, resolving map[string]bool, out []xml.Token) ([]xml.Token, error) {
	start, content := e.start, e
	if href, ok := e.attr("href"); ok {
		if !strings.HasPrefix(href, "#") {
			return nil, errors.Errorf("soap: unsupported reference %q in %s", href, e.start.Name.Local)
		}
		id := href[1:]
		target, found := refs[id]
		if !found {
			return nil, errors.Errorf("soap: unresolved reference %q in %s", href, e.start.Name.Local)
		}
		if resolving[id] {
			return nil, errors.Errorf("soap: circular reference %q", href)
		}
		resolving[id] = true
		defer delete(resolving, id)

		start = xml.StartElement{Name: e.start.Name}
		for _, a := range e.start.Attr {
			if !(a.Name.Local == "href" && a.Name.Space == "") {
				start.Attr = append(start.Attr, a)
			}
		}
		for _, a := range target.start.Attr {
			if !(a.Name.Local == "id" && a.Name.Space == "") {
				start.Attr = append(start.Attr, a)
			}
		}
		content = target
	}

	out = append(out, start)
	for _, n := range content.nodes {
		if n.child == nil {
			out = append(out, n.text)
			continue
		}
		var err error
		if out, err = n.child.tokens(refs, resolving, out); err != nil {
			return nil, err
		}
	}
	return append(out, xml.EndElement{Name: start.Name}), nil
}

type tokenList []xml.Token

func (l *tokenList) Token() (xml.Token, error) {
	if len(*l) == 0 {
		return nil, io.EOF
	}
	t := (*l)[0]
	*l = (*l)[1:]
	return t, nil
}

// Decode reads a SOAP envelope from r. The response element is decoded into result
// (which may be nil to discard it). A Fault in the body is returned as the first value;
// err is only set when the envelope itself could not be read.
func Decode(r io.Reader, result interface{}) (*Fault, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	env := responseEnvelope{Body: responseBody{result: result}}
	if err := d.Decode(&env); err != nil {
		return nil, errors.Wrap(err, "soap: decoding envelope")
	}
	return env.Body.fault, nil
}
