package dictxml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/dict"
	"github.com/vvka-141/regxml/internal/logging"
	"github.com/vvka-141/regxml/pkg/regxml"
)

const (
	// Namespace is the XML namespace of dictionary documents.
	Namespace = "http://www.smpte-ra.org/schemas/2001-1b/2014/metadict"

	// RootElement names the root element of documents described by a dictionary.
	RootElement = "MXF"

	// RootObject names the root object of documents described by a dictionary.
	RootObject = "Preface"

	definitionsElement = "MetaDefinitions"
)

// document maps the dictionary XML. Definitions are handled by definitionList.
type document struct {
	XMLName     xml.Name       `xml:"http://www.smpte-ra.org/schemas/2001-1b/2014/metadict Baseline"`
	RootElement string         `xml:"rootElement,attr"`
	RootObject  string         `xml:"rootObject,attr"`
	SchemeID    string         `xml:"SchemeID"`
	SchemeURI   string         `xml:"SchemeURI"`
	Description string         `xml:"Description,omitempty"`
	Definitions definitionList `xml:"MetaDefinitions"`
}

// definitionList is the polymorphic MetaDefinitions container.
type definitionList []definition.Definition

func (l definitionList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, def := range l {
		tag := xml.StartElement{Name: xml.Name{Local: definition.KindOf(def).TagName()}}
		if err := e.EncodeElement(def, tag); err != nil {
			return fmt.Errorf("encoding %s: %w", def.Symbol(), err)
		}
	}
	return e.EncodeToken(start.End())
}

func (l *definitionList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := d.InputPos()
			kind, ok := definition.KindForTag(t.Name.Local)
			if !ok {
				return &ParseError{
					Line:    line,
					Element: t.Name.Local,
					Message: "unknown definition element",
					Hint:    "MetaDefinitions may only contain ClassDefinition, PropertyDefinition, PropertyAliasDefinition and Type*Definition elements.",
				}
			}

			def := definition.New(kind)
			if err := d.DecodeElement(def, &t); err != nil {
				return &ParseError{Line: line, Element: t.Name.Local, Message: err.Error(), Err: err}
			}
			if def.Identification().IsZero() {
				return &ParseError{Line: line, Element: t.Name.Local, Message: "missing Identification"}
			}
			if def.Symbol() == "" {
				return &ParseError{Line: line, Element: t.Name.Local, Message: "missing Symbol"}
			}
			*l = append(*l, def)

		case xml.EndElement:
			return nil
		}
	}
}

type options struct {
	logger regxml.Logger
	source string
}

// Option configures Decode.
type Option func(*options)

// WithLogger sets the logger receiving codec and build diagnostics.
func WithLogger(logger regxml.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSource names the input in parse errors.
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

// Encode writes d as an indented XML document.
func Encode(w io.Writer, d *dict.MetaDictionary) error {
	doc := document{
		RootElement: RootElement,
		RootObject:  RootObject,
		SchemeID:    d.SchemeID().URN(),
		SchemeURI:   d.SchemeURI(),
		Description: d.Description(),
		Definitions: d.Definitions(),
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding dictionary %s: %w", d.SchemeURI(), err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a dictionary document and builds the dictionary it describes.
func Decode(r io.Reader, opts ...Option) (*dict.MetaDictionary, error) {
	o := options{logger: logging.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, withSource(wrapXMLError(err), o.source)
	}

	if err := checkRootMarkers(&doc); err != nil {
		return nil, withSource(err, o.source)
	}
	if doc.SchemeURI == "" {
		return nil, withSource(&ParseError{
			Element: "SchemeURI",
			Message: "missing scheme URI",
			Hint:    "Every dictionary must name its scheme, e.g. <SchemeURI>http://www.smpte-ra.org/reg/335/2012</SchemeURI>.",
		}, o.source)
	}

	d, err := dict.New(doc.SchemeURI, doc.Definitions,
		dict.WithDescription(doc.Description),
		dict.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	if doc.SchemeID != "" {
		stored, err := uuid.Parse(doc.SchemeID)
		if err != nil {
			return nil, withSource(&ParseError{Element: "SchemeID", Message: err.Error(), Err: err}, o.source)
		}
		if stored != d.SchemeID() {
			o.logger.Verbose("scheme ID %s in %s does not match derived %s; using derived value",
				stored, doc.SchemeURI, d.SchemeID())
		}
	}

	return d, nil
}

func checkRootMarkers(doc *document) error {
	if doc.RootElement != "" && doc.RootElement != RootElement {
		return &ParseError{Element: "rootElement", Message: fmt.Sprintf("expected %q, got %q", RootElement, doc.RootElement)}
	}
	if doc.RootObject != "" && doc.RootObject != RootObject {
		return &ParseError{Element: "rootObject", Message: fmt.Sprintf("expected %q, got %q", RootObject, doc.RootObject)}
	}
	return nil
}

func withSource(err error, source string) error {
	if pe, ok := err.(*ParseError); ok && pe.Source == "" {
		pe.Source = source
	}
	return err
}

// DecodeFile reads the dictionary stored at path.
func DecodeFile(path string, opts ...Option) (*dict.MetaDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	return Decode(bufio.NewReader(f), opts...)
}

// EncodeFile writes d to path, replacing any existing file.
func EncodeFile(path string, d *dict.MetaDictionary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, d); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
