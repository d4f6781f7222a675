package dict

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/ident"
	"github.com/vvka-141/regxml/internal/logging"
	"github.com/vvka-141/regxml/pkg/regxml"
)

// MetaDictionary is an immutable, indexed set of definitions for one scheme.
type MetaDictionary struct {
	schemeID    uuid.UUID
	schemeURI   string
	description string

	definitions []definition.Definition
	byAUID      map[ident.AUID]int
	bySymbol    map[string]int
	membersOf   map[ident.AUID][]int
}

type buildOptions struct {
	description string
	logger      regxml.Logger
}

// Option configures New.
type Option func(*buildOptions)

// WithDescription sets the optional dictionary description.
func WithDescription(description string) Option {
	return func(o *buildOptions) { o.description = description }
}

// WithLogger sets the logger receiving build diagnostics.
func WithLogger(logger regxml.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a dictionary for schemeURI from defs.
//
// Every definition is copied, so later changes to defs do not reach the
// dictionary. All collisions on normalized AUID or symbol are reported,
// joined into one error; any collision means no dictionary is returned.
func New(schemeURI string, defs []definition.Definition, opts ...Option) (*MetaDictionary, error) {
	o := buildOptions{logger: logging.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateSchemeURI(schemeURI); err != nil {
		return nil, err
	}

	d := &MetaDictionary{
		schemeID:    ident.SchemeID(schemeURI),
		schemeURI:   schemeURI,
		description: o.description,
		definitions: make([]definition.Definition, 0, len(defs)),
		byAUID:      make(map[ident.AUID]int, len(defs)),
		bySymbol:    make(map[string]int, len(defs)),
		membersOf:   make(map[ident.AUID][]int),
	}

	var errs []error
	classes := 0
	// inputIndex maps a stored position back to its index in defs
	inputIndex := make([]int, 0, len(defs))

	for i, in := range defs {
		if in == nil {
			errs = append(errs, fmt.Errorf("%w: definition %d is nil", regxml.ErrMalformedInput, i))
			continue
		}
		def := definition.Clone(in)
		id := ident.NormalizeAUID(def.Identification())

		// both indices are checked so a definition colliding on AUID and symbol reports both
		collided := false
		if first, exists := d.byAUID[id]; exists {
			errs = append(errs, &DuplicateDefinitionError{
				Field: fieldAUID, Value: def.Identification().String(), FirstIndex: inputIndex[first], Index: i,
			})
			collided = true
		}
		if first, exists := d.bySymbol[def.Symbol()]; exists {
			errs = append(errs, &DuplicateDefinitionError{
				Field: fieldSymbol, Value: def.Symbol(), FirstIndex: inputIndex[first], Index: i,
			})
			collided = true
		}
		if collided {
			continue
		}

		pos := len(d.definitions)
		d.definitions = append(d.definitions, def)
		inputIndex = append(inputIndex, i)
		d.byAUID[id] = pos
		d.bySymbol[def.Symbol()] = pos

		if definition.KindOf(def) == definition.KindClass {
			classes++
			if _, ok := d.membersOf[id]; !ok {
				d.membersOf[id] = nil
			}
		}
		if class, ok := definition.MemberOf(def); ok {
			key := ident.NormalizeAUID(class)
			d.membersOf[key] = append(d.membersOf[key], pos)
		}
	}

	if len(errs) > 0 {
		o.logger.Verbose("dictionary %s rejected: %d error(s)", schemeURI, len(errs))
		return nil, errors.Join(errs...)
	}

	o.logger.Verbose("dictionary %s built: %d definitions, %d classes, scheme ID %s",
		schemeURI, len(d.definitions), classes, d.schemeID)
	return d, nil
}

func validateSchemeURI(schemeURI string) error {
	if schemeURI == "" {
		return fmt.Errorf("%w: empty", regxml.ErrInvalidSchemeURI)
	}
	if !ident.IsASCII(schemeURI) {
		return fmt.Errorf("%w: %q contains non-ASCII characters", regxml.ErrInvalidSchemeURI, schemeURI)
	}
	if _, err := url.Parse(schemeURI); err != nil {
		return fmt.Errorf("%w: %v", regxml.ErrInvalidSchemeURI, err)
	}
	return nil
}

// SchemeID returns the identity derived from the scheme URI.
func (d *MetaDictionary) SchemeID() uuid.UUID { return d.schemeID }

// SchemeURI returns the scheme URI.
func (d *MetaDictionary) SchemeURI() string { return d.schemeURI }

// Description returns the optional description.
func (d *MetaDictionary) Description() string { return d.description }

// Len returns the number of definitions.
func (d *MetaDictionary) Len() int { return len(d.definitions) }

// Definitions returns copies of the definitions in declaration order.
func (d *MetaDictionary) Definitions() []definition.Definition {
	return d.copyAt(nil)
}

// copyAt returns deep copies of the definitions at positions, or of all
// definitions when positions is nil. Stored definitions never leave the dictionary.
func (d *MetaDictionary) copyAt(positions []int) []definition.Definition {
	if positions == nil {
		out := make([]definition.Definition, len(d.definitions))
		for i, def := range d.definitions {
			out[i] = definition.Clone(def)
		}
		return out
	}
	out := make([]definition.Definition, len(positions))
	for i, pos := range positions {
		out[i] = definition.Clone(d.definitions[pos])
	}
	return out
}

// Definition returns a copy of the definition registered under id, after normalization.
func (d *MetaDictionary) Definition(id ident.AUID) (definition.Definition, bool) {
	pos, ok := d.byAUID[ident.NormalizeAUID(id)]
	if !ok {
		return nil, false
	}
	return definition.Clone(d.definitions[pos]), true
}

// DefinitionByUL returns the definition registered under the label u, after normalization.
func (d *MetaDictionary) DefinitionByUL(u ident.UL) (definition.Definition, bool) {
	return d.Definition(ident.NewAUIDFromUL(u))
}

// DefinitionBySymbol returns a copy of the definition with exactly this symbol.
func (d *MetaDictionary) DefinitionBySymbol(symbol string) (definition.Definition, bool) {
	pos, ok := d.bySymbol[symbol]
	if !ok {
		return nil, false
	}
	return definition.Clone(d.definitions[pos]), true
}

// MembersOf returns the properties registered as members of class, in declaration order.
// The result is empty when the class has no members in this dictionary.
func (d *MetaDictionary) MembersOf(class *definition.ClassDefinition) []definition.Definition {
	return d.MembersOfID(class.Identification())
}

// MembersOfID is MembersOf keyed by the class identification.
func (d *MetaDictionary) MembersOfID(class ident.AUID) []definition.Definition {
	positions := d.membersOf[ident.NormalizeAUID(class)]
	if positions == nil {
		return []definition.Definition{}
	}
	return d.copyAt(positions)
}

// Qualify builds a symbol unique across namespaces: symbol alone when
// namespace is empty, otherwise namespace and symbol separated by a space.
func Qualify(namespace, symbol string) string {
	if namespace == "" {
		return symbol
	}
	return namespace + " " + symbol
}
