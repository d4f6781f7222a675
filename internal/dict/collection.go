package dict

import (
	"fmt"
	"slices"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/ident"
	"github.com/vvka-141/regxml/pkg/regxml"
)

// Resolver looks up definitions by identification.
// Both *MetaDictionary and *Collection implement it.
type Resolver interface {
	Definition(id ident.AUID) (definition.Definition, bool)
	DefinitionByUL(u ident.UL) (definition.Definition, bool)
}

var (
	_ Resolver = (*MetaDictionary)(nil)
	_ Resolver = (*Collection)(nil)
)

// Collection is an immutable, ordered group of dictionaries with distinct schemes.
// Lookups consult the dictionaries in the order they were given.
type Collection struct {
	dictionaries []*MetaDictionary
	byScheme     map[string]*MetaDictionary
}

// NewCollection groups dictionaries. Two dictionaries for the same scheme URI
// are rejected with regxml.ErrDuplicateScheme.
func NewCollection(dictionaries ...*MetaDictionary) (*Collection, error) {
	c := &Collection{
		dictionaries: make([]*MetaDictionary, 0, len(dictionaries)),
		byScheme:     make(map[string]*MetaDictionary, len(dictionaries)),
	}
	for _, d := range dictionaries {
		if d == nil {
			continue
		}
		if _, exists := c.byScheme[d.SchemeURI()]; exists {
			return nil, fmt.Errorf("%w: %s", regxml.ErrDuplicateScheme, d.SchemeURI())
		}
		c.byScheme[d.SchemeURI()] = d
		c.dictionaries = append(c.dictionaries, d)
	}
	return c, nil
}

// Dictionaries returns the dictionaries in lookup order.
func (c *Collection) Dictionaries() []*MetaDictionary {
	return slices.Clone(c.dictionaries)
}

// Dictionary returns the dictionary for schemeURI.
func (c *Collection) Dictionary(schemeURI string) (*MetaDictionary, bool) {
	d, ok := c.byScheme[schemeURI]
	return d, ok
}

// Definition returns the first definition registered under id.
func (c *Collection) Definition(id ident.AUID) (definition.Definition, bool) {
	for _, d := range c.dictionaries {
		if def, ok := d.Definition(id); ok {
			return def, true
		}
	}
	return nil, false
}

// DefinitionByUL returns the first definition registered under u.
func (c *Collection) DefinitionByUL(u ident.UL) (definition.Definition, bool) {
	return c.Definition(ident.NewAUIDFromUL(u))
}

// DefinitionBySymbol returns the first definition with this symbol.
func (c *Collection) DefinitionBySymbol(symbol string) (definition.Definition, bool) {
	for _, d := range c.dictionaries {
		if def, ok := d.DefinitionBySymbol(symbol); ok {
			return def, true
		}
	}
	return nil, false
}

// MembersOf returns the members of class from every dictionary,
// so properties added by extension schemes are included.
func (c *Collection) MembersOf(class *definition.ClassDefinition) []definition.Definition {
	var members []definition.Definition
	for _, d := range c.dictionaries {
		members = append(members, d.MembersOfID(class.Identification())...)
	}
	return members
}
