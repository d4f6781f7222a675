package dict

import (
	"fmt"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/ident"
)

// Issue is a problem found by Check. Issues never prevent a dictionary from
// being built; references may legitimately point into another scheme.
type Issue struct {
	Symbol  string
	Field   string
	Target  ident.AUID
	Problem string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s.%s -> %s: %s", i.Symbol, i.Field, i.Target, i.Problem)
}

const (
	problemUnresolved = "unresolved reference"
	problemNotClass   = "does not refer to a class"
)

// classFields are reference fields whose target must be a class.
var classFields = map[string]bool{
	"ParentClass":    true,
	"MemberOf":       true,
	"ReferencedType": true,
}

// Check reports references of the dictionary's definitions that do not resolve in it.
func (d *MetaDictionary) Check() []Issue {
	return checkReferences(d.definitions, d)
}

// Check reports references that do not resolve in any dictionary of the collection.
func (c *Collection) Check() []Issue {
	var issues []Issue
	for _, d := range c.dictionaries {
		issues = append(issues, checkReferences(d.definitions, c)...)
	}
	return issues
}

func checkReferences(defs []definition.Definition, scope Resolver) []Issue {
	var issues []Issue
	for _, def := range defs {
		for _, ref := range definition.References(def) {
			target, ok := scope.Definition(ref.Target)
			switch {
			case !ok:
				issues = append(issues, Issue{Symbol: def.Symbol(), Field: ref.Field, Target: ref.Target, Problem: problemUnresolved})
			case classFields[ref.Field] && definition.KindOf(target) != definition.KindClass:
				issues = append(issues, Issue{Symbol: def.Symbol(), Field: ref.Field, Target: ref.Target, Problem: problemNotClass})
			}
		}
	}
	return issues
}
