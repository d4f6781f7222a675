package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/dict"
	"github.com/vvka-141/regxml/internal/dictcache"
	"github.com/vvka-141/regxml/internal/ident"
	"github.com/vvka-141/regxml/pkg/regxml"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Metadata dictionary operations",
	Long: `Commands for inspecting and compiling metadata dictionaries.

Available commands:
  validate   Load dictionaries and report duplicate or dangling definitions
  lookup     Show one definition by symbol or URN
  list       List every definition of a dictionary
  scheme-id  Print the scheme ID derived from a scheme URI
  compile    Write a dictionary as a binary snapshot

Examples:
  # Validate dictionaries that reference each other
  regxml dict validate Elements.xml Groups.xml Types.xml

  # Look up a definition by symbol or by label
  regxml dict lookup Elements.xml InstanceID
  regxml dict lookup Elements.xml urn:smpte:ul:060e2b34.01010101.01011502.00000000`,
}

var dictValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate dictionaries",
	Long: `Load each dictionary, then check that references between definitions resolve
across all of them. Duplicate identities or symbols always fail. Unresolved
references are reported as warnings unless --strict is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDictValidate,
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <file> <symbol|urn>",
	Short: "Show a definition",
	Args:  cobra.ExactArgs(2),
	RunE:  runDictLookup,
}

var dictListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List definitions in declaration order",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictList,
}

var dictSchemeIDCmd = &cobra.Command{
	Use:   "scheme-id <uri>",
	Short: "Print the scheme ID derived from a scheme URI",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictSchemeID,
}

var dictCompileCmd = &cobra.Command{
	Use:   "compile <in.xml> <out.snap>",
	Short: "Compile a dictionary into a binary snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runDictCompile,
}

var dictFlags struct {
	strict bool
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictValidateCmd)
	dictCmd.AddCommand(dictLookupCmd)
	dictCmd.AddCommand(dictListCmd)
	dictCmd.AddCommand(dictSchemeIDCmd)
	dictCmd.AddCommand(dictCompileCmd)

	dictValidateCmd.Flags().BoolVar(&dictFlags.strict, "strict", false, "Fail when a reference does not resolve")
}

func runDictValidate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	coll, err := s.loadCollection(args)
	if err != nil {
		return err
	}

	out := newTable(cmd.OutOrStdout(), "FILE", "SCHEME", "DEFINITIONS")
	for i, d := range coll.Dictionaries() {
		out.add(args[i], d.SchemeURI(), fmt.Sprint(d.Len()))
	}
	if err := out.flush(); err != nil {
		return err
	}

	issues := coll.Check()
	for _, issue := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", issue)
	}
	if dictFlags.strict && len(issues) > 0 {
		return fmt.Errorf("%d unresolved reference(s)", len(issues))
	}
	return nil
}

func runDictLookup(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	d, err := s.loadDictionary(args[0])
	if err != nil {
		return err
	}

	def, err := lookupDefinition(d, args[1])
	if err != nil {
		return err
	}

	out := newTable(cmd.OutOrStdout(), "FIELD", "VALUE")
	info := def.Info()
	out.add("Kind", definition.KindOf(def).String())
	out.add("Symbol", info.Sym)
	out.add("QualifiedSymbol", dict.Qualify(d.SchemeURI(), info.Sym))
	out.add("Identification", info.ID.String())
	if info.Name != "" {
		out.add("Name", info.Name)
	}
	if info.Description != "" {
		out.add("Description", info.Description)
	}
	for _, ref := range definition.References(def) {
		out.add(ref.Field, describeTarget(d, ref.Target))
	}
	if class, ok := def.(*definition.ClassDefinition); ok {
		for _, member := range d.MembersOf(class) {
			out.add("Member", member.Symbol())
		}
	}
	return out.flush()
}

// lookupDefinition accepts a URN (urn:smpte:ul: or urn:uuid:) or a symbol.
func lookupDefinition(d *dict.MetaDictionary, key string) (definition.Definition, error) {
	if strings.HasPrefix(strings.ToLower(key), "urn:") {
		id, err := ident.ParseAUID(key)
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q: %w", key, err)
		}
		if def, ok := d.Definition(id); ok {
			return def, nil
		}
	} else if def, ok := d.DefinitionBySymbol(key); ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", regxml.ErrNotFound, key, d.SchemeURI())
}

func describeTarget(d *dict.MetaDictionary, target ident.AUID) string {
	if def, ok := d.Definition(target); ok {
		return fmt.Sprintf("%s (%s)", def.Symbol(), target)
	}
	return target.String()
}

func runDictList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	d, err := s.loadDictionary(args[0])
	if err != nil {
		return err
	}

	out := newTable(cmd.OutOrStdout(), "KIND", "SYMBOL", "IDENTIFICATION")
	for _, def := range d.Definitions() {
		out.add(definition.KindOf(def).String(), def.Symbol(), def.Identification().String())
	}
	return out.flush()
}

func runDictSchemeID(cmd *cobra.Command, args []string) error {
	uri := args[0]
	if uri == "" || !ident.IsASCII(uri) {
		return fmt.Errorf("%w: %q", regxml.ErrInvalidSchemeURI, uri)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ident.SchemeID(uri).URN())
	return nil
}

func runDictCompile(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	d, err := s.loadDictionary(args[0])
	if err != nil {
		return err
	}

	if err := dictcache.WriteFile(args[1], d); err != nil {
		return err
	}
	s.logger.Info("Compiled %d definitions of %s into %s", d.Len(), d.SchemeURI(), args[1])
	return nil
}
