package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/klv"
	"github.com/vvka-141/regxml/pkg/regxml"
)

var klvCmd = &cobra.Command{
	Use:   "klv",
	Short: "KLV stream operations",
}

var klvResolveCmd = &cobra.Command{
	Use:   "resolve <klvfile>",
	Short: "Resolve the key of every triplet in a KLV file",
	Long: `Read consecutive KLV triplets and look up each key in the given dictionaries.

Each output line holds the triplet offset, key, value length, and the kind and
symbol of the matching definition ("-" when the key is not registered).

Examples:
  regxml klv resolve header.klv --dict Elements.xml --dict Groups.xml

  # Use the dictionaries listed in regxml.yaml
  regxml klv resolve header.klv`,
	Args: cobra.ExactArgs(1),
	RunE: runKlvResolve,
}

var klvFlags struct {
	dicts    []string
	maxValue int64
}

func init() {
	rootCmd.AddCommand(klvCmd)
	klvCmd.AddCommand(klvResolveCmd)

	klvResolveCmd.Flags().StringArrayVar(&klvFlags.dicts, "dict", nil, "Dictionary file (repeatable; defaults to configured dictionaries)")
	klvResolveCmd.Flags().Int64Var(&klvFlags.maxValue, "max-value", klv.DefaultMaxValueLength, "Largest value length accepted, in bytes")
}

func runKlvResolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	coll, err := s.loadCollection(klvFlags.dicts)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open KLV file: %w", err)
	}
	defer f.Close()

	r := klv.NewReader(bufio.NewReader(f), klv.WithMaxValueLength(klvFlags.maxValue))
	out := newTable(cmd.OutOrStdout(), "OFFSET", "KEY", "LENGTH", "KIND", "SYMBOL")
	var total, unknown int
	for {
		offset := r.Offset()
		t, err := r.ReadTriplet()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w: %w", args[0], regxml.ErrMalformedInput, err)
		}

		total++
		kind, symbol := "-", "-"
		if def, ok := klv.Resolve(coll, t); ok {
			kind, symbol = definition.KindOf(def).String(), def.Symbol()
		} else {
			unknown++
		}
		out.add(fmt.Sprint(offset), t.Key().String(), fmt.Sprint(t.Length()), kind, symbol)
	}

	if err := out.flush(); err != nil {
		return err
	}
	s.logger.Verbose("Resolved %d of %d triplets", total-unknown, total)
	return nil
}
