/*
pcombctl is a console utility for exercising pcomb grammars against input
files: it builds a cursor over the input (lexing it first for tokenarith),
drives a grammar's Matcher to its first solution, and prints either the
numeric result or the resulting parse tree.

Usage is

	pcombctl parse [--trace] [--cache <size>] [--grammar arith|tokenarith] [--tree] <file>

--trace enables transition-level tracing to stderr;

--cache <size> attaches a memoization cache of the given size, 0 disables it;

--grammar selects arith (byte-level) or tokenarith (lexed token stream);

--tree renders the parse tree tokenarith.Tree (or arith's, which has none)
materializes via package tree, instead of just the numeric result;

the grammar may also be supplied via a pcombctl.toml file (see
configureViper), overridden by the --grammar flag; no other key is read from
that file.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopeg/pcomb"
	"github.com/gopeg/pcomb/examples/arith"
	"github.com/gopeg/pcomb/examples/tokenarith"
	"github.com/gopeg/pcomb/source"
	"github.com/gopeg/pcomb/tree"
)

var rootCommand = &cobra.Command{
	Use:   "pcombctl",
	Short: "Drive pcomb grammars against input files",
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCommand.AddCommand(parseCommand)
	cobra.OnInitialize(configureViper)
}

func configureViper() {
	viper.SetConfigName("pcombctl")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("pcombctl")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// grammarSpec wires one demo grammar's cursor construction, Matcher, and
// result rendering into the CLI, so parse.go can stay grammar-agnostic.
type grammarSpec struct {
	cursor  func(name string, content []byte) (pcomb.Cursor, error)
	grammar func() pcomb.Matcher
	eval    func(pcomb.Value) (float64, error)
	tree    func(pcomb.Value) (tree.NonTermNode, bool)
}

// grammars is the CLI's self-contained grammar registry; it exists to keep
// pcombctl free of a grammar file format of its own, the way a grammar
// built from pcomb combinators is meant to be written directly in Go rather
// than compiled from a DSL.
var grammars = map[string]grammarSpec{
	"arith": {
		cursor: func(name string, content []byte) (pcomb.Cursor, error) {
			return source.NewCursor(source.New(name, content)), nil
		},
		grammar: arith.Grammar,
		eval:    arith.Eval,
		tree: func(pcomb.Value) (tree.NonTermNode, bool) {
			return nil, false
		},
	},
	"tokenarith": {
		cursor: func(name string, content []byte) (pcomb.Cursor, error) {
			return tokenarith.Tokenize(name, content)
		},
		grammar: tokenarith.Grammar,
		eval:    tokenarith.Eval,
		tree: func(v pcomb.Value) (tree.NonTermNode, bool) {
			return tokenarith.Tree(v), true
		},
	},
}

func grammarByName(name string) (grammarSpec, error) {
	if name == "" {
		name = "arith"
	}
	g, ok := grammars[name]
	if !ok {
		return grammarSpec{}, fmt.Errorf("unknown grammar %q", name)
	}
	return g, nil
}
