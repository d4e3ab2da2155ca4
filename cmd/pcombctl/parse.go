package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopeg/pcomb/driver"
	"github.com/gopeg/pcomb/tree"
)

var (
	traceFlag bool
	cacheSize int
	grammar   string
	treeFlag  bool
)

var parseCommand = &cobra.Command{
	Use:     "parse <file>",
	Short:   "Parse a file against a grammar and print the result",
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return applyEnvOverrides(cmd) },
	RunE:    runParse,
}

func init() {
	parseCommand.Flags().BoolVar(&traceFlag, "trace", false, "trace every transition to stderr")
	parseCommand.Flags().IntVar(&cacheSize, "cache", 256, "memoization cache size, 0 disables it")
	parseCommand.Flags().StringVar(&grammar, "grammar", "arith", "grammar to parse with: arith or tokenarith")
	parseCommand.Flags().BoolVar(&treeFlag, "tree", false, "print the parse tree instead of the numeric result")
}

func runParse(cmd *cobra.Command, args []string) error {
	if v := viper.GetString("grammar"); v != "" && !cmd.Flags().Changed("grammar") {
		grammar = v
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	g, err := grammarByName(grammar)
	if err != nil {
		return err
	}

	cur, err := g.cursor(args[0], []byte(strings.TrimSpace(string(content))))
	if err != nil {
		return err
	}

	var opts []driver.Option
	if traceFlag {
		opts = append(opts, driver.WithLogger(zerolog.New(os.Stderr).Level(zerolog.TraceLevel)))
	}
	if cacheSize > 0 {
		opts = append(opts, driver.WithCache(driver.NewCache(cacheSize)))
	}

	d := driver.New(g.grammar(), cur, opts...)
	v, ok, err := d.Next()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no solution for %s", args[0])
	}

	if treeFlag {
		root, ok := g.tree(v)
		if !ok {
			return fmt.Errorf("grammar %q does not materialize a parse tree", grammar)
		}
		renderTree(cmd.OutOrStdout(), root)
		return nil
	}

	result, err := g.eval(v)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"input", "result"})
	table.Append([]string{args[0], fmt.Sprintf("%.12g", result)})
	table.Render()

	return nil
}

// renderTree prints one row per tree.Node, indented by its depth, walking
// the tree tree.Build makes from a Driver's Value with the Walk helper
// package tree offers.
func renderTree(w io.Writer, root tree.Node) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"depth", "type", "text"})
	tree.Walk(root, tree.WalkLtr, func(n tree.Node) (walkChildren, walkSiblings bool) {
		depth := tree.NodeLevel(n)
		text := ""
		if !n.IsNonTerm() {
			text = n.Token().Text()
		}
		table.Append([]string{strings.Repeat("  ", depth), n.TypeName(), text})
		return true, true
	})
	table.Render()
}
