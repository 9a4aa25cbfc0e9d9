// Command protoc3c is a thin demonstration harness around the parser
// package: it reads a single .proto file, reports any syntax diagnostics,
// and prints its AST when run with --tree. It does not resolve imports, run a build pipeline, or
// generate code — those are the concerns of a separate job runner.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"protoc3/internal/ast"
	"protoc3/internal/parser"
	"protoc3/internal/report"
)

func main() {
	var showTree bool

	root := &cobra.Command{
		Use:   "protoc3c <file.proto>",
		Short: "Parse a proto3 source file and print its AST and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], showTree)
		},
	}
	root.Flags().BoolVar(&showTree, "tree", false, "print the full parsed AST, not just diagnostics")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, showTree bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read source file", "path", path, "error", err)
		return err
	}

	tree := parser.Analyze(src)

	if tree.HasErrors() {
		report.Print(os.Stdout, path, tree.Errors, src)
	}

	if showTree {
		printTree(tree.Node, 0)
	}

	if tree.HasErrors() {
		color.New(color.FgRed).Fprintf(os.Stderr, "%d syntax error(s) in %s\n", len(tree.Errors), path)
		os.Exit(1)
	}
	return nil
}

func printTree(n *ast.Node, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Println(n.String())
	for _, child := range n.Children() {
		printTree(child, depth+1)
	}
}
