package analysis

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pythonLoopStats parses code with the tree-sitter Python grammar and walks
// every node. Comprehension clauses and async for loops are not loop
// statements and are skipped.
func pythonLoopStats(code string) (loopStats, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	src := []byte(code)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return loopStats{}, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return loopStats{}, pythonSyntaxError(root)
	}
	if err := checkPythonIndentation(code); err != nil {
		return loopStats{}, err
	}
	if node := firstLegacyStatement(root); node != nil {
		return loopStats{}, legacyStatementError(node)
	}

	var stats loopStats
	walkPython(root, 0, &stats)
	return stats, nil
}

func walkPython(node *sitter.Node, depth int, stats *loopStats) {
	if isPythonLoop(node) {
		depth++
		stats.count++
		if depth > stats.depth {
			stats.depth = depth
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkPython(node.Child(i), depth, stats)
	}
}

func isPythonLoop(node *sitter.Node) bool {
	switch node.Type() {
	case "while_statement":
		return true
	case "for_statement":
		first := node.Child(0)
		return first == nil || first.Type() != "async"
	}
	return false
}

// firstLegacyStatement finds print and exec statements, which the grammar
// still accepts but Python 3 rejects.
func firstLegacyStatement(node *sitter.Node) *sitter.Node {
	switch node.Type() {
	case "print_statement", "exec_statement":
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstLegacyStatement(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func legacyStatementError(node *sitter.Node) error {
	pos := node.StartPoint()
	if node.Type() == "print_statement" {
		return fmt.Errorf("Missing parentheses in call to 'print' (line %d, column %d)", pos.Row+1, pos.Column+1)
	}
	return fmt.Errorf("invalid syntax (line %d, column %d)", pos.Row+1, pos.Column+1)
}

// pythonSyntaxError describes the first ERROR or MISSING node in the tree.
func pythonSyntaxError(root *sitter.Node) error {
	node := firstErrorNode(root)
	if node == nil {
		return errors.New("invalid syntax")
	}
	pos := node.StartPoint()
	if node.IsMissing() {
		return fmt.Errorf("missing %q (line %d, column %d)", node.Type(), pos.Row+1, pos.Column+1)
	}
	return fmt.Errorf("invalid syntax (line %d, column %d)", pos.Row+1, pos.Column+1)
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
