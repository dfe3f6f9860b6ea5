package analysis

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"regexp"
)

var packageClause = regexp.MustCompile(`(?m)^\s*package\s+\w+`)

// snippetHeader is prepended to Go fragments that lack a package clause.
const snippetHeader = "package snippet\n\n"

// goLoopStats counts for and range statements in a Go fragment.
func goLoopStats(code string) (loopStats, error) {
	src := code
	lineOffset := 0
	if !packageClause.MatchString(code) {
		src = snippetHeader + code
		lineOffset = 2
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "snippet.go", src, 0)
	if err != nil {
		return loopStats{}, goSyntaxError(err, lineOffset)
	}

	var stats loopStats
	ast.Walk(loopVisitor{stats: &stats}, file)
	return stats, nil
}

type loopVisitor struct {
	depth int
	stats *loopStats
}

func (v loopVisitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}

	depth := v.depth
	switch node.(type) {
	case *ast.ForStmt, *ast.RangeStmt:
		depth++
		v.stats.count++
		if depth > v.stats.depth {
			v.stats.depth = depth
		}
	}

	return loopVisitor{depth: depth, stats: v.stats}
}

func goSyntaxError(err error, lineOffset int) error {
	list, ok := err.(scanner.ErrorList)
	if !ok || len(list) == 0 {
		return err
	}
	first := list[0]
	line := first.Pos.Line - lineOffset
	if line < 1 {
		line = 1
	}
	return fmt.Errorf("%s (line %d, column %d)", first.Msg, line, first.Pos.Column)
}
