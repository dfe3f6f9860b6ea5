package analysis

import (
	"fmt"
	"strings"
)

// tabSize is the tab stop Python's tokenizer uses when measuring indentation.
const tabSize = 8

// indentLevel is one entry of the tokenizer's indentation stack. col expands
// tabs to the next tab stop; alt counts every tab as a single column. The two
// must order lines the same way, otherwise tabs and spaces are mixed.
type indentLevel struct {
	col int
	alt int
}

// checkPythonIndentation replays the INDENT/DEDENT rules of the Python
// tokenizer. tree-sitter recovers from these errors silently, so they are
// checked on the raw source.
func checkPythonIndentation(code string) error {
	lines := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	stack := []indentLevel{{}}

	var (
		brackets int
		quote    string
		joined   bool
		expect   bool
		last     byte
	)

	for i, line := range lines {
		lineNo := i + 1

		if brackets == 0 && quote == "" && !joined {
			col, alt, offset := measureIndent(line)
			rest := strings.TrimRight(line[offset:], " \t\f\r")
			if rest == "" || rest[0] == '#' {
				continue
			}

			top := stack[len(stack)-1]
			if col > top.col {
				if !expect {
					return indentError("unexpected indent", lineNo, offset)
				}
				if alt <= top.alt {
					return indentError("inconsistent use of tabs and spaces in indentation", lineNo, offset)
				}
				stack = append(stack, indentLevel{col: col, alt: alt})
			} else {
				for col < stack[len(stack)-1].col {
					stack = stack[:len(stack)-1]
				}
				top = stack[len(stack)-1]
				if col != top.col {
					return indentError("unindent does not match any outer indentation level", lineNo, offset)
				}
				if alt != top.alt {
					return indentError("inconsistent use of tabs and spaces in indentation", lineNo, offset)
				}
				if expect {
					return indentError("expected an indented block", lineNo, offset)
				}
			}
			expect = false
			last = 0
		}

		joined = false
		escaped := false
	scan:
		for j := 0; j < len(line); j++ {
			c := line[j]
			if quote != "" {
				switch {
				case c == '\\':
					if j == len(line)-1 {
						escaped = true
					}
					j++
				case strings.HasPrefix(line[j:], quote):
					j += len(quote) - 1
					quote = ""
					last = c
				}
				continue
			}

			switch c {
			case '#':
				break scan
			case '"', '\'':
				if strings.HasPrefix(line[j:], strings.Repeat(string(c), 3)) {
					quote = line[j : j+3]
					j += 2
				} else {
					quote = string(c)
				}
			case '(', '[', '{':
				brackets++
			case ')', ']', '}':
				if brackets > 0 {
					brackets--
				}
			case '\\':
				if j == len(line)-1 {
					joined = true
					continue
				}
			}
			if c != ' ' && c != '\t' && c != '\f' && c != '\r' {
				last = c
			}
		}

		// An unterminated short string ends with its line; the parser reports it.
		if len(quote) == 1 && !escaped {
			quote = ""
		}

		if brackets == 0 && quote == "" && !joined && last == ':' {
			expect = true
		}
	}

	if expect {
		return indentError("expected an indented block", len(lines), 0)
	}
	return nil
}

// measureIndent returns the indentation of line in both tab conventions and
// the byte offset of its first non-blank character.
func measureIndent(line string) (col, alt, offset int) {
	for offset < len(line) {
		switch line[offset] {
		case ' ':
			col++
			alt++
		case '\t':
			col = (col/tabSize + 1) * tabSize
			alt++
		case '\f':
			col, alt = 0, 0
		default:
			return col, alt, offset
		}
		offset++
	}
	return col, alt, offset
}

func indentError(msg string, line, offset int) error {
	return fmt.Errorf("%s (line %d, column %d)", msg, line, offset+1)
}
