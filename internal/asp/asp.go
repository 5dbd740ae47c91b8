package asp

import "strings"

// Statement is a single line of an ASP program.
type Statement = string

// Program is an ordered sequence of statements submitted to the solver. The
// textual order of the statements carries no semantic weight.
type Program []Statement

func (program Program) String() string {
	var builder strings.Builder
	for _, statement := range program {
		builder.WriteString(statement)
		builder.WriteString("\n")
	}
	return builder.String()
}
