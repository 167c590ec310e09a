package label

const (
	// listDelimiter separates values in multi-valued name fields; a doubled
	// delimiter escapes one literal delimiter character.
	listDelimiter    = ";"
	escapedDelimiter = listDelimiter + listDelimiter

	// delimiterPlaceholder stands in for escaped delimiters while the real
	// ones are rewritten. U+E000 is a private-use codepoint that does not
	// occur in upstream data.
	delimiterPlaceholder = "\uE000"

	// maxValueCount bounds the replacement recursion. The largest number of
	// delimiter-separated values observed in the data is 8. Tree size grows
	// linearly with this constant, so it stays as small as the data
	// tolerates and is never derived from input.
	maxValueCount = 8
)

// FormatDelimitedList pretty-prints an escaped delimiter-separated value list
// with a human-readable separator. Three passes, each chained through a
// lexical binding so every intermediate result is computed once:
//
//  1. escaped delimiters become a private placeholder,
//  2. the remaining, now unambiguous delimiters become the separator,
//  3. placeholders become literal delimiters again.
//
// "A;;B;C" with separator " • " renders as "A;B • C".
func FormatDelimitedList(value Expression, separator string) Expression {
	escapedProtected := Var{Name: "escapedProtected"}
	prettyList := Var{Name: "prettyList"}

	protectEscaped := ReplaceBounded(
		value, String(escapedDelimiter), String(delimiterPlaceholder), Number(0), maxValueCount)
	insertSeparators := ReplaceBounded(
		escapedProtected, String(listDelimiter), String(separator), Number(0), maxValueCount-1)
	restoreEscaped := ReplaceBounded(
		prettyList, String(delimiterPlaceholder), String(listDelimiter), Number(0), maxValueCount)

	return NewLet(
		NewLet(
			restoreEscaped,
			Binding{Name: prettyList.Name, Value: insertSeparators},
		),
		Binding{Name: escapedProtected.Name, Value: protectEscaped},
	)
}
