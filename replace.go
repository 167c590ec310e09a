package label

import "strconv"

// ReplaceBounded builds an expression that replaces up to budget occurrences
// of needle in haystack, scanning left to right from the start offset, and
// leaves everything after the last replaced occurrence verbatim. When the
// actual occurrence count exceeds the budget the surplus is left untouched;
// that truncation is documented behavior, not an error.
//
// This bounded recursion is the only way to emulate iteration in the target
// language, which has no loops. Tree size and evaluation cost grow linearly
// with budget, so the budget must come from a small documented domain
// constant, never from input size. Needle and replacement may themselves be
// sub-expressions, which is what makes dynamic separators possible.
func ReplaceBounded(haystack, needle, replacement, start Expression, budget int) Expression {
	if budget < 0 {
		budget = 0
	}

	haystackVar := Var{Name: "haystack"}
	needleVar := Var{Name: "needle"}
	replacementVar := Var{Name: "replacement"}

	// Bind the operands once so each recursion level references a variable
	// instead of re-embedding the full sub-expression.
	return NewLet(
		replaceFrom(haystackVar, needleVar, replacementVar, start, budget),
		Binding{Name: haystackVar.Name, Value: haystack},
		Binding{Name: needleVar.Name, Value: needle},
		Binding{Name: replacementVar.Name, Value: replacement},
	)
}

func replaceFrom(haystack, needle, replacement Var, start Expression, budget int) Expression {
	if budget == 0 {
		return NewCall("slice", haystack, start)
	}

	matchStart := Var{Name: "matchStart" + strconv.Itoa(budget)}
	afterMatch := NewCall("+", matchStart, NewCall("length", needle))

	return NewLet(
		NewCall("case",
			NewCall("==", matchStart, Number(-1)),
			NewCall("slice", haystack, start),
			NewCall("concat",
				NewCall("slice", haystack, start, matchStart),
				replacement,
				replaceFrom(haystack, needle, replacement, afterMatch, budget-1),
			),
		),
		Binding{Name: matchStart.Name, Value: NewCall("index-of", needle, haystack, start)},
	)
}
