package label

import "strings"

// CollatorOptions configures string comparison inside the engine. The zero
// value is case- and diacritic-insensitive with root collation.
type CollatorOptions struct {
	CaseSensitive      bool
	DiacriticSensitive bool
	Locale             Tag
}

// Expression renders the options as a collator call.
func (o CollatorOptions) Expression() Expression {
	return NewCall("collator", Literal{Value: map[string]any{
		"case-sensitive":      o.CaseSensitive,
		"diacritic-sensitive": o.DiacriticSensitive,
		"locale":              string(o.Locale),
	}})
}

// Directional isolates wrap the glossed name so embedded foreign-script text
// cannot visually merge with, or flip the direction of, the surrounding
// parentheses.
const (
	firstStrongIsolate    = "\u2068"
	popDirectionalIsolate = "\u2069"
)

// NameWithLocalGloss composes the localized name with the local-language
// spelling. Four strategies, evaluated in order, first match wins:
//
//  1. the spellings match exactly (ignoring case): the localized name alone,
//     delimiter-formatted for multi-valued fields;
//  2. the localized name starts with the local spelling at a word boundary:
//     the matched span is overwritten with the local spelling and the
//     trailing qualifier kept;
//  3. the symmetric check at the end of the string;
//  4. otherwise the local spelling follows in parentheses, wrapped in
//     directional isolates.
//
// Prefix and suffix matching folds diacritics so that e.g. a localized
// "Montreal" resolves to the local "Montréal". The fold is disabled when the
// chain's first tag begins with "en": English place names rarely carry
// diacritics except when naming foreign places, where the distinction
// matters.
//
// TODO: exact matching ignores case, which lets same-script collisions such
// as "St"/"st" take branch 1; decide whether branch 1 should be fully
// sensitive.
func NameWithLocalGloss(localized Expression, chain Chain, separator string) Expression {
	locale := chain.First()
	english := strings.HasPrefix(string(locale), "en")

	exactCollator := CollatorOptions{DiacriticSensitive: true, Locale: locale}
	spanCollator := CollatorOptions{DiacriticSensitive: english, Locale: locale}

	localizedName := Var{Name: "localizedName"}
	localName := Var{Name: "localName"}
	localLength := Var{Name: "localLength"}
	nameLength := Var{Name: "nameLength"}
	suffixStart := Var{Name: "suffixStart"}

	exact := NewCall("==", localizedName, localName, exactCollator.Expression())

	prefix := NewCall("all",
		NewCall("==",
			NewCall("slice", localizedName, Number(0), localLength),
			localName,
			spanCollator.Expression(),
		),
		// The character right after the matched span must be a boundary; the
		// trailing pad makes a match at the string end count as one.
		NewCall("in",
			NewCall("slice",
				NewCall("concat", localizedName, String(" ")),
				localLength,
				NewCall("+", localLength, Number(1)),
			),
			boundaryChars(),
		),
	)
	prefixResult := NewCall("concat", localName, NewCall("slice", localizedName, localLength))

	suffix := NewCall("all",
		NewCall("==",
			NewCall("slice", localizedName, suffixStart),
			localName,
			spanCollator.Expression(),
		),
		// Same check before the span; the leading pad shifts indices by one,
		// so the padded character at suffixStart is the one preceding the
		// span in the original string.
		NewCall("in",
			NewCall("slice",
				NewCall("concat", String(" "), localizedName),
				suffixStart,
				NewCall("+", suffixStart, Number(1)),
			),
			boundaryChars(),
		),
	)
	suffixResult := NewCall("concat",
		NewCall("slice", localizedName, Number(0), suffixStart),
		localName,
	)

	gloss := NewCall("format",
		localizedName, textStyle(),
		String(" ("+firstStrongIsolate), textStyle(),
		localName, textStyle(),
		String(popDirectionalIsolate+")"), textStyle(),
	)

	body := NewCall("case",
		exact, FormatDelimitedList(localizedName, separator),
		prefix, prefixResult,
		suffix, suffixResult,
		gloss,
	)

	// Bindings nest instead of sharing one let because sibling bindings do
	// not see each other in the engine's scoping rules.
	return NewLet(
		NewLet(
			NewLet(
				body,
				Binding{Name: suffixStart.Name, Value: NewCall("-", nameLength, localLength)},
			),
			Binding{Name: localLength.Name, Value: NewCall("length", localName)},
			Binding{Name: nameLength.Name, Value: NewCall("length", localizedName)},
		),
		Binding{Name: localizedName.Name, Value: localized},
		Binding{Name: localName.Name, Value: Get(DefaultNameField())},
	)
}

// boundaryChars lists the characters that may follow or precede an
// overwritten span. A fresh node per call site keeps trees free of shared
// children.
func boundaryChars() *Call {
	return LiteralList(" ", ",")
}

func textStyle() Literal {
	return Literal{Value: map[string]any{}}
}
