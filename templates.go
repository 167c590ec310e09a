package label

// Template binding slots overwritten on every locale change. Substitution
// never inserts, so a template must declare both before it is handed to
// Localizer.ApplyToTemplate.
const (
	LocalizedNameSlot     = "localizedName"
	LocalizedCollatorSlot = "localizedCollator"
)

// LabelTemplate returns a generic symbol-layer text template with the
// localization slots pre-declared. The initial slot values are the safe
// defaults for an unresolved locale: the local-language name field and root
// collation.
func LabelTemplate() *Let {
	return NewLet(
		NewCall("format", Var{Name: LocalizedNameSlot}, textStyle()),
		Binding{Name: LocalizedNameSlot, Value: Get(DefaultNameField())},
		Binding{Name: LocalizedCollatorSlot, Value: CollatorOptions{DiacriticSensitive: true}.Expression()},
	)
}
