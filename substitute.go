package label

// SubstituteVariable overwrites the value of an existing binding slot inside a
// lexical-binding node. The operation is strictly update-only: a node that is
// not a Let, or a name with no pre-declared slot, leaves the tree untouched.
// Templates must therefore declare every variable they expect to be rewritten.
// The return value reports whether a slot was actually updated.
//
// The rewrite happens in place and is only legal on a tree still under
// construction, never on one already handed to the engine.
func SubstituteVariable(node Expression, name string, value Expression) bool {
	binding, ok := node.(*Let)
	if !ok {
		return false
	}
	for i := range binding.Bindings {
		if binding.Bindings[i].Name == name {
			binding.Bindings[i].Value = value
			return true
		}
	}
	return false
}
