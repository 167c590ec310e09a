package label

import "encoding/json"

// Expression is a node in the declarative expression tree handed to the style
// engine. Trees are structurally immutable once handed off; the only sanctioned
// mutation is SubstituteVariable on a tree still under construction.
type Expression interface {
	json.Marshaler

	// Clone returns a structurally independent copy of the node.
	Clone() Expression
}

// Literal wraps a plain JSON value. Raw arrays and objects that must reach the
// engine as data rather than as operator syntax are wrapped in a "literal"
// call by the caller (see LiteralList).
type Literal struct {
	Value any
}

func (l Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Value)
}

func (l Literal) Clone() Expression {
	return Literal{Value: cloneValue(l.Value)}
}

// Var references a variable declared by an enclosing Let.
type Var struct {
	Name string
}

func (v Var) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{"var", v.Name})
}

func (v Var) Clone() Expression {
	return v
}

// Call applies an operator to ordered arguments. Operator name, arity and
// argument order follow the engine's vocabulary exactly; any deviation is a
// compatibility break, not a variant.
type Call struct {
	Op   string
	Args []Expression
}

func NewCall(op string, args ...Expression) *Call {
	return &Call{Op: op, Args: args}
}

func (c *Call) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(c.Args)+1)
	out = append(out, c.Op)
	for _, arg := range c.Args {
		out = append(out, arg)
	}
	return json.Marshal(out)
}

func (c *Call) Clone() Expression {
	out := &Call{Op: c.Op}
	if len(c.Args) > 0 {
		out.Args = make([]Expression, len(c.Args))
		for i, arg := range c.Args {
			out.Args[i] = arg.Clone()
		}
	}
	return out
}

// Binding names a value for reuse within the body of a Let.
type Binding struct {
	Name  string
	Value Expression
}

// Let declares ordered bindings scoped to a body expression. It serializes as
// ["let", name1, value1, ..., body].
type Let struct {
	Bindings []Binding
	Body     Expression
}

func NewLet(body Expression, bindings ...Binding) *Let {
	return &Let{Bindings: bindings, Body: body}
}

func (l *Let) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(l.Bindings)*2+2)
	out = append(out, "let")
	for _, b := range l.Bindings {
		out = append(out, b.Name, b.Value)
	}
	out = append(out, l.Body)
	return json.Marshal(out)
}

func (l *Let) Clone() Expression {
	out := &Let{Body: l.Body.Clone()}
	if len(l.Bindings) > 0 {
		out.Bindings = make([]Binding, len(l.Bindings))
		for i, b := range l.Bindings {
			out.Bindings[i] = Binding{Name: b.Name, Value: b.Value.Clone()}
		}
	}
	return out
}

// Get reads a feature property.
func Get(field string) *Call {
	return NewCall("get", Literal{Value: field})
}

// Coalesce returns the first non-null argument at evaluation time.
func Coalesce(args ...Expression) *Call {
	return NewCall("coalesce", args...)
}

// String wraps a literal string value.
func String(v string) Literal {
	return Literal{Value: v}
}

// Number wraps a literal numeric value.
func Number(v float64) Literal {
	return Literal{Value: v}
}

// LiteralList wraps raw values so the engine receives them as a data array
// rather than operator syntax.
func LiteralList(values ...any) *Call {
	return NewCall("literal", Literal{Value: values})
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
