package label

import (
	"strconv"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The tests interpret compiled trees with a small reference evaluator so the
// semantic contracts hold end to end. The evaluator covers exactly the
// operator vocabulary the compiler emits; anything else is a test failure,
// which doubles as a guard against vocabulary drift.

type evalScope struct {
	parent *evalScope
	vars   map[string]any
}

func (s *evalScope) lookup(name string) (any, bool) {
	for ; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

type evaluator struct {
	t       *testing.T
	feature map[string]any
}

func evalExpr(t *testing.T, e Expression, feature map[string]any) any {
	t.Helper()
	ev := &evaluator{t: t, feature: feature}
	return ev.eval(e, nil)
}

func evalString(t *testing.T, e Expression, feature map[string]any) string {
	t.Helper()
	v := evalExpr(t, e, feature)
	s, ok := v.(string)
	if !ok {
		t.Fatalf("expected string result, got %T (%v)", v, v)
	}
	return s
}

func (ev *evaluator) eval(e Expression, scope *evalScope) any {
	switch e := e.(type) {
	case Literal:
		return e.Value
	case Var:
		v, ok := scope.lookup(e.Name)
		if !ok {
			ev.t.Fatalf("unbound variable %q", e.Name)
		}
		return v
	case *Let:
		child := &evalScope{parent: scope, vars: make(map[string]any, len(e.Bindings))}
		for _, b := range e.Bindings {
			// Sibling bindings resolve in the enclosing scope, matching the
			// engine; the compiler nests lets when one value needs another.
			child.vars[b.Name] = ev.eval(b.Value, scope)
		}
		return ev.eval(e.Body, child)
	case *Call:
		return ev.call(e, scope)
	default:
		ev.t.Fatalf("unknown expression node %T", e)
		return nil
	}
}

func (ev *evaluator) call(c *Call, scope *evalScope) any {
	arg := func(i int) any { return ev.eval(c.Args[i], scope) }

	switch c.Op {
	case "get":
		name := ev.stringValue(arg(0))
		value, ok := ev.feature[name]
		if !ok {
			return nil
		}
		return value

	case "literal":
		return arg(0)

	case "coalesce":
		for i := range c.Args {
			if v := arg(i); v != nil {
				return v
			}
		}
		return nil

	case "case":
		i := 0
		for ; i+1 < len(c.Args); i += 2 {
			if ev.boolValue(arg(i)) {
				return arg(i + 1)
			}
		}
		return arg(i)

	case "==":
		a, b := arg(0), arg(1)
		if len(c.Args) == 3 {
			opts, ok := arg(2).(map[string]any)
			if !ok {
				ev.t.Fatalf("third argument of == must be a collator")
			}
			return ev.collatedEqual(ev.stringValue(a), ev.stringValue(b), opts)
		}
		return equalValues(a, b)

	case "all":
		for i := range c.Args {
			if !ev.boolValue(arg(i)) {
				return false
			}
		}
		return true

	case "in":
		needle := arg(0)
		switch haystack := arg(1).(type) {
		case []any:
			for _, item := range haystack {
				if equalValues(item, needle) {
					return true
				}
			}
			return false
		case string:
			return indexOfRunes(haystack, ev.stringValue(needle), 0) >= 0
		default:
			ev.t.Fatalf("in: unsupported haystack %T", haystack)
			return false
		}

	case "slice":
		runes := []rune(ev.stringValue(arg(0)))
		start := clampIndex(ev.intValue(arg(1)), len(runes))
		end := len(runes)
		if len(c.Args) == 3 {
			end = clampIndex(ev.intValue(arg(2)), len(runes))
		}
		if end < start {
			end = start
		}
		return string(runes[start:end])

	case "index-of":
		needle := ev.stringValue(arg(0))
		haystack := ev.stringValue(arg(1))
		start := 0
		if len(c.Args) == 3 {
			start = ev.intValue(arg(2))
		}
		return float64(indexOfRunes(haystack, needle, start))

	case "concat":
		var out string
		for i := range c.Args {
			out += ev.stringValue(arg(i))
		}
		return out

	case "length":
		switch v := arg(0).(type) {
		case string:
			return float64(len([]rune(v)))
		case []any:
			return float64(len(v))
		default:
			ev.t.Fatalf("length: unsupported value %T", v)
			return nil
		}

	case "format":
		// Style-override objects carry no text of their own.
		var out string
		for i := range c.Args {
			if v := arg(i); v != nil {
				if _, isStyle := v.(map[string]any); !isStyle {
					out += ev.stringValue(v)
				}
			}
		}
		return out

	case "collator":
		opts, ok := arg(0).(map[string]any)
		if !ok {
			ev.t.Fatalf("collator: options must be an object")
		}
		return opts

	case "+":
		var sum float64
		for i := range c.Args {
			sum += ev.numberValue(arg(i))
		}
		return sum

	case "-":
		return ev.numberValue(arg(0)) - ev.numberValue(arg(1))

	default:
		ev.t.Fatalf("operator %q is outside the compiler's vocabulary", c.Op)
		return nil
	}
}

func (ev *evaluator) collatedEqual(a, b string, opts map[string]any) bool {
	var copts []collate.Option
	if sensitive, _ := opts["case-sensitive"].(bool); !sensitive {
		copts = append(copts, collate.IgnoreCase)
	}
	if sensitive, _ := opts["diacritic-sensitive"].(bool); !sensitive {
		copts = append(copts, collate.IgnoreDiacritics)
	}
	locale, _ := opts["locale"].(string)
	return collate.New(language.Make(locale), copts...).CompareString(a, b) == 0
}

func (ev *evaluator) stringValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		ev.t.Fatalf("cannot render %T as string", v)
		return ""
	}
}

func (ev *evaluator) boolValue(v any) bool {
	b, ok := v.(bool)
	if !ok {
		ev.t.Fatalf("expected boolean, got %T", v)
	}
	return b
}

func (ev *evaluator) numberValue(v any) float64 {
	n, ok := toNumber(v)
	if !ok {
		ev.t.Fatalf("expected number, got %T", v)
	}
	return n
}

func (ev *evaluator) intValue(v any) int {
	return int(ev.numberValue(v))
}

func toNumber(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func equalValues(a, b any) bool {
	if an, ok := toNumber(a); ok {
		if bn, ok := toNumber(b); ok {
			return an == bn
		}
	}
	return a == b
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func indexOfRunes(haystack, needle string, start int) int {
	hr := []rune(haystack)
	nr := []rune(needle)
	if start < 0 {
		start = 0
	}
	for i := start; i+len(nr) <= len(hr); i++ {
		if string(hr[i:i+len(nr)]) == needle {
			return i
		}
	}
	return -1
}
