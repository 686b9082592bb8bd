package search

import (
	"fmt"
	"strings"
	"time"
)

// Getter returns the value of a field for the record under evaluation. ok is
// false when the record has no value for the field (a NULL column). Array
// fields must be returned as []string.
type Getter func(Field) (v any, ok bool)

// Eval evaluates p against a record. Comparisons against a missing value are
// false, matching SQL NULL semantics.
func Eval(p Predicate, get Getter) bool {
	switch n := p.(type) {
	case And:
		for _, c := range n {
			if !Eval(c, get) {
				return false
			}
		}
		return true
	case Or:
		for _, c := range n {
			if Eval(c, get) {
				return true
			}
		}
		return false
	case Cond:
		v, ok := get(n.Field)
		if !ok {
			return false
		}
		return evalCond(n, normalize(v))
	default:
		return false
	}
}

func evalCond(c Cond, v any) bool {
	if v == nil {
		return false
	}
	switch c.Op {
	case OpEq:
		return equal(v, normalize(c.Value))
	case OpIn:
		set, _ := c.Value.([]any)
		for _, want := range set {
			if equal(v, normalize(want)) {
				return true
			}
		}
		return false
	case OpContainsFold:
		s, ok := v.(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(fmt.Sprint(c.Value)))
	case OpHas:
		list, ok := v.([]string)
		if !ok {
			return false
		}
		want := fmt.Sprint(c.Value)
		for _, item := range list {
			if item == want {
				return true
			}
		}
		return false
	case OpGte:
		cmp, ok := compare(v, normalize(c.Value))
		return ok && cmp >= 0
	case OpLte:
		cmp, ok := compare(v, normalize(c.Value))
		return ok && cmp <= 0
	default:
		return false
	}
}

// normalize collapses the representations a field may arrive in so that
// equal and compare only deal with a handful of types.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case []string:
		return x
	case time.Time:
		return x
	case string, int64, bool:
		return x
	case fmt.Stringer:
		s := x.String()
		if s == "" {
			return nil
		}
		return s
	default:
		return v
	}
}

func equal(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	if _, ok := a.([]string); ok {
		return false
	}
	if _, ok := b.([]string); ok {
		return false
	}
	return a == b
}

func compare(a, b any) (int, bool) {
	switch x := a.(type) {
	case int64:
		y, ok := b.(int64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	}
	return 0, false
}
