package attempt

import "sync"

// ShortName is an interned string identifier used process-wide to key
// splits, segments, games and categories. Equality is cheap (pointer/string
// compare); String returns the stable display/serialisation form.
//
// original_source/src/model/short.rs wraps an Rc<str> behind a newtype; Go
// has no implicit refcounted-string sharing, so this intern pool is a plain
// sync.Map from text to the canonical *string, and ShortName itself just
// holds that canonical pointer. Two ShortNames built from equal text always
// compare == after interning.
type ShortName struct {
	p *string
}

var internPool sync.Map // string -> *string

// Intern returns the ShortName for s, creating and caching the canonical
// string the first time s is seen.
func Intern(s string) ShortName {
	if v, ok := internPool.Load(s); ok {
		return ShortName{p: v.(*string)}
	}
	canon := s
	actual, _ := internPool.LoadOrStore(s, &canon)
	return ShortName{p: actual.(*string)}
}

// String returns the short name's text. The zero ShortName renders as "".
func (s ShortName) String() string {
	if s.p == nil {
		return ""
	}
	return *s.p
}

// IsZero reports whether s is the zero ShortName (never produced by Intern).
func (s ShortName) IsZero() bool { return s.p == nil }

// Equal reports whether two ShortNames name the same interned string.
func (s ShortName) Equal(o ShortName) bool { return s.p == o.p }
