package attempt

import "fmt"

// Locator identifies a split within a SplitSet, either by its position or by
// its short name. This is the small tagged-enum replacement for the
// original source's trait-object "locator" abstraction (see spec §9): a
// Locator is a value, not an interface, and SplitSet.Resolve turns it into a
// concrete index.
type Locator struct {
	byShort bool
	index   int
	short   ShortName
}

// ByIndex builds a Locator that addresses a split by its position.
func ByIndex(i int) Locator { return Locator{index: i} }

// ByShortName builds a Locator that addresses a split by its short name.
func ByShortName(s ShortName) Locator { return Locator{byShort: true, short: s} }

// SplitSet is an ordered sequence of Splits with an index cache keyed by
// short name, kept consistent with the sequence at every observable point
// (spec §3's SplitSet invariant).
type SplitSet struct {
	splits []*Split
	byName map[ShortName]int
}

// NewSplitSet builds a SplitSet from an ordered list of definitions.
func NewSplitSet(defs []Definition) *SplitSet {
	ss := &SplitSet{
		splits: make([]*Split, len(defs)),
		byName: make(map[ShortName]int, len(defs)),
	}
	for i, def := range defs {
		ss.splits[i] = NewSplit(def)
		ss.byName[def.Short] = i
	}
	return ss
}

// Len returns the number of splits.
func (ss *SplitSet) Len() int { return len(ss.splits) }

// All returns the splits in order. Callers must not mutate the slice itself
// (mutating individual *Split values is the supported path, via Resolve).
func (ss *SplitSet) All() []*Split { return ss.splits }

// Resolve turns a Locator into the addressed *Split and its index, or
// ok=false if the locator names nothing in this set.
func (ss *SplitSet) Resolve(loc Locator) (idx int, split *Split, ok bool) {
	if loc.byShort {
		i, found := ss.byName[loc.short]
		if !found {
			return 0, nil, false
		}
		return i, ss.splits[i], true
	}
	if loc.index < 0 || loc.index >= len(ss.splits) {
		return 0, nil, false
	}
	return loc.index, ss.splits[loc.index], true
}

// IndexOf returns the index of the split with the given short name.
func (ss *SplitSet) IndexOf(short ShortName) (int, bool) {
	i, ok := ss.byName[short]
	return i, ok
}

// ShortAt returns the short name of the split at index i.
func (ss *SplitSet) ShortAt(i int) (ShortName, error) {
	if i < 0 || i >= len(ss.splits) {
		return ShortName{}, fmt.Errorf("attempt: split index %d out of range", i)
	}
	return ss.splits[i].Def.Short, nil
}

// Clear resets every split in the set (used by Attempt.Reset).
func (ss *SplitSet) Clear() {
	for _, s := range ss.splits {
		s.Clear()
	}
}
