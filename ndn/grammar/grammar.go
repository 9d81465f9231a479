// Package grammar contains the grammar tables that drive the decoder.
//
// A table maps (context, type) to a Rule: whether the element recurses, and which field it carries.
// Tables are built during package initialization and are read-only afterwards,
// so that concurrent lookups need no synchronization.
package grammar

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// Context is a suite-local parsing context.
type Context uint64

// Leaf is the Next value of a rule that does not recurse.
const Leaf Context = 0

// Rule describes how to treat an element.
type Rule struct {
	// Next is the context for children, or Leaf.
	Next Context
	// Field is the meaning of the element.
	Field Field
	// Value is the interpretation of TLV-VALUE, meaningful only for leaves.
	Value ValueKind
}

// Recurse determines whether children should be parsed.
func (r Rule) Recurse() bool {
	return r.Next != Leaf
}

type ruleKey struct {
	ctx Context
	typ uint64
}

// Table is a grammar table of one suite.
type Table struct {
	suite  an.Suite
	flat   bool
	top    Context
	rules  map[ruleKey]Rule
	global map[uint64]Rule
}

func newTable(suite an.Suite, flat bool, top Context) *Table {
	return &Table{
		suite:  suite,
		flat:   flat,
		top:    top,
		rules:  map[ruleKey]Rule{},
		global: map[uint64]Rule{},
	}
}

func (t *Table) add(ctx Context, typ uint64, rule Rule) {
	if t.flat {
		ctx = Leaf
	}
	t.rules[ruleKey{ctx, typ}] = rule
}

func (t *Table) addGlobal(typ uint64, rule Rule) {
	t.global[typ] = rule
}

// Suite returns the wire suite of this table.
func (t *Table) Suite() an.Suite {
	return t.suite
}

// Flat determines whether rules depend only on type.
func (t *Table) Flat() bool {
	return t.flat
}

// Top returns the context of top-level elements.
func (t *Table) Top() Context {
	return t.top
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules) + len(t.global)
}

// Lookup finds the rule of an element.
// ok=false means the pair is unregistered; the element should be skipped as an opaque leaf.
func (t *Table) Lookup(ctx Context, typ uint64) (rule Rule, ok bool) {
	if t.flat {
		ctx = Leaf
	}
	if rule, ok = t.rules[ruleKey{ctx, typ}]; ok {
		return rule, true
	}
	rule, ok = t.global[typ]
	return rule, ok
}

// ForSuite returns the table of a suite, or nil if unknown.
func ForSuite(suite an.Suite) *Table {
	switch suite {
	case an.SuiteLegacyBinary:
		return CCNB
	case an.SuiteContentTLV:
		return CCNx
	case an.SuiteNamedDataTLV:
		return NDN
	case an.SuiteLocalRPC:
		return RPC
	}
	return nil
}
