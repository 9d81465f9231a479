package grammar

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// RPC is the local RPC grammar.
// It is flat. Application, Lambda, and Sequence are containers.
var RPC = func() (t *Table) {
	t = newTable(an.SuiteLocalRPC, true, Leaf)
	t.add(Leaf, an.RpcTtApplication, Rule{Next: Context(an.RpcTtApplication)})
	t.add(Leaf, an.RpcTtLambda, Rule{Next: Context(an.RpcTtLambda)})
	t.add(Leaf, an.RpcTtSequence, Rule{Next: Context(an.RpcTtSequence)})
	t.add(Leaf, an.RpcTtInteger, Rule{Value: NNI})
	t.add(Leaf, an.RpcTtASCII, Rule{})
	t.add(Leaf, an.RpcTtBinary, Rule{})
	return t
}()
