package ndn

import (
	"github.com/pkg/math"
	"go.uber.org/zap"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// Limits and defaults of DecoderConfig.MaxDepth.
const (
	MinMaxDepth     = 4
	MaxMaxDepth     = 1024
	DefaultMaxDepth = 32
)

// DecoderConfig contains decoder settings.
type DecoderConfig struct {
	// MaxDepth is the maximum number of nested containers, including the top-level element.
	// Deeper input fails with tlv.ErrNestingTooDeep.
	MaxDepth int `json:"maxDepth,omitempty"`
}

func (cfg *DecoderConfig) applyDefaults() {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	cfg.MaxDepth = math.MinInt(math.MaxInt(MinMaxDepth, cfg.MaxDepth), MaxMaxDepth)
}

// Decode detects the suite and decodes one packet that must occupy the whole input.
func (cfg DecoderConfig) Decode(wire []byte) (*Packet, error) {
	suite := DetectSuite(wire)
	if suite == an.SuiteUnknown {
		logger.Debug("suite not detected", zap.Int("size", len(wire)))
		return nil, tlv.ErrAt(0, ErrUnknownSuite)
	}
	return cfg.DecodeSuite(suite, wire)
}

// DecodeSuite decodes one packet of a known suite that must occupy the whole input.
func (cfg DecoderConfig) DecodeSuite(suite an.Suite, wire []byte) (*Packet, error) {
	pkt, rest, e := cfg.DecodeFirst(suite, wire)
	if e != nil {
		return nil, e
	}
	if len(rest) > 0 {
		e = tlv.ErrAt(len(wire)-len(rest), tlv.ErrTail)
		cfg.logError(suite, e)
		return nil, e
	}
	return pkt, nil
}

// DecodeFirst decodes the first packet of a known suite, and returns the rest of the input.
func (cfg DecoderConfig) DecodeFirst(suite an.Suite, wire []byte) (pkt *Packet, rest []byte, e error) {
	cfg.applyDefaults()
	table := grammar.ForSuite(suite)
	if table == nil {
		return nil, nil, tlv.ErrAt(0, ErrUnknownSuite)
	}

	pkt = newPacket(suite, wire)
	switch suite {
	case an.SuiteLegacyBinary:
		e = decodeCcnb(cfg, pkt)
	case an.SuiteContentTLV:
		e = decodeCcnx(cfg, pkt)
	case an.SuiteNamedDataTLV:
		e = decodeNdn(cfg, pkt)
	case an.SuiteLocalRPC:
		e = decodeRPC(cfg, pkt)
	}
	if e != nil {
		cfg.logError(suite, e)
		return nil, nil, e
	}
	return pkt, wire[pkt.Raw.End():], nil
}

func (cfg DecoderConfig) logError(suite an.Suite, e error) {
	logger.Debug("decode error",
		zap.Stringer("suite", suite),
		zap.Int("offset", tlv.OffsetOf(e)),
		zap.Error(e),
	)
}

// Decode detects the suite and decodes one packet with default settings.
func Decode(wire []byte) (*Packet, error) {
	return DecoderConfig{}.Decode(wire)
}

// DecodeSuite decodes one packet of a known suite with default settings.
func DecodeSuite(suite an.Suite, wire []byte) (*Packet, error) {
	return DecoderConfig{}.DecodeSuite(suite, wire)
}

// DecodeFirst decodes the first packet of a known suite with default settings.
func DecodeFirst(suite an.Suite, wire []byte) (pkt *Packet, rest []byte, e error) {
	return DecoderConfig{}.DecodeFirst(suite, wire)
}

// parseContext is the state of one recursion level.
type parseContext struct {
	ctx grammar.Context
	// pos and budget delimit the enclosing TLV-VALUE; children never read past pos+budget.
	pos    int
	budget int
	// depth is the nesting level of the children being parsed; children of the top-level element are at 1.
	depth        int
	inPacketName bool
}

// tlvEngine parses length-prefixed suites.
type tlvEngine struct {
	pkt       *Packet
	format    tlv.HeaderFormat
	table     *grammar.Table
	variables bool
	maxDepth  int
}

func newTLVEngine(cfg DecoderConfig, pkt *Packet, format tlv.HeaderFormat, variables bool) *tlvEngine {
	return &tlvEngine{
		pkt:       pkt,
		format:    format,
		table:     grammar.ForSuite(pkt.Suite),
		variables: variables,
		maxDepth:  cfg.MaxDepth,
	}
}

// header reads the header at pos without looking past end.
func (eng *tlvEngine) header(pos, end int) (h tlv.Header, e error) {
	if h, e = eng.format.DecodeHeader(eng.pkt.wire[:end], pos); e != nil {
		return h, tlv.ErrAt(pos, e)
	}
	if h.Length > uint64(end-pos-h.Size) {
		return h, tlv.ErrAt(pos, tlv.ErrLengthOverrun)
	}
	return h, nil
}

// parseChildren parses a sequence of sibling elements.
func (eng *tlvEngine) parseChildren(pc parseContext) (children []Node, e error) {
	end := pc.pos + pc.budget
	for pos := pc.pos; pos < end; {
		node, e := eng.parseElement(pc, pos, end)
		if e != nil {
			return nil, e
		}
		children = append(children, node)
		pos = node.Element.End()
	}
	return children, nil
}

// parseElement parses one element at pos, within the enclosing range ending at end.
func (eng *tlvEngine) parseElement(pc parseContext, pos, end int) (node Node, e error) {
	wire := eng.pkt.wire
	if eng.variables && an.RpcIsVariable(wire[pos]) {
		return Node{
			Kind:    NodeVariable,
			Type:    uint64(wire[pos]),
			Context: pc.ctx,
			Known:   true,
			Element: Span{pos, 1},
			Value:   Span{pos, 1},
		}, nil
	}

	h, e := eng.header(pos, end)
	if e != nil {
		return node, e
	}
	node = Node{
		Kind:    NodeElement,
		Type:    h.Type,
		Context: pc.ctx,
		Element: Span{pos, h.Size + int(h.Length)},
		Value:   Span{pos + h.Size, int(h.Length)},
	}

	rule, ok := eng.table.Lookup(pc.ctx, h.Type)
	if !ok && pc.inPacketName {
		// every child of the packet name is a component, whatever its type
		rule, ok = grammar.Rule{Field: grammar.FieldNameComponent}, true
	}
	if !ok {
		eng.pkt.Extensions = append(eng.pkt.Extensions, Extension{
			Context: pc.ctx,
			Type:    h.Type,
			Element: node.Element,
			Value:   node.Value,
		})
		return node, nil
	}
	node.Known, node.Field = true, rule.Field

	isPacketName := false
	switch rule.Field {
	case grammar.FieldNone:
	case grammar.FieldName:
		if pc.depth == 1 {
			_, seen := eng.pkt.opaques[grammar.FieldName]
			isPacketName = !seen
			eng.pkt.setOpaque(grammar.FieldName, FieldSpan{node.Element, node.Value})
		}
	case grammar.FieldNameComponent:
		if pc.inPacketName {
			eng.pkt.Name = append(eng.pkt.Name, NameComponent{Type: h.Type, Value: node.Value.Of(wire)})
		}
	default:
		if e = recordField(eng.pkt, rule, node); e != nil {
			return node, e
		}
	}

	if rule.Recurse() {
		depth := pc.depth + 1
		if depth > eng.maxDepth {
			return node, tlv.ErrAt(pos, tlv.ErrNestingTooDeep)
		}
		node.Children, e = eng.parseChildren(parseContext{
			ctx:          rule.Next,
			pos:          node.Value.Offset,
			budget:       node.Value.Length,
			depth:        depth,
			inPacketName: isPacketName,
		})
		if e != nil {
			return node, e
		}
	}
	return node, nil
}

// recordField records the span of a field and, for scalar leaves, its integer value.
// Only the first occurrence of each field is recorded.
func recordField(pkt *Packet, rule grammar.Rule, node Node) error {
	if _, seen := pkt.opaques[rule.Field]; seen {
		return nil
	}
	pkt.opaques[rule.Field] = FieldSpan{node.Element, node.Value}
	if rule.Recurse() || !rule.Value.IsScalar() {
		return nil
	}
	v, e := rule.Value.Convert(node.Value.Of(pkt.wire))
	if e != nil {
		return tlv.ErrAt(node.Value.Offset, e)
	}
	pkt.setScalar(rule.Field, v)
	return nil
}

// parseTop parses the top-level element at the start of the input.
func (eng *tlvEngine) parseTop() (root Node, e error) {
	wire := eng.pkt.wire
	return eng.parseElement(parseContext{ctx: eng.table.Top(), budget: len(wire)}, 0, len(wire))
}

func decodeNdn(cfg DecoderConfig, pkt *Packet) error {
	wire := pkt.wire
	h, e := tlv.DecodeHeader(wire, 0)
	if e != nil {
		return tlv.ErrAt(0, e)
	}
	switch h.Type {
	case an.TtInterest:
		pkt.Type = PktInterest
	case an.TtData:
		pkt.Type = PktData
	case an.TtFragment:
		pkt.Type = PktFragment
	default:
		return tlv.ErrAt(0, ErrPacketType)
	}

	eng := newTLVEngine(cfg, pkt, tlv.VarNumHeader, false)
	if pkt.Root, e = eng.parseTop(); e != nil {
		return e
	}
	pkt.Raw = pkt.Root.Element
	return nil
}
