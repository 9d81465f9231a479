package ndn

import (
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/ccnb"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

var ccnbPacketTypes = map[uint64]PacketType{
	an.CcnbInterest:         PktInterest,
	an.CcnbContentObject:    PktObject,
	an.CcnbProtocolDataUnit: PktFragment,
}

var ccnbLeafKinds = map[ccnb.TokenKind]NodeKind{
	ccnb.KindBlob:      NodeBlob,
	ccnb.KindUData:     NodeText,
	ccnb.KindAttribute: NodeAttribute,
}

// ccnbEngine builds the element tree from the token stream of ccnb.Reader.
// Every DTAG is a container; nesting is enforced by the reader.
type ccnbEngine struct {
	pkt   *Packet
	r     *ccnb.Reader
	table *grammar.Table
}

func decodeCcnb(cfg DecoderConfig, pkt *Packet) error {
	eng := &ccnbEngine{
		pkt:   pkt,
		r:     ccnb.NewReader(pkt.wire, cfg.MaxDepth),
		table: grammar.CCNB,
	}

	tok, e := eng.r.Next()
	if e != nil {
		return tlv.ErrAt(0, e)
	}
	var ok bool
	if tok.Kind != ccnb.KindOpen || tok.Type != ccnb.TtDTag {
		return tlv.ErrAt(0, ErrPacketType)
	}
	if pkt.Type, ok = ccnbPacketTypes[tok.Num]; !ok {
		return tlv.ErrAt(0, ErrPacketType)
	}

	if pkt.Root, e = eng.parseContainer(tok, eng.table.Top(), false); e != nil {
		return e
	}
	pkt.Raw = pkt.Root.Element
	return nil
}

// parseContainer consumes tokens until the container opened by open is closed.
func (eng *ccnbEngine) parseContainer(open ccnb.Token, ctx grammar.Context, inPacketName bool) (node Node, e error) {
	node = Node{
		Kind:    NodeElement,
		Type:    open.Num,
		Context: ctx,
	}
	var rule grammar.Rule
	if open.Type == ccnb.TtDTag {
		rule, node.Known = eng.table.Lookup(ctx, open.Num)
	}
	node.Field = rule.Field

	isPacketName := false
	if node.Known && rule.Field == grammar.FieldName && open.Depth == 1 {
		_, seen := eng.pkt.opaques[grammar.FieldName]
		isPacketName = !seen
	}

	childCtx := grammar.Context(open.Num)
	leaf := -1
	for {
		tok, e := eng.r.Next()
		if e != nil {
			return node, e
		}

		var child Node
		switch tok.Kind {
		case ccnb.KindOpen:
			if child, e = eng.parseContainer(tok, childCtx, isPacketName); e != nil {
				return node, e
			}
		case ccnb.KindClose:
			node.Element = Span{tok.Offset, tok.End - tok.Offset}
			node.Value = Span{tok.ValueOffset, len(tok.Value)}
			value := node.Value
			if leaf >= 0 {
				value = node.Children[leaf].Value
			}
			return node, eng.finish(node, rule, value, leaf >= 0, isPacketName, inPacketName)
		default:
			child = Node{
				Kind:    ccnbLeafKinds[tok.Kind],
				Type:    tok.Num,
				Context: childCtx,
				Known:   node.Known,
				Element: Span{tok.Offset, tok.End - tok.Offset},
				Value:   Span{tok.ValueOffset, len(tok.Value)},
			}
			if leaf < 0 && tok.Kind != ccnb.KindAttribute {
				leaf = len(node.Children)
			}
		}
		node.Children = append(node.Children, child)
	}
}

// finish records the field carried by a closed container.
// value is the first BLOB or UDATA child if hasLeaf, otherwise the whole content.
func (eng *ccnbEngine) finish(node Node, rule grammar.Rule, value Span, hasLeaf, isPacketName, inPacketName bool) error {
	if !node.Known {
		eng.pkt.Extensions = append(eng.pkt.Extensions, Extension{
			Context: node.Context,
			Type:    node.Type,
			Element: node.Element,
			Value:   node.Value,
		})
		return nil
	}

	switch rule.Field {
	case grammar.FieldNone:
		return nil
	case grammar.FieldName:
		if isPacketName {
			eng.pkt.setOpaque(grammar.FieldName, FieldSpan{node.Element, node.Value})
		}
		return nil
	case grammar.FieldNameComponent:
		if inPacketName {
			eng.pkt.Name = append(eng.pkt.Name, NameComponent{Type: an.CcnbComponent, Value: value.Of(eng.pkt.wire)})
		}
		return nil
	}

	if rule.Value.IsScalar() && rule.Value != grammar.Flag && !hasLeaf {
		return tlv.ErrAt(node.Element.Offset, tlv.ErrMalformedValue)
	}
	return recordField(eng.pkt, grammar.Rule{Field: rule.Field, Value: rule.Value}, Node{Element: node.Element, Value: value})
}
