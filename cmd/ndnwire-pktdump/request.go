package main

import (
	"encoding/hex"
	"errors"

	"github.com/usnistgov/ndnwire/core/nnduration"
	"github.com/usnistgov/ndnwire/ndn"
)

// hexBytes is a byte slice written as hexadecimal in JSON.
type hexBytes []byte

func (b *hexBytes) UnmarshalText(text []byte) (e error) {
	*b, e = hex.DecodeString(string(text))
	return e
}

type interestRequest struct {
	Name                ndn.Name                `json:"name"`
	MustBeFresh         bool                    `json:"mustBeFresh"`
	ChildSelector       uint64                  `json:"childSelector"`
	MinSuffixComponents uint64                  `json:"minSuffixComponents"`
	MaxSuffixComponents uint64                  `json:"maxSuffixComponents"`
	Nonce               uint32                  `json:"nonce"`
	Lifetime            nnduration.Milliseconds `json:"lifetime"`
	Scope               *ndn.Scope              `json:"scope"`
}

func (req interestRequest) Encodable() ndn.Encodable {
	return ndn.Interest{
		Name:                req.Name,
		MustBeFresh:         req.MustBeFresh,
		ChildSelector:       req.ChildSelector,
		MinSuffixComponents: req.MinSuffixComponents,
		MaxSuffixComponents: req.MaxSuffixComponents,
		Nonce:               ndn.NonceFromUint(req.Nonce),
		Lifetime:            req.Lifetime.Duration(),
		Scope:               req.Scope,
	}
}

type dataRequest struct {
	Name        ndn.Name                `json:"name"`
	ContentType ndn.ContentType         `json:"contentType"`
	Freshness   nnduration.Milliseconds `json:"freshness"`
	FinalBlock  *uint64                 `json:"finalBlock"`
	Content     hexBytes                `json:"content"`
	SigType     *ndn.SigType            `json:"sigType"`
	KeyLocator  ndn.Name                `json:"keyLocator"`
	SigValue    hexBytes                `json:"sigValue"`
}

func (req dataRequest) Encodable() ndn.Encodable {
	data := ndn.MakeData(req.Name, req.ContentType, req.Freshness.Duration(), []byte(req.Content))
	data.FinalBlockID = req.FinalBlock
	if req.SigType != nil {
		data.SigType = *req.SigType
	}
	data.KeyLocator = req.KeyLocator
	data.SigValue = req.SigValue
	return data
}

type fragmentRequest struct {
	Sequence uint64   `json:"seq"`
	Begin    bool     `json:"begin"`
	End      bool     `json:"end"`
	Payload  hexBytes `json:"payload"`
}

func (req fragmentRequest) Encodable() ndn.Encodable {
	return ndn.LpFragment{
		Sequence: req.Sequence,
		Begin:    req.Begin,
		End:      req.End,
		Payload:  req.Payload,
	}
}

// request is the JSON input of the encode command.
// Exactly one of its fields should be set.
type request struct {
	Interest *interestRequest `json:"interest"`
	Data     *dataRequest     `json:"data"`
	Fragment *fragmentRequest `json:"fragment"`
}

var errRequest = errors.New("request must contain one of interest, data, fragment")

func (req request) Encodable() (ndn.Encodable, error) {
	switch {
	case req.Interest != nil && req.Data == nil && req.Fragment == nil:
		return req.Interest.Encodable(), nil
	case req.Interest == nil && req.Data != nil && req.Fragment == nil:
		return req.Data.Encodable(), nil
	case req.Interest == nil && req.Data == nil && req.Fragment != nil:
		return req.Fragment.Encodable(), nil
	}
	return nil, errRequest
}
