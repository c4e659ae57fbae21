// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package tree models decoded parameter data as a tree of labeled nodes and
// renders it as an indented text outline.
package tree

import (
	"math"
	"strconv"
)

type Kind int

const (
	U8 Kind = iota
	U16
	U32
	I8
	I16
	I32
	Float
	Bool
	Hash
	String
)

var kindNames = [...]string{
	U8:     "u8",
	U16:    "u16",
	U32:    "u32",
	I8:     "i8",
	I16:    "i16",
	I32:    "i32",
	Float:  "float",
	Bool:   "bool",
	Hash:   "hash40",
	String: "str",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is one of Scalar, Struct or List.
type Node interface {
	node()
}

// Scalar is a leaf value, already converted to its display form.
type Scalar struct {
	Kind  Kind
	Value string
}

// Entry is a Struct member. A nil Label renders as an unlabeled line.
type Entry struct {
	Label *string
	Node  Node
}

// Struct keeps its entries in decoded order.
type Struct struct {
	Entries []Entry
}

// List is a positionally indexed sequence.
type List struct {
	Items []Node
}

func (Scalar) node() {}
func (Struct) node() {}
func (List) node()   {}

func Label(s string) *string {
	return &s
}

func Field(label string, n Node) Entry {
	return Entry{Label: Label(label), Node: n}
}

func U8Value(v uint8) Scalar   { return Scalar{Kind: U8, Value: strconv.FormatUint(uint64(v), 10)} }
func U16Value(v uint16) Scalar { return Scalar{Kind: U16, Value: strconv.FormatUint(uint64(v), 10)} }
func U32Value(v uint32) Scalar { return Scalar{Kind: U32, Value: strconv.FormatUint(uint64(v), 10)} }
func I8Value(v int8) Scalar    { return Scalar{Kind: I8, Value: strconv.FormatInt(int64(v), 10)} }
func I16Value(v int16) Scalar  { return Scalar{Kind: I16, Value: strconv.FormatInt(int64(v), 10)} }
func I32Value(v int32) Scalar  { return Scalar{Kind: I32, Value: strconv.FormatInt(int64(v), 10)} }
func BoolValue(v bool) Scalar  { return Scalar{Kind: Bool, Value: strconv.FormatBool(v)} }
func StringValue(v string) Scalar {
	return Scalar{Kind: String, Value: v}
}

// HashValue wraps an already formatted hash (label or fixed-width hex).
func HashValue(text string) Scalar {
	return Scalar{Kind: Hash, Value: text}
}

func FloatValue(v float32) Scalar {
	return Scalar{Kind: Float, Value: FormatFloat(v)}
}

// FormatFloat prints the shortest decimal form of v, without exponent.
func FormatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}
