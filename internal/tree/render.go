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
package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Render renders the members of root at indent level 0. The root itself
// gets no header line.
func Render(root Node) string {
	var sb strings.Builder

	switch n := root.(type) {
	case Struct:
		renderEntries(&sb, n.Entries, 0)
	case List:
		renderItems(&sb, n.Items, 0)
	default:
		RenderNode(&sb, root, nil, 0)
	}
	return sb.String()
}

// RenderNode writes n, and recursively its children, as "- label: value"
// lines indented by indent levels of four spaces.
//
// Aggregates write a header line carrying only the label, followed by their
// children one level deeper. List items that are aggregates themselves are
// labeled with their index; scalar items are not labeled.
func RenderNode(w io.Writer, n Node, label *string, indent int) {
	prefix := strings.Repeat(indentUnit, indent)

	var lbl string
	if label != nil {
		lbl = *label + ":"
	}

	switch n := n.(type) {
	case Scalar:
		fmt.Fprintf(w, "%s- %s %s\n", prefix, lbl, n.Value)
	case Struct:
		fmt.Fprintf(w, "%s- %s\n", prefix, lbl)
		renderEntries(w, n.Entries, indent+1)
	case List:
		fmt.Fprintf(w, "%s- %s\n", prefix, lbl)
		renderItems(w, n.Items, indent+1)
	default:
		fmt.Fprintf(w, "%s- %s \n", prefix, lbl)
	}
}

func renderEntries(w io.Writer, entries []Entry, indent int) {
	for _, e := range entries {
		RenderNode(w, e.Node, e.Label, indent)
	}
}

func renderItems(w io.Writer, items []Node, indent int) {
	for i, item := range items {
		var label *string
		switch item.(type) {
		case Struct, List:
			label = Label(strconv.Itoa(i))
		}
		RenderNode(w, item, label, indent)
	}
}
