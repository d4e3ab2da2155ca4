package tree

import (
	"fmt"

	"github.com/gopeg/pcomb"
	"github.com/gopeg/pcomb/lexer"
)

type Node interface {
	IsNonTerm () bool
	TypeName () string
	Token () *lexer.Token
	Parent () NonTermNode
	Prev () Node
	Next () Node
	SetParent (NonTermNode)
	SetPrev (Node)
	SetNext (Node)
	Pos () lexer.SourcePos
}

type NonTermNode interface {
	Node
	FirstChild () Node
	LastChild () Node
	SetFirstChild (Node)
	AppendChild (Node)
}


func NodeLevel (n Node) (l int) {
	if n == nil {
		return
	}

	p := n.Parent()
	for p != nil {
		l++
		p = p.Parent()
	}
	return
}

func SiblingIndex (n Node) (i int) {
	if n == nil {
		return
	}

	p := n.Prev()
	for p != nil {
		i++
		p = p.Prev()
	}
	return
}

func NthChild (n Node, i int) Node {
	if n == nil || !n.IsNonTerm() {
		return nil
	}

	nn := n.(NonTermNode)
	var c Node
	if i >= 0 {
		c = nn.FirstChild()
		for c != nil && i > 0 {
			c = c.Next()
			i--
		}
	} else {
		i++
		c = nn.LastChild()
		for c != nil && i < 0 {
			c = c.Prev()
			i++
		}
	}

	return c
}

const AllLevels = -1

func NumOfChildren (parent Node, levels int) int {
	if parent == nil || !parent.IsNonTerm() {
		return 0
	}

	c := parent.(NonTermNode).FirstChild()
	i := 0
	for c != nil {
		i++
		if levels != 0 {
			i += NumOfChildren(c, levels - 1)
		}
		c = c.Next()
	}
	return i
}

func FirstTokenNode (n Node) Node {
	if n == nil || !n.IsNonTerm() {
		return n
	}

	n = n.(NonTermNode).FirstChild()
	for n != nil && n.IsNonTerm() {
		nn := FirstTokenNode(n)
		if nn != nil {
			return nn
		}

		n = n.Next()
	}

	return n
}

func LastTokenNode (n Node) Node {
	if n == nil || !n.IsNonTerm() {
		return n
	}

	n = n.(NonTermNode).LastChild()
	for n != nil && n.IsNonTerm() {
		nn := LastTokenNode(n)
		if nn != nil {
			return nn
		}

		n = n.Prev()
	}

	return n
}

func Children (n Node) []Node {
	if n == nil || !n.IsNonTerm() {
		return nil
	}

	res := make([]Node, 0)
	c := n.(NonTermNode).FirstChild()
	for c != nil {
		res = append(res, c)
		c = c.Next()
	}
	return res
}


type NodeVisitor func (n Node) (walkChildren, walkSiblings bool)

type WalkMode int
const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

func Walk (n Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor, (mode & WalkRtl) != 0)
	}
}

func visitNode (n Node, v NodeVisitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	if vc && n.IsNonTerm() {
		if rtl {
			n = n.(NonTermNode).LastChild()
			for n != nil && vc {
				vc = visitNode(n, v, true)
				n = n.Prev()
			}
		} else {
			n = n.(NonTermNode).FirstChild()
			for n != nil && vc {
				vc = visitNode(n, v, false)
				n = n.Next()
			}
		}
	}

	return vs
}


type NodeFilter func (n Node) bool

// IsA reports whether a node's TypeName matches one of names — for a leaf
// this is the token's registered type name.
func IsA (names ... string) NodeFilter {
	return func (n Node) bool {
		tn := n.TypeName()
		for _, name := range names {
			if tn == name {
				return true
			}
		}

		return false
	}
}


type tokenNode struct {
	parent     NonTermNode
	prev, next Node
	token      *lexer.Token
}

func NewTokenNode (t *lexer.Token) Node {
	return &tokenNode{token: t}
}

func (tn *tokenNode) IsNonTerm () bool {
	return false
}

func (tn *tokenNode) TypeName () string {
	return tn.token.TypeName()
}

func (tn *tokenNode) Parent () NonTermNode {
	return tn.parent
}

func (tn *tokenNode) Prev () Node {
	return tn.prev
}

func (tn *tokenNode) Next () Node {
	return tn.next
}

func (tn *tokenNode) Pos () lexer.SourcePos {
	return tn.token
}

func (tn *tokenNode) Token () *lexer.Token {
	return tn.token
}

func (tn *tokenNode) SetParent (p NonTermNode) {
	tn.parent = p
}

func (tn *tokenNode) SetPrev (p Node) {
	tn.prev = p
}

func (tn *tokenNode) SetNext (n Node) {
	tn.next = n
}

type nonTermNode struct {
	typeName              string
	token                 *lexer.Token
	parent                NonTermNode
	prev, next            Node
	firstChild, lastChild Node
}

func NewNonTermNode (typeName string, tok *lexer.Token) NonTermNode {
	return &nonTermNode{typeName: typeName, token: tok}
}

func (ntn *nonTermNode) IsNonTerm () bool {
	return true
}

func (ntn *nonTermNode) TypeName () string {
	return ntn.typeName
}

func (ntn *nonTermNode) Token () *lexer.Token {
	return ntn.token
}

func (ntn *nonTermNode) Parent () NonTermNode {
	return ntn.parent
}

func (ntn *nonTermNode) FirstChild () Node {
	return ntn.firstChild
}

func (ntn *nonTermNode) LastChild () Node {
	return ntn.lastChild
}

func (ntn *nonTermNode) Prev () Node {
	return ntn.prev
}

func (ntn *nonTermNode) Next () Node {
	return ntn.next
}

func (ntn *nonTermNode) SetParent (p NonTermNode) {
	ntn.parent = p
}

func (ntn *nonTermNode) SetFirstChild (c Node) {
	ntn.firstChild = c
	if ntn.lastChild == nil {
		ntn.lastChild = c
	}
	if c != nil {
		c.SetParent(ntn)
	}
}

func (ntn *nonTermNode) AppendChild (c Node) {
	if ntn.firstChild == nil {
		ntn.SetFirstChild(c)
	} else {
		appendSibling(ntn.lastChild, c)
		ntn.lastChild = c
	}
}

func appendSibling (prev, node Node) {
	if node == nil || prev == nil {
		return
	}

	next := prev.Next()
	node.SetParent(prev.Parent())
	node.SetPrev(prev)
	node.SetNext(next)
	prev.SetNext(node)
	if next != nil {
		next.SetPrev(node)
	}
}

func (ntn *nonTermNode) SetPrev (p Node) {
	ntn.prev = p
}

func (ntn *nonTermNode) SetNext (n Node) {
	ntn.next = n
}

func (ntn *nonTermNode) Pos () lexer.SourcePos {
	if ntn.firstChild == nil {
		return nil
	} else {
		return ntn.firstChild.Pos()
	}
}

// Build materializes a pcomb.Value into a Node tree: every *lexer.Token
// element becomes a leaf tokenNode, every nested pcomb.Value becomes a
// nonTermNode named typeName+"/*" whose children are its own elements built
// recursively; only the root is named typeName itself. Other element types (e.g. the synthetic tokens Insert
// contributes) are rendered as literal leaves via their fmt text.
//
// This is how a grammar built from pcomb combinators turns the flat Value
// a Driver hands back into a tree shaped for the Walk helpers above,
// replacing the grammar-table driven hook callbacks the teacher used to
// build the same shape from NonTermHook invocations.
func Build (typeName string, v pcomb.Value) NonTermNode {
	node := NewNonTermNode(typeName, firstToken(v))
	for _, el := range v {
		switch e := el.(type) {
		case pcomb.Value:
			node.AppendChild(Build(typeName+"/*", e))
		case *lexer.Token:
			node.AppendChild(NewTokenNode(e))
		default:
			node.AppendChild(NewTokenNode(lexer.NewToken(-1, "literal", fmt.Sprintf("%v", e), nil)))
		}
	}
	return node
}

func firstToken (v pcomb.Value) *lexer.Token {
	for _, el := range v {
		switch e := el.(type) {
		case *lexer.Token:
			return e
		case pcomb.Value:
			if t := firstToken(e); t != nil {
				return t
			}
		}
	}
	return nil
}
