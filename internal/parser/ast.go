package parser

import "graphparse/internal/diag"

// NodeBase carries the optional byte span every AST node may have (nodes
// whose children all lack a position also lack one) plus the JSON
// discriminator tag (`NodeType`, serialized as "type") so the `ast` CLI subcommand's JSON
// dump stays self-describing.
type NodeBase struct {
	NodeType string `json:"type"`
	Pos *diag.Span `json:"pos,omitempty"`
}

// Span returns the node's byte span, or nil if it has none.
func (b NodeBase) Span() *diag.Span { return b.Pos }

// SetSpan overwrites the node's span. Used by productions that finish
// parsing a sub-node and then need to widen its span to cover surrounding
// tokens (e.g. a parenthesized expression widened to include the parens).
func (b *NodeBase) SetSpan(s *diag.Span) { b.Pos = s }

// Node is implemented by every Program/Statement/Expr node.
type Node interface {
	Span() *diag.Span
	SetSpan(*diag.Span)
}

// Program is the AST root: an ordered list of statements.
type Program struct {
	NodeBase
	Children []Statement `json:"children"`
}

// Statement is a marker interface for top-level/folder/table members.
type Statement interface {
	Node
	isStatement()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	isExpr()
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

type ExprStatement struct {
	NodeBase
	Expr Expr `json:"expr"`
	Style *StyleMapping `json:"style,omitempty"`
	Parameters *RegressionParameters `json:"parameters,omitempty"`
	ResidualVariable *Identifier `json:"residualVariable,omitempty"`
}

func (*ExprStatement) isStatement() {}

type Text struct {
	NodeBase
	Text string `json:"text"`
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Text) isStatement() {}

type Table struct {
	NodeBase
	Columns []*ExprStatement `json:"columns"`
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Table) isStatement() {}

type Image struct {
	NodeBase
	Name string `json:"name"`
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Image) isStatement() {}

type Folder struct {
	NodeBase
	Title string `json:"title"`
	Children []Statement `json:"children"`
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Folder) isStatement() {}

type Settings struct {
	NodeBase
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Settings) isStatement() {}

type Ticker struct {
	NodeBase
	Handler Expr `json:"handler"`
	Style *StyleMapping `json:"style,omitempty"`
}

func (*Ticker) isStatement() {}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

type Number struct {
	NodeBase
	Value float64 `json:"value"`
}

func (*Number) isExpr() {}

type Identifier struct {
	NodeBase
	Name string `json:"name"`
}

func (*Identifier) isExpr() {}

type String struct {
	NodeBase
	Value string `json:"value"`
}

func (*String) isExpr() {}

type PrefixExpression struct {
	NodeBase
	Op string `json:"op"`
	Expr Expr `json:"expr"`
}

func (*PrefixExpression) isExpr() {}

type PostfixExpression struct {
	NodeBase
	Op string `json:"op"`
	Expr Expr `json:"expr"`
}

func (*PostfixExpression) isExpr() {}

type BinaryExpression struct {
	NodeBase
	Op string `json:"op"`
	Left Expr `json:"left"`
	Right Expr `json:"right"`
}

func (*BinaryExpression) isExpr() {}

type DoubleInequality struct {
	NodeBase
	Left Expr `json:"left"`
	LeftOp string `json:"leftOp"`
	Middle Expr `json:"middle"`
	RightOp string `json:"rightOp"`
	Right Expr `json:"right"`
}

func (*DoubleInequality) isExpr() {}

type SequenceExpression struct {
	NodeBase
	Left Expr `json:"left"`
	Right Expr `json:"right"`
	ParenWrapped bool `json:"parenWrapped"`
}

func (*SequenceExpression) isExpr() {}

type RangeExpression struct {
	NodeBase
	StartValues []Expr `json:"startValues"`
	EndValues []Expr `json:"endValues"`
}

func (*RangeExpression) isExpr() {}

type ListExpression struct {
	NodeBase
	Values []Expr `json:"values"`
}

func (*ListExpression) isExpr() {}

type ListComprehension struct {
	NodeBase
	Expr Expr `json:"expr"`
	Assignments []*AssignmentExpression `json:"assignments"`
}

func (*ListComprehension) isExpr() {}

type ListAccessExpression struct {
	NodeBase
	Expr Expr `json:"expr"`
	Index Expr `json:"index"`
}

func (*ListAccessExpression) isExpr() {}

type MemberExpression struct {
	NodeBase
	Object Expr `json:"object"`
	Property *Identifier `json:"property"`
}

func (*MemberExpression) isExpr() {}

type CallExpression struct {
	NodeBase
	Callee Expr `json:"callee"`
	Arguments []Expr `json:"arguments"`
}

func (*CallExpression) isExpr() {}

type PrimeExpression struct {
	NodeBase
	Expr *CallExpression `json:"expr"`
	Order uint32 `json:"order"`
}

func (*PrimeExpression) isExpr() {}

type DerivativeExpression struct {
	NodeBase
	Expr Expr `json:"expr"`
	Variable *Identifier `json:"variable"`
}

func (*DerivativeExpression) isExpr() {}

// RepeatedExpression.Name is one of "sum", "product", "integral".
type RepeatedExpression struct {
	NodeBase
	Name string `json:"name"`
	Index *Identifier `json:"index"`
	Start Expr `json:"start"`
	End Expr `json:"end"`
	Expr Expr `json:"expr"`
}

func (*RepeatedExpression) isExpr() {}

type PiecewiseBranch struct {
	Condition Expr `json:"condition"`
	Consequent Expr `json:"consequent"`
}

type PiecewiseExpression struct {
	NodeBase
	Branches []PiecewiseBranch `json:"branches"`
}

func (*PiecewiseExpression) isExpr() {}

type UpdateRule struct {
	NodeBase
	Variable *Identifier `json:"variable"`
	Expr Expr `json:"expr"`
}

func (*UpdateRule) isExpr() {}

// AssignmentExpression is the "name = expr" binding shape used wherever the
// grammar collects a bare sequence of assignments (list comprehensions,
// `with` substitutions) rather than a single top-level equation.
type AssignmentExpression struct {
	NodeBase
	Variable *Identifier `json:"variable"`
	Expr Expr `json:"expr"`
}

func (*AssignmentExpression) isExpr() {}

type Substitution struct {
	NodeBase
	Body Expr `json:"body"`
	Assignments []*AssignmentExpression `json:"assignments"`
}

func (*Substitution) isExpr() {}

// ---------------------------------------------------------------------
// Auxiliary (style mappings, regression parameters)
// ---------------------------------------------------------------------

type MappingEntry struct {
	Property *String `json:"property"`
	Expr Expr `json:"expr"`
}

// StyleMapping is itself a valid Expr (a nested mapping value may be a
// StyleMapping,) but finalizeStatement rejects one as a
// top-level parse result,
type StyleMapping struct {
	NodeBase
	Entries []MappingEntry `json:"entries"`
}

func (*StyleMapping) isExpr() {}

type RegressionEntry struct {
	Variable *Identifier `json:"variable"`
	Value Expr `json:"value"`
}

type RegressionParameters struct {
	NodeBase
	Entries []RegressionEntry `json:"entries"`
}

func (*RegressionParameters) isExpr() {}
