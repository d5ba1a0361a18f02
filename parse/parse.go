// Package parse builds quill syntax trees from source text.
//
// The grammar covers the demo subset of quill: literals, command and
// parenthesized calls, operators, structural access, aggregates, and
// the statement forms (if/case/while/for/try, jumps, assignment).
// Bodies introduced by ':' are single statements; a source file is a
// newline-separated statement list.
package parse

import (
	"fmt"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/token"
)

// Parse parses a source file into a StmtList tree.
func Parse(d []byte, opts ...ParseOption) (*ast.Node, error) {
	pOpts := newParseOpts(opts)
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	return p.program()
}

// ParseExpr parses a single expression spanning the whole input.
func ParseExpr(d []byte, opts ...ParseOption) (*ast.Node, error) {
	pOpts := newParseOpts(opts)
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	p.skipSeps()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSeps()
	if !p.at(token.TEOF) {
		return nil, p.errUnexpected("end of input")
	}
	return e, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) cur() *token.Token { return &p.toks[p.i] }

func (p *parser) peek(n int) *token.Token {
	if p.i+n >= len(p.toks) {
		return &p.toks[len(p.toks)-1]
	}
	return &p.toks[p.i+n]
}

func (p *parser) at(tt token.Type) bool { return p.cur().Type == tt }

func (p *parser) advance() *token.Token {
	t := &p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

func (p *parser) expect(tt token.Type, what string) (*token.Token, error) {
	if !p.at(tt) {
		return nil, p.errUnexpected(what)
	}
	return p.advance(), nil
}

func (p *parser) errUnexpected(what string) error {
	t := p.cur()
	got := t.Type.String()
	if t.Text != "" {
		got = fmt.Sprintf("%q", t.Text)
	}
	return fmt.Errorf("%w: expected %s, got %s at %s", ErrParse, what, got, t.Pos)
}

func (p *parser) atSep() bool {
	return p.at(token.TNewline) || p.at(token.TSemi) || p.at(token.TEOF)
}

func (p *parser) skipSeps() {
	for p.at(token.TNewline) || p.at(token.TSemi) {
		p.advance()
	}
}

// adjacent reports whether the current token directly follows the
// previous one with no space. Distinguishes echo("a") from echo ("a").
func (p *parser) adjacent() bool {
	if p.i == 0 {
		return false
	}
	return p.toks[p.i-1].End() == p.cur().Pos.Off
}

func (p *parser) track(n *ast.Node, pos *token.Pos) *ast.Node {
	if p.opts.positions != nil && n != nil {
		p.opts.positions[n] = pos
	}
	return n
}

func (p *parser) node(pos *token.Pos, k ast.Kind, kids ...*ast.Node) (*ast.Node, error) {
	n, err := ast.New(k, kids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", errInternal, err, pos)
	}
	return p.track(n, pos), nil
}

func (p *parser) identNode(t *token.Token) (*ast.Node, error) {
	n, err := ast.FromIdent(ast.IdentKind, p.opts.idents.Intern(t.Text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", errInternal, err, t.Pos)
	}
	return p.track(n, &t.Pos), nil
}

func (p *parser) opIdent(text string, pos *token.Pos) (*ast.Node, error) {
	n, err := ast.FromIdent(ast.IdentKind, p.opts.idents.Intern(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", errInternal, err, pos)
	}
	return p.track(n, pos), nil
}

var intKinds = map[int]ast.Kind{
	0: ast.IntLitKind, 8: ast.Int8LitKind, 16: ast.Int16LitKind,
	32: ast.Int32LitKind, 64: ast.Int64LitKind,
}

var floatKinds = map[int]ast.Kind{
	0: ast.FloatLitKind, 32: ast.Float32LitKind, 64: ast.Float64LitKind,
}

func (p *parser) litNode(t *token.Token) (*ast.Node, error) {
	var (
		n   *ast.Node
		err error
	)
	switch t.Type {
	case token.TInt:
		n, err = ast.FromInt(intKinds[t.Width], t.Int)
	case token.TChar:
		n, err = ast.FromInt(ast.CharLitKind, t.Int)
	case token.TFloat:
		n, err = ast.FromFloat(floatKinds[t.Width], t.Float)
	case token.TStr:
		n, err = ast.FromStr(ast.StrLitKind, t.Str)
	case token.TRawStr:
		n, err = ast.FromStr(ast.RawStrLitKind, t.Str)
	case token.TTripleStr:
		n, err = ast.FromStr(ast.TripleStrLitKind, t.Str)
	default:
		return nil, fmt.Errorf("%w: %s is not a literal at %s", errInternal, t.Type, t.Pos)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", errInternal, err, t.Pos)
	}
	return p.track(n, &t.Pos), nil
}

func (p *parser) program() (*ast.Node, error) {
	pos := &p.cur().Pos
	var stmts []*ast.Node
	p.skipSeps()
	for !p.at(token.TEOF) {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if !p.atSep() {
			return nil, p.errUnexpected("newline or ';'")
		}
		p.skipSeps()
	}
	return p.node(pos, ast.StmtListKind, stmts...)
}

func (p *parser) stmt() (*ast.Node, error) {
	t := p.cur()
	if t.Type == token.TKeyword {
		switch t.Text {
		case "if":
			return p.ifStmt()
		case "while":
			return p.whileStmt()
		case "for":
			return p.forStmt()
		case "case":
			return p.caseStmt()
		case "try":
			return p.tryStmt()
		case "return":
			return p.jumpStmt(ast.ReturnStmtKind)
		case "yield":
			return p.jumpStmt(ast.YieldStmtKind)
		case "discard":
			return p.jumpStmt(ast.DiscardStmtKind)
		case "break":
			return p.jumpStmt(ast.BreakStmtKind)
		case "continue":
			return p.jumpStmt(ast.ContinueStmtKind)
		}
	}
	return p.exprStmt()
}

// exprStmt parses an expression statement: a command call, an
// assignment, or a bare expression.
func (p *parser) exprStmt() (*ast.Node, error) {
	pos := &p.cur().Pos
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.cur().IsOp("=") {
		p.advance()
		rhs, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.node(pos, ast.AsgnKind, e, rhs)
	}
	if p.commandCallee(e) && p.atExprStart() {
		args, err := p.exprList(nil)
		if err != nil {
			return nil, err
		}
		return p.node(pos, ast.CommandKind, append([]*ast.Node{e}, args...)...)
	}
	return e, nil
}

func (p *parser) commandCallee(e *ast.Node) bool {
	return e.Kind() == ast.IdentKind || e.Kind() == ast.DotExprKind
}

// atExprStart reports whether the current token can begin a command
// argument.
func (p *parser) atExprStart() bool {
	switch p.cur().Type {
	case token.TIdent, token.TInt, token.TFloat, token.TChar,
		token.TStr, token.TRawStr, token.TTripleStr,
		token.TLPar, token.TLSquare, token.TLCurly:
		return true
	case token.TKeyword:
		switch p.cur().Text {
		case "nil", "not", "addr", "cast", "if":
			return true
		}
	}
	return false
}

// exprList parses a comma-separated expression list, stopping at end
// (or at any non-expression token when end is nil). Named arguments
// ident=expr become FieldEq nodes.
func (p *parser) exprList(end *token.Type) ([]*ast.Node, error) {
	var res []*ast.Node
	for {
		e, err := p.argExpr()
		if err != nil {
			return nil, err
		}
		res = append(res, e)
		if !p.at(token.TComma) {
			return res, nil
		}
		p.advance()
		if end != nil {
			p.skipSeps()
		}
	}
}

func (p *parser) argExpr() (*ast.Node, error) {
	if p.at(token.TIdent) && p.peek(1).IsOp("=") {
		pos := &p.cur().Pos
		field, err := p.identNode(p.advance())
		if err != nil {
			return nil, err
		}
		p.advance() // '='
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.node(pos, ast.FieldEqKind, field, val)
	}
	return p.expr()
}

var binPrec = map[string]int{
	"or": 1, "and": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"&": 4,
	"..": 5,
	"+":  6, "-": 6,
	"*": 7, "/": 7, "%": 7,
}

func (p *parser) expr() (*ast.Node, error) {
	if p.cur().IsKeyword("if") {
		return p.ifExpr()
	}
	return p.binExpr(1)
}

func (p *parser) binExpr(minPrec int) (*ast.Node, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		var opText string
		switch {
		case t.Type == token.TOp:
			opText = t.Text
		case t.IsKeyword("and") || t.IsKeyword("or"):
			opText = t.Text
		default:
			return lhs, nil
		}
		prec, ok := binPrec[opText]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		pos := &t.Pos
		p.advance()
		rhs, err := p.binExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		if opText == ".." {
			lhs, err = p.node(pos, ast.RangeKind, lhs, rhs)
		} else {
			var op *ast.Node
			op, err = p.opIdent(opText, pos)
			if err != nil {
				return nil, err
			}
			lhs, err = p.node(pos, ast.InfixKind, op, lhs, rhs)
		}
		if err != nil {
			return nil, err
		}
	}
}

var prefixOps = map[string]bool{
	"-": true, "+": true, "@": true, "~": true, "!": true,
}

func (p *parser) unary() (*ast.Node, error) {
	t := p.cur()
	switch {
	case t.IsKeyword("not") || (t.Type == token.TOp && prefixOps[t.Text]):
		pos := &t.Pos
		p.advance()
		op, err := p.opIdent(t.Text, pos)
		if err != nil {
			return nil, err
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return p.node(pos, ast.PrefixKind, op, operand)
	case t.IsKeyword("addr"):
		pos := &t.Pos
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return p.node(pos, ast.AddrKind, operand)
	case t.IsKeyword("cast"):
		return p.castExpr()
	}
	return p.suffixedPrimary()
}

// castExpr parses cast[T](e).
func (p *parser) castExpr() (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	if _, err := p.expect(token.TLSquare, "'['"); err != nil {
		return nil, err
	}
	typ, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TRSquare, "']'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TLPar, "'('"); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TRPar, "')'"); err != nil {
		return nil, err
	}
	return p.node(pos, ast.CastKind, typ, e)
}

func (p *parser) suffixedPrimary() (*ast.Node, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		switch {
		case t.IsOp("."):
			pos := &t.Pos
			p.advance()
			fieldTok, err := p.expect(token.TIdent, "identifier after '.'")
			if err != nil {
				return nil, err
			}
			field, err := p.identNode(fieldTok)
			if err != nil {
				return nil, err
			}
			e, err = p.node(pos, ast.DotExprKind, e, field)
			if err != nil {
				return nil, err
			}
		case t.Type == token.TLPar && p.adjacent():
			pos := &t.Pos
			p.advance()
			p.skipSeps()
			var args []*ast.Node
			if !p.at(token.TRPar) {
				end := token.TRPar
				args, err = p.exprList(&end)
				if err != nil {
					return nil, err
				}
				p.skipSeps()
			}
			if _, err := p.expect(token.TRPar, "')'"); err != nil {
				return nil, err
			}
			e, err = p.node(pos, ast.CallKind, append([]*ast.Node{e}, args...)...)
			if err != nil {
				return nil, err
			}
		case t.Type == token.TLSquare && p.adjacent():
			pos := &t.Pos
			p.advance()
			if p.at(token.TRSquare) {
				p.advance()
				e, err = p.node(pos, ast.DerefKind, e)
				if err != nil {
					return nil, err
				}
				continue
			}
			end := token.TRSquare
			args, err := p.exprList(&end)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.TRSquare, "']'"); err != nil {
				return nil, err
			}
			e, err = p.node(pos, ast.IndexExprKind, append([]*ast.Node{e}, args...)...)
			if err != nil {
				return nil, err
			}
		case t.IsOp("*") && e.Kind() == ast.IdentKind && p.postfixFollows():
			pos := &t.Pos
			p.advance()
			op, err := p.opIdent("*", pos)
			if err != nil {
				return nil, err
			}
			return p.node(pos, ast.PostfixKind, op, e)
		default:
			return e, nil
		}
	}
}

// postfixFollows reports whether a '*' at the cursor is the export
// marker rather than multiplication: nothing that can start an operand
// may follow it.
func (p *parser) postfixFollows() bool {
	switch p.peek(1).Type {
	case token.TComma, token.TColon, token.TNewline, token.TSemi, token.TEOF, token.TRPar:
		return true
	case token.TOp:
		return p.peek(1).Text == "="
	}
	return false
}

func (p *parser) primary() (*ast.Node, error) {
	t := p.cur()
	switch t.Type {
	case token.TInt, token.TFloat, token.TChar, token.TStr, token.TRawStr, token.TTripleStr:
		p.advance()
		return p.litNode(t)
	case token.TIdent:
		p.advance()
		return p.identNode(t)
	case token.TKeyword:
		if t.Text == "nil" {
			p.advance()
			return p.track(ast.NilLit(), &t.Pos), nil
		}
	case token.TLPar:
		return p.aggregate(token.TRPar, "')'", ast.ParKind)
	case token.TLCurly:
		return p.aggregate(token.TRCurly, "'}'", ast.SetKind)
	case token.TLSquare:
		return p.aggregate(token.TRSquare, "']'", ast.ArrayKind)
	}
	return nil, p.errUnexpected("expression")
}

func (p *parser) aggregate(end token.Type, endWhat string, k ast.Kind) (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	p.skipSeps()
	var items []*ast.Node
	if !p.at(end) {
		var err error
		items, err = p.exprList(&end)
		if err != nil {
			return nil, err
		}
		p.skipSeps()
	}
	if _, err := p.expect(end, endWhat); err != nil {
		return nil, err
	}
	return p.node(pos, k, items...)
}

// colonBody parses ':' followed by a single statement, possibly on the
// next line.
func (p *parser) colonBody() (*ast.Node, error) {
	if _, err := p.expect(token.TColon, "':'"); err != nil {
		return nil, err
	}
	p.skipSeps()
	return p.stmt()
}

// branchKeyword consumes separators and, when the next token is one of
// the given keywords, leaves the cursor on it and reports true.
// Otherwise the cursor is restored to before the separators.
func (p *parser) branchKeyword(words ...string) bool {
	saved := p.i
	p.skipSeps()
	for _, w := range words {
		if p.cur().IsKeyword(w) {
			return true
		}
	}
	p.i = saved
	return false
}

func (p *parser) ifStmt() (*ast.Node, error) {
	return p.ifNode(ast.IfStmtKind, false)
}

func (p *parser) ifExpr() (*ast.Node, error) {
	return p.ifNode(ast.IfExprKind, true)
}

// ifNode parses both if forms. Statement form: the else branch is
// omitted from the children when absent. Expression form: else is
// mandatory, and branch bodies are expressions.
func (p *parser) ifNode(k ast.Kind, isExpr bool) (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance() // if
	var branches []*ast.Node
	for {
		bpos := &p.cur().Pos
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TColon, "':'"); err != nil {
			return nil, err
		}
		if !isExpr {
			p.skipSeps()
		}
		var body *ast.Node
		if isExpr {
			body, err = p.expr()
		} else {
			body, err = p.stmt()
		}
		if err != nil {
			return nil, err
		}
		branch, err := p.node(bpos, ast.ElifBranchKind, cond, body)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
		if !p.branchKeyword("elif") {
			break
		}
		p.advance()
	}
	if p.branchKeyword("else") {
		epos := &p.cur().Pos
		p.advance()
		if _, err := p.expect(token.TColon, "':'"); err != nil {
			return nil, err
		}
		if !isExpr {
			p.skipSeps()
		}
		var body *ast.Node
		var err error
		if isExpr {
			body, err = p.expr()
		} else {
			body, err = p.stmt()
		}
		if err != nil {
			return nil, err
		}
		elseNode, err := p.node(epos, ast.ElseKind, body)
		if err != nil {
			return nil, err
		}
		branches = append(branches, elseNode)
	} else if isExpr {
		return nil, fmt.Errorf("%w: if expression requires an else part at %s", ErrParse, p.cur().Pos)
	}
	return p.node(pos, k, branches...)
}

func (p *parser) whileStmt() (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	body, err := p.colonBody()
	if err != nil {
		return nil, err
	}
	return p.node(pos, ast.WhileStmtKind, cond, body)
}

// forStmt parses for x, y in e: body. Children are the bound-name
// identifiers, the iterable, then the body, so a for node has at
// least 3 children.
func (p *parser) forStmt() (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	var kids []*ast.Node
	for {
		t, err := p.expect(token.TIdent, "bound name")
		if err != nil {
			return nil, err
		}
		id, err := p.identNode(t)
		if err != nil {
			return nil, err
		}
		kids = append(kids, id)
		if !p.at(token.TComma) {
			break
		}
		p.advance()
	}
	if !p.cur().IsKeyword("in") {
		return nil, p.errUnexpected("'in'")
	}
	p.advance()
	iter, err := p.expr()
	if err != nil {
		return nil, err
	}
	kids = append(kids, iter)
	body, err := p.colonBody()
	if err != nil {
		return nil, err
	}
	kids = append(kids, body)
	return p.node(pos, ast.ForStmtKind, kids...)
}

func (p *parser) caseStmt() (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	scrutinee, err := p.expr()
	if err != nil {
		return nil, err
	}
	kids := []*ast.Node{scrutinee}
	nOf := 0
	for p.branchKeyword("of") {
		bpos := &p.cur().Pos
		p.advance()
		var vals []*ast.Node
		vals, err = p.exprList(nil)
		if err != nil {
			return nil, err
		}
		body, err := p.colonBody()
		if err != nil {
			return nil, err
		}
		branch, err := p.node(bpos, ast.OfBranchKind, append(vals, body)...)
		if err != nil {
			return nil, err
		}
		kids = append(kids, branch)
		nOf++
	}
	if nOf == 0 {
		return nil, fmt.Errorf("%w: case statement requires at least one of branch at %s", ErrParse, p.cur().Pos)
	}
	for p.branchKeyword("elif") {
		bpos := &p.cur().Pos
		p.advance()
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		body, err := p.colonBody()
		if err != nil {
			return nil, err
		}
		branch, err := p.node(bpos, ast.ElifBranchKind, cond, body)
		if err != nil {
			return nil, err
		}
		kids = append(kids, branch)
	}
	if p.branchKeyword("else") {
		epos := &p.cur().Pos
		p.advance()
		body, err := p.colonBody()
		if err != nil {
			return nil, err
		}
		elseNode, err := p.node(epos, ast.ElseKind, body)
		if err != nil {
			return nil, err
		}
		kids = append(kids, elseNode)
	}
	return p.node(pos, ast.CaseStmtKind, kids...)
}

// tryStmt parses try: body with except branches and an optional
// finally. An except branch lists the matched error identifiers then
// the handler body; listing none makes it a catch-all.
func (p *parser) tryStmt() (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	body, err := p.colonBody()
	if err != nil {
		return nil, err
	}
	kids := []*ast.Node{body}
	nBranch := 0
	for p.branchKeyword("except") {
		bpos := &p.cur().Pos
		p.advance()
		var errIdents []*ast.Node
		for p.at(token.TIdent) {
			id, err := p.identNode(p.advance())
			if err != nil {
				return nil, err
			}
			errIdents = append(errIdents, id)
			if !p.at(token.TComma) {
				break
			}
			p.advance()
		}
		handler, err := p.colonBody()
		if err != nil {
			return nil, err
		}
		branch, err := p.node(bpos, ast.ExceptBranchKind, append(errIdents, handler)...)
		if err != nil {
			return nil, err
		}
		kids = append(kids, branch)
		nBranch++
	}
	if p.branchKeyword("finally") {
		fpos := &p.cur().Pos
		p.advance()
		fbody, err := p.colonBody()
		if err != nil {
			return nil, err
		}
		fin, err := p.node(fpos, ast.FinallyKind, fbody)
		if err != nil {
			return nil, err
		}
		kids = append(kids, fin)
		nBranch++
	}
	if nBranch == 0 {
		return nil, fmt.Errorf("%w: try statement requires except or finally at %s", ErrParse, p.cur().Pos)
	}
	return p.node(pos, ast.TryStmtKind, kids...)
}

// jumpStmt parses return/yield/discard/break/continue. The single
// child slot is fixed arity: an absence marker fills it when no
// operand follows.
func (p *parser) jumpStmt(k ast.Kind) (*ast.Node, error) {
	pos := &p.cur().Pos
	p.advance()
	if p.atSep() || !p.atExprStart() {
		return p.node(pos, k, p.track(ast.Empty(), pos))
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return p.node(pos, k, e)
}
