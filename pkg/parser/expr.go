package parser

import (
	"strings"

	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/lexer"
)

// headHolder is implemented by expressions that accept a bind parameter.
type headHolder interface {
	SetHeadComment(c format.Comment)
}

// parseCondition parses a boolean condition into a chain, even when it has a
// single member, so that conditions always render one per line.
func (p *parser) parseCondition(preceding []format.Comment) (*format.BooleanExpr, error) {
	cond := format.NewBooleanExpr()
	for _, c := range preceding {
		cond.AddCommentToChild(c)
	}

	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	cond.AddExpr(e, "", nil)

	return cond, nil
}

func (p *parser) parseOr() (format.Expr, error) {
	return p.parseChain("OR", p.parseAnd)
}

func (p *parser) parseAnd() (format.Expr, error) {
	return p.parseChain("AND", p.parseNot)
}

func (p *parser) parseChain(sep string, operand func() (format.Expr, error)) (format.Expr, error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	if !p.at(sep) {
		return first, nil
	}

	chain := format.NewBooleanExpr()
	chain.AddExpr(first, "", nil)

	for p.at(sep) {
		for _, c := range p.takeComments() {
			chain.AddCommentToChild(c)
		}
		t := p.next()

		preceding := p.takeComments()
		e, err := operand()
		if err != nil {
			return nil, err
		}
		chain.AddExpr(e, t.Text, preceding)
	}

	return chain, nil
}

func (p *parser) parseNot() (format.Expr, error) {
	if !p.at("NOT") {
		return p.parseComparison()
	}

	t := p.next()
	if err := p.noComments(); err != nil {
		return nil, err
	}

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	if a, ok := operand.(*format.AlignedExpr); ok && a.RHS() != nil {
		a.PrefixLHS(t.Text, t.Loc)
		return a, nil
	}
	return format.NewUnaryExpr(t.Text, operand, t.Loc), nil
}

func isSymbol(t lexer.Token, set map[string]bool) bool {
	return (t.Kind == lexer.Operator || t.Kind == lexer.Punct) && set[t.Text]
}

// atComparison reports whether the next tokens start a comparison operator.
func (p *parser) atComparison() bool {
	t := p.peek()
	if isSymbol(t, comparisonOps) {
		return true
	}

	switch word(t) {
	case "LIKE", "ILIKE", "IN", "BETWEEN", "IS", "SIMILAR":
		return true
	case "NOT":
		switch word(p.peekAt(1)) {
		case "LIKE", "ILIKE", "IN", "BETWEEN", "SIMILAR":
			return true
		}
	}
	return false
}

// opWords consumes operator words while they are one of texts.
func (p *parser) opWords(op []string, texts ...string) ([]string, error) {
	for p.at(texts...) {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		op = append(op, p.next().Text)
	}
	return op, nil
}

func (p *parser) parseComparison() (format.Expr, error) {
	lhs, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if !p.atComparison() {
		return lhs, nil
	}

	a := format.NewAlignedExpr(lhs)
	if err := p.lhsTrailing(a); err != nil {
		return nil, err
	}

	first := p.next()
	op := []string{first.Text}

	var rhs format.Expr
	switch kw := word(first); {
	case kw == "IS":
		if op, err = p.opWords(op, "NOT"); err != nil {
			return nil, err
		}
		if op, err = p.opWords(op, "DISTINCT"); err != nil {
			return nil, err
		}
		if len(op) > 0 && strings.EqualFold(op[len(op)-1], "DISTINCT") {
			if op, err = p.opWords(op, "FROM"); err != nil {
				return nil, err
			}
		}
		rhs, err = p.parseArith()
	default:
		if kw == "NOT" {
			if err := p.noComments(); err != nil {
				return nil, err
			}
			t := p.next()
			op = append(op, t.Text)
			kw = word(t)
		}

		switch kw {
		case "SIMILAR":
			if op, err = p.opWords(op, "TO"); err != nil {
				return nil, err
			}
			rhs, err = p.parseLikePattern()
		case "LIKE", "ILIKE":
			rhs, err = p.parseLikePattern()
		case "IN":
			rhs, err = p.parseInList()
		case "BETWEEN":
			rhs, err = p.parseBetween()
		default:
			rhs, err = p.parseQuantified()
		}
	}
	if err != nil {
		return nil, err
	}

	a.AddRHS(strings.Join(op, " "), rhs)
	return a, nil
}

func (p *parser) parseLikePattern() (format.Expr, error) {
	pattern, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if !p.at("ESCAPE") || p.hasComments() {
		return pattern, nil
	}

	t := p.next()
	esc, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return format.NewExprSeq(pattern, format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc), esc), nil
}

func (p *parser) parseInList() (format.Expr, error) {
	if p.atSeq("(", "SELECT") || p.atSeq("(", "WITH") {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		return p.parseSubQuery()
	}
	return p.parseColumnList()
}

func (p *parser) parseBetween() (format.Expr, error) {
	lo, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}
	and, err := p.expect("AND")
	if err != nil {
		return nil, err
	}
	hi, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return format.NewExprSeq(lo, format.NewPrimaryExpr(and.Text, format.Keyword, and.Loc), hi), nil
}

// parseQuantified parses the right side of a symbol comparison, including
// ANY/SOME/ALL (sub-query).
func (p *parser) parseQuantified() (format.Expr, error) {
	if !p.at("ANY", "SOME", "ALL") || !p.peekAt(1).Is("(") {
		return p.parseArith()
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}

	t := p.next()
	q := format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc)

	inner, err := p.parseInList()
	if err != nil {
		return nil, err
	}
	return format.NewExprSeq(q, inner), nil
}

func (p *parser) parseArith() (format.Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !isSymbol(p.peek(), arithmeticOps) {
		return first, nil
	}

	exprs := []format.Expr{first}
	for isSymbol(p.peek(), arithmeticOps) {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		t := p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc), operand)
	}

	return format.NewExprSeq(exprs...), nil
}

func (p *parser) parseUnary() (format.Expr, error) {
	t := p.peek()
	if !isSymbol(t, unaryOps) {
		return p.parsePostfix()
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}
	p.next()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return format.NewUnaryExpr(t.Text, operand, t.Loc), nil
}

func (p *parser) parsePostfix() (format.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.at("::") && !p.hasComments() {
		p.next()
		if err := p.noComments(); err != nil {
			return nil, err
		}

		typ, end, err := p.parseTypeName(false)
		if err != nil {
			return nil, err
		}
		e = format.NewTypeCast(e, typ, false, span(e.Loc(), end))
	}

	if p.at("[", "COLLATE") && !p.hasComments() {
		return nil, p.unimplemented(p.peek().Text)
	}

	return e, nil
}

// bindParam takes the bind parameter written directly before the next token.
// Any other comment in front of a value has nowhere to go.
func (p *parser) bindParam() (*format.Comment, error) {
	cs := p.comments[p.pos]
	switch {
	case len(cs) == 0:
		return nil, nil
	case len(cs) == 1 && cs[0].IsBindParamFor(p.peek().Loc):
		p.comments[p.pos] = nil
		return &cs[0], nil
	default:
		return nil, format.NewUnimplementedError("comment inside expression", cs[0].Loc())
	}
}

func (p *parser) parsePrimary() (format.Expr, error) {
	head, err := p.bindParam()
	if err != nil {
		return nil, err
	}

	e, err := p.parsePrimaryValue()
	if err != nil || head == nil {
		return e, err
	}

	h, ok := e.(headHolder)
	if !ok {
		return nil, format.NewUnimplementedError("bind parameter", head.Loc())
	}
	h.SetHeadComment(*head)

	return e, nil
}

func (p *parser) parsePrimaryValue() (format.Expr, error) {
	t := p.peek()
	next := p.peekAt(1)

	switch {
	case t.Kind == lexer.Number, t.Kind == lexer.String, t.Kind == lexer.Param:
		p.next()
		return format.NewPrimaryExpr(t.Text, format.Literal, t.Loc), nil
	case t.Is("("):
		return p.parseParen()
	case t.Is("CASE"):
		return p.parseCase()
	case t.Is("EXISTS"):
		p.next()
		if err := p.noComments(); err != nil {
			return nil, err
		}
		sub, err := p.parseSubQuery()
		if err != nil {
			return nil, err
		}
		return format.NewUnaryExpr(t.Text, sub, t.Loc), nil
	case t.Is("CAST") && next.Is("("):
		return p.parseCast()
	case t.Is("*"):
		p.next()
		return format.NewAsteriskExpr(t.Text, t.Loc), nil
	case typedLiterals[word(t)] && next.Kind == lexer.String:
		p.next()
		if err := p.noComments(); err != nil {
			return nil, err
		}
		p.next()
		return format.NewExprSeq(
			format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc),
			format.NewPrimaryExpr(next.Text, format.Literal, next.Loc),
		), nil
	case literalKeywords[word(t)] && !next.Is("("):
		p.next()
		return format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc), nil
	case isName(t):
		return p.parseNameOrCall()
	default:
		return nil, p.unexpected("expression")
	}
}

// qualifiedName reads `a.b.c` or `a.*`.
func (p *parser) qualifiedName() (string, format.Location, bool) {
	t := p.next()
	text, loc := t.Text, t.Loc

	for p.at(".") && !p.hasComments() && len(p.comments[p.pos+1]) == 0 {
		nt := p.peekAt(1)
		if !nt.Is("*") && nt.Kind != lexer.Ident && nt.Kind != lexer.QuotedIdent {
			break
		}
		p.next()
		part := p.next()
		text += "." + part.Text
		loc = span(loc, part.Loc)
		if part.Is("*") {
			return text, loc, true
		}
	}

	return text, loc, false
}

// parseName parses a possibly qualified identifier.
func (p *parser) parseName() format.Expr {
	text, loc, star := p.qualifiedName()
	if star {
		return format.NewAsteriskExpr(text, loc)
	}
	return format.NewPrimaryExpr(text, format.Identifier, loc)
}

func (p *parser) parseNameOrCall() (format.Expr, error) {
	text, loc, star := p.qualifiedName()
	if star {
		return format.NewAsteriskExpr(text, loc), nil
	}

	if !p.at("(") || p.hasComments() {
		return format.NewPrimaryExpr(text, format.Identifier, loc), nil
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	call := format.NewFunctionCall(text, args, span(loc, args.Loc()))

	if p.at("FILTER", "WITHIN") && !p.hasComments() {
		return nil, p.unimplemented(p.peek().Text)
	}

	if p.at("OVER") && !p.hasComments() {
		if err := p.parseWindow(call); err != nil {
			return nil, err
		}
	}

	return call, nil
}

func (p *parser) parseWindow(call *format.FunctionCall) error {
	p.next()
	if err := p.noComments(); err != nil {
		return err
	}
	if _, err := p.expect("("); err != nil {
		return err
	}

	var clauses []*format.Clause
	flush := func() error {
		cs := p.takeComments()
		if len(cs) == 0 {
			return nil
		}
		if len(clauses) == 0 {
			return format.NewUnimplementedError("comment in window", cs[0].Loc())
		}
		for _, c := range cs {
			clauses[len(clauses)-1].AddCommentToChild(c)
		}
		return nil
	}

	if err := p.noComments(); err != nil {
		return err
	}

	if p.atSeq("PARTITION", "BY") {
		c, err := p.keywordClause("PARTITION", "BY")
		if err != nil {
			return err
		}
		body, err := p.parseList(p.parsePlainItem)
		if err != nil {
			return err
		}
		c.SetBody(body)
		clauses = append(clauses, c)
		if err := flush(); err != nil {
			return err
		}
	}

	if p.atSeq("ORDER", "BY") {
		c, err := p.keywordClause("ORDER", "BY")
		if err != nil {
			return err
		}
		body, err := p.parseList(p.parseOrderItem)
		if err != nil {
			return err
		}
		c.SetBody(body)
		clauses = append(clauses, c)
		if err := flush(); err != nil {
			return err
		}
	}

	if p.at("ROWS", "RANGE", "GROUPS") {
		return p.unimplemented("window frame")
	}

	closing, err := p.expect(")")
	if err != nil {
		return err
	}

	call.SetOver(clauses, closing.Loc)
	return nil
}

func (p *parser) parseCast() (format.Expr, error) {
	kw := p.next()
	if err := p.noComments(); err != nil {
		return nil, err
	}
	p.next()

	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}
	if _, err := p.expect("AS"); err != nil {
		return nil, err
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}

	typ, _, err := p.parseTypeName(true)
	if err != nil {
		return nil, err
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}

	closing, err := p.expect(")")
	if err != nil {
		return nil, err
	}

	return format.NewTypeCast(value, typ, true, span(kw.Loc, closing.Loc)), nil
}

// parseTypeName reads a type such as int, varchar(10), numeric(10, 2) or
// int[]. Multi-word names (double precision) are only read inside CAST.
func (p *parser) parseTypeName(multiWord bool) (string, format.Location, error) {
	t := p.peek()
	if t.Kind != lexer.Ident && t.Kind != lexer.QuotedIdent {
		return "", format.Location{}, p.unexpected("type name")
	}
	p.next()

	text, loc := t.Text, t.Loc
	for multiWord && p.peek().Kind == lexer.Ident && !p.at("AS") && !p.hasComments() {
		w := p.next()
		text += " " + w.Text
		loc = span(loc, w.Loc)
	}

	if p.at("(") && !p.hasComments() {
		p.next()

		var params []string
		for !p.at(")") {
			if err := p.noComments(); err != nil {
				return "", loc, err
			}
			param := p.next()
			if param.Kind != lexer.Number && param.Kind != lexer.Ident {
				return "", loc, p.unexpected("type parameter")
			}
			params = append(params, param.Text)

			if p.at(",") {
				p.next()
			}
		}

		closing := p.next()
		text += "(" + strings.Join(params, ", ") + ")"
		loc = span(loc, closing.Loc)
	}

	for p.atSeq("[", "]") && !p.hasComments() {
		p.next()
		closing := p.next()
		text += "[]"
		loc = span(loc, closing.Loc)
	}

	return text, loc, nil
}

type listItem struct {
	expr      format.Expr
	preceding []format.Comment
	after     []format.Comment
}

// parseItems parses `( item, ... )` and returns the members with their
// comments, and both parentheses.
func (p *parser) parseItems(item func() (format.Expr, error)) ([]*listItem, lexer.Token, lexer.Token, bool, error) {
	open, err := p.expect("(")
	if err != nil {
		return nil, open, open, false, err
	}

	var (
		items     []*listItem
		comma     bool
		preceding = p.leadingComments()
	)

	for !p.at(")") {
		e, err := item()
		if err != nil {
			return nil, open, open, false, err
		}

		it := &listItem{expr: e, preceding: preceding}
		it.after = p.takeComments()
		items = append(items, it)

		if !p.at(",") {
			break
		}

		comma = true
		sep := p.next()
		preceding = p.commaComments(sep, func(c format.Comment) {
			it.after = append(it.after, c)
		})
		preceding = append(preceding, p.leadingComments()...)
	}

	if len(items) == 0 && len(preceding) > 0 {
		return nil, open, open, false, format.NewUnimplementedError("comment in empty list", preceding[0].Loc())
	}

	closing, err := p.expect(")")
	if err != nil {
		return nil, open, open, false, err
	}

	return items, open, closing, comma, nil
}

func buildColumnList(items []*listItem, open, closing lexer.Token) *format.ColumnList {
	cols := format.NewColumnList(span(open.Loc, closing.Loc))
	for _, it := range items {
		cols.AddExpr(it.expr, it.preceding)
		for _, c := range it.after {
			cols.AddCommentToChild(c)
		}
	}
	return cols
}

// parseColumnList parses a parenthesized expression list. A bind parameter
// touching the opening parenthesis is kept on the list.
func (p *parser) parseColumnList() (*format.ColumnList, error) {
	head, err := p.bindParam()
	if err != nil {
		return nil, err
	}

	items, open, closing, _, err := p.parseItems(p.parseOr)
	if err != nil {
		return nil, err
	}

	cols := buildColumnList(items, open, closing)
	if head != nil {
		cols.SetHeadComment(*head)
	}
	return cols, nil
}

func (p *parser) parseArgs() (*format.ColumnList, error) {
	items, open, closing, _, err := p.parseItems(func() (format.Expr, error) {
		if !p.at("DISTINCT", "ALL") {
			return p.parseOr()
		}

		t := p.next()
		if err := p.noComments(); err != nil {
			return nil, err
		}
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return format.NewExprSeq(format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc), arg), nil
	})
	if err != nil {
		return nil, err
	}

	return buildColumnList(items, open, closing), nil
}

// parseParen parses a parenthesized expression, a row value (a, b) or a
// sub-query.
func (p *parser) parseParen() (format.Expr, error) {
	if p.atSeq("(", "SELECT") || p.atSeq("(", "WITH") {
		return p.parseSubQuery()
	}

	items, open, closing, comma, err := p.parseItems(p.parseOr)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, format.NewUnimplementedError("empty parentheses", open.Loc)
	}
	if comma || len(items) > 1 {
		return buildColumnList(items, open, closing), nil
	}

	it := items[0]
	inner := it.expr
	if a, ok := inner.(*format.AlignedExpr); ok && a.RHS() != nil {
		cond := format.NewBooleanExpr()
		cond.AddExpr(a, "", nil)
		inner = cond
	}

	paren := format.NewParenExpr(inner, span(open.Loc, closing.Loc))
	for _, c := range it.preceding {
		paren.AddStartComment(c)
	}
	for _, c := range it.after {
		paren.AddCommentToChild(c)
	}

	return paren, nil
}

func (p *parser) parseCase() (format.Expr, error) {
	kw := p.next()

	var (
		operand format.Expr
		err     error
	)
	if !p.at("WHEN") {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		if operand, err = p.parseArith(); err != nil {
			return nil, err
		}
	}

	type branch struct {
		when                       *format.BooleanExpr
		then                       format.Expr
		whenComments, thenComments []format.Comment
		thenTrailing               []format.Comment
	}

	var branches []branch
	for p.at("WHEN") {
		b := branch{whenComments: p.takeComments()}
		p.next()

		if b.when, err = p.parseCondition(p.takeComments()); err != nil {
			return nil, err
		}
		for _, c := range p.trailingComments(b.when.Loc()) {
			b.when.AddCommentToChild(c)
		}

		b.thenComments = p.takeComments()
		if _, err := p.expect("THEN"); err != nil {
			return nil, err
		}
		if cs := p.leadingComments(); len(cs) > 0 {
			return nil, format.NewUnimplementedError("comment after THEN", cs[0].Loc())
		}
		if b.then, err = p.parseOr(); err != nil {
			return nil, err
		}
		b.thenTrailing = p.trailingComments(b.then.Loc())

		branches = append(branches, b)
	}

	if len(branches) == 0 {
		return nil, p.unexpected("WHEN")
	}

	var (
		elseExpr                   format.Expr
		elseComments, elseTrailing []format.Comment
	)
	if p.at("ELSE") {
		elseComments = p.takeComments()
		p.next()
		if cs := p.leadingComments(); len(cs) > 0 {
			return nil, format.NewUnimplementedError("comment after ELSE", cs[0].Loc())
		}
		if elseExpr, err = p.parseOr(); err != nil {
			return nil, err
		}
		elseTrailing = p.trailingComments(elseExpr.Loc())
	}

	endComments := p.takeComments()
	end, err := p.expect("END")
	if err != nil {
		return nil, err
	}

	cond := format.NewCondExpr(operand, span(kw.Loc, end.Loc))
	for _, b := range branches {
		cond.AddWhenThen(b.when, b.then, b.whenComments, b.thenComments)
		for _, c := range b.thenTrailing {
			cond.AddCommentToChild(c)
		}
	}
	if elseExpr != nil {
		cond.SetElse(elseExpr, elseComments)
		for _, c := range elseTrailing {
			cond.AddCommentToChild(c)
		}
	}
	cond.AddEndComments(endComments...)

	return cond, nil
}
