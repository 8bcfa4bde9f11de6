package parser

import (
	"github.com/pseudomuto/sqlalign/pkg/format"
)

func (p *parser) parseStatements() ([]*format.Statement, error) {
	var (
		stmts   []*format.Statement
		leading []format.Comment
	)

	for {
		leading = append(leading, p.takeComments()...)
		if p.eof() {
			if len(leading) > 0 {
				if len(stmts) == 0 {
					stmt := format.NewStatement()
					for _, c := range leading {
						stmt.AddCommentToChild(c)
					}
					stmts = append(stmts, stmt)
				} else {
					last := stmts[len(stmts)-1]
					for _, c := range leading {
						last.AddCommentToChild(c)
					}
					if containsSQLID(leading) {
						last.MarkSQLID()
					}
				}
			}
			return stmts, nil
		}

		stmt := format.NewStatement()
		for _, c := range leading {
			stmt.AddCommentToChild(c)
		}
		leading = nil

		start := p.pos
		if err := p.parseStatement(stmt); err != nil {
			return nil, err
		}
		p.flushTo(stmt)
		stmts = append(stmts, stmt)

		if p.sqlIDWithin(start, p.pos) {
			stmt.MarkSQLID()
		}

		if !p.at(";") {
			if p.eof() {
				continue
			}
			return nil, p.unexpected("end of statement")
		}

		semi := p.next()
		stmt.SetSemicolon(semi.Loc)

		cs := p.takeComments()
		for len(cs) > 0 && semi.Loc.IsSameLine(cs[0].Loc()) {
			if cs[0].IsSQLID() {
				stmt.MarkSQLID()
			}
			stmt.AddCommentToChild(cs[0])
			cs = cs[1:]
		}
		leading = cs
	}
}

// flushTo hands the comments before the next token to stmt.
func (p *parser) flushTo(stmt *format.Statement) {
	for _, c := range p.takeComments() {
		stmt.AddCommentToChild(c)
	}
}

func (p *parser) parseStatement(stmt *format.Statement) error {
	if p.at("WITH") {
		if err := p.parseWith(stmt); err != nil {
			return err
		}
		if !p.at("INSERT", "UPDATE", "DELETE") {
			return p.parseQuery(stmt)
		}
	}

	switch {
	case p.at("SELECT"):
		return p.parseQuery(stmt)
	case p.at("INSERT"):
		return p.parseInsert(stmt)
	case p.at("UPDATE"):
		return p.parseUpdate(stmt)
	case p.at("DELETE"):
		return p.parseDelete(stmt)
	default:
		return p.unimplemented("statement starting with " + p.peek().Text)
	}
}

// keywordClause consumes the keywords texts and starts a clause. A
// statement-id marker directly after them is kept on the clause.
func (p *parser) keywordClause(texts ...string) (*format.Clause, error) {
	first, err := p.expect(texts[0])
	if err != nil {
		return nil, err
	}
	c := format.NewClause(first.Loc, first.Text)

	for _, text := range texts[1:] {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		t, err := p.expect(text)
		if err != nil {
			return nil, err
		}
		c.ExtendKeyword(t.Text, t.Loc)
	}

	p.takeSQLID(c)
	return c, nil
}

func (p *parser) takeSQLID(c *format.Clause) {
	cs := p.comments[p.pos]
	if len(cs) > 0 && cs[0].IsSQLID() {
		c.SetSQLID(cs[0])
		p.comments[p.pos] = cs[1:]
	}
}

// extendIf adds the next token to the clause keywords when it is one of
// texts.
func (p *parser) extendIf(c *format.Clause, texts ...string) error {
	if !p.at(texts...) {
		return nil
	}
	if err := p.noComments(); err != nil {
		return err
	}
	t := p.next()
	c.ExtendKeyword(t.Text, t.Loc)
	p.takeSQLID(c)
	return nil
}

func (p *parser) parseQuery(stmt *format.Statement) error {
	if p.at("WITH") {
		if err := p.parseWith(stmt); err != nil {
			return err
		}
	}

	if err := p.parseSelectCore(stmt); err != nil {
		return err
	}

	for setOperators[word(p.peek())] {
		p.flushTo(stmt)
		t := p.next()
		c := format.NewClause(t.Loc, t.Text)
		if err := p.extendIf(c, "ALL", "DISTINCT"); err != nil {
			return err
		}
		stmt.AddClause(c)
		p.flushTo(stmt)

		if err := p.parseSelectCore(stmt); err != nil {
			return err
		}
	}

	return p.parseQueryTail(stmt)
}

func (p *parser) parseWith(stmt *format.Statement) error {
	c, err := p.keywordClause("WITH")
	if err != nil {
		return err
	}
	if err := p.extendIf(c, "RECURSIVE"); err != nil {
		return err
	}

	body, err := p.parseList(p.parseCTE)
	if err != nil {
		return err
	}
	c.SetBody(body)
	stmt.AddClause(c)
	p.flushTo(stmt)

	return nil
}

func (p *parser) parseCTE() (*format.AlignedExpr, error) {
	if !isName(p.peek()) {
		return nil, p.unexpected("common table expression name")
	}

	var name format.Expr = p.parseName()
	if p.at("(") {
		cols, err := p.parseColumnList()
		if err != nil {
			return nil, err
		}
		name = format.NewExprSeq(name, cols)
	}

	a := format.NewAlignedExpr(name)
	if err := p.lhsTrailing(a); err != nil {
		return nil, err
	}

	as, err := p.expect("AS")
	if err != nil {
		return nil, err
	}
	op := as.Text
	for p.at("NOT", "MATERIALIZED") {
		if err := p.noComments(); err != nil {
			return nil, err
		}
		op += " " + p.next().Text
	}

	if err := p.noComments(); err != nil {
		return nil, err
	}
	sub, err := p.parseSubQuery()
	if err != nil {
		return nil, err
	}

	a.AddRHS(op, sub)
	return a, nil
}

func (p *parser) parseSelectCore(stmt *format.Statement) error {
	sel, err := p.keywordClause("SELECT")
	if err != nil {
		return err
	}
	if err := p.extendIf(sel, "DISTINCT", "ALL"); err != nil {
		return err
	}

	items, err := p.parseList(p.parseSelectItem)
	if err != nil {
		return err
	}
	sel.SetBody(items)
	stmt.AddClause(sel)
	p.flushTo(stmt)

	if p.at("FROM") {
		if err := p.parseFrom(stmt, "FROM"); err != nil {
			return err
		}
	}

	if p.at("WHERE") {
		if err := p.parseConditionClause(stmt, "WHERE"); err != nil {
			return err
		}
	}

	if p.atSeq("GROUP", "BY") {
		c, err := p.keywordClause("GROUP", "BY")
		if err != nil {
			return err
		}
		body, err := p.parseList(p.parsePlainItem)
		if err != nil {
			return err
		}
		c.SetBody(body)
		stmt.AddClause(c)
		p.flushTo(stmt)
	}

	if p.at("HAVING") {
		if err := p.parseConditionClause(stmt, "HAVING"); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) parseQueryTail(stmt *format.Statement) error {
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
		stmt.AddClause(c)
		p.flushTo(stmt)
	}

	if p.at("LIMIT") {
		if err := p.parseSingleLine(stmt, "LIMIT", true); err != nil {
			return err
		}
	}

	if p.at("OFFSET") {
		if err := p.parseSingleLine(stmt, "OFFSET", false, "ROW", "ROWS"); err != nil {
			return err
		}
	}

	if p.at("FETCH", "FOR", "WINDOW") {
		return p.unimplemented(p.peek().Text + " clause")
	}

	return nil
}

// parseSingleLine parses `KEYWORD value [suffix]`. allowAll accepts the
// bare word ALL as the value.
func (p *parser) parseSingleLine(stmt *format.Statement, kw string, allowAll bool, suffixes ...string) error {
	c, err := p.keywordClause(kw)
	if err != nil {
		return err
	}
	for _, comment := range p.leadingComments() {
		c.AddCommentToChild(comment)
	}

	var value format.Expr
	if allowAll && p.at("ALL") {
		t := p.next()
		value = format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc)
	} else {
		value, err = p.parseArith()
		if err != nil {
			return err
		}
		if len(suffixes) > 0 && p.at(suffixes...) && !p.hasComments() {
			t := p.next()
			value = format.NewExprSeq(value, format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc))
		}
	}

	c.SetBody(format.NewSingleLine(value))
	stmt.AddClause(c)
	p.flushTo(stmt)

	return nil
}

func (p *parser) parseConditionClause(stmt *format.Statement, kw string) error {
	c, err := p.keywordClause(kw)
	if err != nil {
		return err
	}

	cond, err := p.parseCondition(p.takeComments())
	if err != nil {
		return err
	}
	c.SetBody(cond)
	stmt.AddClause(c)
	p.flushTo(stmt)

	return nil
}

func (p *parser) parseFrom(stmt *format.Statement, kw string) error {
	c, err := p.keywordClause(kw)
	if err != nil {
		return err
	}

	body, err := p.parseList(p.parseTableRef)
	if err != nil {
		return err
	}
	c.SetBody(body)
	stmt.AddClause(c)
	p.flushTo(stmt)

	return p.parseJoins(stmt)
}

func (p *parser) parseJoins(stmt *format.Statement) error {
	for joinWords[word(p.peek())] {
		first := p.next()
		c := format.NewClause(first.Loc, first.Text)
		for !first.Is("JOIN") && joinWords[word(p.peek())] {
			if err := p.noComments(); err != nil {
				return err
			}
			t := p.next()
			c.ExtendKeyword(t.Text, t.Loc)
			if t.Is("JOIN") {
				break
			}
		}

		body, err := p.parseList(p.parseTableRef)
		if err != nil {
			return err
		}
		c.SetBody(body)
		stmt.AddClause(c)
		p.flushTo(stmt)

		switch {
		case p.at("ON"):
			if err := p.parseConditionClause(stmt, "ON"); err != nil {
				return err
			}
		case p.at("USING"):
			u, err := p.keywordClause("USING")
			if err != nil {
				return err
			}
			body, err := p.parseList(func() (*format.AlignedExpr, error) {
				cols, err := p.parseColumnList()
				if err != nil {
					return nil, err
				}
				return format.NewAlignedExpr(cols), nil
			})
			if err != nil {
				return err
			}
			u.SetBody(body)
			stmt.AddClause(u)
			p.flushTo(stmt)
		}
	}

	return nil
}

func (p *parser) parseInsert(stmt *format.Statement) error {
	c, err := p.keywordClause("INSERT", "INTO")
	if err != nil {
		return err
	}

	body, err := p.parseList(func() (*format.AlignedExpr, error) {
		if !isName(p.peek()) {
			return nil, p.unexpected("table name")
		}

		var target format.Expr = p.parseName()
		if p.at("(") && !p.atSeq("(", "SELECT") && !p.atSeq("(", "WITH") {
			cols, err := p.parseColumnList()
			if err != nil {
				return nil, err
			}
			target = format.NewExprSeq(target, cols)
		}
		return format.NewAlignedExpr(target), nil
	})
	if err != nil {
		return err
	}
	c.SetBody(body)
	stmt.AddClause(c)
	p.flushTo(stmt)

	switch {
	case p.at("VALUES"):
		v, err := p.keywordClause("VALUES")
		if err != nil {
			return err
		}
		rows, err := p.parseList(func() (*format.AlignedExpr, error) {
			row, err := p.parseColumnList()
			if err != nil {
				return nil, err
			}
			return format.NewAlignedExpr(row), nil
		})
		if err != nil {
			return err
		}
		v.SetBody(rows)
		stmt.AddClause(v)
		p.flushTo(stmt)
	case p.at("SELECT", "WITH"):
		if err := p.parseQuery(stmt); err != nil {
			return err
		}
	default:
		return p.unexpected("VALUES or SELECT")
	}

	return p.parseReturning(stmt)
}

func (p *parser) parseUpdate(stmt *format.Statement) error {
	c, err := p.keywordClause("UPDATE")
	if err != nil {
		return err
	}
	body, err := p.parseList(p.parseTableRef)
	if err != nil {
		return err
	}
	c.SetBody(body)
	stmt.AddClause(c)
	p.flushTo(stmt)

	set, err := p.keywordClause("SET")
	if err != nil {
		return err
	}
	assignments, err := p.parseList(p.parseAssignment)
	if err != nil {
		return err
	}
	set.SetBody(assignments)
	stmt.AddClause(set)
	p.flushTo(stmt)

	if p.at("FROM") {
		if err := p.parseFrom(stmt, "FROM"); err != nil {
			return err
		}
	}

	if p.at("WHERE") {
		if err := p.parseConditionClause(stmt, "WHERE"); err != nil {
			return err
		}
	}

	return p.parseReturning(stmt)
}

func (p *parser) parseDelete(stmt *format.Statement) error {
	c, err := p.keywordClause("DELETE")
	if err != nil {
		return err
	}
	stmt.AddClause(c)
	p.flushTo(stmt)

	if err := p.parseFrom(stmt, "FROM"); err != nil {
		return err
	}

	if p.at("USING") {
		if err := p.parseFrom(stmt, "USING"); err != nil {
			return err
		}
	}

	if p.at("WHERE") {
		if err := p.parseConditionClause(stmt, "WHERE"); err != nil {
			return err
		}
	}

	return p.parseReturning(stmt)
}

func (p *parser) parseReturning(stmt *format.Statement) error {
	if !p.at("RETURNING") {
		return nil
	}

	c, err := p.keywordClause("RETURNING")
	if err != nil {
		return err
	}
	body, err := p.parseList(p.parseSelectItem)
	if err != nil {
		return err
	}
	c.SetBody(body)
	stmt.AddClause(c)
	p.flushTo(stmt)

	return nil
}

// parseList parses comma separated members. Comments before a member are
// passed along with it; comments after it are attached to it.
func (p *parser) parseList(item func() (*format.AlignedExpr, error)) (*format.SeparatedLines, error) {
	list := format.NewSeparatedLines()

	var (
		sep       string
		preceding []format.Comment
	)
	for {
		preceding = append(preceding, p.takeComments()...)

		e, err := item()
		if err != nil {
			return nil, err
		}
		list.AddExpr(e, sep, preceding)

		for _, c := range p.takeComments() {
			list.AddCommentToChild(c)
		}

		if !p.at(",") {
			return list, nil
		}

		comma := p.next()
		preceding = p.commaComments(comma, list.AddCommentToChild)
		sep = comma.Text
	}
}

// lhsTrailing attaches a single comment written between a left-hand side and
// its operator.
func (p *parser) lhsTrailing(a *format.AlignedExpr) error {
	cs := p.comments[p.pos]
	switch {
	case len(cs) == 0:
		return nil
	case len(cs) == 1 && !cs[0].IsMultiLine() && a.Loc().IsSameLine(cs[0].Loc()):
		a.SetLhsTrailingComment(cs[0])
		p.comments[p.pos] = nil
		return nil
	default:
		return format.NewUnimplementedError("comment before operator", cs[0].Loc())
	}
}

// isAliasStart reports whether the next token starts an alias.
func (p *parser) isAliasStart() bool {
	t := p.peek()
	return t.Is("AS") || isName(t)
}

// alias parses `[AS] name` after e.
func (p *parser) alias(e format.Expr, ctx format.AliasContext) (*format.AlignedExpr, error) {
	a := format.NewAlignedExpr(e)
	a.SetAliasContext(ctx)

	if !p.isAliasStart() {
		return a, nil
	}
	if err := p.lhsTrailing(a); err != nil {
		return nil, err
	}

	op := ""
	if p.at("AS") {
		op = p.next().Text
		if err := p.noComments(); err != nil {
			return nil, err
		}
	}

	if !isName(p.peek()) {
		return nil, p.unexpected("alias")
	}
	t := p.next()
	a.AddRHS(op, format.NewPrimaryExpr(t.Text, format.Identifier, t.Loc))

	return a, nil
}

func (p *parser) parseSelectItem() (*format.AlignedExpr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	return p.alias(e, format.ColumnAlias)
}

func (p *parser) parsePlainItem() (*format.AlignedExpr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return format.NewAlignedExpr(e), nil
}

func (p *parser) parseOrderItem() (*format.AlignedExpr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	var mods []format.Expr
	for p.at("ASC", "DESC", "NULLS", "FIRST", "LAST") && !p.hasComments() {
		t := p.next()
		mods = append(mods, format.NewPrimaryExpr(t.Text, format.Keyword, t.Loc))
	}

	a := format.NewAlignedExpr(e)
	if len(mods) > 0 {
		a.AddRHS("", format.NewExprSeq(mods...))
	}
	return a, nil
}

func (p *parser) parseAssignment() (*format.AlignedExpr, error) {
	var target format.Expr
	if p.at("(") {
		cols, err := p.parseColumnList()
		if err != nil {
			return nil, err
		}
		target = cols
	} else {
		if !isName(p.peek()) {
			return nil, p.unexpected("column name")
		}
		target = p.parseName()
	}

	a := format.NewAlignedExpr(target)
	if err := p.lhsTrailing(a); err != nil {
		return nil, err
	}

	eq, err := p.expect("=")
	if err != nil {
		return nil, err
	}
	if err := p.noComments(); err != nil {
		return nil, err
	}

	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	a.AddRHS(eq.Text, value)

	return a, nil
}

func (p *parser) parseTableRef() (*format.AlignedExpr, error) {
	var (
		e   format.Expr
		err error
	)

	switch {
	case p.atSeq("(", "SELECT"), p.atSeq("(", "WITH"):
		e, err = p.parseSubQuery()
	case p.at("LATERAL"):
		return nil, p.unimplemented("LATERAL")
	case isName(p.peek()):
		e, err = p.parseNameOrCall()
	default:
		return nil, p.unexpected("table reference")
	}
	if err != nil {
		return nil, err
	}

	return p.alias(e, format.TableAlias)
}

// parseSubQuery parses `( query )`.
func (p *parser) parseSubQuery() (*format.SubExpr, error) {
	open, err := p.expect("(")
	if err != nil {
		return nil, err
	}

	stmt := format.NewStatement()
	for _, c := range p.takeComments() {
		stmt.AddCommentToChild(c)
	}

	if err := p.parseQuery(stmt); err != nil {
		return nil, err
	}
	p.flushTo(stmt)

	closing, err := p.expect(")")
	if err != nil {
		return nil, err
	}

	return format.NewSubExpr(stmt, span(open.Loc, closing.Loc)), nil
}
