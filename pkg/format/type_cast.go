package format

// TypeCast is x::type or CAST(x AS type).
type TypeCast struct {
	value    Expr
	typeName string
	cast     bool
	loc      Location
}

// NewTypeCast creates a cast. cast is true when the source used the CAST(...)
// form.
func NewTypeCast(expr Expr, typeName string, cast bool, loc Location) *TypeCast {
	return &TypeCast{value: expr, typeName: typeName, cast: cast, loc: loc}
}

func (t *TypeCast) expr() {}

func (t *TypeCast) Loc() Location { return t.loc }

func (t *TypeCast) useCast(o *Options) bool {
	return t.cast || o.ConvertDoubleColonCast
}

func (t *TypeCast) Render(o *Options, depth int) (string, error) {
	inner, err := t.value.Render(o, depth)
	if err != nil {
		return "", err
	}

	typ := o.keyword(t.typeName)
	if t.useCast(o) {
		return o.keyword("CAST") + "(" + inner + " " + o.keyword("AS") + " " + typ + ")", nil
	}
	return inner + "::" + typ, nil
}

func (t *TypeCast) LastLineLenFromLeft(o *Options, depth, acc int) int {
	typ := o.keyword(t.typeName)
	if t.useCast(o) {
		col := o.widthFrom(acc, o.keyword("CAST")+"(")
		col = t.value.LastLineLenFromLeft(o, depth, col)
		return o.widthFrom(col, " "+o.keyword("AS")+" "+typ+")")
	}
	return o.widthFrom(t.value.LastLineLenFromLeft(o, depth, acc), "::"+typ)
}

func (t *TypeCast) IsMultiLine() bool { return t.value.IsMultiLine() }

func (t *TypeCast) IsBody() bool { return false }
