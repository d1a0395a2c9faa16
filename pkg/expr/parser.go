// Package expr parses textual unit expressions ("kg*m/s^2") and
// reduces them, against the unit registry, to an exact
// dimension-vector/scale-vector pair.
//
// Grammar, with multiplication binding tighter than division so that
// every term after a '/' lands in the denominator (the UCUM reading of
// "J/kg.K"):
//
//	expr   := factor ('/' factor)*
//	factor := power (('*'|'.') power)*
//	power  := atom ('^' signed-int)?
//	atom   := identifier | '(' expr ')' | integer-literal
//
// A bare "1" is the dimensionless identity, "10" and "10^n" contribute
// only a base-10 scale factor, and identifiers accept an implicit
// digit-suffix exponent ("s2" means "s^2").
package expr

import (
	"strconv"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
)

// Expr is a parsed unit expression node. Expressions are immutable
// once parsed; evaluation never modifies them.
type Expr interface {
	node()
}

// unitAtom is a unit identifier with its (possibly implicit) exponent.
// The name is unresolved text; resolution against the registry happens
// at evaluation time.
type unitAtom struct {
	name string
	exp  int
}

// powerOfTen is an explicit 10^n scale contribution with no dimension.
type powerOfTen struct {
	exp int
}

// one is the bare dimensionless literal "1".
type one struct{}

type mulExpr struct{ a, b Expr }
type divExpr struct{ a, b Expr }
type powExpr struct {
	base Expr
	exp  int
}

func (unitAtom) node()   {}
func (powerOfTen) node() {}
func (one) node()        {}
func (mulExpr) node()    {}
func (divExpr) node()    {}
func (powExpr) node()    {}

// Parse parses a unit expression. Unknown unit names are not detected
// here; they surface from Eval, where the registry is consulted.
func Parse(input string) (Expr, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		t := p.peek()
		return nil, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
			"unexpected %q at position %d in unit expression %q", t.text, t.pos, input)
	}
	return e, nil
}

type parser struct {
	input string
	toks  []token
	pos   int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokSlash {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = divExpr{a: left, b: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokStar || p.peek().kind == tokDot {
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = mulExpr{a: left, b: right}
	}
	return left, nil
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseSignedInt()
	if err != nil {
		return nil, err
	}
	// Fold 10^n into a plain scale contribution rather than an
	// exponentiated node.
	if pot, ok := base.(powerOfTen); ok {
		return powerOfTen{exp: pot.exp * exp}, nil
	}
	return powExpr{base: base, exp: exp}, nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch t := p.peek(); t.kind {
	case tokLParen:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
				"missing ')' at position %d in unit expression %q", p.peek().pos, p.input)
		}
		p.next()
		return e, nil

	case tokInt:
		p.next()
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, qerrors.Wrap(err, qerrors.ErrorTypeInvalidFormat,
				"bad integer literal in unit expression")
		}
		switch n {
		case 1:
			return one{}, nil
		case 10:
			return powerOfTen{exp: 1}, nil
		default:
			return nil, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
				"integer literal %d is not a unit; only 1 and powers of 10 are allowed", n)
		}

	case tokIdent:
		p.next()
		return splitImplicitExponent(t.text), nil

	default:
		return nil, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
			"expected unit at position %d in unit expression %q", t.pos, p.input)
	}
}

func (p *parser) parseSignedInt() (int, error) {
	sign := 1
	if p.peek().kind == tokMinus {
		p.next()
		sign = -1
	}
	t := p.peek()
	if t.kind != tokInt {
		return 0, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
			"expected integer exponent at position %d in unit expression %q", t.pos, p.input)
	}
	p.next()
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, qerrors.Wrap(err, qerrors.ErrorTypeInvalidFormat,
			"bad exponent in unit expression")
	}
	return sign * n, nil
}

// splitImplicitExponent turns "s2" into the atom s^2. The split is at
// the first digit; a suffix that does not parse as an integer leaves
// the identifier whole.
func splitImplicitExponent(ident string) Expr {
	for i, r := range ident {
		if r >= '0' && r <= '9' {
			exp, err := strconv.Atoi(ident[i:])
			if err != nil {
				break
			}
			return unitAtom{name: ident[:i], exp: exp}
		}
	}
	return unitAtom{name: ident, exp: 1}
}
