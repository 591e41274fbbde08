// Package expr parses the product-of-powers expressions used in catalogs,
// such as "kg*m^2/s^2", "1/s", "m^(1/2)" or "[g]*m/(s*h)", into a flat list
// of factors. Resolving the atoms is left to the caller.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("invalid expression")

// Factor is one atom raised to a rational power. Number atoms are positive
// integer literals.
type Factor struct {
	Atom   string
	Number bool
	Exp    ratio.Ratio
}

// Value returns the integer value of a number atom.
func (f Factor) Value() (int64, error) {
	if !f.Number {
		return 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, f.Atom)
	}
	return strconv.ParseInt(f.Atom, 10, 64)
}

func (f Factor) String() string {
	if f.Exp == ratio.One {
		return f.Atom
	}
	return fmt.Sprintf("%s^(%s)", f.Atom, f.Exp)
}

const reserved = "*/^()\"'`"

// isAtomRune admits unit symbols such as %, ‰, [g] or °C.
func isAtomRune(ch rune, i int) bool {
	if ch == scanner.EOF || unicode.IsSpace(ch) || strings.ContainsRune(reserved, ch) {
		return false
	}
	if i == 0 && (unicode.IsDigit(ch) || ch == '-') {
		return false
	}
	return unicode.IsPrint(ch)
}

type parser struct {
	s   scanner.Scanner
	tok rune
	err error
}

// Parse returns the factors of s in source order. Parenthesized groups are
// flattened with their exponents distributed over their members.
func Parse(s string) ([]Factor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	p := &parser{}
	p.s.Init(strings.NewReader(s))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.IsIdentRune = isAtomRune
	p.s.Error = func(sc *scanner.Scanner, msg string) {
		p.fail("%s", msg)
	}
	p.next()

	fs := p.product()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected %s", scanner.TokenString(p.tok))
	}
	if p.err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, p.err)
	}
	return fs, nil
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w at column %d: %s", ErrSyntax, p.s.Position.Column, fmt.Sprintf(format, args...))
	}
}

// product := power { ('*' | '/') power }
func (p *parser) product() []Factor {
	fs := p.power()
	for p.err == nil && (p.tok == '*' || p.tok == '/') {
		op := p.tok
		p.next()
		rhs := p.power()
		if op == '/' {
			rhs = scale(rhs, ratio.Int(-1))
		}
		fs = append(fs, rhs...)
	}
	return fs
}

// power := primary [ '^' exponent ]
func (p *parser) power() []Factor {
	fs := p.primary()
	if p.err == nil && p.tok == '^' {
		p.next()
		e := p.exponent()
		if p.err == nil && e.IsZero() {
			p.fail("zero exponent")
		}
		fs = scale(fs, e)
	}
	return fs
}

// primary := atom | integer | '(' product ')'
func (p *parser) primary() []Factor {
	switch p.tok {
	case scanner.Ident:
		f := Factor{Atom: p.s.TokenText(), Exp: ratio.One}
		p.next()
		return []Factor{f}
	case scanner.Int:
		text := p.s.TokenText()
		if n, err := strconv.ParseInt(text, 10, 64); err != nil || n <= 0 {
			p.fail("number %s is not a positive 64-bit integer", text)
			return nil
		}
		p.next()
		return []Factor{{Atom: text, Number: true, Exp: ratio.One}}
	case '(':
		p.next()
		fs := p.product()
		p.expect(')')
		return fs
	default:
		p.fail("unexpected %s", scanner.TokenString(p.tok))
		return nil
	}
}

// exponent := ['-'] integer | '(' ['-'] integer [ '/' integer ] ')'
func (p *parser) exponent() ratio.Ratio {
	if p.tok != '(' {
		return ratio.Int(p.signedInt())
	}
	p.next()
	num := p.signedInt()
	den := int64(1)
	if p.tok == '/' {
		p.next()
		if den = p.signedInt(); den <= 0 && p.err == nil {
			p.fail("exponent denominator must be positive")
		}
	}
	p.expect(')')
	if p.err != nil {
		return ratio.One
	}
	return ratio.New(num, den)
}

func (p *parser) signedInt() int64 {
	sign := int64(1)
	if p.tok == '-' {
		sign = -1
		p.next()
	}
	if p.tok != scanner.Int {
		p.fail("expected integer, got %s", scanner.TokenString(p.tok))
		return 1
	}
	n, err := strconv.ParseInt(p.s.TokenText(), 10, 64)
	if err != nil {
		p.fail("%v", err)
		return 1
	}
	p.next()
	return sign * n
}

func (p *parser) expect(tok rune) {
	if p.err != nil {
		return
	}
	if p.tok != tok {
		p.fail("expected %s, got %s", scanner.TokenString(tok), scanner.TokenString(p.tok))
		return
	}
	p.next()
}

func scale(fs []Factor, r ratio.Ratio) []Factor {
	for i := range fs {
		fs[i].Exp = fs[i].Exp.Mul(r)
	}
	return fs
}
