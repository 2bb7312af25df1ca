package syntax

import "fmt"

// Parse parses pattern into an expression tree.
//
// Precedence, lowest first: alternation (left associative), implicit
// concatenation, postfix repetition (one operator per operand), atoms.
// Failures are reported as *ParseError.
func Parse(pattern string) (Regex, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := &parser{pattern: pattern, tokens: tokens}
	if p.peek().kind == tEOF {
		return nil, p.fail(p.peek(), ErrEmpty, "")
	}

	re, err := p.parseAltern()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tEOF {
		return nil, p.unexpected(tok)
	}
	return re, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) Regex {
	re, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

type parser struct {
	pattern string
	tokens  []token
	pos     int
	open    []token // unclosed '(' tokens, innermost last
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tEOF {
		p.pos++
	}
	return tok
}

func (p *parser) fail(tok token, cause error, format string, args ...any) *ParseError {
	return &ParseError{
		Pattern: p.pattern,
		Offset:  tok.pos,
		Err:     cause,
		Detail:  fmt.Sprintf(format, args...),
	}
}

// unexpected reports a token that cannot continue the expression parsed
// so far.
func (p *parser) unexpected(tok token) *ParseError {
	switch tok.kind {
	case tRParen:
		return p.fail(tok, ErrUnexpectedParen, "")
	case tStar, tPlus, tQMark:
		return p.fail(tok, ErrMissingOperand, "%s has nothing to repeat", tok.kind)
	case tEOF:
		return p.fail(tok, ErrMissingOperand, "pattern ends early")
	}
	return p.fail(tok, ErrMissingOperand, "unexpected %s", tok.kind)
}

// startsAtom reports whether an operand can begin with a token of kind k.
func startsAtom(k tokenKind) bool {
	switch k {
	case tChar, tEscape, tEps, tLParen, tLBracket, tDash, tRBracket:
		return true
	}
	return false
}

func (p *parser) parseAltern() (Regex, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tUnion {
		p.next()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Altern{E1: left, E2: right}
	}
	return left, nil
}

func (p *parser) parseConcat() (Regex, error) {
	left, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.peek().kind) {
		right, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		left = Concat{E1: left, E2: right}
	}
	return left, nil
}

func (p *parser) parseRepeat() (Regex, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tStar:
		p.next()
		return Star{Expr: atom}, nil
	case tPlus:
		p.next()
		return Plus{Expr: atom}, nil
	case tQMark:
		p.next()
		return Qmark{Expr: atom}, nil
	}
	return atom, nil
}

func (p *parser) parseAtom() (Regex, error) {
	tok := p.next()
	switch tok.kind {
	case tLParen:
		p.open = append(p.open, tok)
		inner, err := p.parseAltern()
		if err != nil {
			return nil, err
		}
		switch closing := p.peek(); closing.kind {
		case tRParen:
			p.next()
			p.open = p.open[:len(p.open)-1]
			return inner, nil
		case tEOF:
			return nil, p.fail(tok, ErrMissingParen, "")
		default:
			return nil, p.unexpected(closing)
		}
	case tLBracket:
		return p.parseClass(tok)
	case tEps:
		return Epsilon{}, nil
	case tChar, tEscape, tDash, tRBracket:
		return Character{Char: tok.char}, nil
	case tRParen:
		if len(p.open) == 0 {
			return nil, p.fail(tok, ErrUnexpectedParen, "")
		}
		return nil, p.fail(tok, ErrMissingOperand, "empty group")
	case tUnion:
		return nil, p.fail(tok, ErrMissingOperand, "nothing before %s", tok.kind)
	case tEOF:
		if len(p.open) > 0 {
			return nil, p.fail(p.open[len(p.open)-1], ErrMissingParen, "")
		}
	}
	return nil, p.unexpected(tok)
}

// parseClass recognizes the fixed forms [a-z], [A-Z] and [0-9]; the
// opening bracket has been consumed.
func (p *parser) parseClass(open token) (Regex, error) {
	var parts [4]token
	for i := range parts {
		parts[i] = p.next()
	}
	lo, dash, hi, closing := parts[0], parts[1], parts[2], parts[3]
	if lo.kind != tChar || dash.kind != tDash || hi.kind != tChar || closing.kind != tRBracket {
		return nil, p.fail(open, ErrBadClass, "expected [a-z], [A-Z] or [0-9]")
	}

	switch {
	case lo.char == 'a' && hi.char == 'z':
		return LowerCase{}, nil
	case lo.char == 'A' && hi.char == 'Z':
		return UpperCase{}, nil
	case lo.char == '0' && hi.char == '9':
		return Digits{}, nil
	}
	return nil, p.fail(open, ErrBadClass, "range %c-%c", lo.char, hi.char)
}
