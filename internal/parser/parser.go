// Package parser consumes a lexer's token stream and produces value.Value
// syntax trees, one top-level form at a time.
package parser

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/value"
)

// Parser holds a lexer token channel open across repeated ReadForm calls,
// the way a REPL reads one form per prompt from a continuous stream, or a
// script reads its forms one at a time from a single token channel.
type Parser struct {
	ch     <-chan *lexer.Token
	doneCh chan<- struct{}

	curr, next *lexer.Token
	primed     bool
}

// New returns a Parser reading tokens from tCh. Close must be called once
// the caller is done reading forms, to let the lexer goroutine exit.
func New(tCh <-chan *lexer.Token, doneCh chan<- struct{}) *Parser {
	return &Parser{ch: tCh, doneCh: doneCh}
}

// Close signals the lexer goroutine to stop producing tokens.
func (p *Parser) Close() {
	close(p.doneCh)
}

// ReadForm reads and returns the next top-level syntax value. If the input
// is exhausted and eofAllowed is true, it returns ErrEOF; if eofAllowed is
// false, running out of input is a *ParseError instead.
func (p *Parser) ReadForm(eofAllowed bool) (value.Value, error) {
	if !p.primed {
		p.primed = true
		if err := p.prime(); err != nil {
			return nil, err
		}
	}

	if err := p.skipComments(); err != nil {
		return nil, err
	}

	if p.curr.Type == lexer.EOF {
		if eofAllowed {
			return nil, ErrEOF
		}
		return nil, newParseErrorf(p.curr.Line, p.curr.Col, "unexpected end of input")
	}

	return p.readForm()
}

func (p *Parser) prime() error {
	t, ok := <-p.ch
	if !ok {
		p.curr = &lexer.Token{Type: lexer.EOF}
		p.next = p.curr
		return nil
	}
	if t.Err != nil {
		return t.Err
	}
	p.curr = t
	return p.pullNext()
}

func (p *Parser) pullNext() error {
	if p.curr.Type == lexer.EOF {
		p.next = p.curr
		return nil
	}

	t, ok := <-p.ch
	if !ok {
		p.next = &lexer.Token{Type: lexer.EOF}
		return nil
	}
	if t.Err != nil {
		return t.Err
	}
	if t.Type == lexer.Illegal {
		return newParseErrorf(t.Line, t.Col, "illegal token: %s", t)
	}

	p.next = t

	return nil
}

func (p *Parser) advance() error {
	if p.curr.Type == lexer.EOF {
		return nil
	}
	p.curr = p.next
	return p.pullNext()
}

func (p *Parser) skipComments() error {
	for p.curr.Type == lexer.Comment {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) readForm() (value.Value, error) {
	switch p.curr.Type {
	case lexer.LeftParen:
		items, err := p.readSeq(lexer.RightParen)
		if err != nil {
			return nil, err
		}
		return value.List(items), nil
	case lexer.LeftBracket:
		items, err := p.readSeq(lexer.RightBracket)
		if err != nil {
			return nil, err
		}
		return value.Vector(items), nil
	case lexer.LeftBrace:
		return p.readHashMap()
	case lexer.Quote:
		return p.readWrapped("quote")
	case lexer.Quasiquote:
		return p.readWrapped("quasiquote")
	case lexer.Unquote:
		return p.readWrapped("unquote")
	case lexer.SpliceUnquote:
		return p.readWrapped("splice-unquote")
	case lexer.Deref:
		return p.readWrapped("deref")
	case lexer.StringLit:
		v := value.String(p.curr.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil
	case lexer.Atom:
		return p.readAtom()
	case lexer.Illegal:
		return nil, newParseErrorf(p.curr.Line, p.curr.Col, "illegal token: %s", p.curr)
	default:
		err := newParseErrorf(p.curr.Line, p.curr.Col, "unexpected %s", p.curr)
		// Consume the offending token so the next ReadForm call does not
		// fail on it again.
		if advErr := p.advance(); advErr != nil {
			return nil, advErr
		}
		return nil, err
	}
}

func (p *Parser) readSeq(closeTok lexer.TokenType) ([]value.Value, error) {
	line, col := p.curr.Line, p.curr.Col
	if err := p.advance(); err != nil {
		return nil, err
	}

	var items []value.Value
	for {
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.curr.Type == lexer.EOF {
			return nil, newParseErrorf(line, col, "unexpected end of input inside form")
		}
		if p.curr.Type == closeTok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return items, nil
		}

		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (p *Parser) readHashMap() (value.Value, error) {
	line, col := p.curr.Line, p.curr.Col
	if err := p.advance(); err != nil {
		return nil, err
	}

	m := value.HashMap{}
	for {
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.curr.Type == lexer.EOF {
			return nil, newParseErrorf(line, col, "unexpected end of input inside hash-map")
		}
		if p.curr.Type == lexer.RightBrace {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return m, nil
		}

		keyLine, keyCol := p.curr.Line, p.curr.Col
		keyVal, err := p.readForm()
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(value.String)
		if !ok {
			return nil, newParseErrorf(keyLine, keyCol, "hash-map keys must be strings or keywords")
		}

		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.curr.Type == lexer.EOF || p.curr.Type == lexer.RightBrace {
			return nil, newParseErrorf(line, col, "hash-map literal has an odd number of forms")
		}

		val, err := p.readForm()
		if err != nil {
			return nil, err
		}
		m[key] = val
	}
}

func (p *Parser) readWrapped(name string) (value.Value, error) {
	line, col := p.curr.Line, p.curr.Col
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.curr.Type == lexer.EOF {
		return nil, newParseErrorf(line, col, "unexpected end of input after reader macro %s", name)
	}

	inner, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return value.List{value.Symbol(name), inner}, nil
}

func (p *Parser) readAtom() (value.Value, error) {
	text := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value.Int(n), nil
	}

	switch text {
	case "nil":
		return value.NilValue, nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}

	if strings.HasPrefix(text, ":") {
		return value.NewKeyword(text[1:]), nil
	}

	return value.Symbol(text), nil
}
