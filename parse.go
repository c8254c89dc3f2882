// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// maxNestingDepth is how deeply objects and arrays may nest before the
// parser gives up, bounding recursion on adversarial input.
const maxNestingDepth = 10000

// ParseOptions configures the parser. The zero value accepts comments,
// interns strings into a pool private to the call, and reports syntax
// errors through DefaultReport.
type ParseOptions struct {
	// RejectComments makes // and /* */ comments a syntax error,
	// restricting the input to RFC 8259 JSON.
	RejectComments bool

	// DisableInterning allocates every key and string value separately
	// instead of deduplicating them through a Pool.
	DisableInterning bool

	// Pool, if non-nil, is the interning pool to use, letting several
	// documents share one set of strings. Ignored under DisableInterning.
	Pool *Pool

	// UnbalancedPool carries over to the Unbalanced field of a pool
	// created by the parser. Ignored when Pool is set.
	UnbalancedPool bool

	// Report, if non-nil, is called once with the line number and message
	// of a syntax error, before Parse returns it. If nil, DefaultReport
	// is used; set Report to a no-op function to suppress reporting.
	Report func(line int, msg string)
}

var errorLogger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

// DefaultReport logs syntax errors to standard error.
var DefaultReport = func(line int, msg string) {
	_ = level.Error(errorLogger).Log("line", line, "msg", msg)
}

// Parse parses a single JSON value with the default options.
// See ParseOptions.Parse.
func Parse(in []byte) (*Value, error) {
	return ParseOptions{}.Parse(in)
}

// ParseString is like Parse for string input.
func ParseString(in string) (*Value, error) {
	return ParseOptions{}.ParseString(in)
}

// Parse parses in, which must hold exactly one JSON value, possibly
// surrounded by whitespace and comments. A leading UTF-8 byte order mark
// is skipped. On success the caller owns the returned Value's reference;
// on error no value is returned and everything built so far is released.
// Syntax errors have type *SyntaxError and match Error under errors.Is.
func (o ParseOptions) Parse(in []byte) (*Value, error) {
	l := newLexer(in, !o.RejectComments)
	defer l.free()
	p := &parser{lexer: l, opts: o}
	if !o.DisableInterning {
		if p.pool = o.Pool; p.pool == nil {
			p.pool = &Pool{Unbalanced: o.UnbalancedPool}
		}
	}
	if err := p.next(); err != nil {
		return nil, p.fail(err)
	}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, p.fail(err)
	}
	if p.kind != 0 {
		v.Release()
		return nil, p.fail(p.errf("unexpected data after top-level value"))
	}
	return v, nil
}

// ParseString is like Parse for string input.
func (o ParseOptions) ParseString(in string) (*Value, error) {
	return o.Parse([]byte(in))
}

type parser struct {
	*lexer
	pool *Pool
	opts ParseOptions
}

func (p *parser) fail(err error) error {
	if serr, ok := err.(*SyntaxError); ok {
		report := p.opts.Report
		if report == nil {
			report = DefaultReport
		}
		report(serr.Line, serr.str)
	}
	return err
}

func (p *parser) intern(s string) *istr {
	if p.pool == nil {
		return makeIstr(s)
	}
	return p.pool.intern(s)
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > maxNestingDepth {
		return nil, p.errf("exceeded max nesting depth of %d", maxNestingDepth)
	}
	switch p.kind {
	case 'n', 't', 'f':
		var v *Value
		switch p.kind {
		case 'n':
			v = Null()
		case 't':
			v = True()
		default:
			v = False()
		}
		if err := p.next(); err != nil {
			v.Release()
			return nil, err
		}
		return v, nil
	case '0':
		v := NewNumber(p.num)
		if err := p.next(); err != nil {
			v.Release()
			return nil, err
		}
		return v, nil
	case '"':
		v := newValue('"')
		v.str = p.intern(string(p.buf))
		if err := p.next(); err != nil {
			v.Release()
			return nil, err
		}
		return v, nil
	case '{':
		return p.parseObject(depth)
	case '[':
		return p.parseArray(depth)
	default:
		// Whatever remains is structural punctuation or end of input.
		return nil, p.errf("missing value")
	}
}

func (p *parser) parseObject(depth int) (*Value, error) {
	v := NewObject()
	if err := p.next(); err != nil {
		v.Release()
		return nil, err
	}
	if p.kind != '}' {
		for {
			if p.kind != '"' {
				v.Release()
				return nil, p.errf("string expected")
			}
			key := p.intern(string(p.buf))
			if err := p.next(); err != nil {
				key.release()
				v.Release()
				return nil, err
			}
			if p.kind != ':' {
				key.release()
				v.Release()
				return nil, p.errf("':' expected")
			}
			if err := p.next(); err != nil {
				key.release()
				v.Release()
				return nil, err
			}
			x, err := p.parseValue(depth + 1)
			if err != nil {
				key.release()
				v.Release()
				return nil, err
			}
			v.obj.put(key, x)
			if p.kind != ',' {
				break
			}
			if err := p.next(); err != nil {
				v.Release()
				return nil, err
			}
		}
	}
	if p.kind != '}' {
		v.Release()
		return nil, p.errf("'}' expected")
	}
	if err := p.next(); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

func (p *parser) parseArray(depth int) (*Value, error) {
	v := NewArray()
	if err := p.next(); err != nil {
		v.Release()
		return nil, err
	}
	if p.kind != ']' {
		for {
			x, err := p.parseValue(depth + 1)
			if err != nil {
				v.Release()
				return nil, err
			}
			v.arr.push(x)
			if p.kind != ',' {
				break
			}
			if err := p.next(); err != nil {
				v.Release()
				return nil, err
			}
		}
	}
	if p.kind != ']' {
		v.Release()
		return nil, p.errf("']' expected")
	}
	if err := p.next(); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}
