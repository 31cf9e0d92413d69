package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonwraymond/configsecret/value"
)

// ParseRON decodes a Rusty Object Notation document.
//
// Structs (named or anonymous) and maps become Maps, lists and tuples become
// Seqs, unit and None become Null, Some(x) unwraps to x, and unit enum
// variants become their name as a String. Inner attributes such as
// #![enable(implicit_some)] are skipped.
func ParseRON(data []byte) (value.Value, error) {
	p := &ronParser{src: string(data)}
	if err := p.skipAttributes(); err != nil {
		return value.Value{}, p.wrap(err)
	}
	v, err := p.value()
	if err != nil {
		return value.Value{}, p.wrap(err)
	}
	if err := p.skipSpace(); err != nil {
		return value.Value{}, p.wrap(err)
	}
	if !p.eof() {
		return value.Value{}, p.wrap(errors.New("unexpected data after top-level value"))
	}
	return v, nil
}

type ronParser struct {
	src string
	pos int
}

func (p *ronParser) wrap(err error) error {
	line := 1 + strings.Count(p.src[:p.pos], "\n")
	return fmt.Errorf("ron: line %d: %w", line, err)
}

func (p *ronParser) eof() bool { return p.pos >= len(p.src) }

func (p *ronParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *ronParser) skipSpace() error {
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "//"):
			end := strings.IndexByte(p.src[p.pos:], '\n')
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end + 1
			}
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			if err := p.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// Block comments nest.
func (p *ronParser) skipBlockComment() error {
	depth := 0
	for !p.eof() {
		switch {
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			depth++
			p.pos += 2
		case strings.HasPrefix(p.src[p.pos:], "*/"):
			depth--
			p.pos += 2
			if depth == 0 {
				return nil
			}
		default:
			p.pos++
		}
	}
	return errors.New("unterminated block comment")
}

func (p *ronParser) skipAttributes() error {
	for {
		if err := p.skipSpace(); err != nil {
			return err
		}
		if !strings.HasPrefix(p.src[p.pos:], "#![") {
			return nil
		}
		end := strings.IndexByte(p.src[p.pos:], ']')
		if end < 0 {
			return errors.New("unterminated attribute")
		}
		// Attribute arguments use parentheses, so the first ']' closes it.
		p.pos += end + 1
	}
}

func (p *ronParser) expect(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.peek() != c {
		if p.eof() {
			return fmt.Errorf("expected %q, got end of input", c)
		}
		return fmt.Errorf("expected %q, got %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *ronParser) value() (value.Value, error) {
	if err := p.skipSpace(); err != nil {
		return value.Value{}, err
	}
	if p.eof() {
		return value.Value{}, errors.New("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '"':
		s, err := p.quoted('"')
		return value.String(s), err
	case c == '\'':
		s, err := p.quoted('\'')
		return value.String(s), err
	case c == 'r' && p.isRawString():
		s, err := p.rawString()
		return value.String(s), err
	case c == '[':
		return p.list()
	case c == '{':
		return p.mapping()
	case c == '(':
		return p.parens()
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.identValue()
	default:
		return value.Value{}, fmt.Errorf("unexpected character %q", c)
	}
}

func (p *ronParser) list() (value.Value, error) {
	p.pos++ // '['
	var items []value.Value
	for {
		if err := p.skipSpace(); err != nil {
			return value.Value{}, err
		}
		if p.peek() == ']' {
			p.pos++
			return value.Seq(items...), nil
		}
		item, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)
		done, err := p.separator(']')
		if err != nil {
			return value.Value{}, err
		}
		if done {
			return value.Seq(items...), nil
		}
	}
}

func (p *ronParser) mapping() (value.Value, error) {
	p.pos++ // '{'
	entries := make(map[string]value.Value)
	for {
		if err := p.skipSpace(); err != nil {
			return value.Value{}, err
		}
		if p.peek() == '}' {
			p.pos++
			return value.Map(entries), nil
		}
		key, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		if err := p.expect(':'); err != nil {
			return value.Value{}, err
		}
		v, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		entries[ronKey(key)] = v
		done, err := p.separator('}')
		if err != nil {
			return value.Value{}, err
		}
		if done {
			return value.Map(entries), nil
		}
	}
}

// parens parses unit "()", a struct body "(a: 1, b: 2)" or a tuple "(1, 2)".
func (p *ronParser) parens() (value.Value, error) {
	p.pos++ // '('
	if err := p.skipSpace(); err != nil {
		return value.Value{}, err
	}
	if p.peek() == ')' {
		p.pos++
		return value.Null(), nil
	}
	if p.atField() {
		return p.structBody()
	}
	var items []value.Value
	for {
		if err := p.skipSpace(); err != nil {
			return value.Value{}, err
		}
		if p.peek() == ')' {
			p.pos++
			return value.Seq(items...), nil
		}
		item, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)
		done, err := p.separator(')')
		if err != nil {
			return value.Value{}, err
		}
		if done {
			return value.Seq(items...), nil
		}
	}
}

func (p *ronParser) structBody() (value.Value, error) {
	fields := make(map[string]value.Value)
	for {
		if err := p.skipSpace(); err != nil {
			return value.Value{}, err
		}
		if p.peek() == ')' {
			p.pos++
			return value.Map(fields), nil
		}
		if !p.atField() {
			return value.Value{}, errors.New("expected struct field")
		}
		name := p.ident()
		if err := p.expect(':'); err != nil {
			return value.Value{}, err
		}
		v, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		fields[name] = v
		done, err := p.separator(')')
		if err != nil {
			return value.Value{}, err
		}
		if done {
			return value.Map(fields), nil
		}
	}
}

// separator consumes a ',' or the closing delimiter. It reports true when
// the collection was closed.
func (p *ronParser) separator(closing byte) (bool, error) {
	if err := p.skipSpace(); err != nil {
		return false, err
	}
	switch p.peek() {
	case ',':
		p.pos++
		return false, nil
	case closing:
		p.pos++
		return true, nil
	}
	if p.eof() {
		return false, fmt.Errorf("expected ',' or %q, got end of input", closing)
	}
	return false, fmt.Errorf("expected ',' or %q, got %q", closing, p.peek())
}

// atField reports whether the input continues with "ident:" (not "ident::").
func (p *ronParser) atField() bool {
	start := p.pos
	defer func() { p.pos = start }()

	if p.eof() || !isIdentStart(p.peek()) {
		return false
	}
	p.ident()
	if err := p.skipSpace(); err != nil {
		return false
	}
	return p.peek() == ':' && !strings.HasPrefix(p.src[p.pos:], "::")
}

func (p *ronParser) ident() string {
	start := p.pos
	if strings.HasPrefix(p.src[p.pos:], "r#") {
		p.pos += 2
		start = p.pos
	}
	for !p.eof() && isIdentPart(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *ronParser) identValue() (value.Value, error) {
	name := p.ident()
	switch name {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	case "None":
		return value.Null(), nil
	case "inf":
		return value.Float(math.Inf(1)), nil
	case "NaN":
		return value.Float(math.NaN()), nil
	case "Some":
		if err := p.expect('('); err != nil {
			return value.Value{}, err
		}
		inner, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		if err := p.skipSpace(); err != nil {
			return value.Value{}, err
		}
		if p.peek() == ',' {
			p.pos++
		}
		if err := p.expect(')'); err != nil {
			return value.Value{}, err
		}
		return inner, nil
	}
	start := p.pos
	if err := p.skipSpace(); err != nil {
		return value.Value{}, err
	}
	if p.peek() == '(' {
		return p.parens()
	}
	p.pos = start
	return value.String(name), nil
}

func (p *ronParser) number() (value.Value, error) {
	start := p.pos
	neg := false
	if c := p.peek(); c == '-' || c == '+' {
		neg = c == '-'
		p.pos++
	}
	if p.peek() == 'i' && strings.HasPrefix(p.src[p.pos:], "inf") {
		p.pos += 3
		if neg {
			return value.Float(math.Inf(-1)), nil
		}
		return value.Float(math.Inf(1)), nil
	}

	base := 10
	switch {
	case strings.HasPrefix(p.src[p.pos:], "0x"):
		base = 16
	case strings.HasPrefix(p.src[p.pos:], "0b"):
		base = 2
	case strings.HasPrefix(p.src[p.pos:], "0o"):
		base = 8
	}
	if base != 10 {
		p.pos += 2
		digitsStart := p.pos
		for !p.eof() && (isHexDigit(p.peek()) || p.peek() == '_') {
			p.pos++
		}
		digits := strings.ReplaceAll(p.src[digitsStart:p.pos], "_", "")
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("invalid integer %q", p.src[start:p.pos])
		}
		return signedInt(u, neg, p.src[start:p.pos])
	}

	isFloat := false
scan:
	for !p.eof() {
		c := p.peek()
		switch {
		case isDigit(c) || c == '_':
		case c == '.' || c == 'e' || c == 'E':
			isFloat = true
		case (c == '-' || c == '+') && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E'):
		default:
			break scan
		}
		p.pos++
	}
	text := strings.ReplaceAll(p.src[start:p.pos], "_", "")
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("invalid float %q", text)
		}
		return value.Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("invalid integer %q", text)
	}
	return value.Int(i), nil
}

func signedInt(u uint64, neg bool, text string) (value.Value, error) {
	if neg {
		if u > math.MaxInt64+1 {
			return value.Value{}, fmt.Errorf("integer %q out of range", text)
		}
		return value.Int(int64(-u)), nil
	}
	if u > math.MaxInt64 {
		return value.Value{}, fmt.Errorf("integer %q out of range", text)
	}
	return value.Int(int64(u)), nil
}

func (p *ronParser) isRawString() bool {
	rest := p.src[p.pos+1:]
	return strings.HasPrefix(strings.TrimLeft(rest, "#"), `"`)
}

func (p *ronParser) rawString() (string, error) {
	p.pos++ // 'r'
	hashes := 0
	for p.peek() == '#' {
		hashes++
		p.pos++
	}
	p.pos++ // '"'
	terminator := `"` + strings.Repeat("#", hashes)
	end := strings.Index(p.src[p.pos:], terminator)
	if end < 0 {
		return "", errors.New("unterminated raw string")
	}
	s := p.src[p.pos : p.pos+end]
	p.pos += end + len(terminator)
	return s, nil
}

func (p *ronParser) quoted(quote byte) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return "", errors.New("unterminated string")
		}
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *ronParser) escape(b *strings.Builder) error {
	if p.eof() {
		return errors.New("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case '0':
		b.WriteByte(0)
	case '\\', '"', '\'':
		b.WriteByte(c)
	case 'x':
		if p.pos+2 > len(p.src) {
			return errors.New("truncated \\x escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid \\x escape %q", p.src[p.pos:p.pos+2])
		}
		b.WriteRune(rune(n))
		p.pos += 2
	case 'u':
		if p.peek() != '{' {
			return errors.New("invalid \\u escape")
		}
		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 0 {
			return errors.New("unterminated \\u escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return fmt.Errorf("invalid \\u escape %q", p.src[p.pos:p.pos+end+1])
		}
		b.WriteRune(rune(n))
		p.pos += end + 1
	default:
		return fmt.Errorf("unknown escape \\%c", c)
	}
	return nil
}

func ronKey(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindInt:
		i, _ := v.AsInt()
		return strconv.FormatInt(i, 10)
	default:
		return v.String()
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c < utf8.RuneSelf && unicode.IsLetter(rune(c)))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
