package lexer

import (
	"bufio"
	"bytes"
	"io"

	"github.com/nof-sh/cpq/cpq/diag"
)

var eof = rune(0)

// Registrar records identifiers as they are scanned.
type Registrar interface {
	Register(name string)
}

// Scanner represents a lexical scanner.
type Scanner struct {
	Reader      *bufio.Reader
	names       Registrar
	report      diag.Reporter
	position    diag.Position
	eof         bool
	depth       int
	errors      int
	bufferIndex int
	bufferSize  int
	buffer      [1024]struct {
		ch       rune
		position diag.Position
	}
	DisablePositions bool // for testing.
}

// NewScanner returns a new instance of Scanner. Every identifier is
// registered with names as soon as it is scanned, and lexical errors go to
// report.
func NewScanner(reader io.Reader, names Registrar, report diag.Reporter) *Scanner {
	return &Scanner{
		Reader: bufio.NewReader(reader),
		names:  names,
		report: report,
	}
}

// Depth returns the current curly bracket nesting depth.
func (s *Scanner) Depth() int {
	return s.depth
}

// Errors returns the number of lexical errors seen so far.
func (s *Scanner) Errors() int {
	return s.errors
}

// read returns the next rune and where it starts. Pushed-back runes are
// replayed first. A read error of any kind yields eof, and "\r\n" or a lone
// '\r' yields a single '\n'.
func (s *Scanner) read() (rune, diag.Position) {
	if s.bufferSize > 0 {
		s.bufferSize--
		return s.curr()
	}

	ch, _, err := s.Reader.ReadRune()
	if err != nil {
		ch = eof
	} else if ch == '\r' {
		if ch, _, err := s.Reader.ReadRune(); err == nil && ch != '\n' {
			_ = s.Reader.UnreadRune()
		}
		ch = '\n'
	}

	// The ring keeps the last len(s.buffer) runes for Unscan.
	s.bufferIndex = (s.bufferIndex + 1) % len(s.buffer)
	buffer := &s.buffer[s.bufferIndex]
	buffer.ch, buffer.position = ch, s.position

	// Repeated reads at eof leave the column where it is.
	if ch == '\n' {
		s.position.Line++
		s.position.Column = 0
	} else if !s.eof {
		s.position.Column++
	}

	if ch == eof {
		s.eof = true
	}

	return s.curr()
}

// curr returns the rune at the read cursor of the ring.
func (s *Scanner) curr() (ch rune, pos diag.Position) {
	bufferIndex := (s.bufferIndex - s.bufferSize + len(s.buffer)) % len(s.buffer)
	buffer := &s.buffer[bufferIndex]

	if s.DisablePositions {
		return buffer.ch, diag.Position{}
	}

	return buffer.ch, buffer.position
}

// Unscan pushes the previously read rune back onto the buffer.
func (s *Scanner) Unscan() {
	s.bufferSize++
}

// Scan returns the next token. Unrecognized characters are reported and
// skipped, so the result is never ILLEGAL.
func (s *Scanner) Scan() Token {
	for {
		tok := s.scan()
		switch tok.TokenType {
		case ILLEGAL:
			s.errors++
			s.report.Report(diag.Errorf(diag.Lexical, tok.Position, "unexpected character %q", tok.Lexeme))
			continue
		case ID:
			s.names.Register(tok.Lexeme)
		case LBRACKET:
			s.depth++
		case RBRACKET:
			s.depth--
		}
		return tok
	}
}

func (s *Scanner) scan() Token {
	// Read the next rune.
	ch, pos := s.read()

	// Skip comments and whitespaces.
	for {
		if ch == '/' {
			ch2, _ := s.read()
			if ch2 == '*' {
				if err := s.skipBlockComment(); err != nil {
					s.errors++
					s.report.Report(diag.Errorf(diag.Lexical, pos, "unterminated comment"))
					return Token{TokenType: EOF, Lexeme: "EOF", Position: pos}
				}
			} else if ch2 == '/' {
				s.skipLineComment()
			} else {
				s.Unscan()
				break
			}
		} else if isWhitespace(ch) {
			s.scanWhitespace()
		} else {
			break
		}

		ch, pos = s.read()
	}

	// If we see a letter then consume as an ID or reserved word.
	if isLetter(ch) {
		s.Unscan()
		return s.scanIdentifier()
	} else if isDigit(ch) {
		s.Unscan()
		return s.scanNumber()
	}

	// Otherwise read the individual character.
	switch ch {
	case eof:
		return Token{TokenType: EOF, Lexeme: "EOF", Position: pos}

	case '>', '<':
		ch2, _ := s.read()
		if ch2 == '=' {
			return Token{TokenType: RELOP, Lexeme: string(ch) + string(ch2), Position: pos}
		}

		s.Unscan()
		return Token{TokenType: RELOP, Lexeme: string(ch), Position: pos}

	case '=':
		ch2, _ := s.read()
		if ch2 == '=' {
			return Token{TokenType: RELOP, Lexeme: "==", Position: pos}
		}

		s.Unscan()
		return Token{TokenType: EQUALS, Lexeme: string(ch), Position: pos}

	case '!':
		ch2, _ := s.read()
		if ch2 == '=' {
			return Token{TokenType: RELOP, Lexeme: "!=", Position: pos}
		}

		s.Unscan()
		return Token{TokenType: NOT, Lexeme: string(ch), Position: pos}

	case '|':
		ch2, _ := s.read()
		if ch2 == '|' {
			return Token{TokenType: OR, Lexeme: "||", Position: pos}
		}

		s.Unscan()
		return Token{TokenType: ILLEGAL, Lexeme: string(ch), Position: pos}

	case '&':
		ch2, _ := s.read()
		if ch2 == '&' {
			return Token{TokenType: AND, Lexeme: "&&", Position: pos}
		}

		s.Unscan()
		return Token{TokenType: ILLEGAL, Lexeme: string(ch), Position: pos}

	case '+', '-':
		return Token{TokenType: ADDOP, Lexeme: string(ch), Position: pos}

	case '*', '/':
		return Token{TokenType: MULOP, Lexeme: string(ch), Position: pos}

	case ';':
		return Token{TokenType: SEMICOLON, Lexeme: string(ch), Position: pos}

	case '(':
		return Token{TokenType: LPAREN, Lexeme: string(ch), Position: pos}

	case ')':
		return Token{TokenType: RPAREN, Lexeme: string(ch), Position: pos}

	case '{':
		return Token{TokenType: LBRACKET, Lexeme: string(ch), Position: pos}

	case '}':
		return Token{TokenType: RBRACKET, Lexeme: string(ch), Position: pos}

	case ',':
		return Token{TokenType: COMMA, Lexeme: string(ch), Position: pos}

	case ':':
		return Token{TokenType: COLON, Lexeme: string(ch), Position: pos}
	}

	return Token{TokenType: ILLEGAL, Lexeme: string(ch), Position: pos}
}

// scanWhitespace skips the run of whitespace after the current rune.
func (s *Scanner) scanWhitespace() {
	for {
		if ch, _ := s.read(); ch == eof {
			break
		} else if !isWhitespace(ch) {
			s.Unscan()
			break
		}
	}
}

// scanIdentifier reads a letter followed by letters and digits, and
// classifies the word as a keyword, a cast or an ID.
func (s *Scanner) scanIdentifier() Token {
	ch, pos := s.read()

	var buf bytes.Buffer
	buf.WriteRune(ch)

	for {
		if ch, _ = s.read(); ch == eof {
			break
		} else if !isLetter(ch) && !isDigit(ch) {
			s.Unscan()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}

	word := buf.String()
	if word == "static" {
		for _, suffix := range []string{"_cast<int>", "_cast<float>"} {
			if s.accept(suffix) {
				return Token{TokenType: CAST, Lexeme: word + suffix, Position: pos}
			}
		}
	}

	if tok, ok := keywords[word]; ok {
		return Token{TokenType: tok, Lexeme: word, Position: pos}
	}

	return Token{TokenType: ID, Lexeme: word, Position: pos}
}

// accept consumes text if the input continues with it. Otherwise nothing is
// consumed.
func (s *Scanner) accept(text string) bool {
	read := 0
	for _, want := range text {
		ch, _ := s.read()
		read++
		if ch != want {
			for ; read > 0; read-- {
				s.Unscan()
			}
			return false
		}
	}
	return true
}

// scanNumber consumes a series of digits with at most one decimal point.
func (s *Scanner) scanNumber() Token {
	var buf bytes.Buffer
	ch, pos := s.read()
	dot := false

	for {
		if ch == '.' && !dot {
			dot = true
		} else if !isDigit(ch) {
			s.Unscan()
			break
		}
		_, _ = buf.WriteRune(ch)
		ch, _ = s.read()
	}

	return Token{TokenType: NUM, Lexeme: buf.String(), Position: pos}
}

// skipBlockComment skips the body of a comment opened by "/*", through the
// closing "*/". Comments do not nest.
func (s *Scanner) skipBlockComment() error {
	afterStar := false
	for {
		ch, _ := s.read()
		switch {
		case ch == eof:
			return io.ErrUnexpectedEOF
		case ch == '/' && afterStar:
			return nil
		}
		afterStar = ch == '*'
	}
}

// skipLineComment skips characters up to the end of the line.
func (s *Scanner) skipLineComment() {
	for {
		if ch, _ := s.read(); ch == '\n' || ch == eof {
			return
		}
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
