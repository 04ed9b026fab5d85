package svg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	gl "github.com/rustyoz/genericlexer"
)

// lexable rewrites s into a form genericlexer reads to the end. The lexer
// stops without an error at a number that starts with '.', so ".5" becomes
// "0.5" and "1.5.5" becomes "1.5 0.5". An 'E' exponent is lowercased. With
// splitLetters every letter outside a number is set apart, so "zM" lexes
// as two commands. Runes that are not digits, letters, signs, dots, commas,
// whitespace or in punct are rejected.
func lexable(s, punct string, splitLetters bool) (string, error) {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var inNumber, seenDot, seenExp, afterExp bool
	for off, r := range s {
		exp := afterExp
		afterExp = false
		switch {
		case r >= '0' && r <= '9':
			if !inNumber {
				inNumber, seenDot, seenExp = true, false, false
			}
			b.WriteRune(r)
		case r == '.':
			if inNumber && !seenDot && !seenExp {
				seenDot = true
				b.WriteByte('.')
				break
			}
			if inNumber {
				b.WriteByte(' ')
			}
			b.WriteString("0.")
			inNumber, seenDot, seenExp = true, true, false
		case r == '+' || r == '-':
			if !exp {
				inNumber, seenDot, seenExp = true, false, false
			}
			b.WriteRune(r)
		case (r == 'e' || r == 'E') && inNumber && !seenExp:
			seenExp, afterExp = true, true
			b.WriteByte('e')
		case unicode.IsLetter(r):
			inNumber = false
			if splitLetters {
				b.WriteByte(' ')
				b.WriteRune(r)
				b.WriteByte(' ')
			} else {
				b.WriteRune(r)
			}
		case r == ',':
			inNumber = false
			b.WriteByte(',')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f':
			// the lexer only knows space, tab and newline
			inNumber = false
			b.WriteByte(' ')
		case strings.ContainsRune(punct, r):
			inNumber = false
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("unexpected %q at offset %d", r, off)
		}
	}
	return b.String(), nil
}

// lex starts a lexer over src. stop drains the remaining items so the
// lexer goroutine exits.
func lex(name, src string) (l *gl.Lexer, stop func()) {
	l, items := gl.Lex(name, src)
	return l, func() {
		for range items {
		}
	}
}

func skipSeparators(l *gl.Lexer) {
	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()
}

// readNumbers consumes numbers separated by whitespace and/or commas up to
// the first item that is not a number.
func readNumbers(l *gl.Lexer) ([]float64, error) {
	var nums []float64
	for {
		skipSeparators(l)
		if l.PeekItem().Type != gl.ItemNumber {
			return nums, nil
		}
		n, err := parseNumber(l.NextItem())
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number: %w", err)
	}
	return n, nil
}

// parseNumberList parses a whole attribute of numbers such as a polyline's
// points.
func parseNumberList(name, s string) ([]float64, error) {
	src, err := lexable(s, "", false)
	if err != nil {
		return nil, err
	}
	l, stop := lex(name, src)
	defer stop()
	nums, err := readNumbers(l)
	if err != nil {
		return nil, err
	}
	if i := l.NextItem(); i.Type != gl.ItemEOS {
		return nil, fmt.Errorf("expected number, got %q", i.Value)
	}
	return nums, nil
}
