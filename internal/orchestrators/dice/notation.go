package dice

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	maxDiceCount = 100
	maxDieSize   = 1000
)

// DiceTerm is NdM, or a flat modifier when Size is 0. Sign is +1 or -1.
type DiceTerm struct {
	Sign  int
	Count int
	Size  int
	Flat  int
}

// Notation is a parsed roll expression like "2d6+1d4-1"
type Notation struct {
	Terms []DiceTerm
}

// Modifier sums the flat terms
func (n Notation) Modifier() int {
	total := 0
	for _, t := range n.Terms {
		if t.Size == 0 {
			total += t.Sign * t.Flat
		}
	}
	return total
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `\d*d\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Op", Pattern: `[+-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// expression is the grammar: an optionally signed operand followed by
// signed operands
type expression struct {
	Sign  string           `parser:"@Op?"`
	First *operand         `parser:"@@"`
	Rest  []*signedOperand `parser:"@@*"`
}

type signedOperand struct {
	Op      string   `parser:"@Op"`
	Operand *operand `parser:"@@"`
}

type operand struct {
	Dice string `parser:"  @Dice"`
	Flat string `parser:"| @Int"`
}

var notationParser = participle.MustBuild[expression](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// ParseNotation accepts sums of XdY and integer terms. A missing count
// means one die.
func ParseNotation(s string) (Notation, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Notation{}, errors.InvalidArgument("dice notation is required")
	}

	expr, err := notationParser.ParseString("", in)
	if err != nil {
		return Notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY[+/-N])", s)
	}

	var n Notation
	first, err := expr.First.term(expr.Sign, s)
	if err != nil {
		return Notation{}, err
	}
	n.Terms = append(n.Terms, first)
	for _, r := range expr.Rest {
		t, err := r.Operand.term(r.Op, s)
		if err != nil {
			return Notation{}, err
		}
		n.Terms = append(n.Terms, t)
	}
	return n, nil
}

func (o *operand) term(op, notation string) (DiceTerm, error) {
	t := DiceTerm{Sign: 1}
	if op == "-" {
		t.Sign = -1
	}
	if o.Dice == "" {
		t.Flat, _ = strconv.Atoi(o.Flat)
		return t, nil
	}

	count, size, _ := strings.Cut(o.Dice, "d")
	t.Count = 1
	if count != "" {
		t.Count, _ = strconv.Atoi(count)
	}
	t.Size, _ = strconv.Atoi(size)
	if t.Count <= 0 || t.Size <= 0 {
		return DiceTerm{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if t.Count > maxDiceCount || t.Size > maxDieSize {
		return DiceTerm{}, errors.InvalidArgumentf("too many dice in notation: %s", notation)
	}
	return t, nil
}
