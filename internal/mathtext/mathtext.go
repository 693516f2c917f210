// Package mathtext renders the LaTeX subset produced by the paper
// generator into plain Unicode suitable for a terminal. Rendering is
// best effort: anything the translator does not understand passes
// through unchanged, and Render never fails.
package mathtext

import (
	"strings"
	"unicode"
)

// mathDelims pairs each opening math delimiter with its closer.
// $$ precedes $ so the longer opener wins on a tie.
var mathDelims = [][2]string{
	{"$$", "$$"},
	{"$", "$"},
	{`\(`, `\)`},
	{`\[`, `\]`},
}

// Render translates inline ($...$, \(...\)) and display ($$...$$,
// \[...\]) math in s to Unicode. Backends do not always honor the
// prompt's dollar-sign convention, so the KaTeX-style delimiters are
// accepted too. Text outside math delimiters is returned untouched.
// An unterminated delimiter leaves the rest of the string as-is.
func Render(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for {
		start, opener, closer := nextDelim(s)
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		s = s[start:]

		rest := s[len(opener):]
		end := strings.Index(rest, closer)
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}

		b.WriteString(renderMath(rest[:end]))
		s = rest[end+len(closer):]
	}
}

// nextDelim locates the earliest opening math delimiter in s.
func nextDelim(s string) (start int, opener, closer string) {
	start = -1
	for _, d := range mathDelims {
		if i := strings.Index(s, d[0]); i >= 0 && (start < 0 || i < start) {
			start, opener, closer = i, d[0], d[1]
		}
	}
	return start, opener, closer
}

// symbols maps argument-less commands to their Unicode form.
var symbols = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "rho": "ρ", "sigma": "σ", "tau": "τ", "phi": "φ",
	"varphi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	"times": "×", "cdot": "·", "div": "÷", "pm": "±", "mp": "∓",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"approx": "≈", "equiv": "≡", "propto": "∝", "sim": "~",
	"to": "→", "rightarrow": "→", "Rightarrow": "⇒", "leftarrow": "←",
	"infty": "∞", "partial": "∂", "nabla": "∇", "int": "∫",
	"sum": "Σ", "prod": "Π", "deg": "°", "circ": "°", "degree": "°",
	"angle": "∠", "perp": "⊥", "parallel": "∥", "in": "∈",
	"cup": "∪", "cap": "∩", "subset": "⊂", "forall": "∀", "exists": "∃",
	"ldots": "…", "cdots": "⋯", "hbar": "ℏ", "ell": "ℓ",

	// Spacing and structure commands collapse to a space or nothing.
	"quad": " ", "qquad": "  ", ",": " ", ";": " ", " ": " ",
	"left": "", "right": "", "displaystyle": "", "limits": "",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'o': 'ₒ', 'x': 'ₓ', 'n': 'ₙ',
	'm': 'ₘ', 'k': 'ₖ', 'p': 'ₚ', 's': 'ₛ', 't': 'ₜ',
}

// renderMath translates one math segment (without delimiters).
func renderMath(expr string) string {
	var b strings.Builder
	rs := []rune(expr)

	for i := 0; i < len(rs); {
		switch rs[i] {
		case '\\':
			name, arg1, arg2, next := parseCommand(rs, i)
			b.WriteString(expandCommand(name, arg1, arg2))
			i = next
		case '^':
			body, next := parseScript(rs, i+1)
			b.WriteString(mapScript(body, superscripts, "^"))
			i = next
		case '_':
			body, next := parseScript(rs, i+1)
			b.WriteString(mapScript(body, subscripts, "_"))
			i = next
		case '{', '}':
			i++
		default:
			b.WriteRune(rs[i])
			i++
		}
	}
	return b.String()
}

// parseCommand reads a backslash command starting at rs[i] and up to
// two brace-delimited arguments. It returns the command name, the
// arguments (empty when absent), and the index after everything
// consumed.
func parseCommand(rs []rune, i int) (name, arg1, arg2 string, next int) {
	i++ // skip the backslash
	if i >= len(rs) {
		return "", "", "", i
	}

	// Single-rune commands like \, and \; have no letters.
	if !unicode.IsLetter(rs[i]) {
		return string(rs[i]), "", "", i + 1
	}

	start := i
	for i < len(rs) && unicode.IsLetter(rs[i]) {
		i++
	}
	name = string(rs[start:i])

	if wantsArgs(name) {
		arg1, i = parseGroup(rs, i)
		if name == "frac" {
			arg2, i = parseGroup(rs, i)
		}
	}
	return name, arg1, arg2, i
}

func wantsArgs(name string) bool {
	switch name {
	case "frac", "sqrt", "text", "mathrm", "mathbf", "mathit", "vec", "overline", "hat", "bar":
		return true
	}
	return false
}

// parseGroup reads one {...} group starting at rs[i], handling nested
// braces. Without a brace it reads a single rune.
func parseGroup(rs []rune, i int) (string, int) {
	if i >= len(rs) {
		return "", i
	}
	if rs[i] != '{' {
		return string(rs[i]), i + 1
	}

	depth := 1
	start := i + 1
	for j := start; j < len(rs); j++ {
		switch rs[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(rs[start:j]), j + 1
			}
		}
	}
	// Unterminated group: take the rest.
	return string(rs[start:]), len(rs)
}

// parseScript reads the body of a superscript or subscript starting
// at rs[i] (just past the ^ or _).
func parseScript(rs []rune, i int) (string, int) {
	if i < len(rs) && rs[i] == '\\' {
		name, arg1, arg2, next := parseCommand(rs, i)
		return expandCommand(name, arg1, arg2), next
	}
	body, next := parseGroup(rs, i)
	return renderMath(body), next
}

func expandCommand(name, arg1, arg2 string) string {
	switch name {
	case "frac":
		return fraction(renderMath(arg1), renderMath(arg2))
	case "sqrt":
		inner := renderMath(arg1)
		if isSimpleTerm(inner) {
			return "√" + inner
		}
		return "√(" + inner + ")"
	case "text", "mathrm", "mathbf", "mathit":
		return arg1
	case "vec":
		return renderMath(arg1) + "⃗"
	case "overline", "bar":
		return renderMath(arg1) + "̄"
	case "hat":
		return renderMath(arg1) + "̂"
	}
	if s, ok := symbols[name]; ok {
		return s
	}
	// Unknown command: pass it through so nothing is lost.
	return "\\" + name
}

// fraction renders num/den, parenthesizing compound operands.
func fraction(num, den string) string {
	if !isSimpleTerm(num) {
		num = "(" + num + ")"
	}
	if !isSimpleTerm(den) {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

// isSimpleTerm reports whether s can stand alone next to / or √
// without parentheses.
func isSimpleTerm(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune("+-*/=×·±", r) {
			return false
		}
	}
	return s != ""
}

// mapScript converts a script body to Unicode super/subscript runes.
// When any rune has no Unicode form the whole body falls back to the
// caret or underscore notation.
func mapScript(body string, table map[rune]rune, prefix string) string {
	if body == "" {
		return prefix
	}
	// 45^\circ reads better as 45° than as a superscript.
	if prefix == "^" && body == "°" {
		return "°"
	}
	var b strings.Builder
	for _, r := range body {
		m, ok := table[r]
		if !ok {
			if len([]rune(body)) == 1 {
				return prefix + body
			}
			return prefix + "(" + body + ")"
		}
		b.WriteRune(m)
	}
	return b.String()
}
