package mathtext

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "no math here", "no math here"},
		{"empty", "", ""},
		{"inline delimiters stripped", "speed is $v$ here", "speed is v here"},
		{"display delimiters stripped", "$$E = mc^2$$", "E = mc²"},
		{"superscript digits", "$x^2 + y^{10}$", "x² + y¹⁰"},
		{"superscript fallback", "$e^{i\\pi}$", "e^(iπ)"},
		{"subscript", "$v_0$ and $a_{max}$", "v₀ and aₘₐₓ"},
		{"fraction simple", "$\\frac{1}{2}$", "1/2"},
		{"fraction compound", "$\\frac{a+b}{2}$", "(a+b)/2"},
		{"nested fraction", "$\\frac{1}{\\frac{1}{x}}$", "1/(1/x)"},
		{"sqrt simple", "$\\sqrt{2}$", "√2"},
		{"sqrt compound", "$\\sqrt{b^2 - 4ac}$", "√(b² - 4ac)"},
		{"greek and operators", "$\\theta = \\pi \\times 2$", "θ = π × 2"},
		{"comparison symbols", "$a \\leq b \\neq c$", "a ≤ b ≠ c"},
		{"arrow and infinity", "$x \\to \\infty$", "x → ∞"},
		{"text command", "$5\\text{ m/s}$", "5 m/s"},
		{"left right stripped", "$\\left( x \\right)$", "( x )"},
		{"spacing commands", "$a\\,b$", "a b"},
		{"degree", "$45^\\circ$", "45°"},
		{"unknown command preserved", "$\\wombat$", "\\wombat"},
		{"unterminated math preserved", "cost is $5 total", "cost is $5 total"},
		{"braces stripped", "${x}$", "x"},
		{"vector accent", "$\\vec{F}$", "F⃗"},
		{"mixed prose and math", "If $u = 0$ then $s = \\frac{1}{2}at^2$.", "If u = 0 then s = 1/2at²."},
		{"paren delimiters stripped", `speed is \(v^2\) here`, "speed is v² here"},
		{"bracket delimiters stripped", `\[E = mc^2\]`, "E = mc²"},
		{"mixed delimiter styles", `\(v_0\) and $a_{max}$`, "v₀ and aₘₐₓ"},
		{"unterminated paren preserved", `take \(x^2 as`, `take \(x^2 as`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.in); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderNeverPanics(t *testing.T) {
	inputs := []string{
		"$\\frac{1}$", "$\\frac$", "$x^$", "$_$", "$\\$", "$$",
		"$\\sqrt$", "$\\frac{a}{", "$^2$", "${{{$", "\\", "$",
		`\(`, `\[x^2`, `\(\)`, `\[\]`,
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Render(%q) panicked: %v", in, r)
				}
			}()
			_ = Render(in)
		}()
	}
}
