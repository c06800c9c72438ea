package rules

import (
	"fmt"
	"strings"
	"testing"

	"codelint/internal/diag"
)

type wantDiag struct {
	line, col int
	msg       string // substring; empty matches anything
}

func runRule(t *testing.T, id, text string) []diag.Diagnostic {
	t.Helper()
	rule, ok := Default().Lookup(id)
	if !ok {
		t.Fatalf("rule %s is not registered", id)
	}
	return Run(&rule, NewUnit(text))
}

func checkDiags(t *testing.T, got []diag.Diagnostic, want []wantDiag) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d:\n%s", len(got), len(want), diag.FormatGoldenDiagnostics(got))
	}
	for i, w := range want {
		d := got[i]
		if d.Line != w.line || d.Column != w.col {
			t.Errorf("diag %d at %d:%d, want %d:%d", i, d.Line, d.Column, w.line, w.col)
		}
		if w.msg != "" && !strings.Contains(d.Message, w.msg) {
			t.Errorf("diag %d message %q does not contain %q", i, d.Message, w.msg)
		}
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		rule string
		text string
		want []wantDiag
	}{
		{"semicolons/run", MultipleSemicolons, "x = 1;;", []wantDiag{{1, 6, "Multiple consecutive"}}},
		{"semicolons/single", MultipleSemicolons, "x = 1;\ny = 2;", nil},

		{"braces/nested", EmptyBraces, "f() {{ g(); }}", []wantDiag{{1, 5, "nested brace"}}},
		{"braces/in string", EmptyBraces, `x = "{{";`, nil},

		{"delims/balanced", MismatchedBraces, "{ ( [ ] ) }", nil},
		{"delims/balanced parens", MismatchedParentheses, "{ ( [ ] ) }", nil},
		{"delims/balanced brackets", MismatchedBrackets, "{ ( [ ] ) }", nil},
		{"delims/unclosed", MismatchedBraces, "{", []wantDiag{{1, 1, "Opening brace without matching closing brace"}}},
		{"delims/stray", MismatchedBraces, "}", []wantDiag{{1, 1, "Closing brace without matching opening brace"}}},
		{"delims/literal", MismatchedBraces, `"{"`, nil},
		{"delims/comment", MismatchedParentheses, "f(); // :)", nil},
		{"delims/innermost", MismatchedBraces, "{\n  {\n}", []wantDiag{{1, 1, "Opening brace"}}},
		{"delims/stray bracket", MismatchedBrackets, "a[0]]", []wantDiag{{1, 5, "Closing bracket"}}},

		{"expr/lone", IncompleteExpression, "void f() {\n  x;\n}", []wantDiag{{2, 1, "Lone variable"}}},
		{"expr/keyword", IncompleteExpression, "while (1) {\n  break;\n}", nil},
		{"expr/declaration", IncompleteExpression, "int a,\n  b;", nil},
		{"expr/binary", IncompleteExpression, "void f() {\n  a + b;\n}", []wantDiag{{2, 1, "not used"}}},
		{"expr/binary consumed", IncompleteExpression, "int r =\n  a + b;", nil},

		{"loop/inclusive", OffByOneLoop, "for (int i = 0; i <= arr.length; i++) {}", []wantDiag{{1, 1, "off-by-one"}}},
		{"loop/other var", OffByOneLoop, "for (int i = 0; j <= arr.length; i++) {}", nil},
		{"loop/keyword-prefixed var", OffByOneLoop, "for (letter = 0; letter <= s.length; letter++) {}", []wantDiag{{1, 1, "off-by-one"}}},
		{"loop/keyword-prefixed var with decl", OffByOneLoop, "for (let variance = 0; variance <= xs.size(); variance++) {}", []wantDiag{{1, 1, ""}}},
		{"loop/exclusive", OffByOneLoop, "for (int i = 0; i < arr.length; i++) {}", nil},

		{"return/missing", MissingReturn, "int add(int a, int b) {\n  int c = a + b;\n}", []wantDiag{{1, 1, "Function 'add'"}}},
		{"return/present", MissingReturn, "int add(int a, int b) {\n  return a + b;\n}", nil},
		{"return/void", MissingReturn, "void run() {\n}", nil},
		{"return/commented", MissingReturn, "int f() {\n  // return 1;\n}", []wantDiag{{1, 1, "Function 'f'"}}},
		{"return/ts", MissingReturn, "function f(): number {\n}", []wantDiag{{1, 1, "Function 'f'"}}},
		{"return/ts void", MissingReturn, "function f(): void {\n}", nil},

		{"catch/braces", EmptyCatch, "try { f(); } catch (e) { }", []wantDiag{{1, 14, "Empty exception"}}},
		{"catch/python", EmptyCatch, "try:\n    f()\nexcept ValueError:\n    pass", []wantDiag{{3, 1, ""}}},
		{"catch/handled", EmptyCatch, "try { f(); } catch (e) { log(e); }", nil},

		{"unreachable/after return", UnreachableCode, "int f() {\n  return 1;\n  x = 2;\n}", []wantDiag{{3, 1, "Unreachable"}}},
		{"unreachable/block ends", UnreachableCode, "if (a) {\n  return 1;\n}\nx = 2;", nil},
		{"unreachable/return in block comment", UnreachableCode, "/*\nreturn value\n*/\nfoo();", nil},
		{"unreachable/skips comments", UnreachableCode, "return 1;\n// note\n\nfoo();", []wantDiag{{4, 1, ""}}},

		{"undeclared/use", UndeclaredVariable, "int main() {\n  int x = 1;\n  y = x + 2;\n  return 0;\n}", []wantDiag{{3, 3, "Variable 'y'"}}},
		{"undeclared/forward only", UndeclaredVariable, "z = 1;\nint z = 2;", []wantDiag{{1, 1, "Variable 'z'"}}},
		{"undeclared/once per line", UndeclaredVariable, "y = y + y;", []wantDiag{{1, 1, "Variable 'y'"}}},
		{"undeclared/member", UndeclaredVariable, "int p = 0;\np.next = p;", nil},
		{"undeclared/string", UndeclaredVariable, "int s = 0;\ns = \"hello world\";", nil},
		{"undeclared/params", UndeclaredVariable, "int sum(int *xs, int n) {\n  return xs[n];\n}", nil},

		{"semicolon/missing", MissingSemicolon, "x = 1", []wantDiag{{1, 5, "Missing semicolon"}}},
		{"semicolon/present", MissingSemicolon, "x = 1;", nil},
		{"semicolon/control", MissingSemicolon, "if (x)\nfor (;;)", nil},
		{"semicolon/continued", MissingSemicolon, "foo(a,", nil},
		{"semicolon/comment", MissingSemicolon, "  x = 1 // note", []wantDiag{{1, 7, ""}}},

		{"trailing/spaces", TrailingWhitespace, "x = 1;  ", []wantDiag{{1, 7, "Trailing whitespace"}}},
		{"trailing/blank line", TrailingWhitespace, "x = 1;\n   \ny = 2;", nil},
		{"trailing/tab", TrailingWhitespace, "a\t\nb", []wantDiag{{1, 2, ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDiags(t, runRule(t, tt.rule, tt.text), tt.want)
		})
	}
}

func TestDuplicateCode(t *testing.T) {
	block := "a1 = compute(x1);\nb2 = compute(y2);\nc3 = a1 + b2;\nprint(c3, a1);"
	renamed := "q1 = compute(z9);\nw2 = compute(v7);\ne3 = q1 + w2;\nprint(e3, q1);"

	t.Run("separated copy", func(t *testing.T) {
		got := runRule(t, DuplicateCode, block+"\n\n\n"+renamed)
		checkDiags(t, got, []wantDiag{{7, 1, "similar to line 1"}})
	})
	t.Run("adjacent copy", func(t *testing.T) {
		// второй блок начинается через 4 строки, это уже копия
		got := runRule(t, DuplicateCode, block+"\n"+block)
		checkDiags(t, got, []wantDiag{{5, 1, "similar to line 1"}})
	})
	t.Run("too short", func(t *testing.T) {
		short := "a1 = compute(x1);\nb2 = compute(y2);\nc3 = a1 + b2;"
		got := runRule(t, DuplicateCode, short+"\n\n\n"+short)
		checkDiags(t, got, nil)
	})
	t.Run("comments ignored", func(t *testing.T) {
		text := "// header comment\n// header comment\n// header comment\n// header comment\n\n\n" +
			"// header comment\n// header comment\n// header comment\n// header comment"
		checkDiags(t, runRule(t, DuplicateCode, text), nil)
	})
}

func TestRunStampsRule(t *testing.T) {
	for _, rule := range Default().All() {
		// ни один чекер не должен паниковать на пустом и мусорном вводе
		for _, text := range []string{"", "\n", "}}}{{{", "\"unterminated", "/* open", "`tpl"} {
			for _, d := range Run(&rule, NewUnit(text)) {
				if d.RuleID != rule.ID || d.Severity != rule.Severity {
					t.Errorf("%s: diagnostic stamped %s/%s", rule.ID, d.RuleID, d.Severity)
				}
				if d.Line < 1 || d.Column < 1 {
					t.Errorf("%s: position %d:%d out of range", rule.ID, d.Line, d.Column)
				}
			}
		}
	}
}

func TestDiagnosticsPointIntoText(t *testing.T) {
	text := "int f(int n) {\n  for (int i = 0; i <= xs.size(); i++) {{ }}\n  s = \"}\";;  \n  return n\n  n + m;\n}\n"
	u := NewUnit(text)
	for _, rule := range Default().All() {
		for _, d := range Run(&rule, u) {
			if _, ok := u.Index.Offset(d.Position()); !ok {
				t.Errorf("%s: %s does not address the text", rule.ID, d.Position())
			}
		}
	}
}

func ExampleRun() {
	rule, _ := Default().Lookup(TrailingWhitespace)
	for _, d := range Run(&rule, NewUnit("x = 1;  ")) {
		fmt.Println(d.Line, d.Column, d.Message)
	}
	// Output: 1 7 Trailing whitespace at end of line
}
