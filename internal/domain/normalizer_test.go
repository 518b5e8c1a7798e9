package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single without terminator", "a", []string{"a"}},
		{"trailing terminator", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "removes common indentation",
			text: "    int a = 1;\n      int b = 2;\n",
			want: "int a = 1;\n  int b = 2;",
		},
		{
			name: "drops surrounding blank lines",
			text: "\n\n  x\n\n",
			want: "x",
		},
		{
			name: "trims trailing whitespace",
			text: "x  \t\ny \n",
			want: "x\ny",
		},
		{
			name: "keeps inner blank lines",
			text: "  a\n\n  b\n",
			want: "a\n\nb",
		},
		{
			name: "crlf equals lf",
			text: "  a\r\n  b\r\n",
			want: "a\nb",
		},
		{
			name: "tab counts as one character",
			text: "\tfoo()\n\t\tbar()\n",
			want: "foo()\n\tbar()",
		},
		{
			name: "mixed tab and space indentation is not reconciled",
			text: "\ta\n    b\n",
			want: "a\n   b",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "   \n\t\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"    int a = 1;\n      int b = 2;\n",
		"\r\n\t\tx();\r\n\r\n\t\ty();  \r\n",
		"",
		"single",
		"  a\n\n    b\n  c   \n\n",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalize_IgnoresIndentationShift(t *testing.T) {
	source := "        if (x) {\n            run();\n        }\n"
	doc := "if (x) {\n    run();\n}\n"

	assert.Equal(t, Normalize(source), Normalize(doc))
}

func TestCommonIndent(t *testing.T) {
	assert.Equal(t, 0, CommonIndent(nil))
	assert.Equal(t, 0, CommonIndent([]string{"", "   "}))
	assert.Equal(t, 2, CommonIndent([]string{"    a", "", "  b"}))
}

func TestDedent_ShortBlankLines(t *testing.T) {
	got := Dedent([]string{"    a", "  ", "    b"})

	assert.Equal(t, []string{"a", "", "b"}, got)
}
