package format

import (
	"math"
	"strings"
	"testing"

	"github.com/jonwraymond/configsecret/value"
)

func TestParseRON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  value.Value
	}{
		{"int", "42", value.Int(42)},
		{"negative", "-7", value.Int(-7)},
		{"underscores", "1_000_000", value.Int(1000000)},
		{"hex", "0xFF", value.Int(255)},
		{"binary", "0b101", value.Int(5)},
		{"octal", "0o17", value.Int(15)},
		{"float", "2.5", value.Float(2.5)},
		{"exponent", "1e-2", value.Float(0.01)},
		{"bool", "true", value.Bool(true)},
		{"string escapes", `"a\n\"b\" \u{1F600}"`, value.String("a\n\"b\" \U0001F600")},
		{"raw string", `r#"C:\path "quoted""#`, value.String(`C:\path "quoted"`)},
		{"char", `'x'`, value.String("x")},
		{"unit", "()", value.Null()},
		{"none", "None", value.Null()},
		{"some", "Some(3)", value.Int(3)},
		{"enum variant", "Debug", value.String("Debug")},
		{"list", "[1, 2, 3,]", value.Seq(value.Int(1), value.Int(2), value.Int(3))},
		{"tuple", `(1, "a")`, value.Seq(value.Int(1), value.String("a"))},
		{"map", `{"a": 1, 2: true}`, value.Map(map[string]value.Value{"a": value.Int(1), "2": value.Bool(true)})},
		{
			name:  "named struct",
			input: `Config(level: Warn, nodes: ["a", "b"])`,
			want: value.Map(map[string]value.Value{
				"level": value.String("Warn"),
				"nodes": value.Seq(value.String("a"), value.String("b")),
			}),
		},
		{
			name: "comments and attributes",
			input: strings.Join([]string{
				"#![enable(implicit_some)]",
				"// leading comment",
				"(",
				"  /* nested /* block */ comment */",
				"  r#type: \"redis\", // trailing",
				"  password: Some(\"superpassword\"),",
				")",
			}, "\n"),
			want: value.Map(map[string]value.Value{
				"type":     value.String("redis"),
				"password": value.String("superpassword"),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRON([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseRON(%q) error = %v", tt.input, err)
			}
			if !value.Equal(got, tt.want) {
				t.Errorf("ParseRON(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRON_Infinity(t *testing.T) {
	got, err := ParseRON([]byte("-inf"))
	if err != nil {
		t.Fatalf("ParseRON(-inf) error = %v", err)
	}
	f, ok := got.AsFloat()
	if !ok || !math.IsInf(f, -1) {
		t.Errorf("ParseRON(-inf) = %v", got)
	}
}

func TestParseRON_Errors(t *testing.T) {
	tests := []string{
		"",
		"(a: 1",
		"[1 2]",
		`"unterminated`,
		"/* open",
		"(a: 1) trailing",
		"0x",
		"99999999999999999999",
		`"\q"`,
		"{1 2}",
	}
	for _, input := range tests {
		if _, err := ParseRON([]byte(input)); err == nil {
			t.Errorf("ParseRON(%q) expected error", input)
		} else if !strings.HasPrefix(err.Error(), "ron: line ") {
			t.Errorf("ParseRON(%q) error %q lacks position", input, err)
		}
	}
}
