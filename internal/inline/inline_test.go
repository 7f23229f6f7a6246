package inline

import (
	"reflect"
	"testing"

	"github.com/gerunddev/docbridge/internal/model"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Run
	}{
		{
			name:  "plain text",
			input: "just words",
			want:  []model.Run{model.Plain("just words")},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "bold italic then italic",
			input: "***bold-italic*** and *just italic*",
			want: []model.Run{
				model.Emphasis("bold-italic", model.Bold|model.Italic),
				model.Plain(" and "),
				model.Emphasis("just italic", model.Italic),
			},
		},
		{
			name:  "bold in the middle",
			input: "a **b** c",
			want: []model.Run{
				model.Plain("a "),
				model.Emphasis("b", model.Bold),
				model.Plain(" c"),
			},
		},
		{
			name:  "adjacent bold and italic",
			input: "**a***b*",
			want: []model.Run{
				model.Emphasis("a", model.Bold),
				model.Emphasis("b", model.Italic),
			},
		},
		{
			name:  "hyperlink",
			input: "[Example](https://x.test)",
			want:  []model.Run{model.Link("Example", "https://x.test")},
		},
		{
			name:  "hyperlink with emphasis in label",
			input: "see [the **docs**](https://x.test/d) now",
			want: []model.Run{
				model.Plain("see "),
				model.Link("the ", "https://x.test/d"),
				{Text: "docs", Format: model.Bold, URL: "https://x.test/d"},
				model.Plain(" now"),
			},
		},
		{
			name:  "blank url degrades to plain",
			input: "[label]( )",
			want:  []model.Run{model.Plain("label")},
		},
		{
			name:  "unmatched marker stays literal",
			input: "2 * 3 = 6",
			want:  []model.Run{model.Plain("2 * 3 = 6")},
		},
		{
			name:  "unbalanced bold",
			input: "**open only",
			want:  []model.Run{model.Plain("**open only")},
		},
		{
			name:  "unclosed link",
			input: "[text](no close",
			want:  []model.Run{model.Plain("[text](no close")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) =\n  %+v\nwant\n  %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		runs []model.Run
		want string
	}{
		{
			name: "all styles",
			runs: []model.Run{
				model.Plain("p "),
				model.Emphasis("b", model.Bold),
				model.Plain(" "),
				model.Emphasis("i", model.Italic),
				model.Plain(" "),
				model.Emphasis("bi", model.Bold|model.Italic),
			},
			want: "p **b** *i* ***bi***",
		},
		{
			name: "hyperlink",
			runs: []model.Run{model.Link("Example", "https://x.test")},
			want: "[Example](https://x.test)",
		},
		{
			name: "runs sharing a url form one link",
			runs: []model.Run{
				model.Link("the ", "https://x.test"),
				{Text: "docs", Format: model.Bold, URL: "https://x.test"},
			},
			want: "[the **docs**](https://x.test)",
		},
		{
			name: "whitespace kept outside markers",
			runs: []model.Run{
				model.Emphasis(" bold ", model.Bold),
				model.Plain("x"),
			},
			want: " **bold** x",
		},
		{
			name: "whitespace-only emphasis is plain",
			runs: []model.Run{model.Plain("a"), model.Emphasis(" ", model.Italic), model.Plain("b")},
			want: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.runs); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHyperlinkRoundTrip(t *testing.T) {
	const span = "[Example](https://x.test)"

	runs := Decode(span)
	if len(runs) != 1 {
		t.Fatalf("Decode(%q) returned %d runs, want 1", span, len(runs))
	}
	if runs[0].Style() != model.StyleHyperlink || runs[0].Text != "Example" || runs[0].URL != "https://x.test" {
		t.Errorf("unexpected run %+v", runs[0])
	}
	if got := Encode(runs); got != span {
		t.Errorf("Encode(Decode(%q)) = %q", span, got)
	}
}

func TestDecodeEncodeIdentity(t *testing.T) {
	spans := [][]model.Run{
		{model.Emphasis("bold", model.Bold)},
		{model.Emphasis("italic text", model.Italic)},
		{model.Emphasis("both", model.Bold|model.Italic)},
		{model.Plain("lead "), model.Emphasis("b", model.Bold), model.Plain(" tail")},
		{model.Emphasis("a", model.Bold), model.Emphasis("b", model.Italic)},
		{model.Emphasis("a", model.Italic), model.Emphasis("b", model.Bold|model.Italic)},
		{model.Plain("x "), model.Link("site", "https://example.org/a?b=c")},
		{model.Emphasis("one", model.Bold), model.Plain(" and "), model.Emphasis("two", model.Bold)},
	}

	for _, want := range spans {
		encoded := Encode(want)
		if got := Decode(encoded); !reflect.DeepEqual(got, want) {
			t.Errorf("Decode(Encode(%+v)) via %q = %+v", want, encoded, got)
		}
	}
}

func TestPlainText(t *testing.T) {
	runs := Decode("**Name** and [link](u)")
	if got := PlainText(runs); got != "Name and link" {
		t.Errorf("PlainText() = %q", got)
	}
}

// Emphasis around whitespace alone cannot be written back, so it degrades
// to the bare whitespace. The degraded text is then stable.
func TestWhitespaceEmphasisDegrades(t *testing.T) {
	runs := Decode("** **")
	if len(runs) != 1 || runs[0].Text != " " || runs[0].Format != model.Bold {
		t.Fatalf("Decode(%q) = %+v, want one bold space", "** **", runs)
	}
	if got := Encode(runs); got != " " {
		t.Errorf("Encode() = %q, want a bare space", got)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"a** **b", "a b"},
		{"**** a**", "** **a**"},
		{"** **a**", " a**"},
		{" a**", " a**"},
	}
	for _, tt := range tests {
		if got := Encode(Decode(tt.input)); got != tt.want {
			t.Errorf("Encode(Decode(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
