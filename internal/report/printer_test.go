package report

import (
	"bytes"
	"strings"
	"testing"

	"protoc3/internal/lexer"
)

func TestPrintIncludesMessageAndLocation(t *testing.T) {
	src := []byte("message Foo {\n  bad\n}\n")
	tok := lexer.Token{Kind: lexer.Id, Lexeme: "bad", Line: 2, Column: 3}
	errs := []ParseError{{Message: "expected a field type", Token: &tok}}

	var buf bytes.Buffer
	Print(&buf, "example.proto", errs, src)

	out := buf.String()
	if !strings.Contains(out, "expected a field type") {
		t.Errorf("expected output to contain the error message, got %q", out)
	}
	if !strings.Contains(out, "example.proto:2:3") {
		t.Errorf("expected output to contain file:line:col, got %q", out)
	}
}

func TestPrintWithoutToken(t *testing.T) {
	errs := []ParseError{{Message: "empty file"}}
	var buf bytes.Buffer
	Print(&buf, "empty.proto", errs, nil)
	if !strings.Contains(buf.String(), "empty file") {
		t.Errorf("expected message to still print without a token, got %q", buf.String())
	}
}
