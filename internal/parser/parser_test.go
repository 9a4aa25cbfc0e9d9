package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoc3/internal/ast"
)

func TestAnalyzeMinimalSyntax(t *testing.T) {
	root := Analyze([]byte(`syntax = "proto3";`))
	require.False(t, root.HasErrors())
	require.Len(t, root.Children(), 1)

	syntax := root.Children()[0]
	assert.Equal(t, ast.Syntax, syntax.Kind())
	assert.Equal(t, "proto3", syntax.Value())
}

func TestAnalyzePackageDeclaration(t *testing.T) {
	root := Analyze([]byte(`package com.example.widgets;`))
	require.False(t, root.HasErrors())
	require.Len(t, root.Children(), 1)
	assert.Equal(t, ast.Package, root.Children()[0].Kind())
	assert.Equal(t, "com.example.widgets", root.Children()[0].Value())
}

func TestAnalyzeSimpleMessage(t *testing.T) {
	src := `
message Person {
  string name = 1;
  int32 age = 2;
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())
	require.Len(t, root.Children(), 1)

	msg := root.Children()[0]
	assert.Equal(t, ast.Message, msg.Kind())
	assert.Equal(t, "Person", msg.Value())

	msgNames := ast.ChildrenOfKind(msg, ast.Identifier)
	require.Len(t, msgNames, 1)
	assert.Equal(t, "Person", msgNames[0].Value())

	fields := ast.ChildrenOfKind(msg, ast.Field)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Value())
	assert.Equal(t, "age", fields[1].Value())

	nameType := ast.ChildrenOfKind(fields[0], ast.Type)
	require.Len(t, nameType, 1)
	assert.Equal(t, "string", nameType[0].Value())

	fieldNames := ast.ChildrenOfKind(fields[0], ast.Identifier)
	require.Len(t, fieldNames, 1)
	assert.Equal(t, "name", fieldNames[0].Value())

	fieldNum := ast.ChildrenOfKind(fields[1], ast.FieldNumber)
	require.Len(t, fieldNum, 1)
	assert.Equal(t, "2", fieldNum[0].Value())
}

func TestAnalyzeMapField(t *testing.T) {
	src := `
message Config {
  map<string, int32> limits = 1;
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	msg := root.Children()[0]
	fields := ast.ChildrenOfKind(msg, ast.Field)
	require.Len(t, fields, 1)
	assert.Equal(t, "limits", fields[0].Value())

	fieldNames := ast.ChildrenOfKind(fields[0], ast.Identifier)
	require.Len(t, fieldNames, 1)
	assert.Equal(t, "limits", fieldNames[0].Value())

	maps := ast.ChildrenOfKind(fields[0], ast.Map)
	require.Len(t, maps, 1)

	keys := ast.ChildrenOfKind(maps[0], ast.MapKey)
	values := ast.ChildrenOfKind(maps[0], ast.MapValue)
	require.Len(t, keys, 1)
	require.Len(t, values, 1)
	assert.Equal(t, "string", keys[0].Value())
	assert.Equal(t, "int32", values[0].Value())
}

func TestAnalyzeReservedRangeFlattensToOrderedIntegers(t *testing.T) {
	src := `
message Old {
  reserved 2, 15, 9 to 11;
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	msg := root.Children()[0]
	reserved := ast.ChildrenOfKind(msg, ast.Reserved)
	require.Len(t, reserved, 1)

	got := ast.Values(reserved[0].Children())
	assert.Equal(t, []string{"2", "15", "9", "10", "11"}, got)
}

func TestAnalyzeReservedToMaxIsRejectedNotExpanded(t *testing.T) {
	src := `
message Old {
  reserved 2 to max;
}
`
	root := Analyze([]byte(src))
	require.True(t, root.HasErrors())

	msg := root.Children()[0]
	reserved := ast.ChildrenOfKind(msg, ast.Reserved)
	require.Len(t, reserved, 1)
	assert.Less(t, len(reserved[0].Children()), 10)
}

func TestAnalyzeReservedNames(t *testing.T) {
	src := `
message Old {
  reserved "foo", "bar";
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	msg := root.Children()[0]
	reserved := ast.ChildrenOfKind(msg, ast.Reserved)
	require.Len(t, reserved, 1)
	assert.Equal(t, []string{"foo", "bar"}, ast.Values(reserved[0].Children()))
}

func TestAnalyzeMissingSemicolonRecovers(t *testing.T) {
	src := `
package broken
message Fine {
  string ok = 1;
}
`
	root := Analyze([]byte(src))
	require.True(t, root.HasErrors())

	messages := ast.ChildrenOfKind(root.Node, ast.Message)
	require.Len(t, messages, 1)
	assert.Equal(t, "Fine", messages[0].Value())
}

func TestAnalyzeService(t *testing.T) {
	src := `
service Greeter {
  rpc SayHello (HelloRequest) returns (stream HelloReply);
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	services := ast.ChildrenOfKind(root.Node, ast.Service)
	require.Len(t, services, 1)

	rpcs := ast.ChildrenOfKind(services[0], ast.Rpc)
	require.Len(t, rpcs, 1)
	assert.Equal(t, "SayHello", rpcs[0].Value())

	inputs := ast.ChildrenOfKind(rpcs[0], ast.ServiceInputType)
	outputs := ast.ChildrenOfKind(rpcs[0], ast.ServiceReturnType)
	require.Len(t, inputs, 1)
	require.Len(t, outputs, 1)
	assert.Equal(t, "HelloRequest", inputs[0].Value())
	assert.Equal(t, "HelloReply", outputs[0].Value())
	assert.True(t, ast.HasChildOfKind(outputs[0], ast.Streaming))
	assert.False(t, ast.HasChildOfKind(inputs[0], ast.Streaming))
}

func TestAnalyzeEnumWithOptionsAndFieldOptions(t *testing.T) {
	src := `
enum Status {
  UNKNOWN = 0 [deprecated = true];
  ACTIVE = 1;
}

message Item {
  float price = 1 [(custom.rate) = 1.5];
  bool enabled = 2 [default = false];
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	enums := ast.ChildrenOfKind(root.Node, ast.Enum)
	require.Len(t, enums, 1)
	constants := ast.ChildrenOfKind(enums[0], ast.EnumConstant)
	require.Len(t, constants, 2)
	assert.Equal(t, "UNKNOWN", constants[0].Value())

	opts := ast.ChildrenOfKind(constants[0], ast.Option)
	require.Len(t, opts, 1)
	assert.Equal(t, "deprecated", opts[0].Value())

	msg := ast.ChildrenOfKind(root.Node, ast.Message)[0]
	fields := ast.ChildrenOfKind(msg, ast.Field)
	require.Len(t, fields, 2)

	priceOpts := ast.ChildrenOfKind(fields[0], ast.Option)
	require.Len(t, priceOpts, 1)
	assert.Equal(t, "(custom.rate)", priceOpts[0].Value())
	floatVal := ast.ChildrenOfKind(priceOpts[0], ast.FloatLiteral)
	require.Len(t, floatVal, 1)
	assert.Equal(t, "1.5", floatVal[0].Value())

	enabledOpts := ast.ChildrenOfKind(fields[1], ast.Option)
	require.Len(t, enabledOpts, 1)
	boolVal := ast.ChildrenOfKind(enabledOpts[0], ast.BooleanLiteral)
	require.Len(t, boolVal, 1)
	assert.Equal(t, "false", boolVal[0].Value())
}

func TestAnalyzeOneof(t *testing.T) {
	src := `
message Shape {
  oneof kind {
    int32 circle_radius = 1;
    int32 square_side = 2;
  }
}
`
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	msg := root.Children()[0]
	oneofs := ast.ChildrenOfKind(msg, ast.OneOfField)
	require.Len(t, oneofs, 1)
	assert.Equal(t, "kind", oneofs[0].Value())

	fields := ast.ChildrenOfKind(oneofs[0], ast.Field)
	require.Len(t, fields, 2)
}

func TestAnalyzeInlineAndBlockComments(t *testing.T) {
	src := "// leading comment\nmessage Foo {} /* trailing */\n"
	root := Analyze([]byte(src))
	require.False(t, root.HasErrors())

	comments := ast.ChildrenOfKind(root.Node, ast.Comment)
	require.GreaterOrEqual(t, len(comments), 1)
}

func TestAnalyzeUnrecognizedTopLevelStatementRecovers(t *testing.T) {
	src := "gibberish this is not proto\nmessage Fine {}\n"
	root := Analyze([]byte(src))
	require.True(t, root.HasErrors())

	messages := ast.ChildrenOfKind(root.Node, ast.Message)
	require.Len(t, messages, 1)
}
