package command

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loud(v string) (any, error) { return v == "true", nil }

// greetCommand takes a required name and an optional loud flag that defaults
// to false. Parsed contexts are sent to seen when it is not nil.
func greetCommand(seen *[]*Context) Command {
	return Command{
		Name:        "greet",
		Description: "say hello",
		Args:        Decl("name", func(s string) (any, error) { return s, nil }),
		Flags:       Decl("loud", Argument{Parser: loud, Required: Ptr(false), Default: false}),
		Execute: func(ctx *Context) (any, error) {
			if seen != nil {
				*seen = append(*seen, ctx)
			}
			return "hello " + MustValue[string](ctx.Args, "name"), nil
		},
	}
}

func testManager(t *testing.T) (*Manager, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return New("prog", WithOutput(&out), WithErrorOutput(&errOut), WithNoColor(true)), &out, &errOut
}

func parseGreet(t *testing.T, tokens []string) (*Context, string, error) {
	t.Helper()
	m, _, errOut := testManager(t)
	cmd := greetCommand(nil)
	ctx, err := m.Parse(tokens, Normalize(cmd.Args, DefaultPrefix), Normalize(cmd.Flags, DefaultPrefix))
	return ctx, errOut.String(), err
}

func TestParseFlagAndArgument(t *testing.T) {
	ctx, _, err := parseGreet(t, []string{"Alice", "--loud=true"})
	require.NoError(t, err)

	want := &Context{Args: map[string]any{"name": "Alice"}, Flags: map[string]any{"loud": true}}
	if diff := cmp.Diff(want, ctx); diff != "" {
		t.Fatalf("unexpected context (-want +got):\n%s", diff)
	}
}

func TestParseAppliesFlagDefault(t *testing.T) {
	ctx, _, err := parseGreet(t, []string{"Alice"})
	require.NoError(t, err)

	want := &Context{Args: map[string]any{"name": "Alice"}, Flags: map[string]any{"loud": false}}
	if diff := cmp.Diff(want, ctx); diff != "" {
		t.Fatalf("unexpected context (-want +got):\n%s", diff)
	}
}

func TestParseMissingArgumentAborts(t *testing.T) {
	ctx, stderr, err := parseGreet(t, []string{})
	require.Nil(t, ctx)
	require.ErrorIs(t, err, ErrAbort)

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Name)
	assert.Equal(t, 1, missing.Expected)
	assert.Equal(t, 0, missing.Got)
	assert.Contains(t, stderr, "| Expected 1 arguments, but got 0.")
	assert.Contains(t, stderr, "| An argument for 'name' was not provided.")
}

func TestParseFlagsAreOrderIndependent(t *testing.T) {
	m, _, _ := testManager(t)
	flags := Normalize(Decl("a", Argument{}, "b", Argument{}), DefaultPrefix)

	first, err := m.Parse([]string{"--b=2", "--a=1"}, nil, flags)
	require.NoError(t, err)
	second, err := m.Parse([]string{"--a=1", "--b=2"}, nil, flags)
	require.NoError(t, err)

	assert.Equal(t, second, first)
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, first.Flags)
}

func TestParseMissingRequiredFlagAborts(t *testing.T) {
	m, _, errOut := testManager(t)
	flags := Normalize(Decl("token", Argument{}), DefaultPrefix)

	// a required flag always needs a value
	ctx, err := m.Parse([]string{"--token"}, nil, flags)
	require.Nil(t, ctx)

	var missing *MissingFlagError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "token", missing.Name)
	assert.ErrorIs(t, err, ErrAbort)
	assert.Contains(t, errOut.String(), "| An argument for flag 'token' was not provided.")
}

func TestParseOptionalFlagWithoutValue(t *testing.T) {
	m, _, _ := testManager(t)
	flags := Normalize(Decl("verbose", Argument{Parser: Bool, Required: Ptr(false)}), DefaultPrefix)

	ctx, err := m.Parse([]string{"--verbose"}, nil, flags)
	require.NoError(t, err)
	assert.Equal(t, true, ctx.Flags["verbose"])

	ctx, err = m.Parse([]string{}, nil, flags)
	require.NoError(t, err)
	assert.NotContains(t, ctx.Flags, "verbose", "no default, so nothing is stored")
}

func TestParseEmptyValueDoesNotMatch(t *testing.T) {
	m, _, _ := testManager(t)
	flags := Normalize(Decl("name", Argument{Required: Ptr(false)}), DefaultPrefix)
	positional := Normalize(Decl("rest", Argument{}), DefaultPrefix)

	ctx, err := m.Parse([]string{"--name="}, positional, flags)
	require.NoError(t, err)
	assert.NotContains(t, ctx.Flags, "name")
	assert.Equal(t, "--name=", ctx.Args["rest"])
}

func TestParseFlagLabelAndPrefix(t *testing.T) {
	m, _, _ := testManager(t)
	flags := Normalize(Decl("output", Argument{Label: "o", Prefix: "-"}), DefaultPrefix)

	ctx, err := m.Parse([]string{"-o=out.txt"}, nil, flags)
	require.NoError(t, err)
	assert.Equal(t, "out.txt", ctx.Flags["output"])

	_, err = m.Parse([]string{"--output=out.txt"}, nil, flags)
	require.Error(t, err, "only the label with its prefix is recognized")
}

func TestParseFlagPrefixIsLiteral(t *testing.T) {
	m, _, _ := testManager(t)
	flags := Normalize(Decl("x", Argument{Prefix: "+."}), DefaultPrefix)

	_, err := m.Parse([]string{"+ax=1"}, nil, flags)
	require.Error(t, err)

	ctx, err := m.Parse([]string{"+.x=1"}, nil, flags)
	require.NoError(t, err)
	assert.Equal(t, "1", ctx.Flags["x"])
}

func TestParseStripsFlagsBeforePositionals(t *testing.T) {
	m, _, _ := testManager(t)
	positional := Normalize(Decl("first", Argument{}, "second", Argument{}), DefaultPrefix)
	flags := Normalize(Decl("n", Argument{Parser: Int}), DefaultPrefix)

	raw := []string{"one", "--n=3", "two"}
	ctx, err := m.Parse(raw, positional, flags)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"first": "one", "second": "two"}, ctx.Args)
	assert.Equal(t, map[string]any{"n": 3}, ctx.Flags)
	assert.Equal(t, []string{"one", "--n=3", "two"}, raw, "input tokens must not be modified")
}

func TestParseFlagTokenConsumedOnce(t *testing.T) {
	m, _, _ := testManager(t)
	positional := Normalize(Decl("rest", Argument{}), DefaultPrefix)
	flags := Normalize(Decl("a", Argument{}), DefaultPrefix)

	ctx, err := m.Parse([]string{"--a=1", "--a=2"}, positional, flags)
	require.NoError(t, err)
	assert.Equal(t, "1", ctx.Flags["a"])
	assert.Equal(t, "--a=2", ctx.Args["rest"])
}

func TestParsePositionalDefault(t *testing.T) {
	m, _, _ := testManager(t)
	positional := Normalize(Decl(
		"src", Argument{},
		"count", Argument{Parser: Int, Required: Ptr(false), Default: 5},
		"tag", Argument{Required: Ptr(false)},
	), DefaultPrefix)

	ctx, err := m.Parse([]string{"a"}, positional, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"src": "a", "count": 5}, ctx.Args)
}

func TestParseParserError(t *testing.T) {
	m, _, errOut := testManager(t)
	positional := Normalize(Decl("n", Argument{Parser: Int}), DefaultPrefix)

	_, err := m.Parse([]string{"abc"}, positional, nil)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "argument", perr.Kind)
	assert.Equal(t, "n", perr.Name)
	assert.True(t, errors.Is(err, ErrAbort))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, errOut.String(), `Invalid value "abc" for argument 'n'`)
}

func TestParseLosslessRoundTrip(t *testing.T) {
	m, _, _ := testManager(t)
	positional := Normalize(Decl("n", Argument{Parser: Int, Type: "int"}), DefaultPrefix)

	ctx, err := m.Parse([]string{"42"}, positional, nil)
	require.NoError(t, err)
	assert.Equal(t, "42", strconv.Itoa(MustValue[int](ctx.Args, "n")))
	assert.Equal(t, "<n: int>", RenderUsage(positional, nil, false).Usage)
}
