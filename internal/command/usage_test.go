package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderUsageWithFootnotes(t *testing.T) {
	positional := Normalize(Decl("name", Argument{Type: "string"}), DefaultPrefix)
	flags := Normalize(Decl("loud", Argument{Required: Ptr(false), Default: false, Description: "be loud"}), DefaultPrefix)

	u := RenderUsage(positional, flags, true)

	assert.Equal(t, "<name: string> ?<--loud: string>*", u.Usage)
	assert.Equal(t, []string{"*loud: default=false; be loud"}, u.Footnotes)
}

func TestRenderUsageWithoutFootnotes(t *testing.T) {
	positional := Normalize(Decl("name", Argument{Description: "who"}), DefaultPrefix)
	flags := Normalize(Decl("loud", Argument{Required: Ptr(false), Default: false}), DefaultPrefix)

	u := RenderUsage(positional, flags, false)

	assert.Equal(t, "<name: string> ?<--loud: string>", u.Usage)
	assert.Empty(t, u.Footnotes)
	assert.Equal(t, u.Usage, u.String())
}

func TestRenderUsageFootnoteMarkersGrow(t *testing.T) {
	positional := Normalize(Decl(
		"src", Argument{Description: "source file"},
		"dst", Argument{},
		"mode", Argument{Required: Ptr(false), Default: "copy", Type: "mode"},
	), DefaultPrefix)
	flags := Normalize(Decl(
		"n", Argument{Parser: Int, Type: "int", Label: "count", Prefix: "-", Description: "repeat"},
	), DefaultPrefix)

	u := RenderUsage(positional, flags, true)

	assert.Equal(t, "<src: string>* <dst: string> ?<mode: mode>** <-count: int>***", u.Usage)
	assert.Equal(t, []string{
		"*src: source file",
		"*mode: default=copy; ",
		"*count: repeat",
	}, u.Footnotes)
	assert.Equal(t, u.Usage+"\n*src: source file\n*mode: default=copy; \n*count: repeat", u.String())
}

func TestRenderUsageBareParserShowsString(t *testing.T) {
	u := RenderUsage(Normalize(Decl("n", Int), DefaultPrefix), nil, true)
	assert.Equal(t, "<n: string>", u.Usage)
	assert.Empty(t, u.Footnotes)
}

func TestRenderUsageEmpty(t *testing.T) {
	u := RenderUsage(nil, nil, true)
	assert.Equal(t, "", u.Usage)
	assert.Empty(t, u.Footnotes)
}
