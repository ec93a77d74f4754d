package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/keyword"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		wantKw  keyword.Keyword
		wantArg string
		wantOK  bool
	}{
		{"defgroup with args", "@defgroup Foo  Foo Module", keyword.Defgroup, "Foo  Foo Module", true},
		{"class", "@class Shape a shape", keyword.Class, "Shape a shape", true},
		{"fn prototype", "@fn int doit(int x)", keyword.Fn, "int doit(int x)", true},
		{"font is not fn", "@font Arial Georgia", keyword.Font, "Arial Georgia", true},
		{"returns alias", "@returns nothing", keyword.Return, "nothing", true},
		{"return", "@return\tvalue", keyword.Return, "value", true},
		{"keyword at end of line", "@mainpage", keyword.Mainpage, "", true},
		{"keyword before carriage return", "@mainpage\r", keyword.Mainpage, "", true},
		{"glued word is unknown", "@classy thing", keyword.Unknown, "thing", true},
		{"unknown keyword", "@brief does stuff", keyword.Unknown, "does stuff", true},
		{"indented is not keyword", "  @param x", keyword.Unknown, "", false},
		{"plain text", "hello @param", keyword.Unknown, "", false},
		{"empty line", "", keyword.Unknown, "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			kw, idx, ok := keyword.Match(testCase.line)
			require.Equal(t, testCase.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, testCase.wantKw, kw)
			assert.Equal(t, testCase.wantArg, testCase.line[idx:])
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	sections := map[keyword.Keyword]bool{
		keyword.Class: true, keyword.Defgroup: true, keyword.Fn: true, keyword.Mainpage: true,
	}
	prototypes := map[keyword.Keyword]bool{
		keyword.Param: true, keyword.Return: true, keyword.Unknown: true,
	}

	all := []keyword.Keyword{
		keyword.Unknown, keyword.Class, keyword.Color, keyword.Defgroup, keyword.Example,
		keyword.Fn, keyword.Font, keyword.InClass, keyword.InGroup, keyword.Logo,
		keyword.Mainpage, keyword.Param, keyword.Return, keyword.Version,
	}

	for _, kw := range all {
		assert.Equal(t, sections[kw], kw.IsSection(), kw.String())
		assert.Equal(t, prototypes[kw], kw.IsPrototype(), kw.String())
	}

	assert.True(t, keyword.Logo.IsStyle())
	assert.False(t, keyword.Example.IsStyle())
	assert.True(t, keyword.InClass.IsMembership())
	assert.Equal(t, "@defgroup", keyword.Defgroup.String())
}

func TestNameDescription(t *testing.T) {
	t.Parallel()

	name, desc := keyword.NameDescription("  Foo   Foo Module  ")
	assert.Equal(t, "Foo", name)
	assert.Equal(t, "Foo Module", desc)

	name, desc = keyword.NameDescription("")
	assert.Empty(t, name)
	assert.Empty(t, desc)
}

func TestCName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "snake_case", keyword.CName("snake_case more"))
	assert.Equal(t, "doit", keyword.CName("doit(int x)"))
	assert.Empty(t, keyword.CName("9lives"))
	assert.True(t, keyword.IsCName("_Foo9"))
	assert.False(t, keyword.IsCName("foo-bar"))
	assert.False(t, keyword.IsCName(""))
}
