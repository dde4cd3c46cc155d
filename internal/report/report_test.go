package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dyadtree/dyadic"
	"github.com/katalvlaran/dyadtree/internal/report"
	"github.com/katalvlaran/dyadtree/wordfind"
)

// request returns the default request for num/den after applying edit.
func request(num, den int64, edit func(r *report.Request)) report.Request {
	req := report.NewRequest(num, den)
	edit(&req)

	return req
}

func TestBuild_FiveEighths(t *testing.T) {
	r, err := report.Build(request(5, 8, func(q *report.Request) { q.Steps = true; q.Tree = true }))
	require.NoError(t, err)

	assert.Equal(t, "5/8", r.Target)
	assert.Equal(t, 3, r.Depth)
	assert.Equal(t, "qp", r.Word)
	assert.Equal(t, "|<b>1</b>2{<b>2</b>3|<b>3</b>}", r.Rope)
	assert.Len(t, r.Steps, 3)
	assert.Equal(t, 3, r.TreeDepth)
	require.Len(t, r.Tree, 4)

	var targets []report.Entry
	for d, row := range r.Tree {
		assert.Equal(t, d, row.Depth)
		assert.Len(t, row.Nodes, 1<<d)
		for _, e := range row.Nodes {
			if e.Target {
				targets = append(targets, e)
			}
		}
	}
	assert.Equal(t, []report.Entry{{Word: "qp", Value: "5/8", Target: true}}, targets)
	assert.Equal(t, report.RootLabel, r.Tree[0].Nodes[0].Word)
}

func TestBuild_ReducedInput(t *testing.T) {
	r, err := report.Build(report.NewRequest(2, 8))
	require.NoError(t, err)
	assert.Equal(t, "1/4", r.Target)
	assert.Equal(t, 3, r.Depth)
	assert.Equal(t, "q", r.Word)
	assert.Nil(t, r.Steps)
	assert.Nil(t, r.Tree)
}

func TestBuild_Plain(t *testing.T) {
	r, err := report.Build(request(5, 8, func(q *report.Request) { q.Plain = true }))
	require.NoError(t, err)
	assert.Equal(t, "|12{23|3}", r.Rope)
}

func TestBuild_Errors(t *testing.T) {
	_, err := report.Build(report.NewRequest(1, 0))
	assert.ErrorIs(t, err, dyadic.ErrZeroDenominator)

	_, err = report.Build(report.NewRequest(1, 3))
	assert.ErrorIs(t, err, wordfind.ErrNotDyadic)

	_, err = report.Build(request(1, 2, func(q *report.Request) { q.MaxSearchDepth = -1 }))
	assert.ErrorIs(t, err, report.ErrNegativeSearchDepth)

	_, err = report.Build(request(1, 2, func(q *report.Request) { q.MaxTreeDepth = -1 }))
	assert.ErrorIs(t, err, report.ErrNegativeTreeDepth)
}

func TestBuild_OutOfRange(t *testing.T) {
	const big = int64(1) << 40
	for _, f := range [][2]int64{{9, 8}, {0, 1}, {1, 1}, {0, big}, {big, big}, {-3, 8}} {
		_, err := report.Build(request(f[0], f[1], func(q *report.Request) { q.MaxSearchDepth = 62 }))
		assert.ErrorIs(t, err, dyadic.ErrOutOfRange, "%d/%d", f[0], f[1])
	}
}

func TestBuild_SearchDepthLimit(t *testing.T) {
	// 3/8 entered over 2^20 is searched to depth 20, the default limit
	r, err := report.Build(report.NewRequest(3<<17, 1<<20))
	require.NoError(t, err)
	assert.Equal(t, "qq", r.Word)
	assert.Equal(t, 20, r.Depth)

	_, err = report.Build(report.NewRequest(3<<18, 1<<21))
	assert.ErrorIs(t, err, wordfind.ErrDepthLimit)

	_, err = report.Build(report.NewRequest(3<<37, 1<<40))
	assert.ErrorIs(t, err, wordfind.ErrDepthLimit)

	_, err = report.Build(request(3, 8, func(q *report.Request) { q.MaxSearchDepth = 2 }))
	assert.ErrorIs(t, err, wordfind.ErrDepthLimit)
}

func TestBuild_RootOnlyTree(t *testing.T) {
	r, err := report.Build(request(5, 8, func(q *report.Request) { q.Tree = true; q.MaxTreeDepth = 0 }))
	require.NoError(t, err)
	assert.Equal(t, 0, r.TreeDepth)
	require.Len(t, r.Tree, 1)
	assert.Equal(t, []report.Entry{{Word: report.RootLabel, Value: "1/2"}}, r.Tree[0].Nodes)
}

func TestBuild_TreeCapped(t *testing.T) {
	r, err := report.Build(request(1, 1024, func(q *report.Request) { q.Tree = true; q.MaxTreeDepth = 3 }))
	require.NoError(t, err)
	assert.Equal(t, 10, r.Depth)
	assert.Equal(t, "ppppppppq", r.Word)
	assert.Equal(t, 3, r.TreeDepth)
	require.Len(t, r.Tree, 4)
	for _, row := range r.Tree {
		for _, e := range row.Nodes {
			assert.False(t, e.Target, "the target lies below the rendered depth")
		}
	}

	r, err = report.Build(request(1, 1024, func(q *report.Request) { q.Tree = true }))
	require.NoError(t, err)
	assert.Equal(t, report.DefaultMaxTreeDepth, r.TreeDepth)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"text": report.FormatText,
		"YAML": report.FormatYAML,
		" json": report.FormatJSON,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestEncode_Text(t *testing.T) {
	r, err := report.Build(request(3, 4, func(q *report.Request) { q.Tree = true }))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, r, report.FormatText))
	want := "target: 3/4\n" +
		"depth:  2\n" +
		"word:   p\n" +
		"rope:   {<b>1</b>2|<b>2</b>}\n" +
		"tree (depth 2):\n" +
		"  ROOT 1/2\n" +
		"*   p 3/4\n" +
		"      pp 7/8\n" +
		"      pq 1/8\n" +
		"    q 1/4\n" +
		"      qp 5/8\n" +
		"      qq 3/8\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_TextSteps(t *testing.T) {
	r, err := report.Build(request(1, 2, func(q *report.Request) { q.Steps = true }))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, r, report.FormatText))
	want := "target: 1/2\n" +
		"depth:  1\n" +
		"word:   ROOT\n" +
		"rope:   {<b>1</b>}\n" +
		"steps:\n" +
		"   0  {<b>1</b>}\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_YAMLAndJSON(t *testing.T) {
	r, err := report.Build(request(5, 8, func(q *report.Request) { q.Tree = true; q.MaxTreeDepth = 2 }))
	require.NoError(t, err)

	var yb bytes.Buffer
	require.NoError(t, report.Encode(&yb, r, report.FormatYAML))
	var fromYAML report.Report
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, r.Rope, fromYAML.Rope)
	assert.Equal(t, r.Tree, fromYAML.Tree)

	var jb bytes.Buffer
	require.NoError(t, report.Encode(&jb, r, report.FormatJSON))
	assert.Contains(t, jb.String(), `"rope": "|<b>1</b>2{<b>2</b>3|<b>3</b>}"`, "markup is not HTML-escaped")
	var fromJSON report.Report
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, r.Word, fromJSON.Word)
	assert.Equal(t, r.Tree, fromJSON.Tree)

	assert.ErrorIs(t, report.Encode(&jb, r, report.Format("xml")), report.ErrUnknownFormat)
}
