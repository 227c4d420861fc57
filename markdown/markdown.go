// Package markdown renders post bodies (Markdown or MDX) to HTML as a templ
// component, and derives plain-text measurements from them.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	stripmd "github.com/writeas/go-strip-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

var (
	reFence    = regexp.MustCompile("^\\s*(```|~~~)")
	reMDXLine  = regexp.MustCompile(`^(import|export)\s`)
	reLangSafe = regexp.MustCompile(`[^A-Za-z0-9_+-]`)
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(&codeBlockRenderer{}, 100)),
	),
)

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, content)
	})
}

// Render writes the HTML representation of src to w. MDX import and export
// statements are dropped and raw HTML is omitted.
func Render(w io.Writer, src string) error {
	return md.Convert([]byte(StripMDX(src)), w)
}

// RenderString is Render into a string. Conversion errors yield "".
func RenderString(src string) string {
	var buf bytes.Buffer
	if err := Render(&buf, src); err != nil {
		return ""
	}
	return buf.String()
}

// StripMDX removes top-level import and export statements, leaving fenced
// code untouched. A statement whose braces, brackets or parentheses are still
// open at the end of its first line runs until they balance.
func StripMDX(src string) string {
	lines := strings.Split(src, "\n")
	out := lines[:0]
	inFence := false
	depth := 0
	for _, line := range lines {
		if depth > 0 {
			depth += nesting(line)
			continue
		}
		if reFence.MatchString(line) {
			inFence = !inFence
		}
		if !inFence && reMDXLine.MatchString(line) {
			depth = max(nesting(line), 0)
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// nesting is the net count of opening over closing brackets in line.
func nesting(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case '{', '[', '(':
			n++
		case '}', ']', ')':
			n--
		}
	}
	return n
}

// PlainText returns src with Markdown syntax removed.
func PlainText(src string) string {
	return strings.TrimSpace(stripmd.Strip(StripMDX(src)))
}

// WordCount counts whitespace-separated words in the plain text of src.
func WordCount(src string) int {
	return len(strings.Fields(PlainText(src)))
}

// codeBlockRenderer renders fenced code with a language badge when the fence
// names a language.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	lang := reLangSafe.ReplaceAllString(string(n.Language(source)), "")

	if lang != "" {
		_, _ = w.WriteString(`<div class="code-block-wrapper"><span class="code-lang code-lang-`)
		_, _ = w.WriteString(lang)
		_, _ = w.WriteString(`">`)
		_, _ = w.WriteString(lang)
		_, _ = w.WriteString(`</span><pre class="code-block"><code class="language-`)
		_, _ = w.WriteString(lang)
		_, _ = w.WriteString(`">`)
	} else {
		_, _ = w.WriteString(`<pre class="code-block"><code>`)
	}

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}

	_, _ = w.WriteString("</code></pre>")
	if lang != "" {
		_, _ = w.WriteString("</div>")
	}
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
