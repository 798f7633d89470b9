package document

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riordanpawley/keynav/internal/domain"
)

// newPolicy returns the sanitizer policy applied before layout. It keeps
// readable structure and form controls; scripts, styles and event handlers
// are dropped.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowURLSchemes("mailto", "http", "https", "file")
	p.AllowElements("form", "fieldset", "legend", "label", "button", "input", "textarea", "select", "option", "optgroup")
	p.AllowAttrs("type", "name", "value", "checked", "placeholder").OnElements("input")
	p.AllowAttrs("type", "name", "value").OnElements("button")
	p.AllowAttrs("name").OnElements("textarea", "select")
	p.AllowAttrs("value", "selected").OnElements("option")
	p.AllowAttrs("label").OnElements("option", "optgroup")
	p.AllowAttrs("contenteditable").Globally()
	p.SkipElementsContent("title")
	return p
}

// parseHTML lays out an HTML document and enumerates its interactive elements
func parseHTML(data []byte, width int, policy *bluemonday.Policy) (string, []string, []*domain.Element, error) {
	raw, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", nil, nil, err
	}
	title := findTitle(raw)

	clean := policy.SanitizeBytes(data)
	root, err := html.Parse(bytes.NewReader(clean))
	if err != nil {
		return "", nil, nil, err
	}

	w := &htmlWalker{b: newBuilder(width)}
	w.walk(root)
	lines, elements := w.b.finish()
	return title, lines, elements, nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		return strings.Join(strings.Fields(textContent(n)), " ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

type htmlWalker struct {
	b    *builder
	pre  int
	list int
}

func (w *htmlWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if w.pre > 0 {
			w.b.pre(n.Data)
		} else {
			w.b.text(n.Data)
		}
		return
	case html.ElementNode:
		if w.element(n) {
			return
		}
	}
	w.children(n)
}

func (w *htmlWalker) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// element handles one element node. Returns true if its children were consumed.
func (w *htmlWalker) element(n *html.Node) bool {
	if editable(n) {
		w.b.atom(&domain.Element{
			Kind:  domain.KindEditable,
			Label: collapse(textContent(n)),
			Value: textContent(n),
		})
		return true
	}

	switch n.DataAtom {
	case atom.A:
		href, ok := attr(n, "href")
		if !ok {
			return false
		}
		label := collapse(textContent(n))
		if label == "" {
			label = href
		}
		w.b.atom(&domain.Element{Kind: domain.KindLink, Label: label, Href: href})
		return true

	case atom.Button:
		label := collapse(textContent(n))
		if label == "" {
			label, _ = attr(n, "value")
		}
		typ, _ := attr(n, "type")
		name, _ := attr(n, "name")
		w.b.atom(&domain.Element{Kind: domain.KindButton, Label: label, Type: typ, Name: name})
		return true

	case atom.Input:
		w.input(n)
		return true

	case atom.Textarea:
		name, _ := attr(n, "name")
		w.b.atom(&domain.Element{Kind: domain.KindTextArea, Name: name, Value: textContent(n)})
		return true

	case atom.Select:
		w.selectElement(n)
		return true

	case atom.Br:
		w.b.newline()
		return true

	case atom.Hr:
		w.b.gap()
		w.b.write(strings.Repeat("─", w.b.width/runewidth.RuneWidth('─')))
		w.b.gap()
		return true

	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		w.b.gap()
		w.b.prefix(strings.Repeat("#", level) + " ")
		w.children(n)
		w.b.gap()
		return true

	case atom.Li:
		w.b.prefix("• ")
		indent := w.b.indent
		w.b.indent += "  "
		w.children(n)
		w.b.block()
		w.b.indent = indent
		return true

	case atom.Pre:
		w.b.gap()
		w.pre++
		w.children(n)
		w.pre--
		w.b.gap()
		return true

	case atom.Blockquote:
		w.b.gap()
		indent := w.b.indent
		w.b.indent += "  "
		w.children(n)
		w.b.indent = indent
		w.b.gap()
		return true

	case atom.Ul, atom.Ol:
		if w.list > 0 {
			w.b.block()
		} else {
			w.b.gap()
		}
		w.list++
		w.children(n)
		w.list--
		if w.list == 0 {
			w.b.gap()
		}
		return true

	case atom.P, atom.Table, atom.Dl, atom.Form, atom.Fieldset:
		w.b.gap()
		w.children(n)
		w.b.gap()
		return true

	case atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer, atom.Nav,
		atom.Main, atom.Aside, atom.Tr, atom.Dt, atom.Dd, atom.Legend, atom.Figure, atom.Figcaption:
		w.b.block()
		w.children(n)
		w.b.block()
		return true

	case atom.Td, atom.Th:
		w.b.space = true
		w.children(n)
		w.b.space = true
		return true

	case atom.Img:
		if alt, ok := attr(n, "alt"); ok && strings.TrimSpace(alt) != "" {
			w.b.text(" [" + collapse(alt) + "] ")
		}
		return true
	}
	return false
}

func (w *htmlWalker) input(n *html.Node) {
	typ, _ := attr(n, "type")
	if strings.EqualFold(strings.TrimSpace(typ), "hidden") {
		return
	}
	name, _ := attr(n, "name")
	value, _ := attr(n, "value")
	_, checked := attr(n, "checked")

	el := &domain.Element{
		Kind:    domain.KindInput,
		Type:    typ,
		Name:    name,
		Value:   value,
		Checked: checked,
	}
	if el.IsPushButton() {
		el.Label = value
		if el.Label == "" {
			el.Label = strings.ToLower(strings.TrimSpace(typ))
		}
	} else if placeholder, ok := attr(n, "placeholder"); ok {
		el.Label = placeholder
	}
	w.b.atom(el)
}

func (w *htmlWalker) selectElement(n *html.Node) {
	name, _ := attr(n, "name")
	el := &domain.Element{Kind: domain.KindSelect, Name: name}

	var collect func(*html.Node)
	collect = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == atom.Option {
				label := collapse(textContent(c))
				if label == "" {
					label, _ = attr(c, "label")
				}
				if _, ok := attr(c, "selected"); ok {
					el.Selected = len(el.Options)
				}
				el.Options = append(el.Options, label)
				continue
			}
			collect(c.FirstChild)
		}
	}
	collect(n.FirstChild)

	w.b.atom(el)
}

func editable(n *html.Node) bool {
	v, ok := attr(n, "contenteditable")
	if !ok {
		return false
	}
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || v == "true" || v == "plaintext-only"
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
