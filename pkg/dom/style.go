package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct{ prop, value string }

func parseStyle(s string) []declaration {
	var out []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func formatStyle(decls []declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.prop)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	return b.String()
}

func getStyle(n *html.Node, prop string) (string, bool) {
	s, _ := getAttr(n, "style")
	for _, d := range parseStyle(s) {
		if d.prop == prop {
			return d.value, true
		}
	}
	return "", false
}

// setStyle sets prop to value, or removes it when set is false. The style
// attribute is dropped once no declarations remain.
func setStyle(n *html.Node, prop, value string, set bool) {
	s, _ := getAttr(n, "style")
	decls := parseStyle(s)
	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.prop == prop {
			if !set || replaced {
				continue
			}
			d.value = value
			replaced = true
		}
		out = append(out, d)
	}
	if set && !replaced {
		out = append(out, declaration{prop: prop, value: value})
	}
	if len(out) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", formatStyle(out))
}
