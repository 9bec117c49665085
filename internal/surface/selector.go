package surface

import "strings"

// matches reports whether el satisfies one simple selector: "#id",
// ".class", "tag" or "tag.class".
func matches(el *Element, sel string) bool {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return false
	}
	if strings.HasPrefix(sel, "#") {
		return el.ID == sel[1:]
	}
	if strings.HasPrefix(sel, ".") {
		return el.HasClass(sel[1:])
	}
	tag, class, hasClass := strings.Cut(sel, ".")
	if tag != el.Tag {
		return false
	}
	return !hasClass || el.HasClass(class)
}

// Query returns elements under root matching a comma separated selector
// list, in document order, without duplicates.
func Query(root *Element, selector string) []*Element {
	if root == nil || strings.TrimSpace(selector) == "" {
		return nil
	}
	parts := strings.Split(selector, ",")

	var out []*Element
	root.walk(func(el *Element) bool {
		for _, p := range parts {
			if matches(el, p) {
				out = append(out, el)
				break
			}
		}
		return true
	})
	return out
}
