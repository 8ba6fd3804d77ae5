package attribution

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
)

// link is one hyperlink lifted out of an attribution fragment.
type link struct {
	href string
	text string
}

// hashRegex matches a location-hash placeholder at the end of an href, in
// either the "#map=zoom/lat/lng" or the bare "#zoom/lat/lng" form.
var hashRegex = regexp.MustCompile(`#(map=)?-?[0-9]+(\.[0-9]+)?/-?[0-9]+(\.[0-9]+)?/-?[0-9]+(\.[0-9]+)?$`)

// maxFragmentLen bounds a single attribution fragment. Attributions are
// a line of credit text; anything larger is treated as corrupt.
const maxFragmentLen = 4096

// checkFragment rejects fragments the renderer must not touch: input past
// the size bound, or text that is not valid UTF-8. The HTML parser itself
// recovers from almost anything, so this is the malformed-fragment gate.
func checkFragment(fragment string) error {
	if len(fragment) > maxFragmentLen {
		return errors.New(errors.ErrCodeMalformedFragment,
			"attribution fragment exceeds %d bytes", maxFragmentLen)
	}
	if !utf8.ValidString(fragment) {
		return errors.New(errors.ErrCodeMalformedFragment,
			"attribution fragment is not valid UTF-8")
	}
	return nil
}

// extractLinks parses an attribution HTML fragment and returns its
// hyperlinks. A fragment with no anchors returns an empty slice and nil
// error; the caller falls back to plain-text handling.
func extractLinks(fragment string) ([]link, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var links []link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			l := link{text: strings.TrimSpace(textContent(n))}
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					l.href = attr.Val
					break
				}
			}
			links = append(links, l)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return links, nil
}

// plainText strips markup from a fragment, returning its visible text.
func plainText(fragment string) (string, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(textContent(root)), nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// renderLink emits a hardened anchor: target and rel are forced so a
// third-party attribution cannot reach back into the opener window, and
// any location-hash placeholder is rewritten to the current camera.
func renderLink(l link, cam Camera) string {
	href := rewriteHash(l.href, cam)
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		html.EscapeString(href), html.EscapeString(l.text))
}

// rewriteHash replaces a trailing location-hash placeholder with the
// current camera position, preserving whichever of the two hash shapes
// the href used.
func rewriteHash(href string, cam Camera) string {
	return hashRegex.ReplaceAllStringFunc(href, func(m string) string {
		prefix := "#"
		if strings.HasPrefix(m, "#map=") {
			prefix = "#map="
		}
		return prefix + formatCamera(cam)
	})
}

func formatCamera(c Camera) string {
	return num(c.Zoom) + "/" + num(c.Lat) + "/" + num(c.Lng)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
