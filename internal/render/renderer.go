// Package render materializes review records as cards inside the container
// element of a base HTML page. Rendering is write-once and append-only: cards
// are added to the container in input order and never removed or updated.
package render

import (
	_ "embed"

	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pikirBack/internal/models"
)

//go:embed page.html
var basePage []byte

type CardRenderer struct {
	// ContainerID is the id of the element that hosts the cards.
	ContainerID string
	// PageTitle, when set, replaces the base page title and heading.
	PageTitle string
	// Base is the page the cards are appended into. Each RenderPage call
	// parses its own copy, so concurrent renders never share a tree.
	Base []byte
}

func NewCardRenderer(title, containerID string) *CardRenderer {
	if containerID == "" {
		containerID = "reviews"
	}
	return &CardRenderer{ContainerID: containerID, PageTitle: title, Base: basePage}
}

// RenderPage writes the base page to w with one card appended to the
// container per review, in input order. An empty collection leaves the
// container empty.
func (cr *CardRenderer) RenderPage(w io.Writer, reviews []models.Review) error {
	doc, err := html.Parse(bytes.NewReader(cr.Base))
	if err != nil {
		return fmt.Errorf("render page: parse base page: %w", err)
	}

	container := findByID(doc, cr.ContainerID)
	if container == nil {
		return fmt.Errorf("render page: container %q not found in base page", cr.ContainerID)
	}

	if cr.PageTitle != "" {
		setText(findElement(doc, atom.Title), cr.PageTitle)
		setText(findElement(doc, atom.H1), cr.PageTitle)
	}

	for _, review := range reviews {
		container.AppendChild(cr.card(review))
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// card builds the display node for one record: a heading with the reviewer,
// rating and date, and a paragraph with the verbatim review text.
func (cr *CardRenderer) card(review models.Review) *html.Node {
	card := element(atom.Div)
	card.Attr = append(card.Attr, html.Attribute{Key: "class", Val: "review-card"})

	heading := element(atom.H3)
	heading.AppendChild(textNode(Header(review)))
	card.AppendChild(heading)

	body := element(atom.P)
	body.AppendChild(textNode(review.Review))
	card.AppendChild(body)

	return card
}

// Header joins the reviewer name, star glyph with the numeric rating, and the
// date with middle-dot separators.
func Header(review models.Review) string {
	return review.Name + " · ★ " + FormatRating(review.Rating) + " · " + review.Date
}

// FormatRating renders the rating with the fewest digits that round-trip, so
// whole-number ratings stay bare (5, not 5.0).
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func setText(n *html.Node, s string) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(textNode(s))
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
