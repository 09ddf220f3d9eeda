package handlers

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
)

//go:embed content/home.md
var homeMarkdown []byte

// The brand name is kept out of the Markdown so the ampersand is not entity-escaped.
const pageLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>ACEst Fitness & Gym</title>
</head>
<body>
<header><h1>Welcome to ACEst Fitness & Gym</h1></header>
<main>
%s</main>
</body>
</html>
`

// HomeHandler serves the landing page rendered once at construction.
type HomeHandler struct {
	page []byte
}

// NewHomeHandler renders the embedded Markdown landing page to HTML.
func NewHomeHandler() (*HomeHandler, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(homeMarkdown, &body); err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}
	return &HomeHandler{page: []byte(fmt.Sprintf(pageLayout, body.String()))}, nil
}

// Index handles GET /.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(h.page)
}
