package svg2png

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strings"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// xmlPrologPattern matches the XML declaration and DOCTYPE that standalone
// SVG files carry but inline SVG in HTML must not.
var xmlPrologPattern = regexp.MustCompile(`(?is)^\s*(<\?xml[^>]*\?>\s*)?(<!DOCTYPE[^>]*>\s*)?`)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        html, body {
            margin: 0;
            padding: 0;
            background: transparent;
        }
        body {
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
        }
        #logo-container {
            width: {{.Width}}px;
            height: {{.Height}}px;
        }
        #logo-container > svg {
            display: block;
            width: 100%;
            height: 100%;
        }
    </style>
</head>
<body>
    <div id="logo-container">
        {{.SVG}}
    </div>
</body>
</html>
`))

type previewData struct {
	Title  string
	Width  int
	Height int
	SVG    template.HTML
}

// BuildPreviewHTML wraps svg in a page that displays it at width x height.
// Opening the page in a browser and taking a screenshot is the manual
// fallback when no renderer is installed.
func BuildPreviewHTML(svg []byte, width, height int) (string, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return "", err
	}
	inline := strings.TrimSpace(xmlPrologPattern.ReplaceAllString(string(svg), ""))
	if inline == "" {
		return "", ErrEmptySVG
	}

	var buf bytes.Buffer
	err := previewTemplate.Execute(&buf, previewData{
		Title:  fmt.Sprintf("Logo %dx%d", width, height),
		Width:  width,
		Height: height,
		SVG:    template.HTML(inline), // #nosec G203 -- local trusted asset
	})
	if err != nil {
		return "", fmt.Errorf("rendering preview template: %w", err)
	}
	return buf.String(), nil
}

// WritePreview reads svgPath and writes the preview page to htmlPath.
func WritePreview(svgPath, htmlPath string, width, height int) error {
	if svgPath == "" || htmlPath == "" {
		return ErrEmptyPath
	}

	svg, err := os.ReadFile(svgPath) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("reading SVG: %w", err)
	}

	content, err := BuildPreviewHTML(svg, width, height)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(htmlPath, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	return nil
}
