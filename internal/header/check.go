// Package header validates the HTML fragment injected into generated pages.
package header

import (
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
)

// Injecting elements are the ones that actually load something into the page.
// A KaTeX header without any of them renders no math.
var injectingElements = map[string]bool{
	"script": true,
	"link":   true,
	"style":  true,
}

// Result describes the outcome of checking a header injection file.
type Result struct {
	Path string
	// Elements maps element names to their occurrence count in the fragment.
	Elements map[string]int
	// Warnings are advisory findings; the file is still usable.
	Warnings []string
}

// Injects reports whether the fragment contains at least one element that
// loads or defines page resources.
func (r *Result) Injects() bool {
	for name := range injectingElements {
		if r.Elements[name] > 0 {
			return true
		}
	}
	return false
}

// Check validates the header injection file at path. Missing or unreadable
// files are errors; structural oddities are reported as warnings because the
// generator splices the fragment verbatim either way.
func Check(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cderrors.HeaderMissing(path)
		}
		return nil, cderrors.Wrap(err, cderrors.CategoryFileSystem, cderrors.SeverityFatal, "failed to read header file").
			WithContext("path", path)
	}

	result := &Result{
		Path:     path,
		Elements: make(map[string]int),
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		result.Warnings = append(result.Warnings, "header file is empty; nothing will be injected")
		return result, nil
	}

	openScripts := 0
	tokenizer := html.NewTokenizer(strings.NewReader(string(data)))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return nil, cderrors.Wrap(tokenizer.Err(), cderrors.CategoryValidation, cderrors.SeverityFatal, "failed to parse header file").
				WithContext("path", path)
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			result.Elements[string(name)]++
			if string(name) == "script" && tt == html.StartTagToken {
				openScripts++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "script" {
				openScripts--
			}
		}
	}

	if openScripts > 0 {
		result.Warnings = append(result.Warnings, "header file has an unclosed <script> element")
	}
	if !result.Injects() {
		result.Warnings = append(result.Warnings, "header file contains no <script>, <link> or <style> element; it will inject nothing useful")
	}

	return result, nil
}
