package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var feedbackMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderFeedbackHTML converts the narrative feedback markdown into a
// standalone HTML page.
func RenderFeedbackHTML(report GradeReport) ([]byte, error) {
	var body bytes.Buffer
	if err := feedbackMarkdown.Convert([]byte(RenderFeedback(report)), &body); err != nil {
		return nil, fmt.Errorf("render feedback html: %w", err)
	}
	var page bytes.Buffer
	page.WriteString("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>Lab feedback</title></head><body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body></html>\n")
	return page.Bytes(), nil
}
