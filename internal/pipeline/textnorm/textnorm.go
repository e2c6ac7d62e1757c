// Package textnorm converts raw PDF bytes into normalized plain text for
// the downstream extraction stages. It is the only pipeline stage whose
// failure is terminal for a document.
package textnorm

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

type FailReason string

const (
	ReasonCorrupt     FailReason = "corrupt"
	ReasonUnsupported FailReason = "unsupported"
	ReasonNoText      FailReason = "no-extractable-text"
)

// ExtractionError is the terminal failure of the whole pipeline.
type ExtractionError struct {
	Reason FailReason
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("text extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Result is normalized text plus document-level structure metrics.
type Result struct {
	Text      string
	PageCount int
	CharCount int
	// Quality estimates how well the document yielded to extraction,
	// independent of any one field. Range [0,1].
	Quality float64
}

// Extract parses the PDF, walks every page content stream for text
// operators and normalizes the result. Image-only documents return an
// ExtractionError with reason no-extractable-text.
func Extract(data []byte) (*Result, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, &ExtractionError{Reason: classifyReadError(err), Err: err}
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	raw := strings.Join(pages, "\n")
	text := Normalize(raw)
	if text == "" {
		reason := ReasonNoText
		if hasImageStreams(ctx) {
			// Scanned image without a text layer.
			return nil, &ExtractionError{Reason: reason, Err: fmt.Errorf("document contains only image streams")}
		}
		return nil, &ExtractionError{Reason: reason}
	}

	return &Result{
		Text:      text,
		PageCount: ctx.PageCount,
		CharCount: len([]rune(text)),
		Quality:   qualityScore(text),
	}, nil
}

func classifyReadError(err error) FailReason {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unsupported") || strings.Contains(msg, "encrypted") {
		return ReasonUnsupported
	}
	return ReasonCorrupt
}

func extractPageText(ctx *pdfmodel.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// hasImageStreams checks whether the PDF carries image XObjects, which
// distinguishes a scanned document from a genuinely empty one.
func hasImageStreams(ctx *pdfmodel.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}

// qualityScore estimates extraction quality from text characteristics.
func qualityScore(text string) float64 {
	score := 0.4
	if len([]rune(text)) > 500 {
		score += 0.2
	}
	if printableRatio(text) > 0.95 {
		score += 0.2
	}
	if wordlikeRatio(text) > 0.7 {
		score += 0.2
	}
	if score > 1 {
		score = 1
	}
	return score
}

func printableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	printable := 0
	total := 0
	for _, r := range text {
		total++
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0xFFFD) {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

// wordlikeRatio is the share of whitespace-separated tokens that look
// like natural-language words rather than decoder garbage.
func wordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		letters := 0
		for _, r := range f {
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
				letters++
			}
		}
		if letters*2 >= len(f) {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}
