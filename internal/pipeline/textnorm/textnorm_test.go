package textnorm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("Disclosing  Party:\t Acme   Corp\n\n\n\nNext line")
	want := "Disclosing Party: Acme Corp\n\nNext line"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeDehyphenates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wrapped word", "confiden-\ntial information", "confidential information"},
		{"wrapped word with indent", "compen-\n  sation terms", "compensation terms"},
		{"real compound survives", "non-\nDisclosure Agreement", "non-Disclosure Agreement"},
		{"inline hyphen untouched", "at-will employment", "at-will employment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePreservesLabeledLines(t *testing.T) {
	in := "DISCLOSING PARTY: Acme Corp\nRECEIVING PARTY: Beta LLC\n"
	got := Normalize(in)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "DISCLOSING PARTY: Acme Corp" {
		t.Errorf("line break around labeled field not preserved: %q", lines[0])
	}
}

func TestTextFromContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n72 720 Td\n(Disclosing Party: Acme Corp) Tj\n0 -14 Td\n(Receiving \\(escaped\\) Party) Tj\nET")
	got := textFromContentStream(stream)
	if !strings.Contains(got, "Disclosing Party: Acme Corp") {
		t.Errorf("missing first line: %q", got)
	}
	if !strings.Contains(got, "Receiving (escaped) Party") {
		t.Errorf("escape sequences not decoded: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("Td positioning should produce a line break: %q", got)
	}
}

func TestDecodePDFStringOctal(t *testing.T) {
	if got := decodePDFString([]byte(`a\040b`)); got != "a b" {
		t.Errorf("octal escape: got %q, want %q", got, "a b")
	}
}

func TestExtractTextPDF(t *testing.T) {
	data := buildTextPDF("Service Agreement between Customer and Vendor")
	res, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.PageCount != 1 {
		t.Errorf("PageCount = %d, want 1", res.PageCount)
	}
	if !strings.Contains(res.Text, "Service Agreement") {
		t.Errorf("extracted text missing content: %q", res.Text)
	}
	if res.Quality <= 0 || res.Quality > 1 {
		t.Errorf("Quality = %v, want (0,1]", res.Quality)
	}
}

func TestExtractImageOnlyPDF(t *testing.T) {
	_, err := Extract(buildImageOnlyPDF())
	if err == nil {
		t.Fatal("expected error for image-only PDF")
	}
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
	if extErr.Reason != ReasonNoText {
		t.Errorf("Reason = %s, want %s", extErr.Reason, ReasonNoText)
	}
}

func TestExtractCorruptBytes(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf at all"))
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
	if extErr.Reason != ReasonCorrupt && extErr.Reason != ReasonUnsupported {
		t.Errorf("Reason = %s, want corrupt or unsupported", extErr.Reason)
	}
}

func TestQualityScoreBounds(t *testing.T) {
	long := strings.Repeat("confidential information disclosed by the parties ", 20)
	if q := qualityScore(long); q != 1 {
		t.Errorf("clean long text quality = %v, want 1", q)
	}
	if q := qualityScore("x"); q <= 0 || q > 1 {
		t.Errorf("quality out of range: %v", q)
	}
}

// buildTextPDF assembles a single-page PDF with correct xref offsets.
func buildTextPDF(text string) []byte {
	escaped := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(text)
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(" + escaped + ") Tj\nET"

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	offsets[4] = b.Len()
	fmt.Fprintf(&b, "4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream)
	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xref := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return []byte(b.String())
}

func buildImageOnlyPDF() []byte {
	imgData := "\xff\xd8\xff\xe0"
	drawStream := "q 100 0 0 100 72 692 cm /Im1 Do Q"

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /XObject << /Im1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	offsets[4] = b.Len()
	fmt.Fprintf(&b, "4 0 obj\n<< /Type /XObject /Subtype /Image /Width 1 /Height 1 /ColorSpace /DeviceRGB /BitsPerComponent 8 /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(imgData), imgData)
	offsets[5] = b.Len()
	fmt.Fprintf(&b, "5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(drawStream), drawStream)

	xref := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return []byte(b.String())
}
