package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// A .docx is a zip archive; the document body lives in word/document.xml as
// paragraphs (<w:p>) of runs (<w:r>) of text nodes (<w:t>). Paragraphs with
// no text are dropped, matching paragraph-wise extraction.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractError{Source: path, Err: err}
	}
	defer func() { _ = archive.Close() }()

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", &ExtractError{Source: path, Err: fmt.Errorf("no word/document.xml in archive")}
	}

	rc, err := doc.Open()
	if err != nil {
		return "", &ExtractError{Source: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	text, err := decodeDocumentXML(rc)
	if err != nil {
		return "", &ExtractError{Source: path, Err: err}
	}
	return text, nil
}

func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				var content string
				if err := decoder.DecodeElement(&content, &t); err != nil {
					return "", err
				}
				current.WriteString(content)
			case "tab":
				current.WriteString("\t")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				inParagraph = false
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
