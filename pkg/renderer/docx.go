package renderer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

	docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

	docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="21"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:pPr><w:spacing w:after="40"/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:pPr><w:jc w:val="center"/></w:pPr><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="160" w:after="60"/><w:pBdr><w:bottom w:val="single" w:sz="4" w:space="1" w:color="000000"/></w:pBdr></w:pPr><w:rPr><w:b/><w:caps/><w:sz w:val="24"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr></w:style>
</w:styles>`

	docxNumbering = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="-"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="360" w:hanging="240"/></w:pPr></w:lvl></w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

	docxDocumentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	docxDocumentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="850" w:right="850" w:bottom="850" w:left="850" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr></w:body></w:document>`
)

// run is a piece of paragraph text with optional emphasis.
type run struct {
	text   string
	bold   bool
	italic bool
}

// documentWriter accumulates WordprocessingML body markup.
type documentWriter struct {
	buf bytes.Buffer
}

func (w *documentWriter) paragraph(style string, runs ...run) {
	w.buf.WriteString("<w:p>")
	if style != "" {
		w.buf.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	}

	for _, r := range runs {
		if r.text == "" {
			continue
		}

		w.buf.WriteString("<w:r>")
		if r.bold || r.italic {
			w.buf.WriteString("<w:rPr>")
			if r.bold {
				w.buf.WriteString("<w:b/>")
			}
			if r.italic {
				w.buf.WriteString("<w:i/>")
			}
			w.buf.WriteString("</w:rPr>")
		}
		w.buf.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(&w.buf, []byte(r.text))
		w.buf.WriteString("</w:t></w:r>")
	}

	w.buf.WriteString("</w:p>")
}

func (w *documentWriter) heading(text string) {
	w.paragraph("Heading1", run{text: text})
}

func (w *documentWriter) bullets(items []string) {
	for _, item := range items {
		w.paragraph("ListBullet", run{text: item})
	}
}

// DOCX renders the resume as a Word document. All text is reduced to ASCII.
func DOCX(r resume.Resume) (docx []byte, err error) {
	doc := documentBody(Sanitized(r))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{name: "[Content_Types].xml", content: docxContentTypes},
		{name: "_rels/.rels", content: docxPackageRels},
		{name: "word/_rels/document.xml.rels", content: docxDocumentRels},
		{name: "word/styles.xml", content: docxStyles},
		{name: "word/numbering.xml", content: docxNumbering},
		{name: "word/document.xml", content: doc},
	}

	for _, part := range parts {
		var f io.Writer
		f, err = zw.Create(part.name)
		if err != nil {
			err = errors.Wrapf(err, "failed to add %s", part.name)
			return docx, err
		}

		_, err = f.Write([]byte(part.content))
		if err != nil {
			err = errors.Wrapf(err, "failed to write %s", part.name)
			return docx, err
		}
	}

	err = zw.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to finish DOCX archive")
		return docx, err
	}

	docx = buf.Bytes()
	return docx, err
}

// documentBody lays out the resume sections. r must already be sanitized.
func documentBody(r resume.Resume) (doc string) {
	w := &documentWriter{}
	w.buf.WriteString(docxDocumentOpen)

	w.paragraph("Title", run{text: r.Contact.Name})
	contact := joinPresent(" | ", r.Contact.Phone, r.Contact.Email, r.Contact.Location, r.Contact.LinkedIn, r.Contact.GitHub)
	w.paragraph("", run{text: contact})

	if strings.TrimSpace(r.Summary) != "" {
		w.heading("Summary")
		w.paragraph("", run{text: r.Summary})
	}

	if len(r.Education) > 0 {
		w.heading("Education")
		for _, e := range r.Education {
			w.paragraph("", run{text: e.Institution, bold: true}, run{text: prefixed(", ", e.Location)})
			w.paragraph("", run{text: e.Degree, italic: true}, run{text: prefixed(" | ", e.Period)})
			if e.Details != "" {
				w.paragraph("", run{text: e.Details})
			}
		}
	}

	if len(r.Experience) > 0 {
		w.heading("Experience")
		for _, e := range r.Experience {
			w.paragraph("", run{text: e.Role, bold: true}, run{text: prefixed(" - ", e.Company)}, run{text: prefixed(" | ", e.Period)})
			if e.Location != "" {
				w.paragraph("", run{text: e.Location, italic: true})
			}
			w.bullets(e.Bullets)
		}
	}

	if len(r.Projects) > 0 {
		w.heading("Projects")
		for _, p := range r.Projects {
			w.paragraph("", run{text: p.Title, bold: true}, run{text: prefixed(" | ", strings.Join(p.TechStack, ", ")), italic: true}, run{text: prefixed(" | ", p.Duration)})
			if p.GitHubLink != "" {
				w.paragraph("", run{text: p.GitHubLink, italic: true})
			}
			w.bullets(p.Bullets)
		}
	}

	if len(r.Skills.Technical) > 0 || len(r.Skills.Soft) > 0 {
		w.heading("Skills")
		if len(r.Skills.Technical) > 0 {
			w.paragraph("", run{text: "Technical: ", bold: true}, run{text: strings.Join(r.Skills.Technical, ", ")})
		}
		if len(r.Skills.Soft) > 0 {
			w.paragraph("", run{text: "Soft: ", bold: true}, run{text: strings.Join(r.Skills.Soft, ", ")})
		}
	}

	lines := make([]string, 0, len(r.Certifications))
	for _, c := range r.Certifications {
		if line := asciiCertification(c); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		w.heading("Certifications")
		w.bullets(lines)
	}

	w.buf.WriteString(docxDocumentClose)
	doc = w.buf.String()
	return doc
}

func joinPresent(sep string, values ...string) (joined string) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}

	joined = strings.Join(parts, sep)
	return joined
}

// prefixed returns sep+value, or nothing for an empty value.
func prefixed(sep, value string) (text string) {
	if strings.TrimSpace(value) == "" {
		return text
	}

	text = sep + value
	return text
}
