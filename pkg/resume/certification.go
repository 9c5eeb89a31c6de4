package resume

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// CertificationSeparator joins the fields of a structured certification.
const CertificationSeparator = " – "

// Certification is either a bare line of text or a structured record.
type Certification struct {
	Text             string
	Name             string
	IssuingAuthority string
	IssueDate        string
	CertificateID    string
	Structured       bool
}

// BareCertification wraps a manually entered line.
func BareCertification(text string) (c Certification) {
	c = Certification{Text: text}
	return c
}

type certificationRecord struct {
	Name             string `json:"name,omitempty"`
	Title            string `json:"title,omitempty"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
	IssueDate        string `json:"issue_date,omitempty"`
	CertificateID    string `json:"certificate_id,omitempty"`
}

// Display renders the certification as a single line. Structured records join
// their present fields; bare text loses any leading list marker.
func (c Certification) Display() (line string) {
	if !c.Structured {
		line = strings.TrimSpace(c.Text)
		line = strings.TrimLeft(line, "-•* ")
		line = strings.TrimSpace(line)
		return line
	}

	parts := make([]string, 0, 3)
	for _, field := range []string{c.Name, c.IssuingAuthority, c.IssueDate} {
		field = strings.TrimSpace(field)
		if field != "" {
			parts = append(parts, field)
		}
	}

	line = strings.Join(parts, CertificationSeparator)
	return line
}

// UnmarshalJSON accepts a string or an object.
func (c *Certification) UnmarshalJSON(data []byte) (err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var rec certificationRecord
		err = json.Unmarshal(trimmed, &rec)
		if err != nil {
			err = errors.Wrap(err, "invalid certification record")
			return err
		}

		name := rec.Name
		if name == "" {
			name = rec.Title
		}

		*c = Certification{
			Name:             name,
			IssuingAuthority: rec.IssuingAuthority,
			IssueDate:        rec.IssueDate,
			CertificateID:    rec.CertificateID,
			Structured:       true,
		}
		return err
	}

	var text string
	err = json.Unmarshal(trimmed, &text)
	if err != nil {
		err = errors.Wrap(err, "certification must be a string or an object")
		return err
	}

	*c = BareCertification(text)
	return err
}

// MarshalJSON writes the shape the certification arrived in.
func (c Certification) MarshalJSON() (data []byte, err error) {
	if !c.Structured {
		data, err = json.Marshal(c.Text)
		return data, err
	}

	data, err = json.Marshal(certificationRecord{
		Name:             c.Name,
		IssuingAuthority: c.IssuingAuthority,
		IssueDate:        c.IssueDate,
		CertificateID:    c.CertificateID,
	})
	return data, err
}

// Certifications is the manual certification list. In a form file it may
// also be written as one newline separated block of text.
type Certifications []Certification

// UnmarshalJSON accepts a list, a block of text, or null.
func (cs *Certifications) UnmarshalJSON(data []byte) (err error) {
	if isNull(data) {
		*cs = nil
		return err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Certification
		err = json.Unmarshal(trimmed, &items)
		if err != nil {
			err = errors.Wrap(err, "invalid certifications list")
			return err
		}

		*cs = items
		return err
	}

	var block string
	err = json.Unmarshal(trimmed, &block)
	if err != nil {
		err = errors.Wrap(err, "certifications must be a list or a block of text")
		return err
	}

	lines := RawString(block).ByLine()
	out := make(Certifications, 0, len(lines))
	for _, line := range lines {
		out = append(out, BareCertification(line))
	}

	*cs = out
	return err
}
