package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nikogura/resume-builder/pkg/portfolio"
	"github.com/pkg/errors"
)

// defaultHeroName is shown when the portfolio has no name.
const defaultHeroName = "Portfolio"

// portfolioView adds the derived display fields to a portfolio.
type portfolioView struct {
	portfolio.Portfolio
	FirstName  string
	LastName   string
	Initials   string
	StatNumber string
	StatLabel  string
}

// HeroStat picks the headline statistic: a grade when an education entry
// mentions a GPA, otherwise the project count.
func HeroStat(p portfolio.Portfolio) (number string, label string) {
	number = fmt.Sprintf("%d+", len(p.Projects))
	label = "Projects"

	for _, e := range p.Education {
		if !strings.Contains(e.Details, "GPA") {
			continue
		}

		parts := strings.Split(e.Details, ":")
		number = strings.TrimSpace(parts[len(parts)-1])
		label = "CGPA/GPA"
		break
	}

	return number, label
}

// PortfolioHTML renders a standalone portfolio page. Text is HTML escaped but
// otherwise kept as entered.
func PortfolioHTML(p portfolio.Portfolio) (html []byte, err error) {
	var tmpl *template.Template
	tmpl, err = parseTemplate("portfolio.html.tmpl", false)
	if err != nil {
		return html, err
	}

	view := portfolioView{Portfolio: p}

	name := strings.TrimSpace(p.HeroName)
	if name == "" {
		name = defaultHeroName
	}
	view.HeroName = name

	fields := strings.Fields(name)
	view.FirstName = fields[0]
	view.LastName = strings.Join(fields[1:], " ")
	view.Initials = initials(fields)
	view.StatNumber, view.StatLabel = HeroStat(p)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, view)
	if err != nil {
		err = errors.Wrap(err, "failed to render portfolio HTML")
		return html, err
	}

	html = buf.Bytes()
	return html, err
}

func initials(words []string) (letters string) {
	if len(words) > 2 {
		words = words[:2]
	}

	b := strings.Builder{}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}

	letters = b.String()
	return letters
}
