// Package session holds the state of one resume building session: the form,
// the job description and the last successful generation results.
//
// A Session is not safe for concurrent use. Failed generation calls never
// replace state stored by earlier successful ones.
package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/portfolio"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

// Generator is the generation API as seen by a session.
type Generator interface {
	Enhance(ctx context.Context, resumeText, jobDescription string) (resume.Enhancement, error)
	CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// Session is the explicit per-run context passed between components.
type Session struct {
	ID             string
	Form           resume.Form
	JobDescription string

	enhancement *resume.Enhancement
	coverLetter string
}

// New starts a session for a form. The form's own job description is used
// until SetJobDescription replaces it.
func New(form resume.Form) (s *Session) {
	s = &Session{
		ID:             uuid.NewString(),
		Form:           form,
		JobDescription: form.JobDescription,
	}
	return s
}

// SetJobDescription replaces the job description the session generates against.
func (s *Session) SetJobDescription(jd string) {
	s.JobDescription = jd
}

// Ready reports whether the session has what generation needs.
func (s *Session) Ready() (err error) {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(s.Form.Basic.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Form.Basic.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.JobDescription) == "" {
		missing = append(missing, "job description")
	}

	if len(missing) > 0 {
		err = errors.Errorf("please fill at least %s", strings.Join(missing, ", "))
	}

	return err
}

// Enhance calls the generator once and keeps the result only on success.
func (s *Session) Enhance(ctx context.Context, gen Generator) (err error) {
	err = s.Ready()
	if err != nil {
		return err
	}

	var enhancement resume.Enhancement
	enhancement, err = gen.Enhance(ctx, llm.ResumeText(s.Form), s.JobDescription)
	if err != nil {
		err = errors.Wrap(err, "resume enhancement failed")
		return err
	}

	s.enhancement = &enhancement
	return err
}

// EnsureEnhanced enhances only when no enhancement is stored yet.
func (s *Session) EnsureEnhanced(ctx context.Context, gen Generator) (err error) {
	if s.enhancement != nil {
		return err
	}

	err = s.Enhance(ctx, gen)
	return err
}

// WriteCoverLetter calls the generator once and keeps the letter only on success.
func (s *Session) WriteCoverLetter(ctx context.Context, gen Generator) (letter string, err error) {
	err = s.Ready()
	if err != nil {
		return letter, err
	}

	letter, err = gen.CoverLetter(ctx, llm.ResumeText(s.Form), s.JobDescription)
	if err != nil {
		err = errors.Wrap(err, "cover letter generation failed")
		return letter, err
	}

	s.coverLetter = letter
	return letter, err
}

// Enhanced reports whether a successful enhancement is stored.
func (s *Session) Enhanced() (ok bool) {
	ok = s.enhancement != nil
	return ok
}

// Enhancement returns the stored enhancement, or nil.
func (s *Session) Enhancement() (enhancement *resume.Enhancement) {
	enhancement = s.enhancement
	return enhancement
}

// CoverLetter returns the last generated letter.
func (s *Session) CoverLetter() (letter string) {
	letter = s.coverLetter
	return letter
}

// Resume assembles the canonical record from the current state.
func (s *Session) Resume() (r resume.Resume) {
	r = resume.Assemble(s.Form, s.enhancement)
	return r
}

// Portfolio projects the canonical record for the portfolio page.
func (s *Session) Portfolio() (p portfolio.Portfolio) {
	p = portfolio.Project(s.Resume())
	return p
}
