package session

import (
	"context"
	"testing"

	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	enhancement resume.Enhancement
	letter      string
	err         error
	calls       int
	resumeText  string
	jd          string
}

func (f *fakeGenerator) Enhance(ctx context.Context, resumeText, jobDescription string) (resume.Enhancement, error) {
	f.calls++
	f.resumeText = resumeText
	f.jd = jobDescription
	return f.enhancement, f.err
}

func (f *fakeGenerator) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	f.calls++
	f.resumeText = resumeText
	f.jd = jobDescription
	return f.letter, f.err
}

func form() (f resume.Form) {
	f = resume.Form{
		Basic: resume.BasicInfo{Name: "Jane Doe", Email: "jane@example.com", Summary: "Manual summary"},
		Experience: []resume.ManualExperience{
			{Company: "Acme", Role: "Engineer", Description: resume.RawString("Built APIs")},
		},
		JobDescription: "Go engineer wanted",
	}
	return f
}

func TestNew(t *testing.T) {
	a := New(form())
	b := New(form())

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Go engineer wanted", a.JobDescription)
	assert.False(t, a.Enhanced())
	assert.Nil(t, a.Enhancement())
}

func TestReady(t *testing.T) {
	s := New(resume.Form{})
	err := s.Ready()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name, email, job description")

	s = New(form())
	assert.NoError(t, s.Ready())
}

func TestEnhanceStoresResult(t *testing.T) {
	gen := &fakeGenerator{enhancement: resume.Enhancement{Summary: resume.SomeText("AI summary")}}
	s := New(form())
	s.SetJobDescription("Platform engineer")

	err := s.Enhance(context.Background(), gen)
	require.NoError(t, err)

	assert.True(t, s.Enhanced())
	assert.Equal(t, "AI summary", s.Resume().Summary)
	assert.Equal(t, "Platform engineer", gen.jd)
	assert.Equal(t, llm.ResumeText(s.Form), gen.resumeText)
}

func TestEnhanceFailureKeepsPriorState(t *testing.T) {
	s := New(form())
	err := s.Enhance(context.Background(), &fakeGenerator{enhancement: resume.Enhancement{Summary: resume.SomeText("first")}})
	require.NoError(t, err)

	failing := &fakeGenerator{err: &llm.UpstreamError{StatusCode: 500, Body: "boom"}}
	err = s.Enhance(context.Background(), failing)
	require.Error(t, err)

	var upstream *llm.UpstreamError
	assert.True(t, errors.As(err, &upstream))
	assert.Equal(t, "first", s.Resume().Summary)
}

func TestEnhanceFailureFallsBackToManual(t *testing.T) {
	s := New(form())
	err := s.Enhance(context.Background(), &fakeGenerator{err: &llm.TransportError{Err: context.DeadlineExceeded}})
	require.Error(t, err)

	r := s.Resume()
	assert.Equal(t, "Manual summary", r.Summary)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, []string{"Built APIs"}, r.Experience[0].Bullets)
}

func TestEnhanceRequiresReady(t *testing.T) {
	gen := &fakeGenerator{}
	s := New(form())
	s.SetJobDescription("  ")

	err := s.Enhance(context.Background(), gen)
	require.Error(t, err)
	assert.Equal(t, 0, gen.calls)
}

func TestEnsureEnhancedCallsOnce(t *testing.T) {
	gen := &fakeGenerator{enhancement: resume.Enhancement{Summary: resume.SomeText("AI summary")}}
	s := New(form())

	require.NoError(t, s.EnsureEnhanced(context.Background(), gen))
	require.NoError(t, s.EnsureEnhanced(context.Background(), gen))

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "AI summary", s.Portfolio().AboutMe)
}

func TestWriteCoverLetter(t *testing.T) {
	s := New(form())

	letter, err := s.WriteCoverLetter(context.Background(), &fakeGenerator{letter: "Dear team"})
	require.NoError(t, err)
	assert.Equal(t, "Dear team", letter)
	assert.Equal(t, "Dear team", s.CoverLetter())

	_, err = s.WriteCoverLetter(context.Background(), &fakeGenerator{err: &llm.PayloadError{Reason: "empty"}})
	require.Error(t, err)
	assert.Equal(t, "Dear team", s.CoverLetter())
}
