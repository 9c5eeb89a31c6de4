package renderer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

// Printer turns an HTML document into PDF bytes.
type Printer interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

// PDF renders the resume through a printer.
func PDF(ctx context.Context, printer Printer, r resume.Resume) (pdf []byte, err error) {
	var html []byte
	html, err = ResumeHTML(r)
	if err != nil {
		return pdf, err
	}

	pdf, err = printer.PrintPDF(ctx, html)
	if err != nil {
		err = errors.Wrap(err, "failed to print resume PDF")
		return pdf, err
	}

	if len(pdf) == 0 {
		err = errors.New("printer returned an empty PDF")
		return pdf, err
	}

	return pdf, err
}

// DefaultPrintTimeout bounds one headless Chrome print.
const DefaultPrintTimeout = 60 * time.Second

// ChromePrinter prints with headless Chrome.
type ChromePrinter struct {
	// ExecPath optionally names the Chrome binary.
	ExecPath string
	Timeout  time.Duration
}

// NewChromePrinter creates a printer using the given Chrome binary, or the
// one chromedp finds when execPath is empty.
func NewChromePrinter(execPath string) (printer *ChromePrinter) {
	printer = &ChromePrinter{ExecPath: execPath, Timeout: DefaultPrintTimeout}
	return printer
}

// PrintPDF loads the document from a temporary file and prints it on A4.
func (p *ChromePrinter) PrintPDF(ctx context.Context, html []byte) (pdf []byte, err error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	var tmpDir string
	tmpDir, err = os.MkdirTemp("", "resume-builder-")
	if err != nil {
		err = errors.Wrap(err, "failed to create temporary directory")
		return pdf, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	err = os.WriteFile(htmlPath, html, 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write temporary HTML")
		return pdf, err
	}

	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) (actionErr error) {
			// A4 in inches.
			pdf, _, actionErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return actionErr
		}),
	)
	if err != nil {
		err = errors.Wrap(err, "headless Chrome failed")
		return pdf, err
	}

	return pdf, err
}
