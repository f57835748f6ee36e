package pdfs

import "fmt"

const (
	weekFileNameTemplateConstant   = "week%d.pdf"
	weekStorageKeyTemplateConstant = "pdf_week_%d"

	// StorageUploadedValueConstant is the value the admin page stores for an uploaded PDF.
	StorageUploadedValueConstant = "uploaded"
)

// WeekIndex identifies a journal-club session.
type WeekIndex int

// FileName returns the PDF file name expected for the week.
func (week WeekIndex) FileName() string {
	return fmt.Sprintf(weekFileNameTemplateConstant, int(week))
}

// StorageKey returns the browser storage key the admin page uses for the week.
func (week WeekIndex) StorageKey() string {
	return fmt.Sprintf(weekStorageKeyTemplateConstant, int(week))
}

// ExpectedItem describes a PDF the site expects to publish.
type ExpectedItem struct {
	Week     WeekIndex
	FileName string
	Label    string
}

// AuditResult records whether an expected PDF exists in the designated directory.
type AuditResult struct {
	Week     WeekIndex
	FileName string
	Path     string
	Exists   bool
}

// AuditSummary aggregates existence flags across an audit.
type AuditSummary struct {
	Existing int
	Total    int
}

// Summarize counts the results whose files exist.
func Summarize(results []AuditResult) AuditSummary {
	summary := AuditSummary{Total: len(results)}
	for _, result := range results {
		if result.Exists {
			summary.Existing++
		}
	}
	return summary
}
