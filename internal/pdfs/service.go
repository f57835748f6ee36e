package pdfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	pdfDirectoryPermissionsConstant         = fs.FileMode(0o755)
	directoryCreationErrorTemplateConstant  = "unable to create pdf directory %s: %w"
	unsupportedCommandErrorTemplateConstant = "unsupported command value %d"
	commandDispatchedLogMessageConstant     = "pdf command dispatched"
	directoryCreatedLogMessageConstant      = "pdf directory created"
	statFailedLogMessageConstant            = "pdf stat failed; treating file as absent"
	auditCompletedLogMessageConstant        = "pdf audit completed"
	logFieldCommandConstant                 = "command"
	logFieldDirectoryConstant               = "directory"
	logFieldPathConstant                    = "path"
	logFieldExistingConstant                = "existing"
	logFieldTotalConstant                   = "total"
)

// Service audits the designated PDF directory and reports through a Reporter.
type Service struct {
	configuration AuditConfiguration
	fileSystem    FileSystem
	reporter      Reporter
	logger        *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(configuration AuditConfiguration, fileSystem FileSystem, reporter Reporter, logger *zap.Logger) *Service {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		configuration: configuration,
		fileSystem:    fileSystem,
		reporter:      reporter,
		logger:        logger,
	}
}

// Run prints the banner and dispatches to the workflow selected by command.
//
// Only CommandCheck and CommandList touch the filesystem; the directory is created
// before either runs. A directory creation failure is the only error returned for
// recognized commands.
func (service *Service) Run(executionContext context.Context, command Command) error {
	if executionContext != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
	}

	service.logger.Debug(
		commandDispatchedLogMessageConstant,
		zap.String(logFieldCommandConstant, command.String()),
		zap.String(logFieldDirectoryConstant, service.configuration.Directory()),
	)

	service.report(bannerMessageConstant)
	service.report(blankLineConstant)

	if command.touchesFileSystem() {
		if ensureError := service.EnsureDirectory(); ensureError != nil {
			return ensureError
		}
	}

	switch command {
	case CommandCheck:
		results := service.CheckFiles()
		service.EmitSyncInstructions(results)
		return nil
	case CommandList:
		service.ListExpected()
		return nil
	case CommandSync:
		service.report(syncGuidanceManualMessageConstant)
		service.report(syncGuidanceCheckCommandMessageConstant)
		return nil
	case CommandUnrecognized:
		service.report(unknownCommandMessageConstant)
		return nil
	default:
		return fmt.Errorf(unsupportedCommandErrorTemplateConstant, int(command))
	}
}

// EnsureDirectory creates the designated directory, including missing parents, when it does not exist.
func (service *Service) EnsureDirectory() error {
	directory := service.configuration.Directory()
	if _, statError := service.fileSystem.Stat(directory); statError == nil {
		return nil
	}

	if mkdirError := service.fileSystem.MkdirAll(directory, pdfDirectoryPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(directoryCreationErrorTemplateConstant, directory, mkdirError)
	}

	service.logger.Info(directoryCreatedLogMessageConstant, zap.String(logFieldDirectoryConstant, directory))
	return nil
}

// ExpectedItems returns the configured PDFs in week order.
func (service *Service) ExpectedItems() []ExpectedItem {
	weeks := service.configuration.Weeks()
	items := make([]ExpectedItem, 0, len(weeks))
	for _, week := range weeks {
		label, _ := service.configuration.Label(week)
		items = append(items, ExpectedItem{Week: week, FileName: week.FileName(), Label: label})
	}
	return items
}

// CheckFiles reports the existence of every expected PDF followed by a summary line.
// A missing file is an ordinary result, never an error.
func (service *Service) CheckFiles() []AuditResult {
	service.report(checkingHeaderMessageConstant)
	service.report(blankLineConstant)

	items := service.ExpectedItems()
	results := make([]AuditResult, 0, len(items))
	for _, item := range items {
		results = append(results, service.inspect(item))
	}

	for _, result := range results {
		statusSymbol := absentStatusSymbolConstant
		if result.Exists {
			statusSymbol = presentStatusSymbolConstant
		}
		service.report(fmt.Sprintf(statusLineTemplateConstant, statusSymbol, int(result.Week), result.FileName))
	}

	summary := Summarize(results)
	service.report(blankLineConstant)
	service.report(fmt.Sprintf(summaryLineTemplateConstant, summary.Existing, summary.Total))

	service.logger.Info(
		auditCompletedLogMessageConstant,
		zap.String(logFieldDirectoryConstant, service.configuration.Directory()),
		zap.Int(logFieldExistingConstant, summary.Existing),
		zap.Int(logFieldTotalConstant, summary.Total),
	)

	return results
}

// ListExpected reports every expected file name and the directory they belong in.
func (service *Service) ListExpected() {
	service.report(listHeaderMessageConstant)
	service.report(blankLineConstant)

	for _, item := range service.ExpectedItems() {
		labelSuffix := ""
		if len(item.Label) > 0 {
			labelSuffix = fmt.Sprintf(listLabelSuffixTemplateConstant, item.Label)
		}
		service.report(fmt.Sprintf(listItemTemplateConstant, item.FileName, int(item.Week), labelSuffix))
	}

	service.report(blankLineConstant)
	service.report(fmt.Sprintf(listDirectoryTemplateConstant, service.configuration.Directory()))
}

// EmitSyncInstructions reports the browser console statements that mark existing PDFs as uploaded.
// Absent files produce no statement.
func (service *Service) EmitSyncInstructions(results []AuditResult) {
	service.report(blankLineConstant)
	service.report(syncInstructionsHeaderMessageConstant)
	service.report(syncInstructionsOpenAdminStepConstant)
	service.report(syncInstructionsConsoleStepConstant)
	service.report(blankLineConstant)

	for _, result := range results {
		if !result.Exists {
			continue
		}
		service.report(fmt.Sprintf(storageStatementTemplateConstant, result.Week.StorageKey(), StorageUploadedValueConstant))
	}

	service.report(blankLineConstant)
	service.report(syncInstructionsRefreshStepConstant)
}

func (service *Service) inspect(item ExpectedItem) AuditResult {
	filePath := filepath.Join(service.configuration.Directory(), item.FileName)

	_, statError := service.fileSystem.Stat(filePath)
	if statError != nil && !errors.Is(statError, fs.ErrNotExist) {
		service.logger.Debug(statFailedLogMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(statError))
	}

	return AuditResult{
		Week:     item.Week,
		FileName: item.FileName,
		Path:     filePath,
		Exists:   statError == nil,
	}
}

func (service *Service) report(line string) {
	if service.reporter == nil {
		return
	}
	service.reporter.Report(line)
}
