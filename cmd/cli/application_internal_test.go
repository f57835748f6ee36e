package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/journalclub/internal/utils"
)

const (
	testConfigurationFileNameConstant       = "config.yaml"
	testConfigurationContentTemplate        = "tools:\n  pdfs:\n    site_root: %s\n    last_week: 2\n"
	testPDFDirectoryEnvironmentNameConstant = "JOURNALCLUB_TOOLS_PDFS_PDF_DIRECTORY"
	testConfigurationInitializedConstant    = "configuration initialized"
	testSiteConfigurationMessageConstant    = "site build configuration"
)

type applicationHarness struct {
	application      *Application
	standardOutput   *bytes.Buffer
	diagnosticOutput *bytes.Buffer
}

func newApplicationHarness(testInstance *testing.T, arguments ...string) applicationHarness {
	testInstance.Helper()

	diagnosticOutput := &bytes.Buffer{}
	application := newApplication(utils.NewLoggerFactoryWithOutput(zapcore.AddSync(diagnosticOutput)), []string{testInstance.TempDir()})
	require.NoError(testInstance, application.buildError)

	standardOutput := &bytes.Buffer{}
	application.rootCommand.SetOut(standardOutput)
	application.rootCommand.SetErr(standardOutput)
	application.rootCommand.SetArgs(arguments)

	return applicationHarness{application: application, standardOutput: standardOutput, diagnosticOutput: diagnosticOutput}
}

func writeWeekFiles(testInstance *testing.T, directory string, weeks ...int) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(directory, 0o755))
	for _, week := range weeks {
		require.NoError(testInstance, os.WriteFile(filepath.Join(directory, fmt.Sprintf("week%d.pdf", week)), []byte("%PDF"), 0o600))
	}
}

func TestApplicationCommandsWithSiteRootFlag(testInstance *testing.T) {
	testCases := []struct {
		name              string
		command           []string
		expectedFragments []string
		expectDirectory   bool
	}{
		{
			name:              "default_check",
			command:           []string{},
			expectedFragments: []string{"✅ Week 5: week5.pdf", "📊 Summary: 1/14 PDF files exist", "localStorage.setItem('pdf_week_5', 'uploaded');"},
			expectDirectory:   true,
		},
		{
			name:              "list",
			command:           []string{"list"},
			expectedFragments: []string{"📄 week0.pdf - Week 0 (Orientation)", "📄 week13.pdf - Week 13"},
			expectDirectory:   true,
		},
		{
			name:              "sync",
			command:           []string{"sync"},
			expectedFragments: []string{"Use the \"check\" command to see the localStorage commands needed."},
		},
		{
			name:              "unknown",
			command:           []string{"bogus"},
			expectedFragments: []string{"❓ Unknown command. Available commands: check, list, sync"},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			siteRoot := testInstance.TempDir()
			pdfDirectory := filepath.Join(siteRoot, "public", "pdfs")
			if testCase.expectDirectory {
				writeWeekFiles(testInstance, pdfDirectory, 5)
			}

			arguments := append([]string{"--site-root", siteRoot}, testCase.command...)
			harness := newApplicationHarness(testInstance, arguments...)

			require.NoError(testInstance, harness.application.Execute())

			output := harness.standardOutput.String()
			require.True(testInstance, strings.HasPrefix(output, "🎓 AI Journal Club - File Management\n\n"))
			for _, fragment := range testCase.expectedFragments {
				require.Contains(testInstance, output, fragment)
			}

			_, statError := os.Stat(pdfDirectory)
			require.Equal(testInstance, testCase.expectDirectory, statError == nil)
			require.Contains(testInstance, harness.diagnosticOutput.String(), testConfigurationInitializedConstant)
		})
	}
}

func TestApplicationCreatesMissingDirectory(testInstance *testing.T) {
	siteRoot := testInstance.TempDir()
	harness := newApplicationHarness(testInstance, "--site-root", siteRoot, "check")

	require.NoError(testInstance, harness.application.Execute())

	directoryInfo, statError := os.Stat(filepath.Join(siteRoot, "public", "pdfs"))
	require.NoError(testInstance, statError)
	require.True(testInstance, directoryInfo.IsDir())
	require.Contains(testInstance, harness.standardOutput.String(), "📊 Summary: 0/14 PDF files exist")
}

func TestApplicationReadsConfigurationFile(testInstance *testing.T) {
	siteRoot := testInstance.TempDir()
	writeWeekFiles(testInstance, filepath.Join(siteRoot, "public", "pdfs"), 1, 2, 9)

	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(fmt.Sprintf(testConfigurationContentTemplate, siteRoot)), 0o600))

	harness := newApplicationHarness(testInstance, "--config", configurationPath, "--log-level", "debug")
	require.NoError(testInstance, harness.application.Execute())

	output := harness.standardOutput.String()
	require.Contains(testInstance, output, "📊 Summary: 2/3 PDF files exist")
	require.NotContains(testInstance, output, "week9.pdf")
	require.Equal(testInstance, configurationPath, harness.application.configurationMetadata.ConfigFileUsed)

	diagnostics := harness.diagnosticOutput.String()
	require.Contains(testInstance, diagnostics, testSiteConfigurationMessageConstant)
	require.Contains(testInstance, diagnostics, "/efficient-nlp")
	require.Contains(testInstance, diagnostics, "run_id")
}

func TestApplicationEnvironmentOverridesDirectory(testInstance *testing.T) {
	pdfDirectory := filepath.Join(testInstance.TempDir(), "published")
	writeWeekFiles(testInstance, pdfDirectory, 0)
	testInstance.Setenv(testPDFDirectoryEnvironmentNameConstant, pdfDirectory)

	harness := newApplicationHarness(testInstance, "--log-format", "console")
	require.NoError(testInstance, harness.application.Execute())

	output := harness.standardOutput.String()
	require.Contains(testInstance, output, "✅ Week 0: week0.pdf")
	require.Contains(testInstance, output, "localStorage.setItem('pdf_week_0', 'uploaded');")
	require.Equal(testInstance, "console", harness.application.configuration.Common.LogFormat)
}

func TestApplicationReportsDirectoryCreationFailure(testInstance *testing.T) {
	blockingFile := filepath.Join(testInstance.TempDir(), "site")
	require.NoError(testInstance, os.WriteFile(blockingFile, []byte("not a directory"), 0o600))

	harness := newApplicationHarness(testInstance, "--site-root", blockingFile, "check")
	executionError := harness.application.Execute()

	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unable to create pdf directory")
	require.NotContains(testInstance, harness.standardOutput.String(), "📊 Summary")
}

func TestApplicationRejectsUnsupportedLogLevel(testInstance *testing.T) {
	harness := newApplicationHarness(testInstance, "--site-root", testInstance.TempDir(), "--log-level", "verbose", "sync")
	executionError := harness.application.Execute()

	require.Error(testInstance, executionError)
	require.Equal(testInstance, "unable to create logger: unsupported log level: verbose", executionError.Error())
	require.Empty(testInstance, harness.standardOutput.String())
}
