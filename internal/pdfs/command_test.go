package pdfs_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/journalclub/internal/pdfs"
)

const (
	runIdentifierLogFieldConstant = "run_id"
	auditCompletedMessageConstant = "pdf audit completed"
)

func TestCommandBuilderDispatchesArguments(testInstance *testing.T) {
	testCases := []struct {
		name              string
		arguments         []string
		existingWeeks     []int
		expectedFragments []string
		absentFragments   []string
		expectAudit       bool
	}{
		{
			name:          "default_runs_check",
			arguments:     []string{},
			existingWeeks: []int{5},
			expectedFragments: []string{
				"✅ Week 5: week5.pdf",
				"📊 Summary: 1/14 PDF files exist",
				"localStorage.setItem('pdf_week_5', 'uploaded');",
			},
			expectAudit: true,
		},
		{
			name:              "list",
			arguments:         []string{"list"},
			expectedFragments: []string{"📄 week0.pdf - Week 0 (Orientation)", "📁 Files should be placed in: "},
			absentFragments:   []string{"📊 Summary"},
		},
		{
			name:              "sync",
			arguments:         []string{"sync"},
			expectedFragments: []string{"💡 For a static site"},
			absentFragments:   []string{"📊 Summary", "📄 week0.pdf"},
		},
		{
			name:              "unknown",
			arguments:         []string{"bogus", "ignored"},
			expectedFragments: []string{"❓ Unknown command. Available commands: check, list, sync"},
			absentFragments:   []string{"📊 Summary"},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			siteRoot := testInstance.TempDir()
			writePDFs(testInstance, filepath.Join(siteRoot, "public", "pdfs"), testCase.existingWeeks...)

			logCore, observedLogs := observer.New(zapcore.DebugLevel)
			builder := pdfs.CommandBuilder{
				LoggerProvider: func() *zap.Logger { return zap.New(logCore) },
				ConfigurationProvider: func() pdfs.CommandConfiguration {
					configuration := pdfs.DefaultCommandConfiguration()
					configuration.SiteRoot = siteRoot
					return configuration
				},
			}

			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			command.SetContext(context.Background())
			command.SetArgs(testCase.arguments)

			outputBuffer := &strings.Builder{}
			command.SetOut(outputBuffer)
			command.SetErr(outputBuffer)

			require.NoError(testInstance, command.Execute())

			output := outputBuffer.String()
			require.True(testInstance, strings.HasPrefix(output, testBannerLineConstant+"\n\n"))
			for _, fragment := range testCase.expectedFragments {
				require.Contains(testInstance, output, fragment)
			}
			for _, fragment := range testCase.absentFragments {
				require.NotContains(testInstance, output, fragment)
			}

			auditEntries := observedLogs.FilterMessage(auditCompletedMessageConstant).All()
			if !testCase.expectAudit {
				require.Empty(testInstance, auditEntries)
				return
			}
			require.Len(testInstance, auditEntries, 1)
			contextFields := auditEntries[0].ContextMap()
			require.NotEmpty(testInstance, contextFields[runIdentifierLogFieldConstant])
			require.EqualValues(testInstance, 1, contextFields["existing"])
			require.EqualValues(testInstance, 14, contextFields["total"])
		})
	}
}

func TestCommandBuilderRejectsInvalidConfiguration(testInstance *testing.T) {
	builder := pdfs.CommandBuilder{
		ConfigurationProvider: func() pdfs.CommandConfiguration {
			return pdfs.CommandConfiguration{SiteRoot: testInstance.TempDir(), FirstWeek: 3, LastWeek: 1}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs([]string{"check"})
	command.SetOut(&strings.Builder{})
	command.SetErr(&strings.Builder{})
	command.SilenceUsage = true
	command.SilenceErrors = true

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Equal(testInstance, "invalid pdf configuration: last week must not precede first week", executionError.Error())
}
