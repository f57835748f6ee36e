package pdfs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandUseConstant                           = "journal-club [check|list|sync]"
	commandShortDescriptionConstant              = "Check the journal-club PDF files and print admin page sync statements"
	commandLongDescriptionConstant               = "journal-club checks which weekly PDF files (week0.pdf through week13.pdf by default) exist in the site's PDF directory and prints the localStorage statements that mark them as uploaded in the browser admin page.\n\nCommands:\n  check  Check which PDF files exist (default)\n  list   List all expected files\n  sync   Explain how to sync browser storage"
	configurationResolutionErrorTemplateConstant = "invalid pdf configuration: %w"
	logFieldRunIdentifierConstant                = "run_id"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current PDF audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra entry point for the PDF audit.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            FileSystem
	Resolver              *ConfigurationResolver
}

// Build constructs the Cobra command that reads one optional positional argument and dispatches on it.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	requestedCommand := ParseCommand(firstArgument(arguments))

	fileSystem := builder.resolveFileSystem()
	auditConfiguration, resolveError := builder.resolveResolver(fileSystem).Resolve(builder.resolveConfiguration())
	if resolveError != nil {
		return fmt.Errorf(configurationResolutionErrorTemplateConstant, resolveError)
	}

	logger := builder.resolveLogger().With(zap.String(logFieldRunIdentifierConstant, uuid.NewString()))

	service := NewService(auditConfiguration, fileSystem, NewWriterReporter(command.OutOrStdout()), logger)
	return service.Run(command.Context(), requestedCommand)
}

func firstArgument(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}
	return arguments[0]
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem == nil {
		return OSFileSystem{}
	}
	return builder.FileSystem
}

func (builder *CommandBuilder) resolveResolver(fileSystem FileSystem) *ConfigurationResolver {
	if builder.Resolver != nil {
		return builder.Resolver
	}
	return NewConfigurationResolver(fileSystem)
}
