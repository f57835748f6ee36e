package pdfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultPDFDirectoryConstant              = "public/pdfs"
	defaultFirstWeekConstant                 = 0
	defaultLastWeekConstant                  = 13
	defaultOrientationWeekKeyConstant        = "0"
	defaultOrientationLabelConstant          = "Orientation"
	siteRootConfigurationKeyConstant         = "site_root"
	pdfDirectoryConfigurationKeyConstant     = "pdf_directory"
	firstWeekConfigurationKeyConstant        = "first_week"
	lastWeekConfigurationKeyConstant         = "last_week"
	labelsConfigurationKeyConstant           = "labels"
	configurationKeySeparatorConstant        = "."
	tildeSymbolConstant                      = "~"
	tildeForwardSlashPrefixConstant          = "~/"
	negativeWeekMessageConstant              = "first week must not be negative"
	invertedWeekRangeMessageConstant         = "last week must not precede first week"
	invalidLabelKeyTemplateConstant          = "label key %q is not a week number"
	siteRootResolutionErrorTemplateConstant  = "unable to resolve site root: %w"
	directoryResolutionErrorTemplateConstant = "unable to resolve pdf directory %s: %w"
)

var (
	errNegativeWeek      = errors.New(negativeWeekMessageConstant)
	errInvertedWeekRange = errors.New(invertedWeekRangeMessageConstant)
)

// CommandConfiguration captures persistent settings for the PDF audit.
type CommandConfiguration struct {
	SiteRoot     string            `mapstructure:"site_root"`
	PDFDirectory string            `mapstructure:"pdf_directory"`
	FirstWeek    int               `mapstructure:"first_week"`
	LastWeek     int               `mapstructure:"last_week"`
	Labels       map[string]string `mapstructure:"labels"`
}

// DefaultCommandConfiguration returns baseline configuration values for the PDF audit.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		SiteRoot:     "",
		PDFDirectory: defaultPDFDirectoryConstant,
		FirstWeek:    defaultFirstWeekConstant,
		LastWeek:     defaultLastWeekConstant,
		Labels: map[string]string{
			defaultOrientationWeekKeyConstant: defaultOrientationLabelConstant,
		},
	}
}

// DefaultConfigurationValues returns viper defaults keyed beneath the provided configuration prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	labels := make(map[string]any, len(defaults.Labels))
	for labelKey, labelValue := range defaults.Labels {
		labels[labelKey] = labelValue
	}
	return map[string]any{
		prefixedKey(prefix, siteRootConfigurationKeyConstant):     defaults.SiteRoot,
		prefixedKey(prefix, pdfDirectoryConfigurationKeyConstant): defaults.PDFDirectory,
		prefixedKey(prefix, firstWeekConfigurationKeyConstant):    defaults.FirstWeek,
		prefixedKey(prefix, lastWeekConfigurationKeyConstant):     defaults.LastWeek,
		prefixedKey(prefix, labelsConfigurationKeyConstant):       labels,
	}
}

func prefixedKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}

// AuditConfiguration is the resolved, immutable input of a Service.
type AuditConfiguration struct {
	directory string
	weeks     []WeekIndex
	labels    map[WeekIndex]string
}

// NewAuditConfiguration builds an AuditConfiguration, copying the provided collections.
func NewAuditConfiguration(directory string, weeks []WeekIndex, labels map[WeekIndex]string) AuditConfiguration {
	duplicatedWeeks := make([]WeekIndex, len(weeks))
	copy(duplicatedWeeks, weeks)

	duplicatedLabels := make(map[WeekIndex]string, len(labels))
	for week, label := range labels {
		duplicatedLabels[week] = label
	}

	return AuditConfiguration{directory: directory, weeks: duplicatedWeeks, labels: duplicatedLabels}
}

// Directory returns the designated PDF directory.
func (configuration AuditConfiguration) Directory() string {
	return configuration.directory
}

// Weeks returns a copy of the ordered week sequence.
func (configuration AuditConfiguration) Weeks() []WeekIndex {
	duplicatedWeeks := make([]WeekIndex, len(configuration.weeks))
	copy(duplicatedWeeks, configuration.weeks)
	return duplicatedWeeks
}

// Label returns the display label for a week, if any.
func (configuration AuditConfiguration) Label(week WeekIndex) (string, bool) {
	label, found := configuration.labels[week]
	return label, found
}

// DirectoryProvider resolves a directory path such as the executable location or the home directory.
type DirectoryProvider func() (string, error)

// ExecutableDirectory returns the directory containing the running executable.
func ExecutableDirectory() (string, error) {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return "", executableError
	}
	return filepath.Dir(executablePath), nil
}

// ConfigurationResolver turns a CommandConfiguration into an AuditConfiguration.
type ConfigurationResolver struct {
	FileSystem                  FileSystem
	ExecutableDirectoryProvider DirectoryProvider
	HomeDirectoryProvider       DirectoryProvider
}

// NewConfigurationResolver constructs a resolver backed by the operating system.
func NewConfigurationResolver(fileSystem FileSystem) *ConfigurationResolver {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	return &ConfigurationResolver{
		FileSystem:                  fileSystem,
		ExecutableDirectoryProvider: ExecutableDirectory,
		HomeDirectoryProvider:       os.UserHomeDir,
	}
}

// Resolve validates the configuration and resolves the designated directory to an absolute path.
func (resolver *ConfigurationResolver) Resolve(configuration CommandConfiguration) (AuditConfiguration, error) {
	sanitized := configuration.sanitize()

	weeks, weeksError := sanitized.weekSequence()
	if weeksError != nil {
		return AuditConfiguration{}, weeksError
	}

	labels, labelsError := sanitized.weekLabels()
	if labelsError != nil {
		return AuditConfiguration{}, labelsError
	}

	directory := resolver.expandHome(sanitized.PDFDirectory)
	if !filepath.IsAbs(directory) {
		siteRoot, siteRootError := resolver.resolveSiteRoot(sanitized.SiteRoot)
		if siteRootError != nil {
			return AuditConfiguration{}, fmt.Errorf(siteRootResolutionErrorTemplateConstant, siteRootError)
		}
		directory = filepath.Join(siteRoot, directory)
	}

	absoluteDirectory, absoluteError := resolver.FileSystem.Abs(directory)
	if absoluteError != nil {
		return AuditConfiguration{}, fmt.Errorf(directoryResolutionErrorTemplateConstant, directory, absoluteError)
	}

	return NewAuditConfiguration(absoluteDirectory, weeks, labels), nil
}

func (resolver *ConfigurationResolver) resolveSiteRoot(siteRoot string) (string, error) {
	if len(siteRoot) > 0 {
		return resolver.expandHome(siteRoot), nil
	}
	if resolver.ExecutableDirectoryProvider == nil {
		return ExecutableDirectory()
	}
	return resolver.ExecutableDirectoryProvider()
}

func (resolver *ConfigurationResolver) expandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) || resolver.HomeDirectoryProvider == nil {
		return candidatePath
	}

	homeDirectory, homeError := resolver.HomeDirectoryProvider()
	if homeError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	switch {
	case candidatePath == tildeSymbolConstant:
		return homeDirectory
	case strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant))
	default:
		return candidatePath
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.SiteRoot = strings.TrimSpace(configuration.SiteRoot)
	sanitized.PDFDirectory = strings.TrimSpace(configuration.PDFDirectory)
	if len(sanitized.PDFDirectory) == 0 {
		sanitized.PDFDirectory = defaultPDFDirectoryConstant
	}

	return sanitized
}

func (configuration CommandConfiguration) weekSequence() ([]WeekIndex, error) {
	if configuration.FirstWeek < 0 {
		return nil, errNegativeWeek
	}
	if configuration.LastWeek < configuration.FirstWeek {
		return nil, errInvertedWeekRange
	}

	weeks := make([]WeekIndex, 0, configuration.LastWeek-configuration.FirstWeek+1)
	for week := configuration.FirstWeek; week <= configuration.LastWeek; week++ {
		weeks = append(weeks, WeekIndex(week))
	}
	return weeks, nil
}

func (configuration CommandConfiguration) weekLabels() (map[WeekIndex]string, error) {
	labelKeys := make([]string, 0, len(configuration.Labels))
	for labelKey := range configuration.Labels {
		labelKeys = append(labelKeys, labelKey)
	}
	sort.Strings(labelKeys)

	labels := make(map[WeekIndex]string, len(labelKeys))
	for _, labelKey := range labelKeys {
		trimmedLabel := strings.TrimSpace(configuration.Labels[labelKey])
		if len(trimmedLabel) == 0 {
			continue
		}
		week, parseError := strconv.Atoi(strings.TrimSpace(labelKey))
		if parseError != nil {
			return nil, fmt.Errorf(invalidLabelKeyTemplateConstant, labelKey)
		}
		labels[WeekIndex(week)] = trimmedLabel
	}
	return labels, nil
}
