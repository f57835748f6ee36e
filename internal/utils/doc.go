// Package utils exposes the ambient helpers shared by the journal-club commands.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper; LoggerFactory builds zap loggers in
// structured or console form; FlushingWriter keeps console output visible as
// soon as it is written.
package utils
