package pdfs

const (
	commandCheckNameConstant        = "check"
	commandListNameConstant         = "list"
	commandSyncNameConstant         = "sync"
	commandUnrecognizedNameConstant = "unrecognized"
)

// Command enumerates the workflows the entry point dispatches to.
type Command int

// Supported commands. CommandUnrecognized covers every argument that is not an exact match.
const (
	CommandUnrecognized Command = iota
	CommandCheck
	CommandList
	CommandSync
)

// ParseCommand maps a raw argument onto a Command. An empty argument selects CommandCheck.
func ParseCommand(rawCommand string) Command {
	switch rawCommand {
	case "", commandCheckNameConstant:
		return CommandCheck
	case commandListNameConstant:
		return CommandList
	case commandSyncNameConstant:
		return CommandSync
	default:
		return CommandUnrecognized
	}
}

// String returns the command name used on the command line.
func (command Command) String() string {
	switch command {
	case CommandCheck:
		return commandCheckNameConstant
	case CommandList:
		return commandListNameConstant
	case CommandSync:
		return commandSyncNameConstant
	default:
		return commandUnrecognizedNameConstant
	}
}

// touchesFileSystem reports whether the command inspects or creates the PDF directory.
func (command Command) touchesFileSystem() bool {
	return command == CommandCheck || command == CommandList
}
