package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Inspect, validate and launch desktop entry files"
	MsgShowShort     = "Show the resolved fields of a desktop entry"
	MsgShowLong      = "Show parses a desktop entry file and prints its resolved fields, applying locale fallback to the localizable ones."
	MsgValidateShort = "Check desktop entry files for format errors"
	MsgValidateLong  = "Validate parses each file under the strict rules and reports every problem with its line number."
	MsgIDShort       = "Print the Desktop File ID of an entry"
	MsgIDLong        = "ID derives the Desktop File ID of a file from its place in the applications search path."
	MsgListShort     = "List desktop entries on the search path"
	MsgListLong      = "List walks the applications search path and prints every visible desktop entry, honoring ID shadowing."
	MsgLaunchShort   = "Launch a desktop entry"
	MsgLaunchLong    = "Launch expands the entry's Exec line with the given URLs and spawns the result, or opens the URL of a Link entry."
	MsgTopicsShort   = "Display available documentation topics"
	MsgTopicsLong    = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgValidateOK     = "%s: OK\n"
	MsgValidateFailed = "%s: %s\n"
	MsgDryRunNotice   = "\nDRY RUN MODE - Nothing was launched"
	MsgNoEntriesFound = "No desktop entries found."
	MsgLaunched       = "Launched %s\n"

	// Error messages
	MsgErrNotFound      = "no desktop entry %q on the search path"
	MsgErrUnknownAction = "entry %s has no action %q"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagLocale   = "Locale for localized fields (defaults to the environment)"
	MsgFlagFormat   = "Output format: auto, term, text or yaml"
	MsgFlagAll      = "Include hidden and NoDisplay entries"
	MsgFlagAction   = "Launch this action of the entry instead of the entry itself"
	MsgFlagDryRun   = "Print the launch plan without spawning anything"
	MsgFlagTerminal = "Terminal command vector override, e.g. 'kitty -e'"
)
