package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Install plugin files into an Android project"
	MsgInstallShort   = "Install a plugin's files into the project"
	MsgUninstallShort = "Remove a plugin's files from the project"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgInstalledFormat   = "Installed %s: %d directives applied, %d skipped\n"
	MsgUninstalledFormat = "Uninstalled %s: %d directives reverted, %d skipped\n"
	MsgSkippedFormat     = "  - skipped unsupported <%s>\n"
)
