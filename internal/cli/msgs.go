package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Link profile dotfiles into your home directory"

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - No changes were made"
	MsgBuildCommit  = "Commit: %s\n"
	MsgBuildDate    = "Built:  %s\n"

	// Error messages
	MsgErrorLine = "Error: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview links without creating them"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.md
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-table.md
	msgLinkTableRaw string
	MsgLinkTable    = strings.TrimSpace(msgLinkTableRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/version-template.txt
	msgVersionTemplateRaw string
	MsgVersionTemplate    = strings.TrimSpace(msgVersionTemplateRaw) + "\n"
)
