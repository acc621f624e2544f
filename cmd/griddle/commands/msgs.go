package commands

// Short messages (one-liners)
const (
	MsgRootShort = "Render tables, panels and rules in the terminal"
	MsgRootLong  = `griddle renders styled tables, panels and horizontal rules to the
terminal, degrading gracefully to plain ASCII when the output is piped
or the terminal cannot display Unicode box-drawing glyphs.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgTableShort   = "Render rows as a box-drawn grid"
	MsgTableLong    = `Render a table from --row flags or from CSV on stdin.

The output format defaults to the box-drawn grid; --format csv and
--format html select the alternate serializations.`
	MsgBoxesShort = "Preview the box style catalog"
	MsgRuleShort  = "Render a horizontal rule"
	MsgPanelShort = "Render text inside a bordered panel"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagWidth   = "Force the total rendered width (0 = natural size)"
	MsgFlagBox     = "Box style name (see 'griddle boxes')"
	MsgFlagNoColor = "Disable ANSI colors"

	// Version output
	MsgVersionFormat = "griddle version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)
