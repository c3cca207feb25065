package render

import "fmt"

const helpToggleText = " Help -> <C-h>"

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "(General Commands)",
		entries: []helpEntry{
			{keys: "<C-t>", desc: "Toggle terminal window (tmux split inside tmux)"},
			{keys: "<C-h>", desc: "Toggle help menu window"},
			{keys: "<C-r>", desc: "Rescan CWD for updates"},
			{keys: "<C-n>", desc: "Next colour scheme"},
			{keys: "<C-p>", desc: "Toggle preview"},
			{keys: "<C-y>", desc: "Copy highlighted path to clipboard"},
			{keys: "<C-z>", desc: "Suspend to shell"},
			{keys: "Esc", desc: "Exit Vuit"},
		},
	},
	{
		title: "(File List Focus Commands)",
		entries: []helpEntry{
			{keys: "Up/Down, <C-k>/<C-j>", desc: "Navigate the focused list"},
			{keys: "Enter", desc: "Open selected file"},
			{keys: "Tab", desc: "Switch between file, string and recent windows"},
			{keys: "<C-x>", desc: "Remove recent entry, or run file in terminal"},
		},
	},
	{
		title: "(String Search Commands)",
		entries: []helpEntry{
			{keys: "<C-f>", desc: "Search file contents in the filtered files"},
			{keys: "Enter", desc: "Start search, or open the selected match"},
			{keys: "<C-s>", desc: "Replace the searched text in every match"},
		},
	},
	{
		title: "(Terminal Focus Commands)",
		entries: []helpEntry{
			{keys: "<C-t>", desc: "Back to the file list, session is preserved"},
			{keys: "<C-c>", desc: "Interrupt the running command"},
			{keys: "quit, exit", desc: "Back to the file list and restart the shell"},
			{keys: "restart", desc: "Restart an unresponsive session"},
		},
	},
}

// buildHelpColumns lays the help sections out in two columns so the menu
// fits the bottom panel.
func buildHelpColumns() [2][]string {
	keyWidth := 0
	for _, section := range helpSections {
		for _, entry := range section.entries {
			if len(entry.keys) > keyWidth {
				keyWidth = len(entry.keys)
			}
		}
	}

	var columns [2][]string
	half := (len(helpSections) + 1) / 2
	for i, section := range helpSections {
		col := 0
		if i >= half {
			col = 1
		}
		if len(columns[col]) > 0 {
			columns[col] = append(columns[col], "")
		}
		columns[col] = append(columns[col], section.title)
		for _, entry := range section.entries {
			columns[col] = append(columns[col], fmt.Sprintf("%-*s - %s", keyWidth, entry.keys, entry.desc))
		}
	}
	return columns
}
