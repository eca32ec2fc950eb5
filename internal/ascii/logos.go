// Package ascii provides the logos drawn beside the system summary.
// Rows are plain text; coloring is left to the render sink.
package ascii

import (
	"runtime"
	"sort"
	"strings"
)

// Logo is an ordered, read-only block of rows
type Logo struct {
	Name string
	Rows []string
}

// Height returns the number of rows
func (l Logo) Height() int {
	return len(l.Rows)
}

const (
	// Default is used when no logo or an unknown logo is requested
	Default = "windows"

	// Auto picks a logo for the running operating system
	Auto = "auto"
)

var logos = map[string][]string{
	"windows": {
		"                                .., ",
		"                    ....,,:;+ccllll ",
		"      ...,,+:;  cllllllllllllllllll ",
		",cclllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"                                    ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"llllllllllllll  lllllllllllllllllll ",
		"`'ccllllllllll  lllllllllllllllllll ",
		"       `' \\*::  :ccllllllllllllllll",
		"                       ````''*::cll ",
		"                                 `` ",
	},
	"windows-compact": {
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
		"",
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
	},
	"tux": {
		"        #####       ",
		"       #######      ",
		"       ##O#O##      ",
		"       #######      ",
		"     ###########    ",
		"    #############   ",
		"   ###############  ",
		"   ################ ",
		"  #################",
		"#####################",
		"#####################",
		"  #################",
	},
	"apple": {
		"                    'c.",
		"                 ,xNMM.",
		"               .OMMMMo",
		"               OMMM0,",
		"     .;loddo:' loolloddol;.",
		"   cKMMMMMMMMMMNWMMMMMMMMMM0:",
		" .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
		" XMMMMMMMMMMMMMMMMMMMMMMMX.",
		";MMMMMMMMMMMMMMMMMMMMMMMM:",
		":MMMMMMMMMMMMMMMMMMMMMMMM:",
		".MMMMMMMMMMMMMMMMMMMMMMMMX.",
		" kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
		" .XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
		"  .XMMMMMMMMMMMMMMMMMMMMMMMMK.",
		"    kMMMMMMMMMMMMMMMMMMMMMMd",
		"     ;KMMMMMMMWXXWMMMMMMMk.",
		"       .cooc,.    .,coo:.",
	},
}

var byOS = map[string]string{
	"windows": "windows",
	"linux":   "tux",
	"darwin":  "apple",
}

// Get returns the named logo, the logo for runtime.GOOS when name is
// "auto", and the default logo for anything else
func Get(name string) Logo {
	return get(strings.ToLower(strings.TrimSpace(name)), runtime.GOOS)
}

func get(name, goos string) Logo {
	if name == Auto {
		name = byOS[goos]
	}
	rows, ok := logos[name]
	if !ok {
		name = Default
		rows = logos[Default]
	}
	return Logo{Name: name, Rows: append([]string(nil), rows...)}
}

// Known reports whether name selects a logo without falling back
func Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	_, ok := logos[name]
	return ok || name == Auto
}

// Names lists the selectable logo names
func Names() []string {
	names := make([]string, 0, len(logos)+1)
	for name := range logos {
		names = append(names, name)
	}
	names = append(names, Auto)
	sort.Strings(names)
	return names
}
