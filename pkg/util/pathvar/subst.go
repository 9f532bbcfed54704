/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pathvar expands variables in file system paths taken from options
// and settings.
package pathvar

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	sepPrefix = "${"
	sepSuffix = "}"
)

// Subst replaces instances of '${VARNAME}' with the variable and a leading
// '~' with the home directory. HOME and WALLET_HOME are resolved here, other
// names come from the environment. Unknown variables are left unchanged.
func Subst(path string) string {
	path = expandHome(path)

	splits := strings.Split(path, sepPrefix)

	var b strings.Builder
	// the first split precedes the first prefix and is always kept
	b.WriteString(splits[0])

	for _, s := range splits[1:] {
		subst, rest := substVar(s)
		b.WriteString(subst)
		b.WriteString(rest)
	}

	return b.String()
}

// substVar replaces the variable name at the start of s.
// It returns the replacement, or the prefix when nothing was replaced,
// followed by the unconsumed part of s.
func substVar(s string) (string, string) {
	endPos := strings.Index(s, sepSuffix)
	if endPos == -1 {
		return sepPrefix, s
	}

	v, ok := lookupVar(s[:endPos])
	if !ok {
		return sepPrefix, s
	}

	return v, s[endPos+1:]
}

// lookupVar consults the local variables before the environment
func lookupVar(v string) (string, bool) {
	switch v {
	case "HOME":
		return homeDir()
	case "WALLET_HOME":
		if dir, ok := os.LookupEnv(v); ok {
			return dir, true
		}
		home, ok := homeDir()
		if !ok {
			return "", false
		}
		return filepath.Join(home, ".fabric-gateway", "wallet"), true
	}
	return os.LookupEnv(v)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, ok := homeDir()
	if !ok {
		return path
	}
	return home + path[1:]
}

func homeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return home, true
}
