package version

import (
	goversion "github.com/caarlos0/go-version"
)

const (
	application = "focuslearn"
	description = "Compliance-training status backend"
	website     = "https://github.com/UnknownOlympus/focuslearn"
)

// Set at build time with -ldflags "-X github.com/UnknownOlympus/focuslearn/internal/lib/version.version=...".
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

// Info describes the running binary.
func Info(binary string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(application+"-"+binary, description, website),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
