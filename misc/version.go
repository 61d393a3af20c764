// Package misc holds build identity shared by the command line surface and
// the logging setup. The variables are expected to be set at build time, for
// example:
//
//	go build -ldflags="-X 'cssval/misc.version=1.0.0' -X 'cssval/misc.gitHash=deadbeef'"
package misc

var (
	appName = "cssval"
	version = "development"
	gitHash = "unknown"
)

// GetAppName returns the program name used for logger naming and derived
// file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version set at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns the source revision set at build time.
func GetGitHash() string {
	return gitHash
}
