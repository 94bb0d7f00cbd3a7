package version

// Version is the praixy CLI version. Overridden at build time with
// -ldflags "-X github.com/marshal-labs/praixy/internal/version.Version=...".
var Version = "0.1.0-dev"
