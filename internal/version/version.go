package version

// Version is overridden at build time with -ldflags "-X exonmap/internal/version.Version=...".
var Version = "dev"
