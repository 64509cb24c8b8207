package version

// Version is the application version. Release builds set it with
// -ldflags "-X github.com/yang-ventures/portfolio-backend/internal/version.Version=<tag>".
var Version = "dev"
