package types

// Version is the application version, overwritten at build time via ldflags
var Version = "dev"

// ServiceName identifies this service in health responses and logs
const ServiceName = "relcycle"
