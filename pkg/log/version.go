package log

// Version of the log package, reported by `mobscale --version`.
const Version = "1.0.0"
