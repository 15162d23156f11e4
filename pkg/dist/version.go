package dist

// Version of the sampling package, reported by `mobscale --version`.
// Bump it whenever a seed would produce different scales than before.
const Version = "1.0.0"
