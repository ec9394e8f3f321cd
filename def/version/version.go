// Package version defines the current version number of the codec tools.
package version

// Number is the current version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.1.0"
