// Package winreg provides registry readers for installation detection.
//
// [New] returns a reader backed by the Windows registry on Windows builds and
// a reader that reports every value absent elsewhere. [Static] serves fixed
// values and is used for overrides and tests.
//
// Readers never fail. A missing key, a missing value and an inaccessible
// registry all report the value as absent; the underlying error is logged at
// debug level so the distinction survives in diagnostics.
package winreg
