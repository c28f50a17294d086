// Package validation provides common validation utilities for input
// parameters across the cronplan library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in the
// expression constructors.
package validation
