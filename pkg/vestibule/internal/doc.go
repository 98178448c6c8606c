// Package internal contains the SDL infrastructure for the vestibule UI
// layer: window and renderer management, input processing, theming, fonts,
// text and icon rendering, and logging. Types and functions in this package
// are not part of the public API.
package internal
