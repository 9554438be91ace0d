// Package palette resolves the colours of the form message banner from a
// go-theme selection. Success and failure each carry a background and a
// foreground; variants (for example "dark") override the base tokens.
package palette

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/form"
)

// Token names looked up in theme manifests.
const (
	TokenSuccessBackground = "message.success.background"
	TokenSuccessForeground = "message.success.foreground"
	TokenFailureBackground = "message.failure.background"
	TokenFailureForeground = "message.failure.foreground"
)

// DefaultTheme names the bundled manifest.
const DefaultTheme = "formguard"

// Colors is one banner style.
type Colors struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Palette holds both banner styles.
type Palette struct {
	Success Colors `json:"success"`
	Failure Colors `json:"failure"`
}

// For returns the colours used for kind. Unknown kinds use the failure style.
func (p Palette) For(kind form.MessageKind) Colors {
	if kind == form.MessageSuccess {
		return p.Success
	}
	return p.Failure
}

// Default returns the light palette of the bundled manifest.
func Default() Palette {
	return fromTokens(DefaultManifest().Tokens)
}

// DefaultManifest returns the bundled theme with a dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenSuccessBackground: "#ecfdf5",
			TokenSuccessForeground: "#065f46",
			TokenFailureBackground: "#fff1f2",
			TokenFailureForeground: "#9f1239",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenSuccessBackground: "#064e3b",
					TokenSuccessForeground: "#d1fae5",
					TokenFailureBackground: "#4c0519",
					TokenFailureForeground: "#ffe4e6",
				},
			},
		},
	}
}

// Resolve merges the base and variant tokens of a selection into a palette.
// Missing tokens fall back to the default light palette.
func Resolve(selection *theme.Selection) Palette {
	if selection == nil || selection.Manifest == nil {
		return Default()
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	defaults := DefaultManifest().Tokens
	for key, value := range defaults {
		if strings.TrimSpace(tokens[key]) == "" {
			tokens[key] = value
		}
	}
	return fromTokens(tokens)
}

// Select asks selector for a theme and resolves its palette.
func Select(selector theme.ThemeSelector, name, variant string) (Palette, error) {
	if selector == nil {
		return Palette{}, errors.New("palette: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: select theme %q: %w", name, err)
	}
	return Resolve(selection), nil
}

func fromTokens(tokens map[string]string) Palette {
	return Palette{
		Success: Colors{Background: tokens[TokenSuccessBackground], Foreground: tokens[TokenSuccessForeground]},
		Failure: Colors{Background: tokens[TokenFailureBackground], Foreground: tokens[TokenFailureForeground]},
	}
}
