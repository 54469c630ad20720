// Package ui renders shell output lines.
//
// Every command produces exactly one line made of a class prefix and a
// message. Prefix text comes from config.Prefixes; styling uses lipgloss
// and is applied only when the Renderer was built with color enabled,
// which the front end does only for terminals.
package ui
