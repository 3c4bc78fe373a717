package components

import (
	"strconv"
	"strings"

	"mergelist/internal/tui/design"
	"mergelist/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the status bar colouring for a transient message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// ClearMessage removes the status message
func (s *StatusBar) ClearMessage() *StatusBar {
	s.ShowMessage = false
	s.Message = ""
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	inner := s.Width - design.SpaceSM*2

	var content string
	switch {
	case s.ShowMessage:
		content = utils.TruncateString(s.Message, inner)
	case s.LeftText != "" && s.RightText != "":
		padding := inner - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = utils.TruncateString(s.LeftText, inner)
		}
	case s.LeftText != "":
		content = s.LeftText
	default:
		content = s.RightText
	}

	return s.style().
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) style() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case MessageSuccess:
		return design.StatusBarSuccessStyle
	case MessageError:
		return design.StatusBarErrorStyle
	default:
		return design.StatusBarInfoStyle
	}
}

// FormatBlocks renders the block names with an active/inactive marker and their
// 1-based toggle key.
func FormatBlocks(names []string, active func(string) bool) string {
	parts := make([]string, len(names))
	for i, name := range names {
		icon := design.IconInactive
		if active(name) {
			icon = design.IconActive
		}
		parts[i] = icon + " " + strconv.Itoa(i+1) + ":" + name
	}
	return strings.Join(parts, "  ")
}
