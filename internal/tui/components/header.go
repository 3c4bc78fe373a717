package components

import (
	"strings"

	"mergelist/internal/tui/design"
	"mergelist/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80, // Default width
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	left := h.Title
	if h.Subtitle != "" {
		left += " " + design.DimStyle.Render(h.Subtitle)
	}

	available := h.Width - design.SpaceSM*2
	content := left
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= available {
			content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + h.RightContent
		} else {
			// Not enough space, prioritize left content
			content = utils.TruncateString(left, available)
		}
	}

	return design.TitleStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
