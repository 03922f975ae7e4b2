package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#ADB5BD",
		Dark:  "#6C757D",
	}
)
