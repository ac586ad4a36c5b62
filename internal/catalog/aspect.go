package catalog

import "strings"

// AspectRatio enumerates the image shapes the image backend can produce.
type AspectRatio string

const (
	RatioSquare AspectRatio = "1:1"
	RatioWide   AspectRatio = "16:9"
	RatioTall   AspectRatio = "9:16"
)

// PlaceholderSize returns the pixel dimensions used for fallback images of
// this ratio.
func (r AspectRatio) PlaceholderSize() (width, height int) {
	switch r {
	case RatioWide:
		return 1280, 720
	case RatioTall:
		return 720, 1280
	default:
		return 800, 800
	}
}

// AspectRatioFor maps a design type and prompt-field name to the aspect ratio
// its generated image must have. The table is part of the catalog's
// declarative configuration; downstream layout depends on it being stable.
// Avatar fields are always square regardless of design type.
func AspectRatioFor(designTypeID, fieldName string) AspectRatio {
	if strings.Contains(strings.ToLower(fieldName), "avatar") {
		return RatioSquare
	}

	switch designTypeID {
	case "youtube-cover", "marketing-kit":
		return RatioWide
	case "ad-creative":
		return RatioSquare
	case "lead-magnet", "checklist", "app-design", "business-card", "poster":
		return RatioTall
	default:
		return RatioSquare
	}
}
