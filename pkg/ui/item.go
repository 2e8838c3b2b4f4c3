package ui

import (
	"fmt"

	"focalpick/pkg/focal"
	"focalpick/pkg/model"
)

// MediaItem wraps model.Media to implement list.Item
type MediaItem struct {
	Media model.Media
}

func (i MediaItem) Title() string {
	return i.Media.Path
}

func (i MediaItem) Description() string {
	if !i.Media.HasFocal {
		return fmt.Sprintf("%s • no focal point", i.Media.Format)
	}
	return fmt.Sprintf("%s • %d%%, %d%%",
		i.Media.Format,
		focal.FractionToPercent(i.Media.Focal.X),
		focal.FractionToPercent(i.Media.Focal.Y))
}

func (i MediaItem) FilterValue() string {
	return i.Media.Path + " " + string(i.Media.Format)
}
