package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor reads a villager colour. It accepts "#RRGGBB", "#RGB" (with or
// without the leading '#') and the W3C colour names tcell knows, such as
// "goldenrod".
func ParseColor(s string) (tcell.Color, error) {
	if !strings.HasPrefix(s, "#") {
		if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
			return c, nil
		}
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
