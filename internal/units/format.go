package units

import (
	"fmt"
	"strconv"
)

// FormatBaseAmount renders a base amount back into a human string:
// "1 kg 200 g", "750 ml", "3 pcs". Weight and volume split into the large
// unit plus remainder, dropping whichever part is zero ("0 g" when both
// are). Count-like amounts get a label chosen by the unit tag.
func FormatBaseAmount(u Unit, baseAmount int64) string {
	switch KindOf(u) {
	case KindWeight:
		return formatSplit(baseAmount, "kg", "g")
	case KindVolume:
		return formatSplit(baseAmount, "litre", "ml")
	default:
		count := baseAmount
		if count < 0 {
			count = 0
		}
		if label := countLabel(u); label != "" {
			return fmt.Sprintf("%d %s", count, label)
		}
		return strconv.FormatInt(count, 10)
	}
}

func formatSplit(baseAmount int64, largeLabel, smallLabel string) string {
	total := baseAmount
	if total < 0 {
		total = 0
	}
	large := total / 1000
	small := total % 1000
	switch {
	case large > 0 && small > 0:
		return fmt.Sprintf("%d %s %d %s", large, largeLabel, small, smallLabel)
	case large > 0:
		return fmt.Sprintf("%d %s", large, largeLabel)
	default:
		return fmt.Sprintf("%d %s", small, smallLabel)
	}
}

func countLabel(u Unit) string {
	switch u {
	case UnitPacket:
		return "packets"
	case UnitPiece:
		return "pcs"
	case UnitBox:
		return "boxes"
	case UnitDozen:
		return "dozen"
	case "":
		return ""
	default:
		return string(u)
	}
}
