package season

import "fmt"

// DirName maps an accepted season to its display directory name. Year-based
// and extended seasons (and anything at or above 100) keep their natural
// width; everything else is zero-padded to two digits for stable sorting.
func DirName(seasonNum int, class Class) string {
	if class == YearBased || class == Extended || seasonNum >= 100 {
		return fmt.Sprintf("Season %d", seasonNum)
	}
	return fmt.Sprintf("Season %02d", seasonNum)
}
