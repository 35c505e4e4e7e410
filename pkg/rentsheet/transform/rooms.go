package transform

// TypeLargest is the catch-all category. Unknown room counts (0) fall in it too.
const TypeLargest = "T5+"

// TypeFormatMap maps room counts to their listing category.
var TypeFormatMap = map[int]string{
	1: "Studio",
	2: "T2",
	3: "T3",
	4: "T4",
}

// TypeFormat returns the listing category for a room count.
func TypeFormat(pieces int) string {
	if t, ok := TypeFormatMap[pieces]; ok {
		return t
	}
	return TypeLargest
}
