package card

// Codes maps cards to their compact codes, preserving order.
func Codes(cs []Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Code())
	}
	return out
}

// ParseCodes is the inverse of Codes.
func ParseCodes(codes []string) ([]Card, error) {
	out := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCode(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
