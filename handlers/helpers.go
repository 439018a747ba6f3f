package handlers

import "strconv"

// atoiOr parses s as int; if it is empty or malformed, returns def.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
