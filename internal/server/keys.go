package server

import (
	"fmt"
	"strconv"
)

func parseKey(raw string) (uint64, error) {
	key, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", raw, err)
	}
	return key, nil
}
