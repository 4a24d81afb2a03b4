package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"lifeassist"
)

// parseParams turns trailing key=value arguments into operation parameters.
// Values are strings except for the keys the operations expect typed:
// "n" is an integer and "desc" a boolean.
func parseParams(args []string) (lifeassist.Params, error) {
	params := lifeassist.Params{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		switch key {
		case "n":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %q must be an integer: %v", key, err)
			}
			params[key] = n
		case "desc":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %q must be a boolean: %v", key, err)
			}
			params[key] = b
		default:
			params[key] = value
		}
	}
	return params, nil
}
