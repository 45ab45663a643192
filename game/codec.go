package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAction decodes the compact text form produced by Action.String:
//
//	take k0 k1 k2 k3 k4 [r0 r1 r2 r3 r4]
//	reserve tier index [returnKind]
//	buy source index [nobleIndex]
//
// It checks shape only; legality is decided by Validate.
func ParseAction(text string) (Action, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedAction)
	}

	args, err := parseInts(fields[1:])
	if err != nil {
		return nil, err
	}

	switch fields[0] {
	case "take":
		return parseTake(args)
	case "reserve":
		return parseReserve(args)
	case "buy":
		return parseBuy(args)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrMalformedAction, fields[0])
	}
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedAction, f)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrMalformedAction, v)
		}
		values[i] = v
	}
	return values, nil
}

func parseTake(args []int) (Action, error) {
	if len(args) != NumColors && len(args) != 2*NumColors {
		return nil, fmt.Errorf("%w: take expects %d or %d numbers, got %d", ErrMalformedAction, NumColors, 2*NumColors, len(args))
	}
	var a TakeTokens
	for k := 0; k < NumColors; k++ {
		a.Take[k] = args[k]
	}
	if len(args) == 2*NumColors {
		for k := 0; k < NumColors; k++ {
			a.Return[k] = args[NumColors+k]
		}
	}
	return a, nil
}

func parseReserve(args []int) (Action, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("%w: reserve expects 2 or 3 numbers, got %d", ErrMalformedAction, len(args))
	}
	a := NewReserve(args[0], args[1])
	if len(args) == 3 {
		if args[2] >= NumColors {
			return nil, fmt.Errorf("%w: return kind %d out of range", ErrMalformedAction, args[2])
		}
		a.Return = Single(Kind(args[2]), 1)
	}
	return a, nil
}

func parseBuy(args []int) (Action, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("%w: buy expects 2 or 3 numbers, got %d", ErrMalformedAction, len(args))
	}
	a := NewBuy(args[0], args[1])
	if len(args) == 3 {
		a.Noble = args[2]
	}
	return a, nil
}
