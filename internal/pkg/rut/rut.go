package rut

import (
	"errors"
	"regexp"
	"strings"
)

// Chilean RUT validation: 7-8 digit body plus a mod-11 check digit
// (0-9 or K). Accepts dotted ("12.345.678-5") and bare ("123456785") input.

var ErrInvalidRut = errors.New("invalid RUT")

var rutPattern = regexp.MustCompile(`^\d{7,8}[0-9Kk]$`)

// Normalize strips dots and dash and returns the canonical "body-DV" form
// with an uppercase check digit.
func Normalize(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if !rutPattern.MatchString(cleaned) {
		return "", ErrInvalidRut
	}

	body := cleaned[:len(cleaned)-1]
	dv := strings.ToUpper(cleaned[len(cleaned)-1:])
	if checkDigit(body) != dv {
		return "", ErrInvalidRut
	}
	return body + "-" + dv, nil
}

// Validate reports whether raw is a well-formed RUT with a correct check
// digit.
func Validate(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func checkDigit(body string) string {
	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		multiplier++
		if multiplier > 7 {
			multiplier = 2
		}
	}

	switch remainder := 11 - (sum % 11); remainder {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + remainder))
	}
}
