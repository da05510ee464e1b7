package services

import (
	"errors"
	"fmt"
	"math"

	apperrors "monevo/internal/errors"
)

// FormatAmount renders an amount the way the bot shows money: rounded to a
// whole number with thousands separators ("3000" -> "3,000").
func FormatAmount(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + string(out)
}

func asAppError(err error, target **apperrors.AppError) bool {
	return errors.As(err, target)
}
