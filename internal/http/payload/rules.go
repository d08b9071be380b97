package payload

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/jellydator/validation"
)

var (
	positiveInt = regexp.MustCompile(`^[1-9][0-9]{0,8}$`)
	unsignedInt = regexp.MustCompile(`^[0-9]{1,19}$`)
)

// floatBetween accepts an empty value or a finite decimal string within
// [lo, hi]. ParseFloat reads "NaN" and "Inf", and NaN fails no comparison.
func floatBetween(lo, hi float64) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.New("must be a number")
		}
		if f < lo || f > hi {
			return fmt.Errorf("must be between %v and %v", lo, hi)
		}
		return nil
	}
}

// intAtMost accepts an empty value or an integer string no greater than hi.
func intAtMost(hi int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("must be an integer")
		}
		if n > hi {
			return fmt.Errorf("must be no greater than %d", hi)
		}
		return nil
	}
}

// atoi converts a value that already passed validation. Empty means zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func dateLayout(layout string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := time.Parse(layout, s); err != nil {
			return errors.New("must be a valid date")
		}
		return nil
	}
}
