package track

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDuration форматирует длительность в MM:SS без перехода минут в часы
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseDuration разбирает длительность в формате MM:SS или HH:MM:SS
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &FormatError{Value: s}
	}
	return sumParts(s, parts)
}

// ParseDurationInput разбирает длительность, введенную пользователем.
// Помимо MM:SS и HH:MM:SS принимает целое число секунд.
func ParseDurationInput(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 2 || len(parts) == 3 {
		return sumParts(s, parts)
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Value: s}
	}
	d, ok := scale(seconds, time.Second)
	if !ok {
		return 0, &FormatError{Value: s}
	}
	return d, nil
}

// sumParts переводит части [часы:]минуты:секунды в длительность
func sumParts(s string, parts []string) (time.Duration, error) {
	units := []time.Duration{time.Second, time.Minute, time.Hour}
	var total time.Duration
	for i := range parts {
		part := strings.TrimSpace(parts[len(parts)-1-i])
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, &FormatError{Value: s}
		}
		d, ok := scale(n, units[i])
		if !ok || !fits(total, d) {
			return 0, &FormatError{Value: s}
		}
		total += d
	}
	return total, nil
}

// scale умножает n на unit, ok равен false при переполнении time.Duration
func scale(n int, unit time.Duration) (time.Duration, bool) {
	limit := int64(math.MaxInt64) / int64(unit)
	if int64(n) > limit || int64(n) < -limit {
		return 0, false
	}
	return time.Duration(n) * unit, true
}

// fits сообщает, помещается ли total+d в time.Duration
func fits(total, d time.Duration) bool {
	if d > 0 {
		return total <= math.MaxInt64-d
	}
	return total >= math.MinInt64-d
}
