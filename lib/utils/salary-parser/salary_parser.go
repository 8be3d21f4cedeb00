package salaryparser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Period string

const (
	PeriodYear  Period = "year"
	PeriodMonth Period = "month"
	PeriodHour  Period = "hour"
)

// годовой множитель по периоду, для часовой ставки 40 часов * 52 недели
var periodMultiplier = map[Period]float64{
	PeriodYear:  1,
	PeriodMonth: 12,
	PeriodHour:  2080,
}

var periodAliases = map[string]Period{
	"year":     PeriodYear,
	"yr":       PeriodYear,
	"annum":    PeriodYear,
	"annually": PeriodYear,
	"month":    PeriodMonth,
	"mo":       PeriodMonth,
	"monthly":  PeriodMonth,
	"hour":     PeriodHour,
	"hr":       PeriodHour,
	"hourly":   PeriodHour,
}

// "USD 80K–120K / year", "AED 8K-12K / month", "EUR 50000 / year"
var salaryPattern = regexp.MustCompile(`^\s*([A-Za-z]{3})\s+([\d.,]+)\s*([KkMm]?)\s*(?:[-–—]\s*([\d.,]+)\s*([KkMm]?))?\s*(?:/\s*([A-Za-z]+))?\s*$`)

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Parse переводит вилку в годовые суммы, период по умолчанию - год
func Parse(value string) (Salary, error) {
	match := salaryPattern.FindStringSubmatch(value)
	if match == nil {
		return Salary{}, errors.Errorf("unrecognized salary format: %q", value)
	}
	period := PeriodYear
	if match[6] != "" {
		p, ok := periodAliases[strings.ToLower(match[6])]
		if !ok {
			return Salary{}, errors.Errorf("unknown salary period: %q", match[6])
		}
		period = p
	}
	multiplier := periodMultiplier[period]

	minValue, err := parseAmount(match[2], match[3])
	if err != nil {
		return Salary{}, err
	}
	maxValue := minValue
	if match[4] != "" {
		suffix := match[5]
		// "80–120K": суффикс у второго числа относится и к первому
		if suffix != "" && match[3] == "" {
			minValue, err = parseAmount(match[2], suffix)
			if err != nil {
				return Salary{}, err
			}
		}
		maxValue, err = parseAmount(match[4], suffix)
		if err != nil {
			return Salary{}, err
		}
	}
	if maxValue < minValue {
		return Salary{}, errors.Errorf("salary max is less than min: %q", value)
	}
	return Salary{
		Min:      int(math.Round(minValue * multiplier)),
		Max:      int(math.Round(maxValue * multiplier)),
		Currency: strings.ToUpper(match[1]),
	}, nil
}

func parseAmount(number, suffix string) (float64, error) {
	number = strings.ReplaceAll(number, ",", "")
	amount, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid salary amount %q", number)
	}
	switch strings.ToUpper(suffix) {
	case "K":
		amount *= 1000
	case "M":
		amount *= 1000000
	}
	return amount, nil
}
