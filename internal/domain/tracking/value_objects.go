package tracking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxCustomerNameLength = 255
	MaxCustomerSlugLength = 100

	// Weights are kept as thousandths of a unit so they round-trip exactly.
	MinWeightThousandths int64 = 1
	MaxWeightThousandths int64 = 999_999
)

var (
	countryCodePattern  = regexp.MustCompile(`^[A-Z]{2}$`)
	customerSlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	weightPattern       = regexp.MustCompile(`^(\d{1,3})(?:\.(\d{1,3}))?$`)
)

type CountryCode struct {
	code string
}

func NewCountryCode(s string) (CountryCode, error) {
	if !countryCodePattern.MatchString(s) {
		return CountryCode{}, ErrInvalidCountryCode
	}
	return CountryCode{code: s}, nil
}

func (c CountryCode) String() string { return c.code }

// Weight is a package weight with exactly three fraction digits of precision.
type Weight struct {
	thousandths int64
}

// ParseWeight accepts decimal text such as "1", "1.5" or "999.999".
func ParseWeight(s string) (Weight, error) {
	m := weightPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Weight{}, ErrInvalidWeight
	}

	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Weight{}, ErrInvalidWeight
	}
	var frac int64
	if m[2] != "" {
		padded := m[2] + strings.Repeat("0", 3-len(m[2]))
		frac, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return Weight{}, ErrInvalidWeight
		}
	}
	return NewWeightFromThousandths(whole*1000 + frac)
}

func NewWeightFromThousandths(v int64) (Weight, error) {
	if v < MinWeightThousandths || v > MaxWeightThousandths {
		return Weight{}, ErrInvalidWeight
	}
	return Weight{thousandths: v}, nil
}

func (w Weight) Thousandths() int64 { return w.thousandths }

func (w Weight) String() string {
	return fmt.Sprintf("%d.%03d", w.thousandths/1000, w.thousandths%1000)
}

type CustomerName struct {
	name string
}

func NewCustomerName(s string) (CustomerName, error) {
	if strings.TrimSpace(s) == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	if utf8.RuneCountInString(s) > MaxCustomerNameLength {
		return CustomerName{}, ErrCustomerNameTooLong
	}
	return CustomerName{name: s}, nil
}

func (n CustomerName) String() string { return n.name }

type CustomerSlug struct {
	slug string
}

func NewCustomerSlug(s string) (CustomerSlug, error) {
	if len(s) > MaxCustomerSlugLength {
		return CustomerSlug{}, ErrCustomerSlugTooLong
	}
	if !IsKebabCase(s) {
		return CustomerSlug{}, ErrInvalidCustomerSlug
	}
	return CustomerSlug{slug: s}, nil
}

func IsKebabCase(s string) bool {
	return customerSlugPattern.MatchString(s)
}

func (s CustomerSlug) String() string { return s.slug }
