package decl

import (
	"strconv"
	"strings"

	"github.com/gogpu/layout"
)

// parseSize parses "fit", "fit(min)", "fit(min, max)", the same forms of
// "grow", "fixed(v)" and "percent(p)". The empty string is fit.
func parseSize(s string) (layout.Sizing, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return layout.Sizing{}, nil
	}

	name, args := s, ""
	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return layout.Sizing{}, ErrBadSize
		}
		name, args = strings.TrimSpace(s[:open]), s[open+1:len(s)-1]
	}

	var nums []float64
	if strings.TrimSpace(args) != "" {
		for _, part := range strings.Split(args, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return layout.Sizing{}, ErrBadSize
			}
			nums = append(nums, v)
		}
	}
	arg := func(k int) float64 {
		if k < len(nums) {
			return nums[k]
		}
		return 0
	}

	switch strings.ToLower(name) {
	case "fit":
		if len(nums) > 2 {
			return layout.Sizing{}, ErrBadSize
		}
		return layout.Fit(arg(0), arg(1)), nil
	case "grow":
		if len(nums) > 2 {
			return layout.Sizing{}, ErrBadSize
		}
		return layout.Grow(arg(0), arg(1)), nil
	case "fixed":
		if len(nums) != 1 {
			return layout.Sizing{}, ErrBadSize
		}
		return layout.Fixed(nums[0]), nil
	case "percent":
		if len(nums) != 1 {
			return layout.Sizing{}, ErrBadSize
		}
		return layout.Percent(nums[0]), nil
	}
	return layout.Sizing{}, ErrUnknownValue
}
