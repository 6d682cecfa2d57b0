// Package timeparse 將自然語言時間描述（如 "10-15 minutes"、"1 hour 20 min"）
// 轉為標準分鐘數。正規化與進度計算共用同一份實作。
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

// DurationRange 兩個數字的時間範圍（分鐘），僅由 "A-B" 形式推導
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

var (
	rangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	hourPattern   = regexp.MustCompile(`(\d+)\s*hour`)
	minutePattern = regexp.MustCompile(`(\d+)\s*min`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// ParseMinutes 解析時間字串為分鐘數。
// 範圍形式（"10-15"）回傳範圍平均值；否則獨立掃描 hour 與 min 數量累加；
// 否則整串（去除前後空白）為純數字時直接取值；都不符合時回傳 false。
// 範圍判斷優先於 hour/min 掃描。
func ParseMinutes(text string) (int, bool) {
	s := strings.ToLower(text)

	if r := ParseRange(s); r != nil {
		return r.Avg, true
	}

	total := 0
	if m := hourPattern.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
		}
	}
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			total += mins
		}
	}
	if total > 0 {
		return total, true
	}

	trimmed := strings.TrimSpace(s)
	if digitsPattern.MatchString(trimmed) {
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
	}

	return 0, false
}

// ParseRange 解析 "A-B" 範圍，A、B 為非負整數。
// 平均值採四捨五入，.5 一律進位（round-half-up）。
func ParseRange(text string) *DurationRange {
	m := rangePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}

	a, errA := strconv.Atoi(m[1])
	b, errB := strconv.Atoi(m[2])
	if errA != nil || errB != nil {
		return nil
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	return &DurationRange{
		Min: lo,
		Max: hi,
		Avg: (lo + hi + 1) / 2,
	}
}
