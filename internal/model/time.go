package model

import (
	"strings"
	"time"
)

// TimeLayout 时间戳列的规范文本格式
const TimeLayout = "2006-01-02 15:04:05"

// 宽松解析时可接受的布局（源库导出格式不完全一致）
var parseLayouts = []string{
	TimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime 宽松解析时间戳文本，失败返回 nil 而非错误
func ParseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// FormatTime 按规范格式输出时间戳文本
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}

// StrPtr 字符串指针辅助
func StrPtr(s string) *string { return &s }

// F64Ptr 浮点指针辅助
func F64Ptr(f float64) *float64 { return &f }

// I32Ptr 整型指针辅助
func I32Ptr(i int32) *int32 { return &i }
