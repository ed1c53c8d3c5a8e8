package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 规范化步骤固定顺序：小写 → NFKD 去重音并裁剪非 ASCII → 分隔符转空格
// → 去除结尾的两字母州代码词 → 折叠空白。相同输入必得相同输出。

var (
	separatorRe     = regexp.MustCompile(`[/,\-]`)
	trailingStateRe = regexp.MustCompile(`(\s+[a-z]{2})+$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	// NFKD 分解后去掉组合符号，再去掉残余非 ASCII 字符
	asciiTransformer = transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)

	titleCaser = cases.Title(language.Und)
)

// Normalize 规范化自由文本标签，缺失输入原样返回缺失
func Normalize(s *string) *string {
	if s == nil {
		return nil
	}
	out := NormalizeString(*s)
	return &out
}

// NormalizeString 规范化自由文本标签
func NormalizeString(s string) string {
	t := strings.ToLower(s)

	if stripped, _, err := transform.String(asciiTransformer, t); err == nil {
		t = stripped
	}

	t = separatorRe.ReplaceAllString(t, " ")
	t = trailingStateRe.ReplaceAllString(t, "")
	t = whitespaceRe.ReplaceAllString(t, " ")

	return strings.TrimSpace(t)
}

// Title 逐词首字母大写（location_full 拼装用）
func Title(s string) string {
	return titleCaser.String(s)
}
