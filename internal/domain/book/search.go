package book

import (
	"strings"
)

// SearchStrategy 检索策略：判断一本图书是否命中检索词
// 设计说明：
// 历史系统为标题/作者/分类各写一个Strategy类，这里用函数值表达同一
// 语义：策略只负责匹配判断，遍历由调用方（Service）完成
type SearchStrategy func(b *Book, criterion string) bool

// StrategyFor 根据字段名选择检索策略
// 未识别的字段名回落到按标题检索（与历史系统行为一致）
func StrategyFor(field string) SearchStrategy {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "author":
		return SearchByAuthor
	case "category":
		return SearchByCategory
	case "title":
		return SearchByTitle
	default:
		return SearchByTitle
	}
}

// SearchByTitle 标题子串匹配（大小写不敏感）
func SearchByTitle(b *Book, criterion string) bool {
	return containsFold(b.Title, criterion)
}

// SearchByAuthor 作者子串匹配（大小写不敏感）
func SearchByAuthor(b *Book, criterion string) bool {
	return containsFold(b.Author, criterion)
}

// SearchByCategory 分类名子串匹配（大小写不敏感）
func SearchByCategory(b *Book, criterion string) bool {
	return containsFold(string(b.Category), criterion)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
