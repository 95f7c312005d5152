package productControllers

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "product"
	}
	return s
}

// uniqueSlug appends -1, -2, ... until the slug is free in the given table.
func uniqueSlug(db *gorm.DB, model interface{}, base string) (string, error) {
	slug := base
	for count := 1; ; count++ {
		var n int64
		if err := db.Model(model).Where("slug = ?", slug).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
	}
}
