package productcontroller

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases v and collapses every run of non-alphanumeric characters
// into a single hyphen. The result may be empty for all-symbol input.
func Slugify(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExistsFunc reports whether a candidate slug or SKU is already taken.
type ExistsFunc func(value string) (bool, error)

// MakeUniqueSlug slugifies base and probes the catalog until a free slug is
// found, appending -2, -3, … on collisions. The check is best-effort: the
// unique index on products.slug is the real backstop under concurrent writers.
func MakeUniqueSlug(exists ExistsFunc, base string) (string, error) {
	root := Slugify(base)
	if root == "" {
		root = "product"
	}
	slug := root
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", root, i)
	}
}

// MakeUniqueSku derives a SKU from seed plus a random 4-character suffix,
// re-rolling the suffix until the SKU is free.
func MakeUniqueSku(exists ExistsFunc, seed string) (string, error) {
	root := Slugify(seed)
	if root == "" {
		root = "sku"
	}
	for {
		sku := root + "-" + randSuffix(4)
		taken, err := exists(sku)
		if err != nil {
			return "", err
		}
		if !taken {
			return sku, nil
		}
	}
}

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// columnExists builds an ExistsFunc backed by the products table.
func columnExists(db *gorm.DB, column string) ExistsFunc {
	return func(value string) (bool, error) {
		var count int64
		err := db.Model(&models.Product{}).Where(column+" = ?", value).Count(&count).Error
		return count > 0, err
	}
}
