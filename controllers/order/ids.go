package orderControllers

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// nowFunc is swapped in tests to pin time-dependent behavior.
var nowFunc = time.Now

// MakeOrderID returns a human-readable order id of the form
// ORD-<TIMESTAMP36>-<RAND4>. Collisions are astronomically unlikely but not
// impossible; the unique index on orders.order_id is the real guarantee, and
// a collision simply fails the create.
func MakeOrderID() string {
	ts := strings.ToUpper(strconv.FormatInt(nowFunc().UnixMilli(), 36))
	return "ORD-" + ts + "-" + randSuffix(4)
}

// ComputeDeliveryDate maps seed deterministically to a delivery date 3 or 4
// days after now. Called once with the order id at creation; the result is
// stored, never recomputed.
func ComputeDeliveryDate(seed string, now time.Time) time.Time {
	sum := 0
	for i := 0; i < len(seed); i++ {
		sum = (sum + int(seed[i])) % 1000
	}
	days := 3 + sum%2
	return now.Add(time.Duration(days) * 24 * time.Hour)
}

// NormalizeMobile strips non-digits and keeps the last 10. Idempotent. The
// result can be shorter than 10 characters for malformed input; callers
// validate length themselves.
func NormalizeMobile(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] >= '0' && v[i] <= '9' {
			b.WriteByte(v[i])
		}
	}
	s := b.String()
	if len(s) > 10 {
		s = s[len(s)-10:]
	}
	return s
}

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
