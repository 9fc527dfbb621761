package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// NewCode builds a human-readable entity code like BOOK1712345678901123,
// matching the format customers see on their booking confirmations.
func NewCode(prefix string) string {
	return fmt.Sprintf("%s%d%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
