package internal

import (
	"fmt"
)

func pluralize(count int, singular string) string {
	if count != 1 {
		singular = singular + "s"
	}
	return fmt.Sprintf("%d %s", count, singular)
}
