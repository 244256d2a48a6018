package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/deckarep/golang-set"
)

// Kind names the outcome of a probe.
type Kind int

const (
	KindSuccess Kind = iota
	KindNotFound
	KindUnauthorized
	KindHTTPError
	KindTransportError
	KindTimeout
)

var kindNames = map[Kind]string{
	KindSuccess:        "success",
	KindNotFound:       "not_found",
	KindUnauthorized:   "unauthorized",
	KindHTTPError:      "http_error",
	KindTransportError: "transport_error",
	KindTimeout:        "timeout",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Failed reports whether the outcome is anything other than success.
func (k Kind) Failed() bool {
	return k != KindSuccess
}

// Classify maps a status code to an outcome. Only exact matches count:
// 200 is success, 404 and 401 have their own outcomes and every other code
// is an http_error.
func Classify(status int) Kind {
	switch status {
	case http.StatusOK:
		return KindSuccess
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindHTTPError
	}
}

func classifyError(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransportError
}

// ParseKinds turns failed outcome names into a set. "any" stands for every
// failed outcome. Names may be comma separated.
func ParseKinds(names []string) (mapset.Set, error) {
	kinds := mapset.NewSet()
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if name == "any" {
				for kind := range kindNames {
					if kind.Failed() {
						kinds.Add(kind)
					}
				}
				continue
			}
			kind, ok := kindByName(name)
			if !ok || !kind.Failed() {
				return nil, fmt.Errorf("Invalid outcome: %s. Valid outcomes are %s", name, strings.Join(validKindNames(), ", "))
			}
			kinds.Add(kind)
		}
	}
	return kinds, nil
}

func kindByName(name string) (Kind, bool) {
	for kind, n := range kindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

func validKindNames() []string {
	names := []string{"any"}
	for kind, name := range kindNames {
		if kind.Failed() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
