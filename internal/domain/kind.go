package domain

import (
	"fmt"
	"strings"
)

// Kind names a catalog collection
type Kind string

const (
	KindMovies   Kind = "movies"
	KindProducts Kind = "products"
)

// Kinds returns every supported catalog kind
func Kinds() []Kind {
	return []Kind{KindMovies, KindProducts}
}

// ParseKind accepts a kind name in any case, singular or plural
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movies", "movie", "films", "film":
		return KindMovies, nil
	case "products", "product", "shop":
		return KindProducts, nil
	default:
		return "", fmt.Errorf("%w: %q, want one of %v", ErrUnknownKind, s, Kinds())
	}
}
