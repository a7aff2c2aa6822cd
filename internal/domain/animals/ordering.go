package animals

import (
	"slices"
	"strings"
)

type SortField int

const (
	SortByTitle SortField = iota
	SortByLocated
)

func (f SortField) String() string {
	if f == SortByLocated {
		return "located"
	}
	return "title"
}

type SortOrder int

const (
	Asc SortOrder = iota
	Desc
)

func (o SortOrder) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// ParseSortField es permisivo: cualquier valor desconocido es SortByTitle.
func ParseSortField(s string) SortField {
	if strings.EqualFold(strings.TrimSpace(s), "located") {
		return SortByLocated
	}
	return SortByTitle
}

// ParseSortOrder es permisivo: cualquier valor desconocido es Asc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

type Ordering struct {
	Field SortField
	Order SortOrder
}

// Compare es un orden total. En Asc los valores nulos (title vacío, located nil) van al final
// y el desempate es por id sin distinguir mayúsculas. Desc invierte el comparador completo,
// incluido el desempate.
func (o Ordering) Compare(a, b Animal) int {
	var c int
	switch o.Field {
	case SortByLocated:
		c = compareLocated(a, b)
	default:
		c = compareTitle(a, b)
	}
	if c == 0 {
		c = strings.Compare(strings.ToLower(a.ID), strings.ToLower(b.ID))
	}
	if o.Order == Desc {
		return -c
	}
	return c
}

func (o Ordering) Sort(items []Animal) {
	slices.SortStableFunc(items, o.Compare)
}

func compareTitle(a, b Animal) int {
	ta, tb := strings.TrimSpace(a.Title), strings.TrimSpace(b.Title)
	switch {
	case ta == "" && tb == "":
		return 0
	case ta == "":
		return 1
	case tb == "":
		return -1
	}
	return strings.Compare(strings.ToLower(ta), strings.ToLower(tb))
}

func compareLocated(a, b Animal) int {
	switch {
	case a.Located == nil && b.Located == nil:
		return 0
	case a.Located == nil:
		return 1
	case b.Located == nil:
		return -1
	}
	return a.Located.Compare(*b.Located)
}

// blankTitleKey ordena los títulos vacíos después de cualquier otro.
const blankTitleKey = "\U0010FFFF"

// TitleSortKey es la clave de orden por título que guardan los stores: comparada byte a byte
// da el mismo orden ascendente que Ordering{Field: SortByTitle}.Compare (título en minúsculas,
// vacíos al final, desempate por id en minúsculas). Asume títulos sin caracteres de control
// menores a \x02.
func TitleSortKey(a Animal) string {
	title := strings.ToLower(strings.TrimSpace(a.Title))
	if title == "" {
		title = blankTitleKey
	}
	return title + "\x01" + strings.ToLower(a.ID)
}
