// Package sqlstore implementa los repositorios sobre database/sql. Postgres y SQLite
// comparten el mismo SQL; las diferencias (placeholders, tipos de fecha, collation)
// viven en Dialect.
package sqlstore

import (
	"strconv"
	"strings"
	"time"

	"zoo-rooms/internal/domain/animals"
)

type Dialect struct {
	Name string

	numbered  bool   // $1, $2... en lugar de ?
	collate   string // sufijo para ordenar por bytes
	textTimes bool   // fechas guardadas como TEXT
}

var (
	Postgres = Dialect{Name: "postgres", numbered: true, collate: ` COLLATE "C"`}
	SQLite   = Dialect{Name: "sqlite", textTimes: true}
)

// Rebind reescribe los ? del query al estilo de placeholders del dialecto.
func (d Dialect) Rebind(q string) string {
	if !d.numbered {
		return q
	}
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Timestamp codifica un instante para escribirlo.
func (d Dialect) Timestamp(t time.Time) any {
	if d.textTimes {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

func (d Dialect) NullTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return d.Timestamp(*t)
}

func (d Dialect) NullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	day := animals.DateOf(*t)
	if d.textTimes {
		return day.Format(animals.DateLayout)
	}
	return day
}

// OrderBy arma el ORDER BY equivalente a animals.Ordering.Compare: nulos al final en asc,
// desempate por id en minúsculas, y desc invierte todas las columnas.
// Por título se ordena por title_key (animals.TitleSortKey, calculada al escribir) y no
// con lower() de la base, que no coincide con strings.ToLower fuera de ASCII. En Postgres
// la columna ya es COLLATE "C" (orden por bytes) y el índice (room_id, title_key) sirve.
func (d Dialect) OrderBy(ord animals.Ordering) string {
	dir := " ASC"
	if ord.Order == animals.Desc {
		dir = " DESC"
	}

	var cols []string
	switch ord.Field {
	case animals.SortByLocated:
		cols = []string{"(located IS NULL)", "located", "lower(id)" + d.collate}
	default:
		cols = []string{"title_key"}
	}

	for i := range cols {
		cols[i] += dir
	}
	return "ORDER BY " + strings.Join(cols, ", ")
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
