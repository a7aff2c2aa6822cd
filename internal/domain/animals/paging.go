package animals

import (
	"context"
	"math"
)

// ListInRoom devuelve la página page (desde 0) de tamaño size de los animales en roomID.
// Solo pide al repositorio (page+1)*size filas; el orden final se calcula acá.
// size <= 0 o page < 0 devuelven una lista vacía, no un error.
func (s *Service) ListInRoom(ctx context.Context, roomID string, field SortField, order SortOrder, page, size int) ([]Animal, error) {
	if size <= 0 || page < 0 {
		return []Animal{}, nil
	}

	ord := Ordering{Field: field, Order: order}
	batch, err := s.repo.ListByRoom(ctx, roomID, requiredRows(page, size), ord)
	if err != nil {
		return nil, err
	}
	ord.Sort(batch)

	return pageOf(batch, page, size), nil
}

// requiredRows calcula (page+1)*size sin desbordar; satura en math.MaxInt32.
func requiredRows(page, size int) int {
	p, sz := int64(page), int64(size)
	if p >= math.MaxInt32 || sz > math.MaxInt32/(p+1) {
		return math.MaxInt32
	}
	return int((p + 1) * sz)
}

func pageOf(batch []Animal, page, size int) []Animal {
	n := len(batch)
	if page > n/size {
		return []Animal{}
	}
	from := page * size
	if from >= n {
		return []Animal{}
	}
	to := n
	if size < n-from {
		to = from + size
	}
	return batch[from:to]
}
