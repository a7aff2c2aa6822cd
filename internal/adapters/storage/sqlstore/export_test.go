package sqlstore

// SetFavoritesBatchSize cambia el tamaño de lote de loadFavorites y devuelve cómo restaurarlo.
func SetFavoritesBatchSize(n int) (restore func()) {
	prev := favoritesBatchSize
	favoritesBatchSize = n
	return func() { favoritesBatchSize = prev }
}
