package lox

// Map — lo.Map без индекса в iteratee: конвертеры слоёв принимают один аргумент.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
