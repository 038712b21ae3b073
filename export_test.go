package listx

// Slots returns the number of arena slots in use, sentinels and free slots included.
func (l *List[T]) Slots() int { return l.arena.Cap() }
