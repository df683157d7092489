package repository

// SetRaw stores text as-is under the user's key.
func (r *memoryRepository) SetRaw(userID string, raw []byte) {
	r.mu.Lock()
	r.data[Key(userID)] = append([]byte(nil), raw...)
	r.mu.Unlock()
}
