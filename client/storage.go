// Package client holds the storefront's device-local state: the cart and the
// UPI payment confirmation flow. Nothing here touches the server until
// checkout submits an order.
package client

// Fixed storage keys, JSON-encoded values. Mirrored by the browser build.
const (
	CartKey         = "fk_cart_v1"
	PaymentStartKey = "fk_upi_start_v1"
)

// Storage is the persistence the cart and payment flow write through. In the
// browser this is localStorage; tests use MemoryStorage.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	m map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStorage) Set(key string, value []byte) {
	s.m[key] = append([]byte(nil), value...)
}

func (s *MemoryStorage) Delete(key string) {
	delete(s.m, key)
}
