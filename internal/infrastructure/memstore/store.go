// Package memstore is the in-memory stand-in for the remote record store.
// The export core only ever reads invoices and tax profiles, so the store is
// a snapshot guarded by a RWMutex: concurrent exports each get their own
// copy and never alias mutable state.
package memstore

import (
	"sync"

	"github.com/invoiceflow/gst-export/internal/domain/entity"
)

// InvoiceStore implements repository.InvoiceRepository.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
}

// NewInvoiceStore builds a store over the given invoices.
func NewInvoiceStore(invoices []entity.Invoice) *InvoiceStore {
	s := &InvoiceStore{invoices: make([]entity.Invoice, len(invoices))}
	copy(s.invoices, invoices)
	return s
}

// ListAll returns a copy of every invoice on record.
func (s *InvoiceStore) ListAll() ([]entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out, nil
}

// Replace swaps the full invoice set (used by seed/reload paths, not by the
// export core).
func (s *InvoiceStore) Replace(invoices []entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make([]entity.Invoice, len(invoices))
	copy(s.invoices, invoices)
}

// TaxProfileStore implements repository.TaxProfileRepository.
type TaxProfileStore struct {
	mu       sync.RWMutex
	profiles map[int]entity.TaxProfile
}

// NewTaxProfileStore builds a store over the given lookup table.
func NewTaxProfileStore(profiles map[int]entity.TaxProfile) *TaxProfileStore {
	s := &TaxProfileStore{profiles: make(map[int]entity.TaxProfile, len(profiles))}
	for id, p := range profiles {
		s.profiles[id] = p
	}
	return s
}

// ProfilesByClientID returns a copy of the lookup table.
func (s *TaxProfileStore) ProfilesByClientID() (map[int]entity.TaxProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]entity.TaxProfile, len(s.profiles))
	for id, p := range s.profiles {
		out[id] = p
	}
	return out, nil
}
