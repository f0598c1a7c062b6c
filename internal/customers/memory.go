package customers

import (
	"context"
	"strings"
	"sync"
)

type MemoryDirectory struct {
	mu    sync.RWMutex
	codes map[string]Customer
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{codes: map[string]Customer{}}
}

func (d *MemoryDirectory) Load(_ context.Context, customers []Customer) error {
	next := make(map[string]Customer, len(customers))
	for _, c := range customers {
		next[c.Codigo] = c
	}

	d.mu.Lock()
	d.codes = next
	d.mu.Unlock()
	return nil
}

func (d *MemoryDirectory) Contains(_ context.Context, code string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.codes[strings.TrimSpace(code)]
	return ok, nil
}

func (d *MemoryDirectory) Lookup(_ context.Context, code string) (*Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.codes[strings.TrimSpace(code)]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (d *MemoryDirectory) Len(context.Context) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return int64(len(d.codes)), nil
}

var _ Directory = (*MemoryDirectory)(nil)
