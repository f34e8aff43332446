package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
)

// Orders reads the full order log. A missing file is an empty log and is
// materialized on disk so later appends start from a valid document.
func (s *Store) Orders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersLocked()
}

// AppendOrder adds one confirmed order to the log and rewrites it. This is
// the only mutation the log supports; orders are never updated or deleted.
func (s *Store) AppendOrder(o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.ordersLocked()
	if err != nil {
		return err
	}
	orders = append(orders, o)
	if err := writeJSONFile(s.ordersFile, orders); err != nil {
		return fmt.Errorf("saving order log: %w", err)
	}
	return nil
}

func (s *Store) ordersLocked() ([]models.Order, error) {
	raw, err := os.ReadFile(s.ordersFile)
	if errors.Is(err, os.ErrNotExist) {
		if writeErr := writeJSONFile(s.ordersFile, []models.Order{}); writeErr != nil {
			return nil, fmt.Errorf("seeding order log: %w", writeErr)
		}
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading order log %s: %w", s.ordersFile, err)
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("parsing order log %s: %w", s.ordersFile, err)
	}
	return orders, nil
}
