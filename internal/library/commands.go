package library

import (
	"fmt"
)

// Toggle inverts flag on the item with the given id and persists the result.
// ok is false when no item has that id; nothing is persisted then.
func (s *Service[T]) Toggle(id, flag string) (item T, ok bool, err error) {
	item, ok, err = s.view.Toggle(id, flag)
	if err != nil || !ok {
		return item, ok, err
	}
	s.logger.Info("toggled flag", "id", id, "flag", flag)
	return item, true, s.save(item)
}

// Rate sets the user rating of the item with the given id
func (s *Service[T]) Rate(id string, rating int) (item T, ok bool, err error) {
	item, ok, err = s.view.Rate(id, rating)
	if err != nil || !ok {
		return item, ok, err
	}
	s.logger.Info("rated item", "id", id, "rating", rating)
	return item, true, s.save(item)
}

// Unrate clears the user rating of the item with the given id
func (s *Service[T]) Unrate(id string) (item T, ok bool, err error) {
	item, ok, err = s.view.Unrate(id)
	if err != nil || !ok {
		return item, ok, err
	}
	s.logger.Info("cleared rating", "id", id)
	return item, true, s.save(item)
}

func (s *Service[T]) save(item T) error {
	if err := s.persist(item); err != nil {
		return fmt.Errorf("persist %s %q: %w", s.desc.Kind, s.desc.ID(item), err)
	}
	return nil
}
