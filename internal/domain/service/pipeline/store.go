package pipeline

import (
	"slices"
	"sync"

	"crm_pipeline/internal/domain/entity"
)

// Store — единственный владелец текущего состояния сделок в памяти.
// Порядок сделок сохраняется: новые добавляются в конец, замена идёт на месте.
// Поколение растёт при каждом точечном изменении (Replace, Add, Remove).
type Store struct {
	mu    sync.RWMutex
	deals []entity.Deal
	gen   uint64
}

func NewStore(deals ...entity.Deal) *Store {
	s := &Store{}
	s.Load(deals)

	return s
}

// Load полностью заменяет коллекцию.
func (s *Store) Load(deals []entity.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deals = slices.Clone(deals)
}

// Generation возвращает текущее поколение стора.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gen
}

// LoadIfUnchanged заменяет коллекцию, только если с поколения gen стор
// не менялся. Иначе загруженный список мог разойтись с принятыми коммитами,
// и стор остаётся как есть.
func (s *Store) LoadIfUnchanged(deals []entity.Deal, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return false
	}

	s.deals = slices.Clone(deals)

	return true
}

// Snapshot возвращает копию коллекции; её можно менять без последствий для стора.
func (s *Store) Snapshot() []entity.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.Deal, len(s.deals))
	copy(result, s.deals)

	return result
}

func (s *Store) Get(id int64) (entity.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.deals[i], true
	}

	return entity.Deal{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.deals)
}

// Replace подменяет сделку с тем же id. Остальные записи не трогаются.
// Возвращает false, если такой сделки в сторе нет.
func (s *Store) Replace(deal entity.Deal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deal.ID)
	if i < 0 {
		return false
	}

	s.deals[i] = deal
	s.gen++

	return true
}

// Add добавляет новую сделку в конец или заменяет существующую.
func (s *Store) Add(deal entity.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++

	if i := s.indexOf(deal.ID); i >= 0 {
		s.deals[i] = deal
		return
	}

	s.deals = append(s.deals, deal)
}

func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.deals = slices.Delete(s.deals, i, i+1)
	s.gen++

	return true
}

// indexOf вызывается под блокировкой.
func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.deals, func(d entity.Deal) bool {
		return d.ID == id
	})
}
