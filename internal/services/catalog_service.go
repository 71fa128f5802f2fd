package services

import (
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"sort"
	"sync"
)

// CatalogService owns the in-memory mirror of the store: the full box,
// location and category lists plus the currently open box and its checklist.
// Mutating operations on the other services keep it synchronized after every
// acknowledged store call; failed calls never touch it.
type CatalogService interface {
	LoadAll()
	Ready() bool

	Boxes() []models.Box
	Locations() []models.Location
	Categories() []models.Category

	FindBox(id uint) (*models.Box, bool)
	PrependBox(box models.Box)
	ReplaceBox(box models.Box)
	RemoveBox(id uint)

	// OpenBox makes the box the current detail view and returns the item-load
	// generation for it. A loaded checklist is applied through SetItems only
	// while its generation is still current, so a slow response for a box
	// that has since been closed or replaced is discarded.
	OpenBox(box models.Box) uint64
	CloseBox()
	OpenBoxID() (uint, bool)
	SetItems(gen uint64, items []models.Item) bool
	Items() []models.Item
	AppendItem(item models.Item)
	ReplaceItem(item models.Item)
	RemoveItem(id uint)

	AddLocation(location models.Location)
	RemoveLocation(id uint)
	AddCategory(category models.Category)
	RemoveCategory(id uint)
}

type catalogServiceImpl struct {
	boxRepo      repository.BoxRepository
	locationRepo repository.LocationRepository
	categoryRepo repository.CategoryRepository
	logService   LogService

	mu         sync.RWMutex
	ready      bool
	boxes      []models.Box
	locations  []models.Location
	categories []models.Category

	openBox   *models.Box
	openItems []models.Item
	itemGen   uint64
}

func NewCatalogService(
	boxRepo repository.BoxRepository,
	locationRepo repository.LocationRepository,
	categoryRepo repository.CategoryRepository,
	logService LogService,
) CatalogService {
	return &catalogServiceImpl{
		boxRepo:      boxRepo,
		locationRepo: locationRepo,
		categoryRepo: categoryRepo,
		logService:   logService,
	}
}

// LoadAll fetches the three lists concurrently. A failing fetch is logged and
// leaves that list empty without aborting the other two; the catalog counts
// as ready once all three have settled.
func (s *catalogServiceImpl) LoadAll() {
	var boxes []models.Box
	var locations []models.Location
	var categories []models.Category

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if boxes, err = s.boxRepo.FindAllNewestFirst(); err != nil {
			s.logService.Log.WithError(err).Error("could not load boxes")
			boxes = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if locations, err = s.locationRepo.FindAllByName(); err != nil {
			s.logService.Log.WithError(err).Error("could not load locations")
			locations = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if categories, err = s.categoryRepo.FindAllByName(); err != nil {
			s.logService.Log.WithError(err).Error("could not load categories")
			categories = nil
		}
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = boxes
	s.locations = locations
	s.categories = categories
	s.ready = true
}

func (s *catalogServiceImpl) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *catalogServiceImpl) Boxes() []models.Box {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

func (s *catalogServiceImpl) Locations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

func (s *catalogServiceImpl) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *catalogServiceImpl) FindBox(id uint) (*models.Box, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.boxes {
		if s.boxes[i].ID == id {
			box := s.boxes[i]
			return &box, true
		}
	}
	return nil, false
}

// PrependBox keeps the newest-first ordering of the box list.
func (s *catalogServiceImpl) PrependBox(box models.Box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = append([]models.Box{box}, s.boxes...)
}

// ReplaceBox merges an updated box into the list and, when it is the open
// detail view, into that view as well.
func (s *catalogServiceImpl) ReplaceBox(box models.Box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.boxes {
		if s.boxes[i].ID == box.ID {
			s.boxes[i] = box
			break
		}
	}
	if s.openBox != nil && s.openBox.ID == box.ID {
		open := box
		s.openBox = &open
	}
}

// RemoveBox drops the box from the list and closes the detail view if it was
// showing that box.
func (s *catalogServiceImpl) RemoveBox(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.boxes[:0]
	for _, box := range s.boxes {
		if box.ID != id {
			kept = append(kept, box)
		}
	}
	s.boxes = kept
	if s.openBox != nil && s.openBox.ID == id {
		s.closeBoxLocked()
	}
}

func (s *catalogServiceImpl) OpenBox(box models.Box) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := box
	s.openBox = &open
	s.openItems = nil
	s.itemGen++
	return s.itemGen
}

func (s *catalogServiceImpl) CloseBox() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeBoxLocked()
}

func (s *catalogServiceImpl) closeBoxLocked() {
	s.openBox = nil
	s.openItems = nil
	s.itemGen++
}

func (s *catalogServiceImpl) OpenBoxID() (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.openBox == nil {
		return 0, false
	}
	return s.openBox.ID, true
}

func (s *catalogServiceImpl) SetItems(gen uint64, items []models.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.itemGen {
		return false
	}
	s.openItems = items
	return true
}

func (s *catalogServiceImpl) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Item, len(s.openItems))
	copy(out, s.openItems)
	return out
}

// AppendItem adds to the open checklist without re-sorting.
func (s *catalogServiceImpl) AppendItem(item models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openBox == nil || s.openBox.ID != item.BoxID {
		return
	}
	s.openItems = append(s.openItems, item)
}

func (s *catalogServiceImpl) ReplaceItem(item models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.openItems {
		if s.openItems[i].ID == item.ID {
			s.openItems[i] = item
			return
		}
	}
}

func (s *catalogServiceImpl) RemoveItem(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.openItems[:0]
	for _, item := range s.openItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.openItems = kept
}

// AddLocation inserts and re-sorts by name, matching the store ordering.
func (s *catalogServiceImpl) AddLocation(location models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, location)
	sort.Slice(s.locations, func(i, j int) bool {
		return s.locations[i].Name < s.locations[j].Name
	})
}

func (s *catalogServiceImpl) RemoveLocation(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.locations[:0]
	for _, location := range s.locations {
		if location.ID != id {
			kept = append(kept, location)
		}
	}
	s.locations = kept
}

func (s *catalogServiceImpl) AddCategory(category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, category)
	sort.Slice(s.categories, func(i, j int) bool {
		return s.categories[i].Name < s.categories[j].Name
	})
}

func (s *catalogServiceImpl) RemoveCategory(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.categories[:0]
	for _, category := range s.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	s.categories = kept
}
