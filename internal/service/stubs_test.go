package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"menuadmin/internal/cache"
	"menuadmin/internal/dto"
	"menuadmin/internal/model"
	"menuadmin/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────
// DB() returns nil so runTx calls the closure directly with a nil tx.

type stubDishRepo struct {
	rows       map[int64]*model.Dish
	categories map[int64]string
	nextID     int64
	// afterListByCategory runs once the rows are read, before they are returned.
	afterListByCategory func()
}

var _ repository.DishRepository = (*stubDishRepo)(nil)

func newStubDishRepo() *stubDishRepo {
	return &stubDishRepo{rows: make(map[int64]*model.Dish), categories: make(map[int64]string)}
}

func (r *stubDishRepo) DB() *gorm.DB { return nil }

func (r *stubDishRepo) Create(_ context.Context, _ *gorm.DB, d *model.Dish) error {
	for _, existing := range r.rows {
		if existing.Name == d.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	d.ID = r.nextID
	cp := *d
	r.rows[d.ID] = &cp
	return nil
}

func (r *stubDishRepo) FindByID(_ context.Context, _ *gorm.DB, id int64) (*model.Dish, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubDishRepo) Update(_ context.Context, _ *gorm.DB, d *model.Dish) error {
	existing, ok := r.rows[d.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *d
	cp.CreateUser = existing.CreateUser
	r.rows[d.ID] = &cp
	return nil
}

func (r *stubDishRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *stubDishRepo) List(_ context.Context, q dto.DishPageQuery) ([]repository.DishRow, int64, error) {
	var all []repository.DishRow
	for _, id := range sortedKeys(r.rows) {
		d := r.rows[id]
		if q.Name != "" && !strings.Contains(d.Name, q.Name) {
			continue
		}
		if q.CategoryID != nil && d.CategoryID != *q.CategoryID {
			continue
		}
		if q.Status != nil && d.Status != *q.Status {
			continue
		}
		all = append(all, repository.DishRow{Dish: *d, CategoryName: r.categories[d.CategoryID]})
	}
	return page(all, q.PageQuery), int64(len(all)), nil
}

func (r *stubDishRepo) ListByCategory(_ context.Context, categoryID int64) ([]model.Dish, error) {
	var out []model.Dish
	for _, id := range sortedKeys(r.rows) {
		if r.rows[id].CategoryID == categoryID {
			out = append(out, *r.rows[id])
		}
	}
	if r.afterListByCategory != nil {
		r.afterListByCategory()
	}
	return out, nil
}

type stubFlavorRepo struct {
	rows      []model.DishFlavor
	nextID    int64
	createErr error
}

var _ repository.DishFlavorRepository = (*stubFlavorRepo)(nil)

func (r *stubFlavorRepo) CreateBatch(_ context.Context, _ *gorm.DB, flavors []model.DishFlavor) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, f := range flavors {
		r.nextID++
		f.ID = r.nextID
		r.rows = append(r.rows, f)
	}
	return nil
}

func (r *stubFlavorRepo) DeleteByDishID(_ context.Context, _ *gorm.DB, dishID int64) error {
	kept := r.rows[:0]
	for _, f := range r.rows {
		if f.DishID != dishID {
			kept = append(kept, f)
		}
	}
	r.rows = kept
	return nil
}

func (r *stubFlavorRepo) FindByDishID(_ context.Context, _ *gorm.DB, dishID int64) ([]model.DishFlavor, error) {
	var out []model.DishFlavor
	for _, f := range r.rows {
		if f.DishID == dishID {
			out = append(out, f)
		}
	}
	return out, nil
}

type stubSetmealRepo struct {
	rows      map[int64]*model.Setmeal
	nextID    int64
	deleted   []int64
	statusErr error
}

var _ repository.SetmealRepository = (*stubSetmealRepo)(nil)

func newStubSetmealRepo() *stubSetmealRepo {
	return &stubSetmealRepo{rows: make(map[int64]*model.Setmeal)}
}

func (r *stubSetmealRepo) DB() *gorm.DB { return nil }

func (r *stubSetmealRepo) Create(_ context.Context, _ *gorm.DB, s *model.Setmeal) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSetmealRepo) FindByID(_ context.Context, _ *gorm.DB, id int64) (*model.Setmeal, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSetmealRepo) Update(_ context.Context, _ *gorm.DB, s *model.Setmeal) error {
	existing, ok := r.rows[s.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	cp.Status = existing.Status
	cp.CreateUser = existing.CreateUser
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSetmealRepo) UpdateStatus(_ context.Context, _ *gorm.DB, id int64, status int, updateUser int64) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	s, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = status
	s.UpdateUser = updateUser
	return nil
}

func (r *stubSetmealRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	delete(r.rows, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSetmealRepo) List(_ context.Context, q dto.SetmealPageQuery) ([]repository.SetmealRow, int64, error) {
	var all []repository.SetmealRow
	for _, id := range sortedKeys(r.rows) {
		s := r.rows[id]
		if q.Name != "" && !strings.Contains(s.Name, q.Name) {
			continue
		}
		if q.Status != nil && s.Status != *q.Status {
			continue
		}
		all = append(all, repository.SetmealRow{Setmeal: *s})
	}
	return page(all, q.PageQuery), int64(len(all)), nil
}

type stubSetmealDishRepo struct {
	rows   []model.SetmealDish
	nextID int64
}

var _ repository.SetmealDishRepository = (*stubSetmealDishRepo)(nil)

func (r *stubSetmealDishRepo) CreateBatch(_ context.Context, _ *gorm.DB, items []model.SetmealDish) error {
	for _, it := range items {
		r.nextID++
		it.ID = r.nextID
		r.rows = append(r.rows, it)
	}
	return nil
}

func (r *stubSetmealDishRepo) DeleteBySetmealID(_ context.Context, _ *gorm.DB, setmealID int64) error {
	kept := r.rows[:0]
	for _, it := range r.rows {
		if it.SetmealID != setmealID {
			kept = append(kept, it)
		}
	}
	r.rows = kept
	return nil
}

func (r *stubSetmealDishRepo) FindBySetmealID(_ context.Context, _ *gorm.DB, setmealID int64) ([]model.SetmealDish, error) {
	var out []model.SetmealDish
	for _, it := range r.rows {
		if it.SetmealID == setmealID {
			out = append(out, it)
		}
	}
	return out, nil
}

// ── Cache stub ────────────────────────────────────────────────────────────────

type stubDishCache struct {
	entries     map[int64][]dto.DishVO
	generation  int64
	gets        int
	evicted     []int64
	flushes     int
	staleWrites int
	failRead    bool
}

func newStubDishCache() *stubDishCache {
	return &stubDishCache{entries: make(map[int64][]dto.DishVO)}
}

func (c *stubDishCache) GetByCategory(_ context.Context, categoryID int64) ([]dto.DishVO, bool, error) {
	c.gets++
	if c.failRead {
		return nil, false, errors.New("redis: connection refused")
	}
	d, ok := c.entries[categoryID]
	return d, ok, nil
}

func (c *stubDishCache) Generation(context.Context) (int64, error) {
	return c.generation, nil
}

func (c *stubDishCache) SetByCategory(_ context.Context, categoryID, generation int64, dishes []dto.DishVO) error {
	if generation != c.generation {
		c.staleWrites++
		return cache.ErrStale
	}
	c.entries[categoryID] = dishes
	return nil
}

func (c *stubDishCache) Evict(_ context.Context, categoryIDs ...int64) error {
	c.generation++
	for _, id := range categoryIDs {
		delete(c.entries, id)
	}
	c.evicted = append(c.evicted, categoryIDs...)
	return nil
}

func (c *stubDishCache) EvictAll(_ context.Context) error {
	c.generation++
	c.entries = make(map[int64][]dto.DishVO)
	c.flushes++
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func ptr[T any](v T) *T { return &v }

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })
	return keys
}

func page[T any](all []T, q dto.PageQuery) []T {
	start := q.Offset()
	if start >= len(all) {
		return nil
	}
	end := start + q.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
