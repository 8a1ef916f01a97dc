package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"BrLegalAPI/internal/model"
)

// In-memory fakes implementing the store contracts. They back the
// service and endpoint tests so the HTTP surface can be exercised
// without a database. Error fields allow behavior injection.

type FakeUserStore struct {
	mu        sync.RWMutex
	users     map[int64]*model.User
	nextID    int64
	DeleteErr error // e.g. model.ErrProtected to simulate a restrict rule
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[int64]*model.User)}
}

func (f *FakeUserStore) Create(ctx context.Context, email, passwordHash, name string, isStaff, isSuperuser bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return 0, model.ErrEmailExists
		}
	}
	f.nextID++
	f.users[f.nextID] = &model.User{
		UserID:       f.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		IsActive:     true,
		IsStaff:      isStaff,
		IsSuperuser:  isSuperuser,
	}
	return f.nextID, nil
}

func (f *FakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *FakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *FakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *FakeUserStore) List(ctx context.Context) ([]model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	list := []model.User{}
	for _, u := range f.users {
		list = append(list, *u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UserID < list[j].UserID })
	return list, nil
}

func (f *FakeUserStore) UpdateSelf(ctx context.Context, id int64, name, email *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.ErrNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		u.Email = *email
	}
	return nil
}

func (f *FakeUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *FakeUserStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type FakeTokenStore struct {
	mu     sync.RWMutex
	hashes map[int64]string // user id -> token hash, one row per user
	Users  *FakeUserStore
}

func NewFakeTokenStore(users *FakeUserStore) *FakeTokenStore {
	return &FakeTokenStore{hashes: make(map[int64]string), Users: users}
}

func (f *FakeTokenStore) Save(ctx context.Context, userID int64, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hashes[userID] = tokenHash
	return nil
}

func (f *FakeTokenStore) GetUserByHash(ctx context.Context, tokenHash string) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for userID, hash := range f.hashes {
		if hash == tokenHash {
			return f.Users.GetByID(ctx, userID)
		}
	}
	return nil, model.ErrNotFound
}

// TokenCount reports how many token rows exist for the user; issuance
// must keep it at one.
func (f *FakeTokenStore) TokenCount(userID int64) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if _, ok := f.hashes[userID]; ok {
		return 1
	}
	return 0
}

type FakeStateStore struct {
	mu        sync.RWMutex
	states    map[int64]model.State
	nextID    int64
	Districts *FakeCourtDistrictStore // cascade target, may be nil
}

func NewFakeStateStore() *FakeStateStore {
	return &FakeStateStore{states: make(map[int64]model.State)}
}

func (f *FakeStateStore) Create(ctx context.Context, userID int64, name, initials string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.states[f.nextID] = model.State{StateID: f.nextID, Name: name, Initials: initials, UserID: userID}
	return f.nextID, nil
}

func (f *FakeStateStore) List(ctx context.Context, userID int64) ([]model.State, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	list := []model.State{}
	for _, s := range f.states {
		if s.UserID == userID {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name > list[j].Name })
	return list, nil
}

func (f *FakeStateStore) GetByID(ctx context.Context, userID, id int64) (*model.State, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.states[id]
	if !ok || s.UserID != userID {
		return nil, model.ErrNotFound
	}
	return &s, nil
}

func (f *FakeStateStore) Update(ctx context.Context, userID, id int64, name, initials *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.states[id]
	if !ok || s.UserID != userID {
		return model.ErrNotFound
	}
	if name != nil {
		s.Name = *name
	}
	if initials != nil {
		s.Initials = *initials
	}
	f.states[id] = s
	return nil
}

func (f *FakeStateStore) Delete(ctx context.Context, userID, id int64) error {
	f.mu.Lock()
	s, ok := f.states[id]
	if !ok || s.UserID != userID {
		f.mu.Unlock()
		return model.ErrNotFound
	}
	delete(f.states, id)
	f.mu.Unlock()

	if f.Districts != nil {
		f.Districts.deleteByState(id)
	}
	return nil
}

func (f *FakeStateStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, s := range f.states {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type FakeCourtDistrictStore struct {
	mu        sync.RWMutex
	districts map[int64]model.CourtDistrict
	nextID    int64
}

func NewFakeCourtDistrictStore() *FakeCourtDistrictStore {
	return &FakeCourtDistrictStore{districts: make(map[int64]model.CourtDistrict)}
}

func (f *FakeCourtDistrictStore) Create(ctx context.Context, userID int64, name string, stateID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.districts[f.nextID] = model.CourtDistrict{DistrictID: f.nextID, Name: name, StateID: stateID, UserID: userID}
	return f.nextID, nil
}

func (f *FakeCourtDistrictStore) List(ctx context.Context, userID int64, stateIDs []int64) ([]model.CourtDistrict, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	list := []model.CourtDistrict{}
	for _, d := range f.districts {
		if d.UserID != userID {
			continue
		}
		if stateIDs != nil && !containsID(stateIDs, d.StateID) {
			continue
		}
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DistrictID < list[j].DistrictID })
	return list, nil
}

func (f *FakeCourtDistrictStore) GetByID(ctx context.Context, userID, id int64) (*model.CourtDistrict, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	d, ok := f.districts[id]
	if !ok || d.UserID != userID {
		return nil, model.ErrNotFound
	}
	return &d, nil
}

func (f *FakeCourtDistrictStore) Update(ctx context.Context, userID, id int64, name *string, stateID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.districts[id]
	if !ok || d.UserID != userID {
		return model.ErrNotFound
	}
	if name != nil {
		d.Name = *name
	}
	if stateID != nil {
		d.StateID = *stateID
	}
	f.districts[id] = d
	return nil
}

func (f *FakeCourtDistrictStore) Delete(ctx context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.districts[id]
	if !ok || d.UserID != userID {
		return model.ErrNotFound
	}
	delete(f.districts, id)
	return nil
}

func (f *FakeCourtDistrictStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, d := range f.districts {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeCourtDistrictStore) deleteByState(stateID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, d := range f.districts {
		if d.StateID == stateID {
			delete(f.districts, id)
		}
	}
}

// FakeAttrStore covers tags and ingredients through the same generic
// store, mirroring how the real repositories differ only in table
// names.
type FakeAttrStore[T any] struct {
	mu      sync.RWMutex
	items   map[int64]T
	nextID  int64
	build   func(id, userID int64, name string) T
	meta    func(T) (id, userID int64, name string)
	Recipes *FakeRecipeStore // assigned_only source, may be nil
	linked  func(model.Recipe) []int64
}

func NewFakeTagStore() *FakeAttrStore[model.Tag] {
	return &FakeAttrStore[model.Tag]{
		items: make(map[int64]model.Tag),
		build: func(id, userID int64, name string) model.Tag {
			return model.Tag{TagID: id, Name: name, UserID: userID}
		},
		meta:   func(t model.Tag) (int64, int64, string) { return t.TagID, t.UserID, t.Name },
		linked: func(r model.Recipe) []int64 { return r.TagIDs },
	}
}

func NewFakeIngredientStore() *FakeAttrStore[model.Ingredient] {
	return &FakeAttrStore[model.Ingredient]{
		items: make(map[int64]model.Ingredient),
		build: func(id, userID int64, name string) model.Ingredient {
			return model.Ingredient{IngredientID: id, Name: name, UserID: userID}
		},
		meta:   func(i model.Ingredient) (int64, int64, string) { return i.IngredientID, i.UserID, i.Name },
		linked: func(r model.Recipe) []int64 { return r.IngredientIDs },
	}
}

func (f *FakeAttrStore[T]) Create(ctx context.Context, userID int64, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.items[f.nextID] = f.build(f.nextID, userID, name)
	return f.nextID, nil
}

func (f *FakeAttrStore[T]) List(ctx context.Context, userID int64, assignedOnly bool) ([]T, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	list := []T{}
	for _, item := range f.items {
		id, owner, _ := f.meta(item)
		if owner != userID {
			continue
		}
		if assignedOnly && !f.isAssigned(id) {
			continue
		}
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool {
		_, _, ni := f.meta(list[i])
		_, _, nj := f.meta(list[j])
		return ni > nj
	})
	return list, nil
}

func (f *FakeAttrStore[T]) isAssigned(id int64) bool {
	if f.Recipes == nil {
		return false
	}
	return f.Recipes.references(f.linked, id)
}

func (f *FakeAttrStore[T]) GetByID(ctx context.Context, userID, id int64) (*T, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	item, ok := f.items[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if _, owner, _ := f.meta(item); owner != userID {
		return nil, model.ErrNotFound
	}
	return &item, nil
}

func (f *FakeAttrStore[T]) UpdateName(ctx context.Context, userID, id int64, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return model.ErrNotFound
	}
	itemID, owner, _ := f.meta(item)
	if owner != userID {
		return model.ErrNotFound
	}
	f.items[id] = f.build(itemID, owner, name)
	return nil
}

func (f *FakeAttrStore[T]) Delete(ctx context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return model.ErrNotFound
	}
	if _, owner, _ := f.meta(item); owner != userID {
		return model.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type FakeRecipeStore struct {
	mu      sync.RWMutex
	recipes map[int64]model.Recipe
	nextID  int64
}

func NewFakeRecipeStore() *FakeRecipeStore {
	return &FakeRecipeStore{recipes: make(map[int64]model.Recipe)}
}

func (f *FakeRecipeStore) Create(ctx context.Context, userID int64, rec *model.Recipe) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *rec
	stored.RecipeID = f.nextID
	stored.UserID = userID
	if stored.TagIDs == nil {
		stored.TagIDs = []int64{}
	}
	if stored.IngredientIDs == nil {
		stored.IngredientIDs = []int64{}
	}
	f.recipes[f.nextID] = stored
	return f.nextID, nil
}

func (f *FakeRecipeStore) List(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) ([]model.Recipe, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	list := []model.Recipe{}
	for _, r := range f.recipes {
		if r.UserID != userID {
			continue
		}
		if tagIDs != nil && !intersects(r.TagIDs, tagIDs) {
			continue
		}
		if ingredientIDs != nil && !intersects(r.IngredientIDs, ingredientIDs) {
			continue
		}
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RecipeID < list[j].RecipeID })
	return list, nil
}

func (f *FakeRecipeStore) GetByID(ctx context.Context, userID, id int64) (*model.Recipe, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.recipes[id]
	if !ok || r.UserID != userID {
		return nil, model.ErrNotFound
	}
	return &r, nil
}

func (f *FakeRecipeStore) Update(ctx context.Context, userID, id int64, title, link *string, timeMinutes *int, price *float64, tagIDs, ingredientIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok || r.UserID != userID {
		return model.ErrNotFound
	}
	if title != nil {
		r.Title = *title
	}
	if link != nil {
		r.Link = *link
	}
	if timeMinutes != nil {
		r.TimeMinutes = *timeMinutes
	}
	if price != nil {
		r.Price = *price
	}
	if tagIDs != nil {
		r.TagIDs = tagIDs
	}
	if ingredientIDs != nil {
		r.IngredientIDs = ingredientIDs
	}
	f.recipes[id] = r
	return nil
}

func (f *FakeRecipeStore) SetImage(ctx context.Context, userID, id int64, image string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok || r.UserID != userID {
		return model.ErrNotFound
	}
	r.Image = &image
	f.recipes[id] = r
	return nil
}

func (f *FakeRecipeStore) Delete(ctx context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok || r.UserID != userID {
		return model.ErrNotFound
	}
	delete(f.recipes, id)
	return nil
}

func (f *FakeRecipeStore) references(linked func(model.Recipe) []int64, id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, r := range f.recipes {
		if containsID(linked(r), id) {
			return true
		}
	}
	return false
}

// FakeImageStore records uploads in memory and hands out predictable
// keys.
type FakeImageStore struct {
	mu    sync.Mutex
	count int
	Saved map[string][]byte
}

func NewFakeImageStore() *FakeImageStore {
	return &FakeImageStore{Saved: make(map[string][]byte)}
}

func (f *FakeImageStore) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	key := fmt.Sprintf("uploads/recipe/%d-%s", f.count, filename)
	f.Saved[key] = data
	return key, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func intersects(a, b []int64) bool {
	for _, v := range a {
		if containsID(b, v) {
			return true
		}
	}
	return false
}
