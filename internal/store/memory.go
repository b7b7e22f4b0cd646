package store

import (
	"sort"
	"sync"

	"github.com/rromanowicz/task-list/internal/models"
)

// Memory bundles in-memory implementations of the store interfaces. All
// sub-stores share one state guarded by a single mutex.
type Memory struct {
	Tokens *MemoryTokens
	Users  *MemoryUsers
	Lists  *MemoryTaskLists
	Tasks  *MemoryTasks
}

func NewMemory(tokens ...string) *Memory {
	state := &memoryState{
		users:  make(map[int64]*models.User),
		lists:  make(map[int64]*models.TaskList),
		shares: make(map[int64]map[int64]struct{}),
		tasks:  make(map[int64]*models.Task),
	}
	return &Memory{
		Tokens: &MemoryTokens{tokens: append([]string(nil), tokens...)},
		Users:  &MemoryUsers{state: state},
		Lists:  &MemoryTaskLists{state: state},
		Tasks:  &MemoryTasks{state: state},
	}
}

type memoryState struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
	lists  map[int64]*models.TaskList
	shares map[int64]map[int64]struct{}
	tasks  map[int64]*models.Task
}

func (s *memoryState) newID() int64 {
	s.nextID++
	return s.nextID
}

type MemoryTokens struct {
	mu     sync.Mutex
	tokens []string
}

func (s *MemoryTokens) ListActiveTokens() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...), nil
}

// Activate adds a token to the active set. The access gate's cache is not
// expected to pick it up once populated.
func (s *MemoryTokens) Activate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, token)
}

type MemoryUsers struct {
	state *memoryState
}

func (s *MemoryUsers) FindByID(id int64) (*models.User, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	user, found := s.state.users[id]
	if !found {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryUsers) FindByUsername(username string) (*models.User, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	for _, user := range s.state.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUsers) Save(user *models.User) (*models.User, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, existing := range s.state.users {
		if existing.Username == user.Username && existing.ID != user.ID {
			return nil, ErrConflict
		}
	}

	saved := *user
	if saved.ID == 0 {
		saved.ID = s.state.newID()
	}
	s.state.users[saved.ID] = &saved
	copied := saved
	return &copied, nil
}

func (s *MemoryUsers) DeleteByID(id int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, found := s.state.users[id]; !found {
		return ErrNotFound
	}
	delete(s.state.users, id)
	return nil
}

type MemoryTaskLists struct {
	state *memoryState
}

func (s *MemoryTaskLists) FindByID(id int64) (*models.TaskList, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	list, found := s.state.lists[id]
	if !found {
		return nil, ErrNotFound
	}
	return s.hydrate(list), nil
}

func (s *MemoryTaskLists) FindAllByOwner(username string) ([]models.TaskList, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	lists := make([]models.TaskList, 0)
	for _, list := range s.state.lists {
		if list.Owner == username {
			lists = append(lists, *s.hydrate(list))
		}
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })
	return lists, nil
}

// hydrate builds a detached copy with the share set and tasks attached.
// Callers must hold the state lock.
func (s *MemoryTaskLists) hydrate(list *models.TaskList) *models.TaskList {
	copied := *list
	copied.SharedWith = nil
	copied.Tasks = nil

	for userID := range s.state.shares[list.ID] {
		if user, found := s.state.users[userID]; found {
			copied.SharedWith = append(copied.SharedWith, *user)
		}
	}
	sort.Slice(copied.SharedWith, func(i, j int) bool {
		return copied.SharedWith[i].ID < copied.SharedWith[j].ID
	})

	for _, task := range s.state.tasks {
		if task.TaskListID == list.ID {
			copied.Tasks = append(copied.Tasks, *task)
		}
	}
	sort.Slice(copied.Tasks, func(i, j int) bool {
		return copied.Tasks[i].ID < copied.Tasks[j].ID
	})
	return &copied
}

func (s *MemoryTaskLists) ExistsByID(id int64) (bool, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	_, found := s.state.lists[id]
	return found, nil
}

// Save replaces the stored record wholesale: shares and tasks absent from
// the given list are removed, mirroring the transactional SQL upsert.
func (s *MemoryTaskLists) Save(list *models.TaskList) (*models.TaskList, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	saved := *list
	if saved.ID == 0 {
		saved.ID = s.state.newID()
	} else if _, found := s.state.lists[saved.ID]; !found {
		return nil, ErrNotFound
	}

	row := saved
	row.SharedWith = nil
	row.Tasks = nil
	s.state.lists[saved.ID] = &row

	shares := make(map[int64]struct{}, len(list.SharedWith))
	for _, user := range list.SharedWith {
		shares[user.ID] = struct{}{}
	}
	s.state.shares[saved.ID] = shares

	kept := make(map[int64]struct{}, len(list.Tasks))
	for i := range list.Tasks {
		task := list.Tasks[i]
		task.TaskListID = saved.ID
		if task.ID == 0 {
			task.ID = s.state.newID()
		}
		s.state.tasks[task.ID] = &task
		kept[task.ID] = struct{}{}
	}
	for id, task := range s.state.tasks {
		if task.TaskListID == saved.ID {
			if _, keep := kept[id]; !keep {
				delete(s.state.tasks, id)
			}
		}
	}

	return s.hydrate(&row), nil
}

func (s *MemoryTaskLists) DeleteByID(id int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, found := s.state.lists[id]; !found {
		return ErrNotFound
	}
	for taskID, task := range s.state.tasks {
		if task.TaskListID == id {
			delete(s.state.tasks, taskID)
		}
	}
	delete(s.state.shares, id)
	delete(s.state.lists, id)
	return nil
}

func (s *MemoryTaskLists) AddShare(listID, userID int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	shares, found := s.state.shares[listID]
	if !found {
		shares = make(map[int64]struct{})
		s.state.shares[listID] = shares
	}
	shares[userID] = struct{}{}
	return nil
}

func (s *MemoryTaskLists) RemoveShare(listID, userID int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	delete(s.state.shares[listID], userID)
	return nil
}

type MemoryTasks struct {
	state *memoryState
}

func (s *MemoryTasks) FindAllByListID(listID int64) ([]models.Task, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	tasks := make([]models.Task, 0)
	for _, task := range s.state.tasks {
		if task.TaskListID == listID {
			tasks = append(tasks, *task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *MemoryTasks) FindIfBelongsToList(listID, taskID int64) (*models.Task, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	task, found := s.state.tasks[taskID]
	if !found || task.TaskListID != listID {
		return nil, ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (s *MemoryTasks) Save(task *models.Task) (*models.Task, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	saved := *task
	if saved.ID == 0 {
		saved.ID = s.state.newID()
	}
	s.state.tasks[saved.ID] = &saved
	copied := saved
	return &copied, nil
}

func (s *MemoryTasks) DeleteByID(id int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, found := s.state.tasks[id]; !found {
		return ErrNotFound
	}
	delete(s.state.tasks, id)
	return nil
}
