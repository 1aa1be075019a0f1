package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// TodosCacheKey holds the JSON encoded result of All
const TodosCacheKey = "todos:all"

var _ output.TodoRepository = (*CachedTodoRepository)(nil)

// CachedTodoRepository struct - Read-through cache in front of another TodoRepository.
// Redis failures are logged and the call falls back to the wrapped repository.
//
// Every successful write bumps generation. A fill only stores its list when
// no write finished while it was reading, and fillMu keeps that check and the
// store atomic with respect to a write's bump and invalidation.
type CachedTodoRepository struct {
	next   output.TodoRepository
	client *goredis.Client
	ttl    time.Duration
	group  singleflight.Group

	fillMu     sync.Mutex
	generation uint64
}

// NewCachedTodoRepository func
func NewCachedTodoRepository(next output.TodoRepository, client *goredis.Client, ttl time.Duration) *CachedTodoRepository {
	return &CachedTodoRepository{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// NewClient func - Parses a redis:// url and checks the server answers
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	logrus.WithField("addr", opts.Addr).Info("Redis client initialized")
	return client, nil
}

// Create func
func (r *CachedTodoRepository) Create(ctx context.Context, payload domain.CreateTodo) (domain.Todo, error) {
	todo, err := r.next.Create(ctx, payload)
	if err != nil {
		return domain.Todo{}, err
	}
	r.invalidate(ctx)
	return todo, nil
}

// Find func - Single rows are not cached
func (r *CachedTodoRepository) Find(ctx context.Context, id int) (domain.Todo, error) {
	return r.next.Find(ctx, id)
}

// All func
func (r *CachedTodoRepository) All(ctx context.Context) ([]domain.Todo, error) {
	if todos, ok := r.get(ctx); ok {
		return todos, nil
	}

	// flights are per generation so a read started after a write never
	// joins a flight that began before it
	gen := r.currentGeneration()
	key := TodosCacheKey + ":" + strconv.FormatUint(gen, 10)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		// shared by every caller of the flight, one of them going away must not fail the rest
		flightCtx := context.WithoutCancel(ctx)
		todos, err := r.next.All(flightCtx)
		if err != nil {
			return nil, err
		}
		r.fill(flightCtx, gen, todos)
		return todos, nil
	})
	if err != nil {
		return nil, err
	}

	// callers sharing a flight must not share the backing array
	shared := v.([]domain.Todo)
	todos := make([]domain.Todo, len(shared))
	copy(todos, shared)
	return todos, nil
}

// Update func
func (r *CachedTodoRepository) Update(ctx context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error) {
	todo, err := r.next.Update(ctx, id, payload)
	if err != nil {
		return domain.Todo{}, err
	}
	r.invalidate(ctx)
	return todo, nil
}

// Delete func
func (r *CachedTodoRepository) Delete(ctx context.Context, id int) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedTodoRepository) get(ctx context.Context) ([]domain.Todo, bool) {
	b, err := r.client.Get(ctx, TodosCacheKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false
	}
	if err != nil {
		logrus.WithError(err).Warn("Redis get todos failed")
		return nil, false
	}
	todos := make([]domain.Todo, 0)
	if err := json.Unmarshal(b, &todos); err != nil {
		logrus.WithError(err).Warn("Redis unmarshal todos failed")
		return nil, false
	}
	return todos, true
}

func (r *CachedTodoRepository) currentGeneration() uint64 {
	r.fillMu.Lock()
	defer r.fillMu.Unlock()
	return r.generation
}

// fill stores todos unless a write finished after gen was read
func (r *CachedTodoRepository) fill(ctx context.Context, gen uint64, todos []domain.Todo) {
	r.fillMu.Lock()
	defer r.fillMu.Unlock()
	if r.generation != gen {
		return
	}
	r.set(ctx, todos)
}

func (r *CachedTodoRepository) set(ctx context.Context, todos []domain.Todo) {
	b, err := json.Marshal(todos)
	if err != nil {
		logrus.WithError(err).Warn("Marshal todos for cache failed")
		return
	}
	if err := r.client.Set(ctx, TodosCacheKey, b, r.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Redis set todos failed")
	}
}

func (r *CachedTodoRepository) invalidate(ctx context.Context) {
	r.fillMu.Lock()
	defer r.fillMu.Unlock()
	r.generation++
	if err := r.client.Del(ctx, TodosCacheKey).Err(); err != nil {
		logrus.WithError(err).Warn("Redis invalidate todos failed")
	}
}
