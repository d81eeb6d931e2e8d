package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors & Constants
// =============================================================================

// ErrInvalidQueueSeed is returned when a doctor's current queue length is negative
var ErrInvalidQueueSeed = errors.New("current patients must not be negative")

const (
	// RedisQueueKeyPrefix prefixes the per-doctor queue counter key
	RedisQueueKeyPrefix = "doctor:queue:"

	// Timeout for individual Redis operations
	redisQueueTimeout = 5 * time.Second
)

// enqueueScript seeds the counter with the doctor's current queue length on
// first use, then takes the next position. Runs atomically inside Redis.
//
// KEYS[1] queue key, ARGV[1] seed, ARGV[2] ttl in milliseconds
var enqueueScript = redis.NewScript(`
	redis.call('SET', KEYS[1], ARGV[1], 'NX')
	local position = redis.call('INCR', KEYS[1])
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
	return position
`)

// =============================================================================
// Types
// =============================================================================

// QueueService hands out queue positions for doctors.
// The first position for a doctor is currentPatients+1.
type QueueService interface {
	Enqueue(ctx context.Context, doctorID string, currentPatients int) (int, error)
}

// RedisQueueService keeps queue counters in Redis so positions are shared by
// every instance of the service.
type RedisQueueService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// MemoryQueueService keeps queue counters in process memory.
type MemoryQueueService struct {
	mu       sync.Mutex
	counters map[string]int
}

// =============================================================================
// Constructors
// =============================================================================

func NewRedisQueueService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisQueueService {
	return &RedisQueueService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func NewMemoryQueueService() *MemoryQueueService {
	return &MemoryQueueService{counters: make(map[string]int)}
}

// =============================================================================
// Public Methods
// =============================================================================

// Enqueue atomically reserves the next queue position for the doctor.
//
// Uses package-level enqueueScript so go-redis sends EVALSHA after the first call.
func (s *RedisQueueService) Enqueue(ctx context.Context, doctorID string, currentPatients int) (int, error) {
	if currentPatients < 0 {
		return 0, ErrInvalidQueueSeed
	}

	ctx, cancel := context.WithTimeout(ctx, redisQueueTimeout)
	defer cancel()

	key := QueueKey(doctorID)
	position, err := enqueueScript.Run(ctx, s.redisClient, []string{key}, currentPatients, s.ttl.Milliseconds()).Int()
	if err != nil {
		s.log.Warnf("Failed Lua script Enqueue for doctor %s: %+v", doctorID, err)
		return 0, fmt.Errorf("lua enqueue for doctor %s: %w", doctorID, err)
	}

	s.log.Debugf("Reserved queue position for doctor %s: position=%d", doctorID, position)
	return position, nil
}

// Enqueue reserves the next queue position for the doctor.
func (s *MemoryQueueService) Enqueue(ctx context.Context, doctorID string, currentPatients int) (int, error) {
	if currentPatients < 0 {
		return 0, ErrInvalidQueueSeed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	position, ok := s.counters[doctorID]
	if !ok {
		position = currentPatients
	}
	position++
	s.counters[doctorID] = position

	return position, nil
}

// QueueKey returns the Redis key holding a doctor's queue counter
func QueueKey(doctorID string) string {
	return RedisQueueKeyPrefix + doctorID
}
