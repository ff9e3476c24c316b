package bookinglock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("booking lock not acquired")

// Locker serializa a seção crítica de reserva por (barbeiro, dia).
// Fecha a janela check-then-act entre ler os horários livres e gravar
// o agendamento: dois clientes disputando o mesmo slot nunca entram
// juntos na seção.
type Locker interface {
	WithBarberDayLock(
		ctx context.Context,
		barberID uint,
		day time.Time,
		fn func(ctx context.Context) error,
	) error
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{client: client, ttl: ttl}
}

func (l *redisLocker) WithBarberDayLock(
	ctx context.Context,
	barberID uint,
	day time.Time,
	fn func(ctx context.Context) error,
) error {

	key := fmt.Sprintf("lock:booking:%d:%s", barberID, day.Format("2006-01-02"))
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire booking lock: %w", err)
	}
	if !ok {
		return ErrNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// só apaga a chave se o token ainda for nosso
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release booking lock: %w", err)
	}
	return nil
}

// NoopLocker executa a função direto, sem exclusão. Usado quando o Redis
// está desabilitado na configuração; a transação com lock de linha no
// banco continua sendo a última barreira contra overbooking.
type NoopLocker struct{}

func (NoopLocker) WithBarberDayLock(
	ctx context.Context,
	_ uint,
	_ time.Time,
	fn func(ctx context.Context) error,
) error {
	return fn(ctx)
}
