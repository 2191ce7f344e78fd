package notification

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// DispatcherConfig parámetros del pool de publicación.
type DispatcherConfig struct {
	Workers        int
	QueueSize      int
	PublishTimeout time.Duration
}

type event struct {
	destination string
	payload     []byte
}

// Dispatcher publica eventos en segundo plano con N workers sobre una cola acotada.
// Dispatch nunca bloquea: con la cola llena el evento se descarta con un warning.
// Los fallos de publicación solo se registran en el log.
type Dispatcher struct {
	publisher ports.Publisher
	cfg       DispatcherConfig
	log       *logger.Logger

	queue chan event
	wg    sync.WaitGroup
	once  sync.Once
	mu    sync.RWMutex
	done  bool
}

// NewDispatcher crea el dispatcher; Start arranca los workers.
func NewDispatcher(publisher ports.Publisher, cfg DispatcherConfig, log *logger.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 5 * time.Second
	}
	return &Dispatcher{
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		queue:     make(chan event, cfg.QueueSize),
	}
}

// Start lanza los workers.
func (d *Dispatcher) Start() {
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	d.log.Info().Int("workers", d.cfg.Workers).Int("queue", d.cfg.QueueSize).Msg("dispatcher de notificaciones iniciado")
}

// Dispatch encola un payload para destination. Devuelve false si se descartó.
func (d *Dispatcher) Dispatch(destination string, payload []byte) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.done {
		d.log.Warn().Str("destination", destination).Msg("dispatcher detenido, evento descartado")
		return false
	}
	select {
	case d.queue <- event{destination: destination, payload: payload}:
		return true
	default:
		d.log.Warn().Str("destination", destination).Msg("cola de notificaciones llena, evento descartado")
		return false
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for ev := range d.queue {
		d.publish(id, ev)
	}
}

func (d *Dispatcher) publish(worker int, ev event) {
	// Desligado del contexto de la petición: la respuesta HTTP puede haber terminado ya.
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.PublishTimeout)
	defer cancel()
	if err := d.publisher.Publish(ctx, ev.destination, ev.payload); err != nil {
		d.log.Error().Err(err).Int("worker", worker).Str("destination", ev.destination).Msg("error publicando notificación")
	}
}

// Stop deja de aceptar eventos, vacía la cola y espera a los workers o a que ctx expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.once.Do(func() {
		d.mu.Lock()
		d.done = true
		close(d.queue)
		d.mu.Unlock()
	})
	finished := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
