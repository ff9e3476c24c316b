package audit

import "log"

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

// Dispatcher grava trilha de auditoria fora do caminho da requisição.
// A fila é best-effort: agendamento nunca falha por causa de auditoria.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarbershopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Printf("audit error (%s): %v", ev.Action, err)
		}
	}
}

// Dispatch aceita receiver nulo: componentes sem trilha configurada
// simplesmente não registram.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}

// Close fecha a fila e espera o worker drenar o que restou.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	close(d.queue)
	<-d.done
}
