package kafka

import (
	"errors"

	"github.com/Gunvolt24/media_consumer/pkg/decode"
)

// State — фаза жизненного цикла цикла опроса.
type State int32

const (
	StateIdle State = iota
	StateInitializing
	StateRunning
	StateDraining
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome — причина завершения цикла. Пустая строка — цикл ещё не завершился.
type Outcome string

const (
	OutcomeNone            Outcome = ""
	OutcomeCompleted       Outcome = "completed"        // пачка набрана и записана
	OutcomeShutdown        Outcome = "shutdown"         // запрошена остановка
	OutcomeSubscribeFailed Outcome = "subscribe_failed" // источник недоступен/топика нет/чтение сломалось
	OutcomeDecodeFailed    Outcome = "decode_failed"    // сообщение не разобралось
	OutcomeWriteFailed     Outcome = "write_failed"     // хранилище не приняло пачку
)

var (
	// ErrSubscription — подписка не установлена или источник перестал отдавать сообщения.
	ErrSubscription = errors.New("kafka subscription failed")
	// ErrWrite — запись пачки в хранилище не удалась; повторов нет.
	ErrWrite = errors.New("media batch write failed")
	// ErrShutdown — внутренний маркер запрошенной остановки; наружу из Run не возвращается.
	ErrShutdown = errors.New("shutdown requested")
	// ErrAlreadyStarted — Run вызван повторно на том же экземпляре.
	ErrAlreadyStarted = errors.New("consumer already started")
)

// OutcomeOf сопоставляет ошибку Run с причиной завершения.
// Ошибки чтения из источника относятся к подписке.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, ErrShutdown):
		return OutcomeShutdown
	case errors.Is(err, ErrWrite):
		return OutcomeWriteFailed
	case errors.Is(err, decode.ErrDecode):
		return OutcomeDecodeFailed
	default:
		return OutcomeSubscribeFailed
	}
}
