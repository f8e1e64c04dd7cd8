// Пакет batch — накопитель декодированных записей до порога сброса.
// Накопитель принадлежит одной горутине (циклу опроса), поэтому блокировок нет.
package batch

import "github.com/Gunvolt24/media_consumer/internal/domain"

// DefaultThreshold — порог сброса по умолчанию: пачка уходит в хранилище на 430-й записи.
const DefaultThreshold = 430

// Accumulator — упорядоченный буфер записей с порогом сброса.
type Accumulator struct {
	records   []domain.Media
	threshold int
}

// New — конструктор; threshold <= 0 заменяется на DefaultThreshold.
func New(threshold int) *Accumulator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Accumulator{
		records:   make([]domain.Media, 0, threshold),
		threshold: threshold,
	}
}

// Append добавляет запись в конец, порядок поступления сохраняется.
func (a *Accumulator) Append(m domain.Media) {
	a.records = append(a.records, m)
}

func (a *Accumulator) Size() int      { return len(a.records) }
func (a *Accumulator) Threshold() int { return a.threshold }

// Reached — накоплено не меньше порога.
func (a *Accumulator) Reached() bool { return len(a.records) >= a.threshold }

// Drain отдаёт накопленное и очищает накопитель.
// Возвращённый срез больше не используется накопителем.
func (a *Accumulator) Drain() []domain.Media {
	out := a.records
	a.records = make([]domain.Media, 0, a.threshold)
	return out
}
