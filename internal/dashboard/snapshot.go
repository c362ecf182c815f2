package dashboard

import (
	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/models"
)

const (
	HistoryLimit     = 100
	ThreatDefault    = 34
	ThreatMin        = 15
	ThreatMax        = 100
	ThreatRaiseStep  = 3
	ThreatReliefStep = 6
)

// narrativeSlot - отчет, привязанный к конкретному инциденту в голове очереди
type narrativeSlot struct {
	incidentID uuid.UUID
	narrative  models.Narrative
	ready      bool
}

// Snapshot - неизменяемое состояние панели. Каждый переход возвращает новый Snapshot,
// исходный не модифицируется.
type Snapshot struct {
	history []models.Incident // новые первыми
	queue   []models.Incident // FIFO, голова в queue[0]
	threat  int
	slot    narrativeSlot
}

// Empty возвращает начальное состояние: пустые журнал и очередь, уровень угрозы 34
func Empty() Snapshot {
	return Snapshot{threat: ThreatDefault}
}

// Route применяет три эффекта входящего инцидента одним шагом:
// журнал, очередь критических тревог и уровень угрозы.
func (s Snapshot) Route(inc models.Incident) Snapshot {
	next := s

	limit := len(s.history) + 1
	if limit > HistoryLimit {
		limit = HistoryLimit
	}
	history := make([]models.Incident, 0, limit)
	history = append(history, inc)
	history = append(history, s.history[:limit-1]...)
	next.history = history

	if inc.IsCritical() {
		queue := make([]models.Incident, len(s.queue), len(s.queue)+1)
		copy(queue, s.queue)
		next.queue = append(queue, inc)
		if len(s.queue) == 0 {
			next.slot = narrativeSlot{incidentID: inc.ID}
		}
	}

	if inc.IsPredictive() {
		next.threat = min(ThreatMax, s.threat+ThreatRaiseStep)
	}
	return next
}

// Dismiss снимает голову очереди и проставляет ей статус resolution в журнале.
// В состоянии Idle это no-op: возвращается исходный Snapshot и false.
func (s Snapshot) Dismiss(resolution models.IncidentStatus) (Snapshot, models.Incident, bool) {
	if len(s.queue) == 0 {
		return s, models.Incident{}, false
	}
	next := s

	head := s.queue[0]
	head.Status = resolution

	queue := make([]models.Incident, len(s.queue)-1)
	copy(queue, s.queue[1:])
	next.queue = queue

	history := make([]models.Incident, len(s.history))
	copy(history, s.history)
	for i := range history {
		if history[i].ID == head.ID {
			history[i].Status = resolution
		}
	}
	next.history = history

	next.threat = max(ThreatMin, s.threat-ThreatReliefStep)

	next.slot = narrativeSlot{}
	if len(queue) > 0 {
		next.slot = narrativeSlot{incidentID: queue[0].ID}
	}
	return next, head, true
}

// WithNarrative прикладывает отчет, только если он относится к текущей голове очереди
// и отчет для нее еще не получен.
func (s Snapshot) WithNarrative(n models.Narrative) (Snapshot, bool) {
	head, ok := s.Head()
	if !ok || head.ID != n.IncidentID || s.slot.incidentID != n.IncidentID || s.slot.ready {
		return s, false
	}
	next := s
	next.slot = narrativeSlot{incidentID: n.IncidentID, narrative: n, ready: true}
	return next, true
}

// Head возвращает инцидент, который сейчас показывается оператору
func (s Snapshot) Head() (models.Incident, bool) {
	if len(s.queue) == 0 {
		return models.Incident{}, false
	}
	return s.queue[0], true
}

// Presenter - Idle при пустой очереди, иначе Presenting
func (s Snapshot) Presenter() models.PresenterState {
	if len(s.queue) == 0 {
		return models.PresenterIdle
	}
	return models.PresenterPresenting
}

// Alert собирает представление текущей тревоги
func (s Snapshot) Alert() (models.AlertView, bool) {
	head, ok := s.Head()
	if !ok {
		return models.AlertView{}, false
	}
	view := models.AlertView{
		Incident:      head,
		QueueLength:   len(s.queue),
		PendingAlerts: len(s.queue) - 1,
	}
	if s.slot.ready && s.slot.incidentID == head.ID {
		view.Narrative = s.slot.narrative.Text
		view.NarrativeReady = true
		view.Fallback = s.slot.narrative.Fallback
	}
	return view, true
}

// History возвращает копию журнала, новые первыми
func (s Snapshot) History() []models.Incident {
	out := make([]models.Incident, len(s.history))
	copy(out, s.history)
	return out
}

// Queue возвращает копию очереди критических тревог
func (s Snapshot) Queue() []models.Incident {
	out := make([]models.Incident, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s Snapshot) ThreatLevel() int {
	return s.threat
}

// Stats считает сводку по журналу
func (s Snapshot) Stats() models.DashboardStats {
	stats := models.DashboardStats{
		ThreatLevel: s.threat,
		Presenter:   s.Presenter(),
		QueueLength: len(s.queue),
		HistorySize: len(s.history),
		ByType:      make(map[models.DetectionType]int, len(models.DetectionTypes)),
	}
	for _, inc := range s.history {
		stats.ByType[inc.Type]++
		if inc.IsPredictive() {
			stats.Predictive++
		}
	}
	return stats
}
