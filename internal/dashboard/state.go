package dashboard

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/models"
)

// ErrHeadMismatch - снимаемая тревога уже не в голове очереди
var ErrHeadMismatch = errors.New("incident is not the current alert")

// RouteOutcome описывает, что изменилось после маршрутизации инцидента
type RouteOutcome struct {
	Escalated   bool             // инцидент попал в очередь критических тревог
	HeadChanged bool             // переход Idle -> Presenting, нужен новый отчет
	Head        *models.Incident // новая голова, если HeadChanged
	QueueLength int
	ThreatLevel int
}

// DismissOutcome описывает результат снятия тревоги
type DismissOutcome struct {
	Dismissed   *models.Incident
	Next        *models.Incident // новая голова, если очередь не опустела
	QueueLength int
	ThreatLevel int
}

// State - единственная точка изменения общего состояния панели.
// Все переходы выполняются целиком под одной блокировкой поверх неизменяемого Snapshot.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState создает состояние с начальным Snapshot
func NewState() *State {
	return &State{snap: Empty()}
}

// Route - маршрутизатор инцидентов: журнал, очередь и уровень угрозы одним шагом
func (s *State) Route(inc models.Incident) RouteOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasIdle := len(s.snap.queue) == 0
	s.snap = s.snap.Route(inc)

	outcome := RouteOutcome{
		Escalated:   inc.IsCritical(),
		QueueLength: len(s.snap.queue),
		ThreatLevel: s.snap.threat,
	}
	if wasIdle && outcome.Escalated {
		head := s.snap.queue[0]
		outcome.HeadChanged = true
		outcome.Head = &head
	}
	return outcome
}

// Dismiss снимает текущую тревогу. В состоянии Idle возвращает пустой результат и false.
func (s *State) Dismiss(resolution models.IncidentStatus) (DismissOutcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dismissLocked(resolution)
}

// DismissHead снимает тревогу, только если в голове очереди стоит incidentID.
// Проверка и снятие выполняются одним шагом.
func (s *State) DismissHead(incidentID uuid.UUID, resolution models.IncidentStatus) (DismissOutcome, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head, ok := s.snap.Head()
	if !ok {
		return DismissOutcome{ThreatLevel: s.snap.threat}, false, nil
	}
	if head.ID != incidentID {
		return DismissOutcome{}, false, ErrHeadMismatch
	}
	outcome, dismissed := s.dismissLocked(resolution)
	return outcome, dismissed, nil
}

func (s *State) dismissLocked(resolution models.IncidentStatus) (DismissOutcome, bool) {
	next, dismissed, ok := s.snap.Dismiss(resolution)
	if !ok {
		return DismissOutcome{ThreatLevel: s.snap.threat}, false
	}
	s.snap = next

	outcome := DismissOutcome{
		Dismissed:   &dismissed,
		QueueLength: len(next.queue),
		ThreatLevel: next.threat,
	}
	if head, ok := next.Head(); ok {
		outcome.Next = &head
	}
	return outcome, true
}

// ApplyNarrative применяет отчет; устаревший отчет для уже снятой тревоги отбрасывается
func (s *State) ApplyNarrative(n models.Narrative) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.snap.WithNarrative(n)
	if ok {
		s.snap = next
	}
	return ok
}

// Snapshot возвращает текущее неизменяемое состояние
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
