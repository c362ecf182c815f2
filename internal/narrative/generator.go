package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/neurorouter"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrEmptyResponse = errors.New("empty narrative response")

// Transport - внешний сервис генерации текста
type Transport interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Policy - ограниченный повтор с фиксированной паузой
type Policy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultPolicy: две попытки с паузой 300ms
func DefaultPolicy() Policy {
	return Policy{Attempts: 2, Backoff: 300 * time.Millisecond}
}

// Generator запрашивает тактический отчет и при неудаче возвращает шаблонный текст.
// Generate никогда не возвращает ошибку.
type Generator struct {
	transport Transport
	policy    Policy
	logger    *logrus.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewGenerator создает генератор; transport может быть nil, тогда всегда используется шаблон
func NewGenerator(transport Transport, policy Policy, logger *logrus.Logger) *Generator {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	return &Generator{
		transport: transport,
		policy:    policy,
		logger:    logger,
		sleep:     sleepContext,
	}
}

// Generate возвращает отчет для инцидента
func (g *Generator) Generate(ctx context.Context, inc models.Incident) (result models.Narrative) {
	log := g.logger.WithFields(logrus.Fields{
		"component":   "narrative",
		"incident_id": inc.ID,
		"type":        inc.Type,
	})

	result = models.Narrative{IncidentID: inc.ID}
	if g.transport == nil {
		result.Text = FallbackText(inc)
		result.Fallback = true
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Narrative transport panicked, using fallback")
			result = models.Narrative{IncidentID: inc.ID, Text: FallbackText(inc), Fallback: true, Attempts: result.Attempts}
		}
	}()

	prompt := BuildPrompt(inc)
	for attempt := 1; attempt <= g.policy.Attempts; attempt++ {
		result.Attempts = attempt

		text, err := g.transport.Complete(ctx, prompt)
		if err == nil && strings.TrimSpace(text) == "" {
			err = ErrEmptyResponse
		}
		if err == nil {
			result.Text = strings.TrimSpace(text)
			log.WithField("attempts", attempt).Debug("Narrative generated")
			return result
		}

		log.WithError(err).Warnf("Narrative attempt %d/%d failed", attempt, g.policy.Attempts)
		if errors.Is(err, neurorouter.ErrRateLimited) || ctx.Err() != nil {
			break
		}
		if attempt < g.policy.Attempts {
			if err := g.sleep(ctx, g.policy.Backoff); err != nil {
				break
			}
		}
	}

	result.Text = FallbackText(inc)
	result.Fallback = true
	return result
}

// FallbackText - детерминированный отчет только из локальных полей инцидента
func FallbackText(inc models.Incident) string {
	return fmt.Sprintf("Detection: %s at %s. Action: dispatch immediate verification unit. Status: RED ALERT.", inc.Type, inc.Location)
}

// BuildPrompt собирает запрос: тип, место, уверенность и признак упреждения
func BuildPrompt(inc models.Incident) string {
	mode := "ONGOING EVENT"
	if inc.IsPredictive() {
		mode = "PREDICTIVE BEHAVIOUR ANALYSIS ACTIVE"
	}

	var b strings.Builder
	b.WriteString("TACTICAL COMMAND INSTRUCTION: you are the senior AI duty officer of the district monitoring centre.\n")
	fmt.Fprintf(&b, "SITUATION: %s detected.\n", inc.Type)
	fmt.Fprintf(&b, "LOCATION: %s\n", inc.Location)
	fmt.Fprintf(&b, "CONTEXT: %s.\n", mode)
	fmt.Fprintf(&b, "AI CONFIDENCE: %.0f%%.\n\n", inc.Confidence*100)
	b.WriteString("REQUIRED (CONCISE OPERATIONAL REPORT):\n")
	fmt.Fprintf(&b, "1. THREAT ANALYSIS: why the system flagged this as %s.\n", inc.Type)
	b.WriteString("2. RISK ASSESSMENT: impact on public safety in that area.\n")
	b.WriteString("3. INTERVENTION PROTOCOL: immediate tactical steps for the patrol units.\n\n")
	b.WriteString("SHORT, DIRECT AND PROFESSIONAL REPORT.")
	return b.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
