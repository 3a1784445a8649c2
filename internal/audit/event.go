package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event types published for credito queries
const (
	TypeCreditoByNumero       = "CONSULTA_CREDITO_POR_NUMERO"
	TypeCreditosByNfse        = "CONSULTA_CREDITOS_POR_NFSE"
	TypeCreditosByNfsePage    = "CONSULTA_CREDITOS_POR_NFSE_PAGINADA"
	TypeTestDataGenerated     = "GERACAO_DADOS_TESTE"
	TypeTestDataDeleted       = "DELECAO_DADOS_TESTE"
	TypeValidationFactoryCall = "VALIDACAO"
)

// Event records one query served by the API
type Event struct {
	ID          uuid.UUID      `json:"eventId"`
	Type        string         `json:"eventType"`
	Timestamp   time.Time      `json:"timestamp"`
	ClientIP    string         `json:"userIp,omitempty"`
	Endpoint    string         `json:"endpoint"`
	Method      string         `json:"httpMethod"`
	Params      map[string]any `json:"requestParameters,omitempty"`
	Status      int            `json:"responseStatus"`
	DurationMs  int64          `json:"executionTimeMs"`
	ResultCount int            `json:"resultCount"`
	Success     bool           `json:"success"`
	Error       string         `json:"errorMessage,omitempty"`
}

func NewEvent(eventType, endpoint, method string) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Endpoint:  endpoint,
		Method:    method,
		Success:   true,
	}
}

// WithOutcome completes the event with the response of the query it describes.
// A non-nil err marks the event as failed.
func (e Event) WithOutcome(status, resultCount int, elapsed time.Duration, err error) Event {
	e.Status = status
	e.ResultCount = resultCount
	e.DurationMs = elapsed.Milliseconds()
	e.Success = err == nil
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
